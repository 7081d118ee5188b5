/*
   Licensed under the MIT License <http://opensource.org/licenses/MIT>.

   Copyright © 2025 Seagate Technology LLC and/or its Affiliates

   Permission is hereby granted, free of charge, to any person obtaining a copy
   of this software and associated documentation files (the "Software"), to deal
   in the Software without restriction, including without limitation the rights
   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
   copies of the Software, and to permit persons to whom the Software is
   furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in all
   copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
   SOFTWARE
*/

package check

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Seagate/adlsquery/common/log"
	"github.com/Seagate/adlsquery/internal/fixture"

	"github.com/google/go-cmp/cmp"
)

const (
	QueryReadName = "OpenQueryReader"
	BulkReadName  = "Read"
)

// Result of reading the fixture file back and comparing it with the uploaded payload
type Result struct {
	Name     string
	Expected []byte
	Actual   []byte
	Err      error
}

// Match is true when the read succeeded and returned the payload byte for byte
func (r Result) Match() bool {
	return r.Err == nil && bytes.Equal(r.Expected, r.Actual)
}

// Diff describes how the bytes read differ from the payload, empty on a match
func (r Result) Diff() string {
	if r.Err != nil {
		return fmt.Sprintf("read failed: %s", r.Err.Error())
	}
	if bytes.Equal(r.Expected, r.Actual) {
		return ""
	}
	return fmt.Sprintf(
		"expected %d bytes, got %d bytes (-expected +actual):\n%s",
		len(r.Expected),
		len(r.Actual),
		cmp.Diff(r.Expected, r.Actual),
	)
}

func (r Result) String() string {
	if r.Match() {
		return fmt.Sprintf("PASS %s", r.Name)
	}
	return fmt.Sprintf("FAIL %s: %s", r.Name, r.Diff())
}

// QueryRead drains the query result stream of the fixture file.
// The stream is closed on every path.
func QueryRead(ctx context.Context, f *fixture.Fixture, expression string) (result Result) {
	result = Result{Name: QueryReadName, Expected: f.Payload}
	if !f.Created() {
		result.Err = fixture.ErrNotCreated
		return result
	}

	reader, err := f.Connection().OpenQueryReader(ctx, f.Filesystem, f.File, expression)
	if err != nil {
		log.Err("Check::QueryRead : Failed to open query reader [%s]", err.Error())
		result.Err = err
		return result
	}
	defer func() {
		if cerr := reader.Close(); cerr != nil && result.Err == nil {
			result.Err = cerr
		}
	}()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, reader)
	result.Actual = buf.Bytes()
	if err != nil {
		log.Err("Check::QueryRead : Failed to drain query stream after %d bytes [%s]", buf.Len(), err.Error())
		result.Err = err
		return result
	}

	log.Info("Check::QueryRead : read %d bytes, expected %d", len(result.Actual), len(result.Expected))
	return result
}

// BulkRead reads the fixture file into memory with a plain download
func BulkRead(ctx context.Context, f *fixture.Fixture) Result {
	result := Result{Name: BulkReadName, Expected: f.Payload}
	if !f.Created() {
		result.Err = fixture.ErrNotCreated
		return result
	}

	data, err := f.Connection().ReadBuffer(ctx, f.Filesystem, f.File)
	if err != nil {
		log.Err("Check::BulkRead : Failed to read %s [%s]", f.File, err.Error())
		result.Err = err
		return result
	}

	result.Actual = data
	log.Info("Check::BulkRead : read %d bytes, expected %d", len(result.Actual), len(result.Expected))
	return result
}
