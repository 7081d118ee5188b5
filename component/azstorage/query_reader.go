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

package azstorage

import (
	"fmt"
	"io"
	"strings"

	"github.com/Seagate/adlsquery/common/log"

	"github.com/linkedin/goavro/v2"
)

// Record types of the avro stream returned by Query Blob Contents
const (
	queryRecordResultData = "resultData"
	queryRecordProgress   = "progress"
	queryRecordError      = "error"
	queryRecordEnd        = "end"
)

// QueryError is a fatal error reported by the service inside the query result stream
type QueryError struct {
	Name        string
	Description string
	Position    int64
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query error %s at position %d [%s]", e.Name, e.Position, e.Description)
}

// QueryReader exposes the result data of a query response as a plain byte stream.
// Progress records are logged, non fatal errors are logged and skipped, a fatal
// error or a stream missing its end record fails the read.
type QueryReader struct {
	body    io.ReadCloser
	ocf     *goavro.OCFReader
	pending []byte
	err     error

	BytesScanned int64
	TotalBytes   int64
}

var _ io.ReadCloser = &QueryReader{}

// NewQueryReader reads the avro container header from body. body is closed on failure.
func NewQueryReader(body io.ReadCloser) (*QueryReader, error) {
	ocf, err := goavro.NewOCFReader(body)
	if err != nil {
		_ = body.Close()
		return nil, fmt.Errorf("invalid query response [%w]", err)
	}

	return &QueryReader{
		body: body,
		ocf:  ocf,
	}, nil
}

func (r *QueryReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.err = r.nextRecord()
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *QueryReader) Close() error {
	return r.body.Close()
}

// nextRecord decodes one record. Result data is queued in pending.
func (r *QueryReader) nextRecord() error {
	if !r.ocf.Scan() {
		if err := r.ocf.Err(); err != nil {
			return err
		}
		log.Err("QueryReader::nextRecord : stream ended without end record")
		return io.ErrUnexpectedEOF
	}

	datum, err := r.ocf.Read()
	if err != nil {
		return err
	}

	kind, fields, err := unwrapQueryRecord(datum)
	if err != nil {
		return err
	}

	switch kind {
	case queryRecordResultData:
		data, ok := fields["data"].([]byte)
		if !ok {
			return fmt.Errorf("resultData record without data field")
		}
		r.pending = data

	case queryRecordProgress:
		r.BytesScanned = asInt64(fields["bytesScanned"])
		r.TotalBytes = asInt64(fields["totalBytes"])
		log.Debug("QueryReader::nextRecord : scanned %d of %d bytes", r.BytesScanned, r.TotalBytes)

	case queryRecordError:
		qerr := &QueryError{
			Name:        asString(fields["name"]),
			Description: asString(fields["description"]),
			Position:    asInt64(fields["position"]),
		}
		if fatal, _ := fields["fatal"].(bool); fatal {
			log.Err("QueryReader::nextRecord : %s", qerr.Error())
			return qerr
		}
		log.Warn("QueryReader::nextRecord : non fatal %s", qerr.Error())

	case queryRecordEnd:
		r.TotalBytes = asInt64(fields["totalBytes"])
		return io.EOF

	default:
		return fmt.Errorf("unexpected query record %s", kind)
	}

	return nil
}

// unwrapQueryRecord strips the union wrapper goavro puts around every record.
// Records are named com.microsoft.azure.storage.queryBlobContents.<kind>.
func unwrapQueryRecord(datum any) (string, map[string]any, error) {
	union, ok := datum.(map[string]any)
	if !ok || len(union) != 1 {
		return "", nil, fmt.Errorf("unexpected query record %v", datum)
	}

	for name, value := range union {
		fields, ok := value.(map[string]any)
		if !ok {
			return "", nil, fmt.Errorf("unexpected query record %s", name)
		}
		return name[strings.LastIndex(name, ".")+1:], fields, nil
	}
	return "", nil, nil
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	}
	return 0
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
