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

package fixture

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/Seagate/adlsquery/common"
	"github.com/Seagate/adlsquery/common/log"
	"github.com/Seagate/adlsquery/component/azstorage"
)

// ErrNotCreated is returned when the fixture is used before Setup created its filesystem
var ErrNotCreated = errors.New("fixture filesystem was not created")

// RandomSuffix asks New to draw the name suffix at random
const RandomSuffix = -1

// Options tune the names and content of the fixture
type Options struct {
	// Suffix shared by the filesystem and file names. RandomSuffix picks one in [0, 1000).
	Suffix  int
	Payload []byte
}

// Fixture owns one filesystem holding one file for the lifetime of a test run
type Fixture struct {
	conn azstorage.DatalakeConnection

	Filesystem string
	File       string
	Payload    []byte

	created bool
}

// New names the fixture. Name collisions between concurrent runs are accepted.
func New(conn azstorage.DatalakeConnection, opt Options) *Fixture {
	suffix := opt.Suffix
	if suffix < 0 {
		suffix = rand.Intn(1000)
	}

	payload := opt.Payload
	if payload == nil {
		payload = common.DefaultPayload
	}

	return &Fixture{
		conn:       conn,
		Filesystem: fmt.Sprintf("testfs%d", suffix),
		File:       fmt.Sprintf("file%d.txt", suffix),
		Payload:    payload,
	}
}

// Setup creates the filesystem and uploads the payload
// Once the filesystem exists the fixture counts as created, so a failed upload is still torn down.
func (f *Fixture) Setup(ctx context.Context) error {
	log.Trace("Fixture::Setup : filesystem %s, file %s", f.Filesystem, f.File)

	err := f.conn.CreateFilesystem(ctx, f.Filesystem)
	if err != nil {
		log.Err("Fixture::Setup : Failed to create filesystem %s [%s]", f.Filesystem, err.Error())
		return err
	}
	f.created = true

	err = f.conn.WriteFromBuffer(ctx, f.Filesystem, f.File, f.Payload)
	if err != nil {
		log.Err("Fixture::Setup : Failed to upload %s [%s]", f.File, err.Error())
		return err
	}

	log.Info("Fixture::Setup : uploaded %d bytes to %s/%s", len(f.Payload), f.Filesystem, f.File)
	return nil
}

// Created reports whether Setup got as far as creating the filesystem
func (f *Fixture) Created() bool {
	return f.created
}

// Connection returns the connection the fixture was built on
func (f *Fixture) Connection() azstorage.DatalakeConnection {
	return f.conn
}

// Teardown deletes the filesystem. It is not retried; a failure leaks the filesystem.
func (f *Fixture) Teardown(ctx context.Context) error {
	if !f.created {
		log.Debug("Fixture::Teardown : nothing to delete")
		return nil
	}

	log.Trace("Fixture::Teardown : filesystem %s", f.Filesystem)
	err := f.conn.DeleteFilesystem(ctx, f.Filesystem)
	if err != nil {
		log.Err("Fixture::Teardown : Failed to delete filesystem %s, it is leaked [%s]", f.Filesystem, err.Error())
		return err
	}

	f.created = false
	return nil
}
