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
	"context"
	"io"
)

//go:generate mockgen -source=connection.go -destination=mock_connection.go -package=azstorage

// DatalakeConnection : operations the harness needs from a Data Lake account
type DatalakeConnection interface {
	CreateFilesystem(ctx context.Context, name string) error
	DeleteFilesystem(ctx context.Context, name string) error

	// WriteFromBuffer uploads data as the whole content of the file
	WriteFromBuffer(ctx context.Context, filesystem string, name string, data []byte) error

	// ReadBuffer downloads the whole file into memory
	ReadBuffer(ctx context.Context, filesystem string, name string) ([]byte, error)

	// OpenQueryReader runs expression against the file on the service side.
	// The caller must close the returned reader.
	OpenQueryReader(
		ctx context.Context,
		filesystem string,
		name string,
		expression string,
	) (io.ReadCloser, error)
}

// NewDatalakeConnection : Build a connection for the given config
func NewDatalakeConnection(cfg AzStorageConfig) (DatalakeConnection, error) {
	dl := &Datalake{}
	err := dl.Configure(cfg)
	if err != nil {
		return nil, err
	}

	err = dl.SetupPipeline()
	if err != nil {
		return nil, err
	}
	return dl, nil
}
