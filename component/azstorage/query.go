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
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Seagate/adlsquery/common/log"

	"github.com/Azure/azure-pipeline-go/pipeline"
	"github.com/Azure/azure-storage-blob-go/azblob"
)

// queryServiceVersion is the first service version serving Query Blob Contents
// with the avro framed response this package decodes.
const queryServiceVersion = "2020-04-08"

// queryRequest is the body of a Query Blob Contents call. Serialization blocks are
// left out so the service applies its CSV defaults on input and output.
type queryRequest struct {
	XMLName    xml.Name `xml:"QueryRequest"`
	QueryType  string   `xml:"QueryType"`
	Expression string   `xml:"Expression"`
}

// QueryServiceError is returned when the service rejects a query request
type QueryServiceError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *QueryServiceError) Error() string {
	return fmt.Sprintf("query failed with status %d [%s: %s]", e.StatusCode, e.ErrorCode, e.Message)
}

type storageErrorBody struct {
	XMLName xml.Name `xml:"Error"`
	Code    string   `xml:"Code"`
	Message string   `xml:"Message"`
}

func newQueryServiceError(resp *http.Response) *QueryServiceError {
	serr := &QueryServiceError{
		StatusCode: resp.StatusCode,
		ErrorCode:  resp.Header.Get("x-ms-error-code"),
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		serr.Message = http.StatusText(resp.StatusCode)
		return serr
	}

	var parsed storageErrorBody
	if xml.Unmarshal(body, &parsed) == nil {
		if serr.ErrorCode == "" {
			serr.ErrorCode = parsed.Code
		}
		serr.Message = parsed.Message
	} else {
		serr.Message = string(body)
	}
	return serr
}

// queryResponder fails the pipeline call on any status other than 200 OK
func queryResponder() pipeline.Factory {
	return pipeline.FactoryFunc(func(next pipeline.Policy, po *pipeline.PolicyOptions) pipeline.PolicyFunc {
		return func(ctx context.Context, request pipeline.Request) (pipeline.Response, error) {
			resp, err := next.Do(ctx, request)
			if err != nil {
				return resp, err
			}

			raw := resp.Response()
			if raw.StatusCode != http.StatusOK {
				defer raw.Body.Close()
				return resp, newQueryServiceError(raw)
			}
			return resp, nil
		}
	})
}

// getQueryURL builds the blob url of the file with comp=query
func getQueryURL(blobEndpoint string, p pipeline.Pipeline, filesystem string, name string) (url.URL, error) {
	u, err := url.Parse(blobEndpoint)
	if err != nil {
		return url.URL{}, err
	}

	blobURL := azblob.NewServiceURL(*u, p).NewContainerURL(filesystem).NewBlobURL(name)
	queryURL := blobURL.URL()
	params := queryURL.Query()
	params.Set("comp", "query")
	queryURL.RawQuery = params.Encode()
	return queryURL, nil
}

// queryFile posts the query to the service and wraps the response in a QueryReader
func queryFile(
	ctx context.Context,
	p pipeline.Pipeline,
	blobEndpoint string,
	filesystem string,
	name string,
	expression string,
) (*QueryReader, error) {
	queryURL, err := getQueryURL(blobEndpoint, p, filesystem, name)
	if err != nil {
		return nil, fmt.Errorf("invalid blob endpoint %s [%w]", blobEndpoint, err)
	}

	body, err := xml.Marshal(queryRequest{QueryType: "SQL", Expression: expression})
	if err != nil {
		return nil, err
	}
	body = append([]byte(xml.Header), body...)

	req, err := pipeline.NewRequest(http.MethodPost, queryURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-ms-version", queryServiceVersion)
	req.Header.Set("Content-Type", "application/xml; charset=utf-8")

	resp, err := p.Do(ctx, queryResponder(), req)
	if err != nil {
		return nil, err
	}

	raw := resp.Response()
	log.Debug(
		"Datalake::queryFile : %s answered with %s, request id %s",
		name,
		raw.Header.Get("Content-Type"),
		raw.Header.Get("x-ms-request-id"),
	)

	return NewQueryReader(raw.Body)
}
