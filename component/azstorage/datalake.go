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
	"fmt"
	"io"

	"github.com/Seagate/adlsquery/common/log"

	"github.com/Azure/azure-pipeline-go/pipeline"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azdatalake"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azdatalake/file"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azdatalake/service"
	"github.com/Azure/azure-storage-blob-go/azblob"
)

type Datalake struct {
	Config  AzStorageConfig
	Service *service.Client

	// The query API is not wrapped by the Data Lake SDK, so it goes through a
	// shared key signed blob pipeline of its own.
	queryPipeline pipeline.Pipeline
}

// Verify that Datalake implements DatalakeConnection interface
var _ DatalakeConnection = &Datalake{}

func (dl *Datalake) Configure(cfg AzStorageConfig) error {
	if cfg.authConfig.AccountName == "" || cfg.authConfig.AccountKey == "" {
		return errConfigFieldEmpty
	}
	dl.Config = cfg
	return nil
}

// createServiceClient : Create the service client
func (dl *Datalake) createServiceClient() (*service.Client, error) {
	log.Trace("Datalake::createServiceClient : Getting service client")

	cred, err := azdatalake.NewSharedKeyCredential(
		dl.Config.authConfig.AccountName,
		dl.Config.authConfig.AccountKey,
	)
	if err != nil {
		log.Err("Datalake::createServiceClient : Failed to create shared key credential [%s]", err.Error())
		return nil, err
	}

	svcClient, err := service.NewClientWithSharedKeyCredential(
		dl.Config.authConfig.Endpoint,
		cred,
		getServiceClientOptions(&dl.Config),
	)
	if err != nil {
		log.Err("Datalake::createServiceClient : Failed to create service client [%s]", err.Error())
		return nil, err
	}

	return svcClient, nil
}

// SetupPipeline : Based on the config setup the service client and the query pipeline
func (dl *Datalake) SetupPipeline() error {
	log.Trace("Datalake::SetupPipeline : Setting up")
	var err error

	dl.Service, err = dl.createServiceClient()
	if err != nil {
		log.Err("Datalake::SetupPipeline : Failed to get service client [%s]", err.Error())
		return err
	}

	cred, err := azblob.NewSharedKeyCredential(
		dl.Config.authConfig.AccountName,
		dl.Config.authConfig.AccountKey,
	)
	if err != nil {
		log.Err("Datalake::SetupPipeline : Failed to create blob credential [%s]", err.Error())
		return err
	}
	dl.queryPipeline = azblob.NewPipeline(cred, getQueryPipelineOptions(&dl.Config))

	return nil
}

// CreateFilesystem : Create a new filesystem in the account
func (dl *Datalake) CreateFilesystem(ctx context.Context, name string) error {
	log.Trace("Datalake::CreateFilesystem : name %s", name)

	_, err := dl.Service.CreateFileSystem(ctx, name, nil)
	if err != nil {
		serr := storeDatalakeErrToErr(err)
		switch serr {
		case ErrFilesystemAlreadyExists:
			log.Err("Datalake::CreateFilesystem : %s already exists", name)
		case InvalidPermission:
			log.Err("Datalake::CreateFilesystem : Insufficient permissions for %s [%s]", name, err.Error())
		default:
			log.Err("Datalake::CreateFilesystem : Failed to create filesystem %s [%s]", name, err.Error())
			return err
		}
		return fmt.Errorf("%w: %w", serr, err)
	}

	return nil
}

// DeleteFilesystem : Delete a filesystem and everything it holds
func (dl *Datalake) DeleteFilesystem(ctx context.Context, name string) error {
	log.Trace("Datalake::DeleteFilesystem : name %s", name)

	_, err := dl.Service.DeleteFileSystem(ctx, name, nil)
	if err != nil {
		serr := storeDatalakeErrToErr(err)
		switch serr {
		case ErrFilesystemNotFound:
			log.Err("Datalake::DeleteFilesystem : %s does not exist", name)
		case InvalidPermission:
			log.Err("Datalake::DeleteFilesystem : Insufficient permissions for %s [%s]", name, err.Error())
		default:
			log.Err("Datalake::DeleteFilesystem : Failed to delete filesystem %s [%s]", name, err.Error())
			return err
		}
		return fmt.Errorf("%w: %w", serr, err)
	}

	return nil
}

// WriteFromBuffer : Upload from a buffer to a file
func (dl *Datalake) WriteFromBuffer(ctx context.Context, filesystem string, name string, data []byte) error {
	log.Trace("Datalake::WriteFromBuffer : name %s/%s, length %d", filesystem, name, len(data))

	fileClient := dl.getFileClient(filesystem, name)
	_, err := fileClient.Create(ctx, nil)
	if err != nil {
		log.Err("Datalake::WriteFromBuffer : Failed to create file %s [%s]", name, err.Error())
		return dl.wrapPathErr(err)
	}

	if len(data) == 0 {
		return nil
	}

	err = fileClient.UploadBuffer(ctx, data, nil)
	if err != nil {
		log.Err("Datalake::WriteFromBuffer : Failed to upload %s [%s]", name, err.Error())
		return dl.wrapPathErr(err)
	}

	return nil
}

// ReadBuffer : Download the whole file into a buffer
func (dl *Datalake) ReadBuffer(ctx context.Context, filesystem string, name string) ([]byte, error) {
	log.Trace("Datalake::ReadBuffer : name %s/%s", filesystem, name)

	fileClient := dl.getFileClient(filesystem, name)
	prop, err := fileClient.GetProperties(ctx, nil)
	if err != nil {
		log.Err("Datalake::ReadBuffer : Failed to get properties of %s [%s]", name, err.Error())
		return nil, dl.wrapPathErr(err)
	}

	var size int64
	if prop.ContentLength != nil {
		size = *prop.ContentLength
	}
	if size == 0 {
		return []byte{}, nil
	}

	buff := make([]byte, size)
	n, err := fileClient.DownloadBuffer(ctx, buff, nil)
	if err != nil {
		log.Err("Datalake::ReadBuffer : Failed to download %s [%s]", name, err.Error())
		return nil, dl.wrapPathErr(err)
	}

	return buff[:n], nil
}

// OpenQueryReader : Query the file and stream back the result
func (dl *Datalake) OpenQueryReader(
	ctx context.Context,
	filesystem string,
	name string,
	expression string,
) (io.ReadCloser, error) {
	log.Trace("Datalake::OpenQueryReader : name %s/%s, query [%s]", filesystem, name, expression)

	reader, err := queryFile(ctx, dl.queryPipeline, dl.Config.blobEndpoint, filesystem, name, expression)
	if err != nil {
		log.Err("Datalake::OpenQueryReader : Failed to query %s [%s]", name, err.Error())
		return nil, err
	}
	return reader, nil
}

func (dl *Datalake) getFileClient(filesystem string, name string) *file.Client {
	return dl.Service.NewFileSystemClient(filesystem).NewFileClient(name)
}

func (dl *Datalake) wrapPathErr(err error) error {
	serr := storeDatalakeErrToErr(err)
	if serr == nil {
		return err
	}
	return fmt.Errorf("%w: %w", serr, err)
}
