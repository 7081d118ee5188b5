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
	"errors"
	"time"

	"github.com/Seagate/adlsquery/common/log"

	"github.com/Azure/azure-pipeline-go/pipeline"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azdatalake/datalakeerror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azdatalake/service"
	"github.com/Azure/azure-storage-blob-go/azblob"
)

var (
	ErrFilesystemAlreadyExists = errors.New("filesystem already exists")
	ErrFilesystemNotFound      = errors.New("filesystem does not exist")
	ErrFileNotFound            = errors.New("file does not exist")
	InvalidPermission          = errors.New("insufficient permissions")
)

// Filesystem operations are served by the blob endpoint and the SDK renames
// the container codes it gets back.
const (
	filesystemAlreadyExists datalakeerror.StorageErrorCode = "FilesystemAlreadyExists"
	filesystemNotFound      datalakeerror.StorageErrorCode = "FilesystemNotFound"
)

// storeDatalakeErrToErr maps a service error onto one of the package sentinels.
// nil means the error has no specific meaning for the harness.
func storeDatalakeErrToErr(err error) error {
	var serr *azcore.ResponseError
	if !errors.As(err, &serr) {
		return nil
	}

	switch datalakeerror.StorageErrorCode(serr.ErrorCode) {
	case filesystemAlreadyExists:
		return ErrFilesystemAlreadyExists
	case filesystemNotFound:
		return ErrFilesystemNotFound
	case datalakeerror.PathNotFound:
		return ErrFileNotFound
	case datalakeerror.AuthorizationPermissionMismatch:
		return InvalidPermission
	}
	return nil
}

// getServiceClientOptions : Create azdatalake service client options based on the config
func getServiceClientOptions(conf *AzStorageConfig) *service.ClientOptions {
	opts := azcore.ClientOptions{
		Retry: policy.RetryOptions{
			MaxRetries:    conf.maxRetries,
			TryTimeout:    time.Second * time.Duration(conf.maxTimeout),
			RetryDelay:    time.Second * time.Duration(conf.backoffTime),
			MaxRetryDelay: time.Second * time.Duration(conf.maxRetryDelay),
		},
		PerCallPolicies: []policy.Policy{newAdlsQueryTelemetryPolicy(conf.telemetry)},
	}

	if conf.serviceVersion != "" {
		opts.PerCallPolicies = append(opts.PerCallPolicies, newServiceVersionPolicy(conf.serviceVersion))
	}

	return &service.ClientOptions{ClientOptions: opts}
}

// getQueryPipelineOptions : Create the blob pipeline options used by the query request
func getQueryPipelineOptions(conf *AzStorageConfig) azblob.PipelineOptions {
	retry := azblob.RetryOptions{
		Policy:        azblob.RetryPolicyExponential,
		TryTimeout:    time.Second * time.Duration(conf.maxTimeout),
		RetryDelay:    time.Second * time.Duration(conf.backoffTime),
		MaxRetryDelay: time.Second * time.Duration(conf.maxRetryDelay),
	}
	if conf.maxRetries > 0 {
		retry.MaxTries = conf.maxRetries + 1
	}

	return azblob.PipelineOptions{
		Retry:     retry,
		Telemetry: azblob.TelemetryOptions{Value: conf.telemetry},
		Log: pipeline.LogOptions{
			Log: func(level pipeline.LogLevel, message string) {
				switch level {
				case pipeline.LogFatal, pipeline.LogPanic, pipeline.LogError:
					log.Err("Datalake::queryPipeline : %s", message)
				case pipeline.LogWarning:
					log.Warn("Datalake::queryPipeline : %s", message)
				default:
					log.Debug("Datalake::queryPipeline : %s", message)
				}
			},
			ShouldLog: func(level pipeline.LogLevel) bool {
				return level <= pipeline.LogWarning
			},
		},
	}
}
