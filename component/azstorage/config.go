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
	"fmt"
	"net/url"
	"strings"

	"github.com/Seagate/adlsquery/common"
	"github.com/Seagate/adlsquery/common/config"
	"github.com/Seagate/adlsquery/common/log"

	"github.com/spf13/pflag"
)

const compName = "azstorage"

// Environment variables holding the shared key credential
const (
	EnvAzStorageAccount   = "AZURE_STORAGE_ACCOUNT_NAME"
	EnvAzStorageAccessKey = "AZURE_STORAGE_ACCOUNT_KEY"
	EnvAzStorageEndpoint  = "AZURE_STORAGE_DFS_ENDPOINT"
)

var errConfigFieldEmpty = errors.New("config field is empty")

// Options : config block of the azstorage component
type Options struct {
	AccountName    string `config:"account-name"    yaml:"account-name,omitempty"`
	AccountKey     string `config:"account-key"     yaml:"account-key,omitempty"`
	Endpoint       string `config:"endpoint"        yaml:"endpoint,omitempty"`
	Telemetry      string `config:"telemetry"       yaml:"telemetry,omitempty"`
	ServiceVersion string `config:"service-version" yaml:"service-version,omitempty"`

	MaxRetries    int32 `config:"max-retries"         yaml:"max-retries,omitempty"`
	MaxTimeout    int32 `config:"max-retry-timeout-sec" yaml:"max-retry-timeout-sec,omitempty"`
	BackoffTime   int32 `config:"retry-backoff-sec"   yaml:"retry-backoff-sec,omitempty"`
	MaxRetryDelay int32 `config:"max-retry-delay-sec" yaml:"max-retry-delay-sec,omitempty"`
}

type azAuthConfig struct {
	AccountName string
	AccountKey  string
	Endpoint    string
}

// AzStorageConfig : validated view of Options used to build the clients
type AzStorageConfig struct {
	authConfig azAuthConfig

	blobEndpoint   string
	telemetry      string
	serviceVersion string

	// Retry policy config
	maxRetries    int32
	maxTimeout    int32
	backoffTime   int32
	maxRetryDelay int32
}

// AccountName returns the storage account the config is bound to
func (cfg AzStorageConfig) AccountName() string {
	return cfg.authConfig.AccountName
}

// Endpoint returns the dfs endpoint of the account
func (cfg AzStorageConfig) Endpoint() string {
	return cfg.authConfig.Endpoint
}

// BlobEndpoint returns the blob endpoint of the account
func (cfg AzStorageConfig) BlobEndpoint() string {
	return cfg.blobEndpoint
}

var (
	accountNameFlag *pflag.Flag
	endpointFlag    *pflag.Flag
	maxRetriesFlag  *pflag.Flag
)

// RegisterConfig binds the component keys to their environment variables and flags.
// Call it again after the config has been reset.
func RegisterConfig() {
	config.BindEnv(compName+".account-name", EnvAzStorageAccount)
	config.BindEnv(compName+".account-key", EnvAzStorageAccessKey)
	config.BindEnv(compName+".endpoint", EnvAzStorageEndpoint)

	config.BindPFlag(compName+".account-name", accountNameFlag)
	config.BindPFlag(compName+".endpoint", endpointFlag)
	config.BindPFlag(compName+".max-retries", maxRetriesFlag)
}

func init() {
	accountNameFlag = config.AddStringFlag("account-name", "", "Storage account name.")
	endpointFlag = config.AddStringFlag("endpoint", "", "Data Lake endpoint of the storage account.")
	maxRetriesFlag = config.AddInt32Flag("max-retries", 0, "Maximum number of retries per request.")

	RegisterConfig()
}

// LoadOptions reads the azstorage block from config file, environment and flags
func LoadOptions() (Options, error) {
	var opt Options
	err := config.UnmarshalKey(compName, &opt)
	if err != nil {
		log.Err("AzStorage::LoadOptions : config error [invalid config attributes]")
		return opt, fmt.Errorf("config error in %s [%s]", compName, err.Error())
	}
	return opt, nil
}

// formatEndpoint adds the https scheme to an endpoint given without one and drops any trailing slash
func formatEndpoint(endpoint string) string {
	endpoint = strings.TrimRight(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	return endpoint
}

// transformAccountEndpoint
// The query API is only served by the blob endpoint of the account.
// For the Azure clouds replacing .dfs. with .blob. is enough. A truly custom endpoint
// only redirects to the dfs endpoint, so we keep it and hope for the best.
func transformAccountEndpoint(potentialDfsEndpoint string) string {
	if strings.Contains(potentialDfsEndpoint, ".dfs.") {
		return strings.ReplaceAll(potentialDfsEndpoint, ".dfs.", ".blob.")
	} else {
		log.Warn("AzStorage::transformAccountEndpoint : Detected use of a custom endpoint. Query may not work.")
	}
	return potentialDfsEndpoint
}

// ParseAndValidateConfig : Parse and validate config
// Missing credentials are reported before any client is built.
func ParseAndValidateConfig(opt Options) (AzStorageConfig, error) {
	log.Trace("AzStorage::ParseAndValidateConfig : Parsing config")

	var cfg AzStorageConfig

	if opt.AccountName == "" {
		log.Err("AzStorage::ParseAndValidateConfig : account name not provided")
		return cfg, fmt.Errorf("%w: Set %s env var", errConfigFieldEmpty, EnvAzStorageAccount)
	}
	if opt.AccountKey == "" {
		log.Err("AzStorage::ParseAndValidateConfig : account key not provided")
		return cfg, fmt.Errorf("%w: Set %s env var", errConfigFieldEmpty, EnvAzStorageAccessKey)
	}

	cfg.authConfig.AccountName = opt.AccountName
	cfg.authConfig.AccountKey = opt.AccountKey

	if opt.Endpoint == "" {
		opt.Endpoint = fmt.Sprintf("https://%s.dfs.core.windows.net", opt.AccountName)
	}
	cfg.authConfig.Endpoint = formatEndpoint(opt.Endpoint)
	if _, err := url.Parse(cfg.authConfig.Endpoint); err != nil {
		log.Err("AzStorage::ParseAndValidateConfig : invalid endpoint %s [%s]", opt.Endpoint, err.Error())
		return cfg, fmt.Errorf("invalid endpoint %s [%w]", opt.Endpoint, err)
	}
	cfg.blobEndpoint = transformAccountEndpoint(cfg.authConfig.Endpoint)

	cfg.telemetry = opt.Telemetry
	if cfg.telemetry == "" {
		cfg.telemetry = common.DefaultLogTag + "/" + common.AdlsQueryVersion
	}
	cfg.serviceVersion = opt.ServiceVersion

	if opt.MaxRetries < 0 || opt.MaxTimeout < 0 || opt.BackoffTime < 0 || opt.MaxRetryDelay < 0 {
		return cfg, errors.New("retry settings can not be negative")
	}
	cfg.maxRetries = opt.MaxRetries
	cfg.maxTimeout = opt.MaxTimeout
	cfg.backoffTime = opt.BackoffTime
	cfg.maxRetryDelay = opt.MaxRetryDelay

	log.Info(
		"AzStorage::ParseAndValidateConfig : account %s, endpoint %s, blob endpoint %s",
		cfg.authConfig.AccountName,
		cfg.authConfig.Endpoint,
		cfg.blobEndpoint,
	)
	return cfg, nil
}
