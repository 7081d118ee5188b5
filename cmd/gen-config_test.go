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

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Seagate/adlsquery/common"
	"github.com/Seagate/adlsquery/common/log"
	"github.com/Seagate/adlsquery/component/azstorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type genConfig struct {
	suite.Suite
	assert *assert.Assertions
}

func (suite *genConfig) SetupTest() {
	suite.assert = assert.New(suite.T())
	err := log.SetDefaultLogger("silent", common.LogConfig{Level: common.ELogLevel.LOG_DEBUG()})
	suite.assert.NoError(err)

	suite.T().Setenv(azstorage.EnvAzStorageAccount, "")
	suite.T().Setenv(azstorage.EnvAzStorageAccessKey, "")
	suite.T().Setenv(azstorage.EnvAzStorageEndpoint, "")
}

func (suite *genConfig) cleanupTest() {
	optsGenCfg = genConfigParams{}
	options = runOptions{}
	newConnection = func(cfg azstorage.AzStorageConfig) (azstorage.DatalakeConnection, error) {
		return azstorage.NewDatalakeConnection(cfg)
	}
	resetCLIFlags(generatedConfig)
	resetCLIFlags(runCmd)
	resetCLIFlags(rootCmd)
}

func (suite *genConfig) TestHelp() {
	defer suite.cleanupTest()
	out, err := executeCommandC(rootCmd, "gen-config", "-h")
	suite.assert.NoError(err)
	suite.assert.Contains(out, "--output-file")
}

func (suite *genConfig) TestConsoleOutput() {
	defer suite.cleanupTest()

	out, err := executeCommandC(rootCmd, "gen-config", "--account-name=genaccount", "-o", "console")
	suite.assert.NoError(err)
	suite.assert.Contains(out, "account-name: genaccount")
	suite.assert.Contains(out, "https://genaccount.dfs.core.windows.net")
	suite.assert.Contains(out, common.DefaultQueryExpression)
	suite.assert.Contains(out, "level: LOG_WARNING")
	suite.assert.NotContains(out, "account-key:")
}

func (suite *genConfig) TestAccountKeyNeverWritten() {
	defer suite.cleanupTest()
	suite.T().Setenv(azstorage.EnvAzStorageAccessKey, "c2VjcmV0")

	out, err := executeCommandC(rootCmd, "gen-config", "-o", "console")
	suite.assert.NoError(err)
	suite.assert.NotContains(out, "c2VjcmV0")
}

func (suite *genConfig) TestGeneratedFileIsAccepted() {
	defer suite.cleanupTest()

	cfgFile := filepath.Join(suite.T().TempDir(), "adlsquery.yaml")
	_, err := executeCommandC(rootCmd, "gen-config", "--account-name=genaccount", "-o", cfgFile)
	suite.assert.NoError(err)

	data, err := os.ReadFile(cfgFile)
	suite.assert.NoError(err)
	suite.assert.Contains(string(data), "account-name: genaccount")

	resetCLIFlags(generatedConfig)
	resetCLIFlags(rootCmd)
	suite.T().Setenv(azstorage.EnvAzStorageAccessKey, "dGVzdGtleQ==")

	var cfg azstorage.AzStorageConfig
	newConnection = func(c azstorage.AzStorageConfig) (azstorage.DatalakeConnection, error) {
		cfg = c
		return nil, errors.New("no network in tests")
	}

	_, err = executeCommandC(rootCmd, "run", "--log-type=silent", "--config-file="+cfgFile)
	suite.assert.Error(err)
	suite.assert.Contains(err.Error(), "failed to connect")
	suite.assert.Equal("genaccount", cfg.AccountName())
	suite.assert.Equal("https://genaccount.blob.core.windows.net", cfg.BlobEndpoint())
	suite.assert.Equal(common.DefaultQueryExpression, options.Query)
}

func TestGenConfigCommand(t *testing.T) {
	suite.Run(t, new(genConfig))
}
