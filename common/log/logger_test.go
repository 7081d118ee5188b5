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

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Seagate/adlsquery/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type loggerTestSuite struct {
	suite.Suite
	assert *assert.Assertions
}

func (suite *loggerTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
}

func (suite *loggerTestSuite) TearDownTest() {
	_ = SetDefaultLogger("silent", common.LogConfig{})
}

func (suite *loggerTestSuite) TestInvalidLoggerType() {
	_, err := NewLogger("syslog", common.LogConfig{})
	suite.assert.Error(err)
}

func (suite *loggerTestSuite) TestSilentLogger() {
	err := SetDefaultLogger("silent", common.LogConfig{Level: common.ELogLevel.LOG_DEBUG()})
	suite.assert.NoError(err)
	suite.assert.Equal("silent", GetType())
	suite.assert.Equal(common.ELogLevel.LOG_OFF(), GetLogLevel())

	// nothing is written, nothing panics
	Debug("loggerTestSuite::TestSilentLogger : %s", "debug")
	Crit("loggerTestSuite::TestSilentLogger : %s", "crit")
}

func (suite *loggerTestSuite) TestBaseLoggerWritesToFile() {
	logFile := filepath.Join(suite.T().TempDir(), "adlsquery.log")
	err := SetDefaultLogger("base", common.LogConfig{
		Level:    common.ELogLevel.LOG_INFO(),
		FilePath: logFile,
		Tag:      "logger_test",
	})
	suite.assert.NoError(err)
	suite.assert.Equal("base", GetType())

	Info("loggerTestSuite::TestBaseLoggerWritesToFile : visible %d", 1)
	Debug("loggerTestSuite::TestBaseLoggerWritesToFile : hidden %d", 2)
	suite.assert.NoError(Destroy())

	data, err := os.ReadFile(logFile)
	suite.assert.NoError(err)
	suite.assert.Contains(string(data), "visible 1")
	suite.assert.Contains(string(data), "logger_test")
	suite.assert.NotContains(string(data), "hidden 2")
}

func (suite *loggerTestSuite) TestSetLogLevel() {
	logFile := filepath.Join(suite.T().TempDir(), "adlsquery.log")
	err := SetDefaultLogger("base", common.LogConfig{
		Level:    common.ELogLevel.LOG_ERR(),
		FilePath: logFile,
	})
	suite.assert.NoError(err)

	Trace("loggerTestSuite::TestSetLogLevel : before")
	SetLogLevel(common.ELogLevel.LOG_DEBUG())
	suite.assert.Equal(common.ELogLevel.LOG_DEBUG(), GetLogLevel())
	Trace("loggerTestSuite::TestSetLogLevel : after")
	suite.assert.NoError(Destroy())

	data, err := os.ReadFile(logFile)
	suite.assert.NoError(err)
	suite.assert.NotContains(string(data), "before")
	suite.assert.Contains(string(data), "after")
	suite.assert.Contains(string(data), common.DefaultLogTag)
}

func (suite *loggerTestSuite) TestBaseLoggerBadPath() {
	err := SetDefaultLogger("base", common.LogConfig{
		FilePath: filepath.Join(suite.T().TempDir(), "missing", "dir", "adlsquery.log"),
	})
	suite.assert.Error(err)
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(loggerTestSuite))
}
