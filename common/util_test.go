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

package common

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type utilTestSuite struct {
	suite.Suite
	assert *assert.Assertions
}

func (suite *utilTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
}

func TestUtil(t *testing.T) {
	suite.Run(t, new(utilTestSuite))
}

func (suite *utilTestSuite) TestExpandPath() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return
	}
	homeDir = JoinUnixFilepath(homeDir)

	pwd, err := os.Getwd()
	if err != nil {
		return
	}
	pwd = JoinUnixFilepath(pwd)

	path := "~/a/b/c/d"
	expandedPath := ExpandPath(path)
	suite.assert.NotEqual(path, expandedPath)
	suite.assert.Contains(expandedPath, path[2:])
	suite.assert.Contains(expandedPath, homeDir)

	path = "$HOME/a/b/c/d"
	expandedPath = ExpandPath(path)
	suite.assert.Contains(expandedPath, path[5:])
	suite.assert.Contains(expandedPath, homeDir)

	path = "/$HOME/a/b"
	expandedPath = ExpandPath(path)
	suite.assert.Contains(expandedPath, homeDir)

	path = "/a/b/c/d"
	expandedPath = ExpandPath(path)
	if runtime.GOOS != "windows" {
		suite.assert.Equal(path, expandedPath)
	}

	path = "./a/../a/b"
	expandedPath = ExpandPath(path)
	suite.assert.Equal(pwd+"/a/b", expandedPath)

	suite.assert.Empty(ExpandPath(""))
}

func (suite *utilTestSuite) TestExpandPathEnv() {
	suite.T().Setenv("ADLSQUERY_TEST_DIR", "/tmp/adlsquery")

	expandedPath := ExpandPath("$ADLSQUERY_TEST_DIR/adlsquery.log")
	if runtime.GOOS != "windows" {
		suite.assert.Equal("/tmp/adlsquery/adlsquery.log", expandedPath)
	}
}

func (suite *utilTestSuite) TestWriteToFile() {
	fileName := filepath.Join(suite.T().TempDir(), "adlsquery.yaml")

	err := WriteToFile(fileName, "query: first\n", WriteToFileOptions{})
	suite.assert.NoError(err)

	err = WriteToFile(fileName, "query: second\n", WriteToFileOptions{Flags: os.O_TRUNC})
	suite.assert.NoError(err)

	data, err := os.ReadFile(fileName)
	suite.assert.NoError(err)
	suite.assert.Equal("query: second\n", string(data))
}

func (suite *utilTestSuite) TestWriteToFileBadPath() {
	err := WriteToFile(filepath.Join(suite.T().TempDir(), "missing", "a.yaml"), "x", WriteToFileOptions{})
	suite.assert.Error(err)
	suite.assert.Contains(err.Error(), "error opening file")
}
