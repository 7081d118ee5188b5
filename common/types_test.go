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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type typesTestSuite struct {
	suite.Suite
	assert *assert.Assertions
}

func (suite *typesTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
}

func TestTypes(t *testing.T) {
	suite.Run(t, new(typesTestSuite))
}

func (suite *typesTestSuite) TestLogLevelParse() {
	var lvl LogLevel
	err := lvl.Parse("log_debug")
	suite.assert.NoError(err)
	suite.assert.Equal(ELogLevel.LOG_DEBUG(), lvl)

	err = lvl.Parse("LOG_WARNING")
	suite.assert.NoError(err)
	suite.assert.Equal(ELogLevel.LOG_WARNING(), lvl)
}

func (suite *typesTestSuite) TestLogLevelParseInvalid() {
	lvl := ELogLevel.LOG_INFO()
	err := lvl.Parse("verbose")
	suite.assert.Error(err)
	suite.assert.Equal(ELogLevel.LOG_INFO(), lvl)
}

func (suite *typesTestSuite) TestLogLevelString() {
	suite.assert.Equal("LOG_ERR", ELogLevel.LOG_ERR().String())
	suite.assert.Equal("LOG_TRACE", ELogLevel.LOG_TRACE().String())
}

func (suite *typesTestSuite) TestDefaultPayload() {
	suite.assert.Len(DefaultPayload, 11)
	suite.assert.Equal(
		[]byte{0x48, 0x65, 0x6C, 0x6C, 0x6F, 0x20, 0x77, 0x6F, 0x72, 0x6C, 0x64},
		DefaultPayload,
	)
}
