//go:build !unittest
// +build !unittest

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

package e2e_tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/Seagate/adlsquery/common"
	"github.com/Seagate/adlsquery/common/log"
	"github.com/Seagate/adlsquery/component/azstorage"
	"github.com/Seagate/adlsquery/internal/check"
	"github.com/Seagate/adlsquery/internal/fixture"

	"github.com/stretchr/testify/suite"
)

// queryReadTestSuite runs against a live account taken from
// AZURE_STORAGE_ACCOUNT_NAME and AZURE_STORAGE_ACCOUNT_KEY.
type queryReadTestSuite struct {
	suite.Suite
	ctx     context.Context
	fixture *fixture.Fixture
}

func (suite *queryReadTestSuite) SetupSuite() {
	err := log.SetDefaultLogger("base", common.LogConfig{Level: common.ELogLevel.LOG_WARNING(), Tag: common.DefaultLogTag})
	if err != nil {
		panic(fmt.Sprintf("Unable to set base logger as default: %v", err))
	}
	suite.ctx = context.Background()

	opt, err := azstorage.LoadOptions()
	suite.Require().NoError(err)

	cfg, err := azstorage.ParseAndValidateConfig(opt)
	suite.Require().NoError(err, "storage credentials are read from the environment")

	conn, err := azstorage.NewDatalakeConnection(cfg)
	suite.Require().NoError(err)

	suite.fixture = fixture.New(conn, fixture.Options{Suffix: fixture.RandomSuffix})
	err = suite.fixture.Setup(suite.ctx)
	suite.Require().NoError(err, "failed to set up %s/%s", suite.fixture.Filesystem, suite.fixture.File)
}

func (suite *queryReadTestSuite) TearDownSuite() {
	if suite.fixture == nil {
		return
	}
	err := suite.fixture.Teardown(suite.ctx)
	if err != nil {
		fmt.Printf("QueryReadTestSuite::TearDownSuite : filesystem %s leaked [%v]\n", suite.fixture.Filesystem, err)
	}
}

// The service serializes query output as CSV and terminates the record with a newline,
// so this comparison is expected to fail until the query output matches the stored bytes.
func (suite *queryReadTestSuite) TestOpenQueryReader() {
	result := check.QueryRead(suite.ctx, suite.fixture, common.DefaultQueryExpression)
	suite.NoError(result.Err)
	suite.Equal(result.Expected, result.Actual, result.Diff())
}

func (suite *queryReadTestSuite) TestRead() {
	result := check.BulkRead(suite.ctx, suite.fixture)
	suite.NoError(result.Err)
	suite.Equal(result.Expected, result.Actual, result.Diff())
}

func TestQueryReadTestSuite(t *testing.T) {
	suite.Run(t, new(queryReadTestSuite))
}
