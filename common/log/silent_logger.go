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

import "github.com/Seagate/adlsquery/common"

// SilentLogger drops every message. Used by tests.
type SilentLogger struct {
}

var _ Logger = &SilentLogger{}

func (*SilentLogger) GetType() string {
	return "silent"
}

func (*SilentLogger) GetLogLevel() common.LogLevel {
	return common.ELogLevel.LOG_OFF()
}

func (*SilentLogger) SetLogLevel(_ common.LogLevel) {}

func (*SilentLogger) Debug(_ string, _ ...any) {}
func (*SilentLogger) Trace(_ string, _ ...any) {}
func (*SilentLogger) Info(_ string, _ ...any)  {}
func (*SilentLogger) Warn(_ string, _ ...any)  {}
func (*SilentLogger) Err(_ string, _ ...any)   {}
func (*SilentLogger) Crit(_ string, _ ...any)  {}

func (*SilentLogger) Destroy() error {
	return nil
}
