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
	"errors"

	"github.com/Seagate/adlsquery/common"
)

// Logger : Interface to define a generic Logger. Implement this to create your new logging lib
type Logger interface {
	GetType() string
	GetLogLevel() common.LogLevel
	SetLogLevel(level common.LogLevel)

	Debug(format string, args ...any)
	Trace(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Err(format string, args ...any)
	Crit(format string, args ...any)

	Destroy() error
}

// NewLogger : Method to create Logger object
func NewLogger(name string, config common.LogConfig) (Logger, error) {
	switch name {
	case "silent":
		return &SilentLogger{}, nil
	case "", "default", "base":
		if config.Tag == "" {
			config.Tag = common.DefaultLogTag
		}
		return newBaseLogger(LogFileConfig{
			LogFile:  config.FilePath,
			LogLevel: config.Level,
			LogTag:   config.Tag,
		})
	}
	return nil, errors.New("invalid logger type")
}

var logObj Logger

// ------------------ Public methods to handle logging --------------------------

// SetDefaultLogger : Override the default logger with the given type and config
func SetDefaultLogger(name string, config common.LogConfig) error {
	newObj, err := NewLogger(name, config)
	if err != nil {
		return err
	}

	if logObj != nil {
		_ = logObj.Destroy()
	}
	logObj = newObj
	return nil
}

// SetLogLevel : Reset the log level
func SetLogLevel(lvl common.LogLevel) {
	if logObj != nil {
		logObj.SetLogLevel(lvl)
	}
}

// GetLogLevel : Get the current log level
func GetLogLevel() common.LogLevel {
	if logObj != nil {
		return logObj.GetLogLevel()
	}
	return common.ELogLevel.INVALID_LOG_LEVEL()
}

// GetType : Get the type of the current logger
func GetType() string {
	if logObj != nil {
		return logObj.GetType()
	}
	return ""
}

// Debug : Debug message logging
func Debug(msg string, args ...any) {
	if logObj.GetLogLevel() >= common.ELogLevel.LOG_DEBUG() {
		logObj.Debug(msg, args...)
	}
}

// Trace : Trace message logging
func Trace(msg string, args ...any) {
	if logObj.GetLogLevel() >= common.ELogLevel.LOG_TRACE() {
		logObj.Trace(msg, args...)
	}
}

// Info : Informational message logging
func Info(msg string, args ...any) {
	if logObj.GetLogLevel() >= common.ELogLevel.LOG_INFO() {
		logObj.Info(msg, args...)
	}
}

// Warn : Warning message logging
func Warn(msg string, args ...any) {
	if logObj.GetLogLevel() >= common.ELogLevel.LOG_WARNING() {
		logObj.Warn(msg, args...)
	}
}

// Err : Error message logging
func Err(msg string, args ...any) {
	if logObj.GetLogLevel() >= common.ELogLevel.LOG_ERR() {
		logObj.Err(msg, args...)
	}
}

// Crit : Critical message logging
func Crit(msg string, args ...any) {
	if logObj.GetLogLevel() >= common.ELogLevel.LOG_CRIT() {
		logObj.Crit(msg, args...)
	}
}

// Destroy : Flush and close the current logger
func Destroy() error {
	if logObj == nil {
		return nil
	}
	err := logObj.Destroy()
	logObj = &SilentLogger{}
	return err
}

func init() {
	logObj, _ = NewLogger("base", common.LogConfig{
		Level: common.ELogLevel.LOG_WARNING(),
		Tag:   common.DefaultLogTag,
	})
}
