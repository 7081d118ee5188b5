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
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Seagate/adlsquery/common"

	"github.com/rs/zerolog"
)

// LogFileConfig : Configuration to tune file based logging
type LogFileConfig struct {
	LogFile  string
	LogLevel common.LogLevel
	LogTag   string
}

// BaseLogger writes leveled lines through zerolog to stderr or to a log file
type BaseLogger struct {
	mu     sync.RWMutex
	config LogFileConfig
	file   *os.File
	logger zerolog.Logger
}

var _ Logger = &BaseLogger{}

func newBaseLogger(config LogFileConfig) (*BaseLogger, error) {
	l := &BaseLogger{config: config}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s [%w]", config.LogFile, err)
		}
		l.file = f
		out = f
	}

	l.logger = zerolog.New(out).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Str("tag", config.LogTag).
		Int("pid", os.Getpid()).
		Logger()
	return l, nil
}

func (l *BaseLogger) GetType() string {
	return "base"
}

func (l *BaseLogger) GetLogLevel() common.LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config.LogLevel
}

func (l *BaseLogger) SetLogLevel(level common.LogLevel) {
	l.mu.Lock()
	l.config.LogLevel = level
	l.mu.Unlock()
	l.write(zerolog.WarnLevel, "Log level reset to : %s", level.String())
}

func (l *BaseLogger) Debug(format string, args ...any) {
	l.write(zerolog.DebugLevel, format, args...)
}

func (l *BaseLogger) Trace(format string, args ...any) {
	l.write(zerolog.TraceLevel, format, args...)
}

func (l *BaseLogger) Info(format string, args ...any) {
	l.write(zerolog.InfoLevel, format, args...)
}

func (l *BaseLogger) Warn(format string, args ...any) {
	l.write(zerolog.WarnLevel, format, args...)
}

func (l *BaseLogger) Err(format string, args ...any) {
	l.write(zerolog.ErrorLevel, format, args...)
}

// Crit is written at fatal severity; WithLevel never exits the process
func (l *BaseLogger) Crit(format string, args ...any) {
	l.write(zerolog.FatalLevel, format, args...)
}

func (l *BaseLogger) Destroy() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.logger = zerolog.Nop()
	return err
}

func (l *BaseLogger) write(lvl zerolog.Level, format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithLevel(lvl).Msgf(format, args...)
}
