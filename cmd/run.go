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
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Seagate/adlsquery/common"
	"github.com/Seagate/adlsquery/common/config"
	"github.com/Seagate/adlsquery/common/log"
	"github.com/Seagate/adlsquery/component/azstorage"
	"github.com/Seagate/adlsquery/internal/check"
	"github.com/Seagate/adlsquery/internal/fixture"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type LogOptions struct {
	Type        string `config:"type"      yaml:"type,omitempty"`
	LogLevel    string `config:"level"     yaml:"level,omitempty"`
	LogFilePath string `config:"file-path" yaml:"file-path,omitempty"`
}

type runOptions struct {
	ConfigFile string

	Logging LogOptions `config:"logging" yaml:"logging,omitempty"`
	Query   string     `config:"query"   yaml:"query,omitempty"`
}

var options runOptions

var errChecksFailed = errors.New("read checks failed")

// newConnection is swapped by tests
var newConnection = func(cfg azstorage.AzStorageConfig) (azstorage.DatalakeConnection, error) {
	return azstorage.NewDatalakeConnection(cfg)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Upload a payload to a fresh filesystem and compare a query read and a plain read with it",
	Long: "Creates a filesystem named testfs<N>, uploads the payload to file<N>.txt, reads it back through the query API " +
		"and through a plain download, reports both comparisons and deletes the filesystem.",
	Args:              cobra.NoArgs,
	FlagErrorHandling: cobra.ExitOnError,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := parseConfig(cmd.Flags())
		if err != nil {
			return err
		}

		err = setupLogging()
		if err != nil {
			return err
		}
		defer log.Destroy() //nolint:errcheck

		return runChecks(context.Background(), cmd.OutOrStdout())
	},
}

// bindRunConfig binds the run flags to their config keys.
// Bindings do not survive a config reset, so this runs on every invocation.
func bindRunConfig(flags *pflag.FlagSet) {
	azstorage.RegisterConfig()
	config.BindPFlag("logging.type", flags.Lookup("log-type"))
	config.BindPFlag("logging.level", flags.Lookup("log-level"))
	config.BindPFlag("logging.file-path", flags.Lookup("log-file-path"))
	config.BindPFlag("query", flags.Lookup("query"))
}

func parseConfig(flags *pflag.FlagSet) error {
	bindRunConfig(flags)

	if options.ConfigFile != "" {
		err := config.ReadFromConfigFile(common.ExpandPath(options.ConfigFile))
		if err != nil {
			return fmt.Errorf("invalid config file [%s]", err.Error())
		}
	}

	err := config.Unmarshal(&options)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config [%s]", err.Error())
	}
	if options.Query == "" {
		options.Query = common.DefaultQueryExpression
	}
	return nil
}

func setupLogging() error {
	logLevel := common.ELogLevel.LOG_WARNING()
	if options.Logging.LogLevel != "" {
		err := logLevel.Parse(options.Logging.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level [%s]", err.Error())
		}
	}

	err := log.SetDefaultLogger(options.Logging.Type, common.LogConfig{
		Level:    logLevel,
		FilePath: common.ExpandPath(options.Logging.LogFilePath),
		Tag:      common.DefaultLogTag,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger [%s]", err.Error())
	}
	return nil
}

// runChecks : setup, both read checks, teardown.
// Teardown is attempted whenever setup got as far as creating the filesystem.
func runChecks(ctx context.Context, out io.Writer) (err error) {
	opt, err := azstorage.LoadOptions()
	if err != nil {
		return err
	}

	cfg, err := azstorage.ParseAndValidateConfig(opt)
	if err != nil {
		return err
	}

	conn, err := newConnection(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to %s [%w]", cfg.Endpoint(), err)
	}

	f := fixture.New(conn, fixture.Options{Suffix: fixture.RandomSuffix})
	defer func() {
		if terr := f.Teardown(ctx); terr != nil {
			err = errors.Join(err, fmt.Errorf("failed to delete filesystem %s [%w]", f.Filesystem, terr))
		}
	}()

	err = f.Setup(ctx)
	if err != nil {
		return fmt.Errorf("fixture setup failed [%w]", err)
	}
	fmt.Fprintf(out, "uploaded %d bytes to %s/%s\n", len(f.Payload), f.Filesystem, f.File)

	results := []check.Result{
		check.QueryRead(ctx, f, options.Query),
		check.BulkRead(ctx, f),
	}

	failed := 0
	for _, r := range results {
		fmt.Fprintln(out, r.String())
		if !r.Match() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errChecksFailed, failed, len(results))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&options.ConfigFile, "config-file", "",
		"Configures the path for the file where the account credentials are provided.")
	_ = runCmd.MarkFlagFilename("config-file", "yaml")

	runCmd.Flags().String("log-type", "base", "Type of logger to be used by the system. Set to base by default. Allowed values are silent|base.")
	runCmd.Flags().String("log-level", "LOG_WARNING",
		"Enables logs written to stderr or the log file. Set to LOG_WARNING by default. Allowed values are LOG_OFF|LOG_CRIT|LOG_ERR|LOG_WARNING|LOG_INFO|LOG_TRACE|LOG_DEBUG")
	runCmd.Flags().String("log-file-path", common.DefaultLogFilePath, "Configures the path for log files. Logs go to stderr by default.")
	runCmd.Flags().String("query", common.DefaultQueryExpression, "Query expression sent to the Query Blob Contents API.")
}
