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
	"fmt"
	"os"
	"strings"

	"github.com/Seagate/adlsquery/common"
	"github.com/Seagate/adlsquery/component/azstorage"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

type genConfigParams struct {
	outputFile string
}

// genConfigFile is the layout of the file read by run --config-file
type genConfigFile struct {
	Logging   LogOptions        `yaml:"logging"`
	Query     string            `yaml:"query"`
	AzStorage azstorage.Options `yaml:"azstorage"`
}

var optsGenCfg genConfigParams

var generatedConfig = &cobra.Command{
	Use:               "gen-config",
	Short:             "Generate a config file for the run command.",
	Long:              "Generate a config file for the run command. The account key is never written, it is read from " + azstorage.EnvAzStorageAccessKey + ".",
	SuggestFor:        []string{"generate config"},
	Args:              cobra.ExactArgs(0),
	FlagErrorHandling: cobra.ExitOnError,
	RunE: func(cmd *cobra.Command, args []string) error {
		azstorage.RegisterConfig()

		opt, err := azstorage.LoadOptions()
		if err != nil {
			return err
		}

		generated, err := generateConfig(opt)
		if err != nil {
			return fmt.Errorf("failed to generate config [%s]", err.Error())
		}

		if optsGenCfg.outputFile == "console" {
			fmt.Fprint(cmd.OutOrStdout(), generated)
			return nil
		}

		filePath := optsGenCfg.outputFile
		if filePath == "" {
			filePath = "./adlsquery.yaml"
		}
		return common.WriteToFile(common.ExpandPath(filePath), generated, common.WriteToFileOptions{Flags: os.O_TRUNC, Permission: 0644})
	},
}

func generateConfig(opt azstorage.Options) (string, error) {
	out := genConfigFile{
		Logging: LogOptions{
			Type:     "base",
			LogLevel: common.ELogLevel.LOG_WARNING().String(),
		},
		Query: common.DefaultQueryExpression,
		AzStorage: azstorage.Options{
			AccountName: opt.AccountName,
			Endpoint:    opt.Endpoint,
			MaxRetries:  opt.MaxRetries,
		},
	}
	if out.AzStorage.Endpoint == "" && out.AzStorage.AccountName != "" {
		out.AzStorage.Endpoint = fmt.Sprintf("https://%s.dfs.core.windows.net", out.AzStorage.AccountName)
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("# Logger configuration\n")
	sb.WriteString("#  type: silent|base\n")
	sb.WriteString("#  level: LOG_OFF|LOG_CRIT|LOG_ERR|LOG_WARNING|LOG_INFO|LOG_TRACE|LOG_DEBUG\n")
	sb.WriteString("#  file-path: <path of the log file. Default - stderr>\n")
	sb.WriteString("# azstorage.account-name can be overridden with " + azstorage.EnvAzStorageAccount + "\n")
	sb.WriteString("# azstorage.account-key is read from " + azstorage.EnvAzStorageAccessKey + "\n\n")
	sb.Write(data)
	return sb.String(), nil
}

func init() {
	rootCmd.AddCommand(generatedConfig)

	generatedConfig.Flags().StringVarP(&optsGenCfg.outputFile, "output-file", "o", "",
		"Output file location. Use 'console' to print the config. Default - ./adlsquery.yaml")
}
