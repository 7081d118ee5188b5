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

	"github.com/Seagate/adlsquery/common"
	"github.com/Seagate/adlsquery/common/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "adlsquery",
	Short:             "adlsquery compares a query read and a plain read of the same Data Lake file.",
	Long:              "adlsquery provisions a Data Lake filesystem, uploads a known payload and checks that both the Query Blob Contents API and a plain download return it byte for byte.",
	Version:           common.AdlsQueryVersion,
	FlagErrorHandling: cobra.ExitOnError,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("missing command options\n\nDid you mean this?\n\tadlsquery run\n\nRun 'adlsquery --help' for usage")
	},
}

// Execute : Actual command execution starts from here
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
	return err
}

func init() {
	config.AttachToFlagSet(rootCmd.PersistentFlags())
}
