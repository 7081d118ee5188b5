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

package config

import (
	"fmt"
	"io"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//config is the common package to handle all configuration related functions of the entire tool
//Precedence order for retrieving config values is as follows:
//1. Flags
//2. Environment Variables
//3. Config file
//
//Any of the bind functions can be put even in init function. Calling of ReadFromConfigFile is not necessary for binding.
//Any reads must happen only after calling ReadFromConfigFile.

// STRUCT_TAG is the struct tag used to map config keys onto option structs
const STRUCT_TAG = "config"

type options struct {
	path  string
	flags *pflag.FlagSet
}

var userOptions options

// ReadFromConfigFile is used to the configFilePath and initialize viper object
func ReadFromConfigFile(configFilePath string) error {
	userOptions.path = configFilePath
	viper.SetConfigType("yaml")
	viper.SetConfigFile(userOptions.path)
	return viper.ReadInConfig()
}

func ReadConfigFromReader(reader io.Reader) error {
	viper.SetConfigType("yaml")
	err := viper.ReadConfig(reader)
	if err != nil {
		return err
	}
	return nil
}

// BindEnv binds the key parameter to a particular environment variable
// For a hierarchical structure pass the keys separated by a .
// For example to access "name" field in the following structure:
//
//	auth:
//		name: value
//
// the key parameter should take on the value "auth.name"
func BindEnv(key string, envVarName string) {
	_ = viper.BindEnv(key, envVarName)
}

// BindPFlag binds the key parameter to a particular flag
// For a hierarchical structure pass the keys separated by a .
func BindPFlag(key string, flag *pflag.Flag) {
	_ = viper.BindPFlag(key, flag)
}

// AddStringFlag registers a string flag in the config flag set and returns it for binding
func AddStringFlag(name string, value string, usage string) *pflag.Flag {
	userOptions.flags.String(name, value, usage)
	return userOptions.flags.Lookup(name)
}

func AddInt32Flag(name string, value int32, usage string) *pflag.Flag {
	userOptions.flags.Int32(name, value, usage)
	return userOptions.flags.Lookup(name)
}

// UnmarshalKey is used to obtain a subtree starting from the key parameter
// Values bound to environment variables and flags are part of the subtree.
func UnmarshalKey(key string, obj any) error {
	settings := viper.AllSettings()
	subtree, ok := settings[key]
	if !ok {
		subtree = map[string]any{}
	}

	err := decode(subtree, obj)
	if err != nil {
		return fmt.Errorf("config error: unmarshalling [%v]", err)
	}
	return nil
}

// Unmarshal populates the passed object and all the exported fields.
// use lower case attribute names to ignore a particular field
func Unmarshal(obj any) error {
	err := decode(viper.AllSettings(), obj)
	if err != nil {
		return fmt.Errorf("config error: unmarshalling [%v]", err)
	}
	return nil
}

func decode(input any, obj any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          STRUCT_TAG,
		WeaklyTypedInput: true,
		Result:           obj,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func IsSet(key string) bool {
	return viper.IsSet(key)
}

// AttachToFlagSet is used to attach the flags in config to the cmd flags
func AttachToFlagSet(flagset *pflag.FlagSet) {
	flagset.AddFlagSet(userOptions.flags)
}

func ResetConfig() {
	viper.Reset()
	userOptions = options{
		path:  "",
		flags: pflag.NewFlagSet("config-options", pflag.ContinueOnError),
	}
}

func init() {
	userOptions.flags = pflag.NewFlagSet("config-options", pflag.ContinueOnError)
}
