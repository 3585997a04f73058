// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spkg/bom"
	"github.com/sqlscan/mysqllex/config"
	"github.com/sqlscan/mysqllex/pkg/charset"
	"github.com/sqlscan/mysqllex/pkg/metrics"
	"github.com/sqlscan/mysqllex/pkg/util/logutil"
)

const (
	// FlagConfig is the name of config flag.
	FlagConfig = "config"
	// FlagVersion is the name of the server version flag.
	FlagVersion = "version"
	// FlagSQLMode is the name of sql-mode flag.
	FlagSQLMode = "sql-mode"
	// FlagFunctionCalls is the name of function-calls flag.
	FlagFunctionCalls = "function-calls"
	// FlagLogLevel is the name of log-level flag.
	FlagLogLevel = "log-level"
	// FlagNoColor is the name of no-color flag.
	FlagNoColor = "no-color"

	flagInputCharset = "input-charset"
)

// AddFlags adds the persistent flags shared by every command.
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(FlagConfig, "c", "",
		"Path of a TOML config file")
	cmd.PersistentFlags().StringP(FlagVersion, "V", "",
		"Server version keywords and version comments are checked against, e.g. 8.0.19 or 50744")
	cmd.PersistentFlags().String(FlagSQLMode, "",
		"SQL mode in sql_mode syntax, e.g. ANSI,NO_BACKSLASH_ESCAPES")
	cmd.PersistentFlags().Bool(FlagFunctionCalls, false,
		"Scan function keywords as identifiers unless followed by '('")
	cmd.PersistentFlags().StringP(FlagLogLevel, "L", "",
		"Set the log level")
	cmd.PersistentFlags().Bool(FlagNoColor, false,
		"Disable colored output")
}

// loadConfig builds the config of a command run: defaults, then the config
// file, then flags. It also sets up logging and color.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	conf := config.NewConfig()
	path, err := flags.GetString(FlagConfig)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if path != "" {
		if err := conf.Load(path); err != nil {
			return nil, errors.Annotatef(err, "load config %s", path)
		}
	}
	applyFlags(conf, flags)
	if err := conf.Valid(); err != nil {
		return nil, err
	}

	if err := logutil.InitLogger(conf.Log.ToLogConfig()); err != nil {
		return nil, err
	}
	if conf.Metrics.Instance != "" {
		metrics.SetConstLabels("instance", conf.Metrics.Instance)
		metrics.InitMetrics()
	}
	if noColor, _ := flags.GetBool(FlagNoColor); noColor {
		color.NoColor = true
	}
	config.StoreGlobalConfig(conf)
	return conf, nil
}

// applyFlags overrides conf with the flags set on the command line.
func applyFlags(conf *config.Config, flags *pflag.FlagSet) {
	if flags.Changed(FlagVersion) {
		conf.Lexer.Version, _ = flags.GetString(FlagVersion)
	}
	if flags.Changed(FlagSQLMode) {
		conf.Lexer.SQLMode, _ = flags.GetString(FlagSQLMode)
	}
	if flags.Changed(FlagFunctionCalls) {
		conf.Lexer.FunctionCallDetection, _ = flags.GetBool(FlagFunctionCalls)
	}
	if flags.Changed(FlagLogLevel) {
		conf.Log.Level, _ = flags.GetString(FlagLogLevel)
	}
}

// readInput reads the file named by args, or stdin for no args or "-". A
// byte order mark is dropped and text in another charset is converted to
// UTF-8.
func readInput(cmd *cobra.Command, args []string, inputCharset string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", errors.Trace(err)
		}
		defer f.Close()
		r = f
	}
	r = bom.NewReader(r)
	if inputCharset != "" {
		var err error
		if r, err = charset.NewReader(r, inputCharset); err != nil {
			return "", err
		}
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", errors.Annotate(err, "read input")
	}
	return buf.String(), nil
}
