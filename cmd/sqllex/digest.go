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
	jsoniter "github.com/json-iterator/go"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/sqlscan/mysqllex/pkg/tokenize"
)

type digestJSON struct {
	Digest     string `json:"digest"`
	Normalized string `json:"normalized"`
	Statement  string `json:"statement"`
}

func newDigestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest [file|-]",
		Short: "Print the normalized form and digest of every statement of a script",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDigest,
	}
	cmd.Flags().StringP("format", "f", formatTable, "Output format: table or json")
	cmd.Flags().String(flagInputCharset, "", "Charset of the input, e.g. latin1 or gbk")
	return cmd
}

func runDigest(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format != formatTable && format != formatJSON {
		return errors.Errorf("unknown format %q", format)
	}
	inputCharset, _ := cmd.Flags().GetString(flagInputCharset)
	script, err := readInput(cmd, args, inputCharset)
	if err != nil {
		return err
	}
	tk, err := tokenize.NewFromConfig(conf)
	if err != nil {
		return err
	}
	mode, _ := conf.Lexer.Mode()

	stmts := tokenize.SplitStatements(script, tk.ScannerOptions()...)
	rows := make([]digestJSON, 0, len(stmts))
	for _, stmt := range stmts {
		res, err := tk.Tokenize(cmd.Context(), stmt)
		if err != nil {
			return err
		}
		normalized, d := res.Digest(mode)
		rows = append(rows, digestJSON{Digest: d.String(), Normalized: normalized, Statement: stmt})
	}

	w := cmd.OutOrStdout()
	if format == formatJSON {
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Trace(enc.Encode(rows))
	}
	t := newTable(w)
	t.AddHeader("DIGEST", "NORMALIZED")
	for _, row := range rows {
		t.AddLine(row.Digest, row.Normalized)
	}
	t.Print()
	return nil
}
