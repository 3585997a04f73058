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
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/sqlscan/mysqllex/pkg/lexer"
	"github.com/sqlscan/mysqllex/pkg/tokenize"
)

const (
	formatTable = "table"
	formatPlain = "plain"
	formatJSON  = "json"
)

type tokenJSON struct {
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Channel string `json:"channel"`
	Offset  int    `json:"offset"`
}

func newTable(w io.Writer) *tabby.Tabby {
	return tabby.NewCustom(tabwriter.NewWriter(w, 0, 0, 2, ' ', 0))
}

func newTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the tokens of SQL text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTokens,
	}
	cmd.Flags().Bool("hidden", false, "Include whitespace and comment tokens")
	cmd.Flags().StringP("format", "f", formatTable, "Output format: table, plain or json")
	cmd.Flags().String(flagInputCharset, "", "Charset of the input, e.g. latin1 or gbk")
	return cmd
}

func runTokens(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	hidden, _ := cmd.Flags().GetBool("hidden")
	format, _ := cmd.Flags().GetString("format")
	inputCharset, _ := cmd.Flags().GetString(flagInputCharset)

	input, err := readInput(cmd, args, inputCharset)
	if err != nil {
		return err
	}
	tk, err := tokenize.NewFromConfig(conf, tokenize.WithHidden(hidden))
	if err != nil {
		return err
	}
	res, err := tk.Tokenize(cmd.Context(), input)
	if err != nil {
		return err
	}
	return printTokens(cmd.OutOrStdout(), res.Tokens, format)
}

func printTokens(w io.Writer, toks []lexer.Token, format string) error {
	switch format {
	case formatTable:
		invalid := color.New(color.FgRed).SprintFunc()
		hidden := color.New(color.Faint).SprintFunc()
		t := newTable(w)
		t.AddHeader("OFFSET", "KIND", "CHANNEL", "TEXT")
		for _, tok := range toks {
			kind := lexer.KindName(tok.Kind)
			switch {
			case tok.Kind == lexer.InvalidInput:
				kind = invalid(kind)
			case tok.Hidden():
				kind = hidden(kind)
			}
			t.AddLine(tok.Offset, kind, tok.Channel, strconv.Quote(tok.Text))
		}
		t.Print()
	case formatPlain:
		for _, tok := range toks {
			if _, err := fmt.Fprintln(w, tok); err != nil {
				return errors.Trace(err)
			}
		}
	case formatJSON:
		out := make([]tokenJSON, 0, len(toks))
		for _, tok := range toks {
			out = append(out, tokenJSON{
				Kind:    lexer.KindName(tok.Kind),
				Text:    tok.Text,
				Channel: tok.Channel.String(),
				Offset:  tok.Offset,
			})
		}
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Trace(enc.Encode(out))
	default:
		return errors.Errorf("unknown format %q", format)
	}
	return nil
}
