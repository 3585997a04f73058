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
	"strings"

	"github.com/Masterminds/semver"
	"github.com/gobwas/glob"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/sqlscan/mysqllex/pkg/lexer"
)

func newKeywordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Print the keyword table and which words are keywords in a server version",
		Args:  cobra.NoArgs,
		RunE:  runKeywords,
	}
	cmd.Flags().StringP("match", "m", "", "Only print words matching this glob, e.g. 'JSON_*'")
	cmd.Flags().Bool("gated", false, "Only print words that depend on the server version")
	cmd.Flags().String("gated-in", "", "Only print words added or removed in versions matching this constraint, e.g. '>= 8.0, < 8.0.20'")
	return cmd
}

// keywordFilter selects the rows of the keywords command.
type keywordFilter struct {
	match      glob.Glob
	gatedOnly  bool
	constraint *semver.Constraints
}

func newKeywordFilter(match string, gatedOnly bool, gatedIn string) (*keywordFilter, error) {
	f := &keywordFilter{gatedOnly: gatedOnly}
	if match != "" {
		g, err := glob.Compile(strings.ToUpper(match))
		if err != nil {
			return nil, errors.Annotatef(err, "invalid --match %q", match)
		}
		f.match = g
	}
	if gatedIn != "" {
		c, err := semver.NewConstraint(gatedIn)
		if err != nil {
			return nil, errors.Annotatef(err, "invalid --gated-in %q", gatedIn)
		}
		f.constraint = c
	}
	return f, nil
}

func (f *keywordFilter) keep(rule lexer.KeywordRule) bool {
	if f.match != nil && !f.match.Match(rule.Word) {
		return false
	}
	if f.gatedOnly && !rule.Gated() {
		return false
	}
	if f.constraint != nil {
		return f.versionMatches(rule.MinVersion) || f.versionMatches(rule.MaxVersion)
	}
	return true
}

func (f *keywordFilter) versionMatches(v lexer.Version) bool {
	if v == 0 {
		return false
	}
	sv, err := semver.NewVersion(v.String())
	if err != nil {
		return false
	}
	return f.constraint.Check(sv)
}

func versionColumn(v lexer.Version) string {
	if v == 0 {
		return "-"
	}
	return v.String()
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	v, err := conf.Lexer.ServerVersion()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	match, _ := flags.GetString("match")
	gatedOnly, _ := flags.GetBool("gated")
	gatedIn, _ := flags.GetString("gated-in")
	filter, err := newKeywordFilter(match, gatedOnly, gatedIn)
	if err != nil {
		return err
	}

	t := newTable(cmd.OutOrStdout())
	t.AddHeader("WORD", "KIND", "SINCE", "UNTIL", "FUNCTION", "IN "+v.String())
	for _, rule := range lexer.Keywords() {
		if !filter.keep(rule) {
			continue
		}
		t.AddLine(rule.Word, lexer.KindName(rule.Kind), versionColumn(rule.MinVersion),
			versionColumn(rule.MaxVersion), rule.Function, rule.Active(v))
	}
	t.Print()
	return nil
}
