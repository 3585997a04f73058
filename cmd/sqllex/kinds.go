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
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/sqlscan/mysqllex/pkg/lexer"
)

func newKindsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "Print the token kinds and their numbers",
		Args:  cobra.NoArgs,
		RunE:  runKinds,
	}
	cmd.Flags().String("category", "", "Only print kinds of this category, e.g. keyword or operator")
	return cmd
}

func runKinds(cmd *cobra.Command, _ []string) error {
	category, _ := cmd.Flags().GetString("category")
	if category != "" && !validCategory(category) {
		return errors.Errorf("unknown category %q", category)
	}
	t := newTable(cmd.OutOrStdout())
	t.AddHeader("KIND", "NAME", "CATEGORY")
	for _, k := range lexer.Kinds() {
		c := k.Category().String()
		if category != "" && c != category {
			continue
		}
		t.AddLine(int(k), lexer.KindName(k), c)
	}
	t.Print()
	return nil
}

func validCategory(name string) bool {
	for c := lexer.CategoryInvalid; c <= lexer.CategoryEOF; c++ {
		if c.String() == name {
			return true
		}
	}
	return false
}
