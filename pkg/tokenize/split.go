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

package tokenize

import (
	"strings"

	"github.com/sqlscan/mysqllex/pkg/lexer"
)

// SplitStatements cuts a script into statements at ";" tokens, so semicolons
// inside quotes and comments do not split. The ";" is not part of a
// statement. Statements made only of whitespace and comments are dropped,
// the others are trimmed of surrounding whitespace.
func SplitStatements(script string, opts ...lexer.Option) []string {
	var stmts []string
	s := lexer.NewScanner(script, opts...)
	start := 0
	code := false
	flush := func(end int) {
		if code {
			stmts = append(stmts, strings.TrimSpace(script[start:end]))
		}
		code = false
	}
	for tok := s.Next(); !tok.IsEOF(); tok = s.Next() {
		switch {
		case tok.Kind == lexer.SemicolonSymbol:
			flush(tok.Offset)
			start = tok.End()
		case !tok.Hidden():
			code = true
		}
	}
	flush(len(script))
	return stmts
}
