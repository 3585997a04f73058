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
	"testing"

	"github.com/sqlscan/mysqllex/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	script := "SELECT 'a;b';\n-- c;\nUPDATE t SET `x;` = 1 ; ;\n/* ; */ SELECT 2"
	require.Equal(t, []string{
		"SELECT 'a;b'",
		"-- c;\nUPDATE t SET `x;` = 1",
		"/* ; */ SELECT 2",
	}, SplitStatements(script))

	require.Nil(t, SplitStatements(""))
	require.Nil(t, SplitStatements(" ; -- only comments\n;"))
	require.Equal(t, []string{"SELECT 1"}, SplitStatements("SELECT 1;"))

	// Without backslash escapes the quote ends at the backslash.
	require.Equal(t, []string{`SELECT 'a\'`, `'`}, SplitStatements(`SELECT 'a\';'`, lexer.WithSQLMode(lexer.ModeNoBackslashEscapes)))
	require.Equal(t, []string{`SELECT 'a\';'`}, SplitStatements(`SELECT 'a\';'`))
}
