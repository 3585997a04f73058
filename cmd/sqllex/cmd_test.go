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
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTokensPlain(t *testing.T) {
	out, err := execute(t, "SELECT 1", "tokens", "-f", "plain")
	require.NoError(t, err)
	require.Equal(t, "SELECT (SELECT_SYMBOL)\n1 (DECIMAL_NUMBER)\n", out)

	out, err = execute(t, "SELECT 1", "tokens", "-f", "plain", "--hidden")
	require.NoError(t, err)
	require.Equal(t, "SELECT (SELECT_SYMBOL)\n  (WHITESPACE)\n1 (DECIMAL_NUMBER)\n", out)
}

func TestTokensJSON(t *testing.T) {
	out, err := execute(t, "a || b", "tokens", "-f", "json", "--sql-mode", "PIPES_AS_CONCAT")
	require.NoError(t, err)
	var toks []tokenJSON
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &toks))
	require.Equal(t, []tokenJSON{
		{Kind: "IDENTIFIER", Text: "a", Channel: "DEFAULT", Offset: 0},
		{Kind: "CONCAT_PIPES_SYMBOL", Text: "||", Channel: "DEFAULT", Offset: 2},
		{Kind: "IDENTIFIER", Text: "b", Channel: "DEFAULT", Offset: 5},
	}, toks)
}

func TestTokensTable(t *testing.T) {
	path := writeFile(t, "q.sql", "\xef\xbb\xbfSELECT 'x'")
	out, err := execute(t, "", "tokens", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "OFFSET")
	require.Contains(t, lines[2], "SELECT_SYMBOL")
	require.Contains(t, lines[3], "SINGLE_QUOTED_TEXT")
	require.Contains(t, lines[3], `"'x'"`)
}

func TestTokensInputCharset(t *testing.T) {
	out, err := execute(t, "SELECT '\xe9'", "tokens", "-f", "plain", "--input-charset", "latin1")
	require.NoError(t, err)
	require.Contains(t, out, "'é' (SINGLE_QUOTED_TEXT)")

	_, err = execute(t, "", "tokens", "--input-charset", "klingon")
	require.Error(t, err)
}

func TestTokensVersion(t *testing.T) {
	out, err := execute(t, "ANALYSE", "tokens", "-f", "plain", "-V", "5.7.44")
	require.NoError(t, err)
	require.Equal(t, "ANALYSE (ANALYSE_SYMBOL)\n", out)

	out, err = execute(t, "ANALYSE", "tokens", "-f", "plain", "-V", "80019")
	require.NoError(t, err)
	require.Equal(t, "ANALYSE (IDENTIFIER)\n", out)

	_, err = execute(t, "", "tokens", "-V", "eight")
	require.Error(t, err)
}

func TestTokensBadFormat(t *testing.T) {
	_, err := execute(t, "SELECT 1", "tokens", "-f", "xml")
	require.ErrorContains(t, err, "unknown format")
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "sqllex.toml", `
[lexer]
version = "5.7.44"
sql-mode = "PIPES_AS_CONCAT"
`)
	out, err := execute(t, "a || ANALYSE", "tokens", "-c", path, "-f", "plain")
	require.NoError(t, err)
	require.Equal(t, "a (IDENTIFIER)\n|| (CONCAT_PIPES_SYMBOL)\nANALYSE (ANALYSE_SYMBOL)\n", out)

	// Flags win over the file.
	out, err = execute(t, "ANALYSE", "tokens", "-c", path, "-V", "8.0.19", "-f", "plain")
	require.NoError(t, err)
	require.Equal(t, "ANALYSE (IDENTIFIER)\n", out)

	bad := writeFile(t, "bad.toml", "[lexer]\nunknown-key = 1\n")
	_, err = execute(t, "", "tokens", "-c", bad)
	require.ErrorContains(t, err, "unknown-key")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "", "config", "-V", "5.7.44")
	require.NoError(t, err)
	require.Contains(t, out, "[lexer]")
	require.Contains(t, out, `version = "5.7.44"`)

	out, err = execute(t, "", "config", "--json")
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &m))
	require.Contains(t, m, "lexer")
	require.Contains(t, m, "tokenize")
}

func TestKinds(t *testing.T) {
	out, err := execute(t, "", "kinds", "--category", "special")
	require.NoError(t, err)
	require.Contains(t, out, "WHITESPACE")
	require.Contains(t, out, "1001")
	require.NotContains(t, out, "SELECT_SYMBOL")

	out, err = execute(t, "", "kinds")
	require.NoError(t, err)
	require.Contains(t, out, "SELECT_SYMBOL")
	require.Contains(t, out, "EOF")

	_, err = execute(t, "", "kinds", "--category", "nope")
	require.ErrorContains(t, err, "unknown category")
}

func TestKeywords(t *testing.T) {
	out, err := execute(t, "", "keywords", "--match", "json_t*")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "IN 8.0.19")
	require.Contains(t, lines[2], "JSON_TABLE")
	require.Contains(t, lines[2], "8.0.0")
	require.Contains(t, lines[2], "true")

	out, err = execute(t, "", "keywords", "--match", "SQL_CACHE", "-V", "5.7.44")
	require.NoError(t, err)
	require.Contains(t, out, "IN 5.7.44")
	require.Contains(t, out, "true")

	out, err = execute(t, "", "keywords", "--gated")
	require.NoError(t, err)
	require.Contains(t, out, "ANALYSE")
	require.NotContains(t, out, "SELECT ")

	out, err = execute(t, "", "keywords", "--gated-in", ">= 8.0.0, < 8.0.1")
	require.NoError(t, err)
	require.Contains(t, out, "JSON_TABLE")
	require.Contains(t, out, "SQL_CACHE")

	_, err = execute(t, "", "keywords", "--gated-in", "sometime")
	require.ErrorContains(t, err, "invalid --gated-in")
	_, err = execute(t, "", "keywords", "--match", "[")
	require.ErrorContains(t, err, "invalid --match")
}

func TestDigestCommand(t *testing.T) {
	script := "SELECT * FROM t WHERE id = 1;\nselect * from t where id=2;\nSELECT a FROM t WHERE b IN (1, 2, 3);"
	out, err := execute(t, script, "digest", "-f", "json")
	require.NoError(t, err)
	var rows []digestJSON
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	require.Equal(t, rows[0].Digest, rows[1].Digest)
	require.NotEqual(t, rows[0].Digest, rows[2].Digest)
	require.Equal(t, "select * from t where id = ?", rows[0].Normalized)
	require.Equal(t, "select a from t where b in ( ... )", rows[2].Normalized)
	require.Equal(t, "select * from t where id=2", rows[1].Statement)

	out, err = execute(t, script, "digest")
	require.NoError(t, err)
	require.Contains(t, out, "DIGEST")
	require.Contains(t, out, rows[2].Digest)
}

func TestBench(t *testing.T) {
	path := writeFile(t, "queries.csv", `id,query
1,"SELECT 1"
2,"SELECT 2"
3,"SELECT name FROM users WHERE id = 7"
`)
	out, err := execute(t, "", "bench", path, "--column", "1", "--header", "--concurrency", "2", "--print-metrics")
	require.NoError(t, err)
	require.Contains(t, out, "STATEMENTS")
	require.Contains(t, out, "keyword")
	require.Contains(t, out, "select ?")
	require.Contains(t, out, "mysqllex_tokenize_statements_total")

	_, err = execute(t, "", "bench", path, "--column", "5")
	require.ErrorContains(t, err, "has no column 5")
}

func TestReadQueries(t *testing.T) {
	queries, err := readQueries(strings.NewReader("a,SELECT 1\nb,\"SELECT 'x,y'\"\n"), 1, false)
	require.NoError(t, err)
	require.Equal(t, []string{"SELECT 1", "SELECT 'x,y'"}, queries)
}
