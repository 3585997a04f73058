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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pingcap/errors"
	"github.com/sqlscan/mysqllex/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	conf := NewConfig()
	require.NoError(t, conf.Valid())
	require.Equal(t, "8.0.19", conf.Lexer.Version)
	require.True(t, conf.Lexer.CharsetIntroducers)
	n, err := conf.Tokenize.MaxStatementBytes()
	require.NoError(t, err)
	require.Equal(t, int64(1<<20), n)

	require.NotSame(t, conf, NewConfig())
	require.Equal(t, *conf, *GetGlobalConfig())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sqllex.toml")
	content := `
[lexer]
version = "5.7.44"
sql-mode = "ANSI,NO_BACKSLASH_ESCAPES"
function-call-detection = true
charset-introducers = false

[log]
level = "debug"
format = "json"

[tokenize]
concurrency = 8
max-statement-length = "64KiB"

[metrics]
enable = false
instance = "ci"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	conf := NewConfig()
	require.NoError(t, conf.Load(path))
	require.NoError(t, conf.Valid())
	require.Equal(t, "debug", conf.Log.Level)
	require.Equal(t, 8, conf.Tokenize.Concurrency)
	require.False(t, conf.Metrics.Enable)
	require.Equal(t, "ci", conf.Metrics.Instance)

	v, err := conf.Lexer.ServerVersion()
	require.NoError(t, err)
	require.Equal(t, lexer.Version(50744), v)
	mode, err := conf.Lexer.Mode()
	require.NoError(t, err)
	require.Equal(t, lexer.ModePipesAsConcat|lexer.ModeANSIQuotes|lexer.ModeIgnoreSpace|lexer.ModeNoBackslashEscapes, mode)
	n, err := conf.Tokenize.MaxStatementBytes()
	require.NoError(t, err)
	require.Equal(t, int64(64<<10), n)

	opts, err := conf.Lexer.ScannerOptions()
	require.NoError(t, err)
	s := lexer.NewScanner("count (x) _utf8mb4 ROW", opts...)
	require.Equal(t, v, s.Version())
	require.Equal(t, mode, s.SQLMode())
	// IGNORE_SPACE from ANSI lets the call site hook accept "count (".
	require.Equal(t, lexer.CountSymbol, s.Advance().Kind)
	for iter := 0; iter < 3; iter++ {
		s.Advance()
	}
	require.Equal(t, lexer.Identifier, s.Advance().Kind)
	require.Equal(t, lexer.RowSymbol, s.Advance().Kind)

	require.Error(t, conf.Load(filepath.Join(t.TempDir(), "missing.toml")))
}

func TestLoadUnknownItems(t *testing.T) {
	conf := NewConfig()
	err := conf.LoadFromString("[lexer]\nversion = \"8.0.19\"\nflavour = \"mariadb\"\n[unknown]\nx = 1\n")
	require.Error(t, err)
	require.Equal(t, ErrConfigValidationFailed, errors.Cause(err))
	require.Contains(t, err.Error(), "lexer.flavour")

	require.Error(t, NewConfig().LoadFromString("[lexer\n"))
}

func TestValid(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Lexer.Version = "eight" },
		func(c *Config) { c.Lexer.SQLMode = "NO_SUCH_MODE" },
		func(c *Config) { c.Tokenize.Concurrency = 0 },
		func(c *Config) { c.Tokenize.MaxStatementLength = "lots" },
		func(c *Config) { c.Log.StatementLogMaxLen = -1 },
	}
	for i, mutate := range cases {
		conf := NewConfig()
		mutate(conf)
		require.Error(t, conf.Valid(), "case %d", i)
	}

	conf := NewConfig()
	conf.Tokenize.MaxStatementLength = ""
	require.NoError(t, conf.Valid())
	n, err := conf.Tokenize.MaxStatementBytes()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestGlobalConfig(t *testing.T) {
	orig := GetGlobalConfig()
	defer StoreGlobalConfig(orig)

	conf := NewConfig()
	conf.Tokenize.Concurrency = 16
	StoreGlobalConfig(conf)
	require.Equal(t, 16, GetGlobalConfig().Tokenize.Concurrency)
}

func TestCloneAndEncode(t *testing.T) {
	conf := NewConfig()
	conf.Lexer.SQLMode = "ANSI"
	cloned, err := CloneConf(conf)
	require.NoError(t, err)
	require.Equal(t, conf, cloned)
	cloned.Lexer.SQLMode = ""
	require.Equal(t, "ANSI", conf.Lexer.SQLMode)

	content, err := EncodeTOML(conf)
	require.NoError(t, err)
	require.Contains(t, content, "[tokenize]")
	reloaded := NewConfig()
	reloaded.Lexer.SQLMode = ""
	require.NoError(t, reloaded.LoadFromString(content))
	require.Equal(t, conf, reloaded)

	js, err := EncodeJSON(conf)
	require.NoError(t, err)
	require.Contains(t, js, `"sql-mode": "ANSI"`)
}

func TestToLogConfig(t *testing.T) {
	conf := NewConfig()
	conf.Log.Level = "warn"
	conf.Log.DisableTimestamp = true
	lc := conf.Log.ToLogConfig()
	require.Equal(t, "warn", lc.Level)
	require.Equal(t, "text", lc.Format)
	require.True(t, lc.DisableTimestamp)
}
