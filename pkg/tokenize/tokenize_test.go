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
	"context"
	"strings"
	"testing"

	"github.com/pingcap/errors"
	"github.com/sqlscan/mysqllex/config"
	"github.com/sqlscan/mysqllex/pkg/lexer"
	"github.com/sqlscan/mysqllex/pkg/metrics"
	"github.com/sqlscan/mysqllex/pkg/util/logutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func kindsOf(toks []lexer.Token) []lexer.Kind {
	kinds := make([]lexer.Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestTokenize(t *testing.T) {
	tk := New()
	res, err := tk.Tokenize(context.Background(), "SELECT a, 1 /* c */ FROM t")
	require.NoError(t, err)
	require.Equal(t, []lexer.Kind{
		lexer.SelectSymbol, lexer.Identifier, lexer.CommaSymbol, lexer.DecimalNumber, lexer.FromSymbol, lexer.Identifier,
	}, kindsOf(res.Tokens))
	require.Equal(t, 6, res.Stats.Tokens)
	require.Equal(t, 6, res.Stats.Hidden)
	require.Equal(t, 0, res.Stats.Invalid)
	require.Equal(t, 26, res.Stats.Bytes)
	require.Equal(t, 2, res.Stats.Categories[lexer.CategoryKeyword])
	require.Equal(t, 3, res.Stats.Categories[lexer.CategoryLiteral])
	require.Equal(t, 1, res.Stats.Categories[lexer.CategoryOperator])
	require.Equal(t, res.Tokens, res.Visible())
}

func TestTokenizeHidden(t *testing.T) {
	input := "SELECT -- c\n1"
	res, err := New(WithHidden(true)).Tokenize(context.Background(), input)
	require.NoError(t, err)
	var sb strings.Builder
	for _, tok := range res.Tokens {
		sb.WriteString(tok.Text)
	}
	require.Equal(t, input, sb.String())
	require.Equal(t, []lexer.Kind{lexer.SelectSymbol, lexer.DecimalNumber}, kindsOf(res.Visible()))
}

func TestTokenizeOptions(t *testing.T) {
	tk := New(WithScannerOptions(lexer.WithSQLMode(lexer.ModePipesAsConcat), lexer.WithVersion(50700)))
	require.Len(t, tk.ScannerOptions(), 2)
	res, err := tk.Tokenize(context.Background(), "a || b -> c")
	require.NoError(t, err)
	require.Equal(t, []lexer.Kind{
		lexer.Identifier, lexer.ConcatPipesSymbol, lexer.Identifier, lexer.MinusOperator, lexer.GreaterThanOperator, lexer.Identifier,
	}, kindsOf(res.Tokens))
}

func TestTokenizeTooLong(t *testing.T) {
	before := metrics.ReadCounter(metrics.StatementCounter.WithLabelValues(metrics.LblTooLong))
	tk := New(WithMaxStatementLength(8), WithMetrics(true))
	_, err := tk.Tokenize(context.Background(), "SELECT 123456")
	require.Error(t, err)
	require.Equal(t, ErrStatementTooLong, errors.Cause(err))
	require.Equal(t, before+1, metrics.ReadCounter(metrics.StatementCounter.WithLabelValues(metrics.LblTooLong)))

	_, err = tk.Tokenize(context.Background(), "SELECT 1")
	require.NoError(t, err)
}

func TestTokenizeMetrics(t *testing.T) {
	ok := metrics.StatementCounter.WithLabelValues(metrics.LblOK)
	keywords := metrics.TokenCounter.WithLabelValues(lexer.CategoryKeyword.String())
	beforeOK, beforeKeywords := metrics.ReadCounter(ok), metrics.ReadCounter(keywords)
	beforeInvalid := metrics.ReadCounter(metrics.InvalidInputCounter)

	_, err := New(WithMetrics(true)).Tokenize(context.Background(), "SELECT [ FROM ]")
	require.NoError(t, err)
	require.Equal(t, beforeOK+1, metrics.ReadCounter(ok))
	require.Equal(t, beforeKeywords+2, metrics.ReadCounter(keywords))
	require.Equal(t, beforeInvalid+2, metrics.ReadCounter(metrics.InvalidInputCounter))

	_, err = New().Tokenize(context.Background(), "SELECT")
	require.NoError(t, err)
	require.Equal(t, beforeOK+1, metrics.ReadCounter(ok))
}

func TestTokenizeLogsInvalidInput(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := context.WithValue(context.Background(), logutil.CtxLogKey, zap.New(core))
	res, err := New(WithStatementLogMaxLen(4)).Tokenize(ctx, "SELECT \xc3\xa9")
	require.NoError(t, err)
	require.Equal(t, 2, res.Stats.Invalid)

	entries := logs.FilterMessage("invalid input").All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	require.Equal(t, int64(7), fields["offset"])
	require.Equal(t, "C3", fields["bytes"])
	require.Equal(t, "SELE...(len:9)", fields["statement"])
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Lexer.SQLMode = "HIGH_NOT_PRECEDENCE"
	cfg.Tokenize.MaxStatementLength = "16B"
	tk, err := NewFromConfig(cfg, WithHidden(true))
	require.NoError(t, err)
	require.True(t, tk.keepHidden)
	require.Equal(t, int64(16), tk.maxLen)
	require.True(t, tk.metrics)

	res, err := tk.Tokenize(context.Background(), "NOT a")
	require.NoError(t, err)
	require.Equal(t, lexer.Not2Symbol, res.Tokens[0].Kind)

	cfg.Lexer.Version = "x"
	_, err = NewFromConfig(cfg)
	require.Error(t, err)
	cfg = config.NewConfig()
	cfg.Tokenize.MaxStatementLength = "much"
	_, err = NewFromConfig(cfg)
	require.Error(t, err)
}

func TestStatsAdd(t *testing.T) {
	var total Stats
	total.Add(Stats{Tokens: 2, Hidden: 1, Bytes: 5, Categories: map[lexer.Category]int{lexer.CategoryKeyword: 2}})
	total.Add(Stats{Tokens: 1, Invalid: 1, Bytes: 1, Categories: map[lexer.Category]int{lexer.CategoryKeyword: 1, lexer.CategoryInvalid: 1}})
	require.Equal(t, 3, total.Tokens)
	require.Equal(t, 1, total.Hidden)
	require.Equal(t, 1, total.Invalid)
	require.Equal(t, 6, total.Bytes)
	require.Equal(t, 3, total.Categories[lexer.CategoryKeyword])
}
