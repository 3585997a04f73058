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
	"time"

	"github.com/pingcap/errors"
	"github.com/sqlscan/mysqllex/config"
	"github.com/sqlscan/mysqllex/pkg/lexer"
	"github.com/sqlscan/mysqllex/pkg/metrics"
	"github.com/sqlscan/mysqllex/pkg/util/logutil"
	"go.uber.org/zap"
)

// ErrStatementTooLong is returned for statements above the configured limit.
var ErrStatementTooLong = errors.New("statement too long")

// Stats describes the tokens of one statement.
type Stats struct {
	// Tokens counts default channel tokens.
	Tokens int
	// Hidden counts whitespace and comment tokens.
	Hidden int
	// Invalid counts INVALID_INPUT tokens.
	Invalid int
	// Categories counts default channel tokens by kind category.
	Categories map[lexer.Category]int
	// Bytes is the length of the statement.
	Bytes    int
	Duration time.Duration
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Tokens += other.Tokens
	s.Hidden += other.Hidden
	s.Invalid += other.Invalid
	s.Bytes += other.Bytes
	s.Duration += other.Duration
	if len(other.Categories) > 0 && s.Categories == nil {
		s.Categories = make(map[lexer.Category]int, len(other.Categories))
	}
	for c, n := range other.Categories {
		s.Categories[c] += n
	}
}

// Result holds the tokens of one statement.
type Result struct {
	Input string
	// Tokens are the default channel tokens, plus the hidden ones if the
	// Tokenizer keeps them. EOF is not included.
	Tokens []lexer.Token
	Stats  Stats
}

// Visible returns the default channel tokens of r.
func (r *Result) Visible() []lexer.Token {
	toks := make([]lexer.Token, 0, r.Stats.Tokens)
	for _, tok := range r.Tokens {
		if !tok.Hidden() {
			toks = append(toks, tok)
		}
	}
	return toks
}

// Tokenizer runs scanners over whole statements and records what they saw.
// It is safe for concurrent use, every call gets its own Scanner.
type Tokenizer struct {
	scannerOpts []lexer.Option
	// maxLen is the statement length limit in bytes, 0 for none.
	maxLen     int64
	logMaxLen  int
	keepHidden bool
	metrics    bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithScannerOptions sets the options of every Scanner.
func WithScannerOptions(opts ...lexer.Option) Option {
	return func(t *Tokenizer) {
		t.scannerOpts = append(t.scannerOpts, opts...)
	}
}

// WithMaxStatementLength rejects statements longer than n bytes. 0 means no
// limit.
func WithMaxStatementLength(n int64) Option {
	return func(t *Tokenizer) {
		t.maxLen = n
	}
}

// WithStatementLogMaxLen truncates statements in log entries.
func WithStatementLogMaxLen(n int) Option {
	return func(t *Tokenizer) {
		t.logMaxLen = n
	}
}

// WithHidden keeps hidden channel tokens in results.
func WithHidden(keep bool) Option {
	return func(t *Tokenizer) {
		t.keepHidden = keep
	}
}

// WithMetrics records the package metrics.
func WithMetrics(enable bool) Option {
	return func(t *Tokenizer) {
		t.metrics = enable
	}
}

// New creates a Tokenizer.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{logMaxLen: logutil.DefaultTokenLogMaxLen}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewFromConfig creates a Tokenizer from the lexer, log, tokenize and
// metrics sections of cfg.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Tokenizer, error) {
	scannerOpts, err := cfg.Lexer.ScannerOptions()
	if err != nil {
		return nil, err
	}
	maxLen, err := cfg.Tokenize.MaxStatementBytes()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithScannerOptions(scannerOpts...),
		WithMaxStatementLength(maxLen),
		WithStatementLogMaxLen(cfg.Log.StatementLogMaxLen),
		WithMetrics(cfg.Metrics.Enable),
	}
	return New(append(base, opts...)...), nil
}

// ScannerOptions returns the options every Scanner is built with.
func (t *Tokenizer) ScannerOptions() []lexer.Option {
	return t.scannerOpts
}

// Tokenize scans input to the end.
func (t *Tokenizer) Tokenize(ctx context.Context, input string) (*Result, error) {
	if t.maxLen > 0 && int64(len(input)) > t.maxLen {
		if t.metrics {
			metrics.StatementCounter.WithLabelValues(metrics.LblTooLong).Inc()
		}
		return nil, errors.Annotatef(ErrStatementTooLong, "%d bytes, limit %d", len(input), t.maxLen)
	}

	start := time.Now()
	res := &Result{Input: input}
	res.Stats.Bytes = len(input)
	res.Stats.Categories = make(map[lexer.Category]int)
	s := lexer.NewScanner(input, t.scannerOpts...)
	for tok := s.Next(); !tok.IsEOF(); tok = s.Next() {
		if tok.Hidden() {
			res.Stats.Hidden++
			if t.keepHidden {
				res.Tokens = append(res.Tokens, tok)
			}
			continue
		}
		res.Stats.Tokens++
		res.Stats.Categories[tok.Kind.Category()]++
		if tok.Kind == lexer.InvalidInput {
			res.Stats.Invalid++
			logutil.Logger(ctx).Debug("invalid input",
				zap.Int("offset", tok.Offset),
				zap.Stringer("bytes", logutil.Hex(tok.Text)),
				zap.String("statement", logutil.Truncate(input, t.logMaxLen)))
		}
		res.Tokens = append(res.Tokens, tok)
	}
	res.Stats.Duration = time.Since(start)

	if t.metrics {
		t.observe(&res.Stats)
	}
	return res, nil
}

func (t *Tokenizer) observe(stats *Stats) {
	for c, n := range stats.Categories {
		metrics.TokenCounter.WithLabelValues(c.String()).Add(float64(n))
	}
	metrics.InvalidInputCounter.Add(float64(stats.Invalid))
	metrics.StatementCounter.WithLabelValues(metrics.LblOK).Inc()
	metrics.TokenizeDuration.Observe(stats.Duration.Seconds())
}
