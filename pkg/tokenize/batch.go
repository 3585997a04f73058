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
	"github.com/sqlscan/mysqllex/pkg/metrics"
	"github.com/sqlscan/mysqllex/pkg/util/logutil"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchResult holds the outcome of a Batch call.
type BatchResult struct {
	// Results has one entry per input, nil for statements that failed.
	Results []*Result
	// Stats sums the stats of the successful statements.
	Stats  Stats
	Failed int
}

// Batch tokenizes inputs with up to concurrency statements in flight, one
// Scanner per statement. Statements that fail do not stop the others, their
// errors are combined in input order. Cancelling ctx stops the batch between
// statements and returns the context error. When only some statements fail
// the BatchResult is returned together with the combined error.
func (t *Tokenizer) Batch(ctx context.Context, inputs []string, concurrency int) (*BatchResult, error) {
	if concurrency <= 0 {
		return nil, errors.Errorf("batch concurrency should be positive, got %d", concurrency)
	}
	start := time.Now()
	logger := logutil.Logger(ctx)

	results := make([]*Result, len(inputs))
	errs := make([]error, len(inputs))
	var (
		done    atomic.Int64
		tokens  atomic.Int64
		invalid atomic.Int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, input := range inputs {
		if groupCtx.Err() != nil {
			break
		}
		i, input := i, input
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			if t.metrics {
				metrics.BatchInflightGauge.Inc()
				defer metrics.BatchInflightGauge.Dec()
			}
			res, err := t.Tokenize(groupCtx, input)
			if err != nil {
				errs[i] = errors.Annotatef(err, "statement %d", i)
				return nil
			}
			results[i] = res
			done.Inc()
			tokens.Add(int64(res.Stats.Tokens))
			invalid.Add(int64(res.Stats.Invalid))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		if t.metrics {
			metrics.StatementCounter.WithLabelValues(metrics.LblCanceled).Add(float64(int64(len(inputs)) - done.Load()))
		}
		logger.Warn("tokenize batch canceled", zap.Int64("done", done.Load()), zap.Int("total", len(inputs)), zap.Error(err))
		return nil, errors.Trace(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	br := &BatchResult{Results: results}
	var allErr error
	for i, res := range results {
		if errs[i] != nil {
			allErr = multierr.Append(allErr, errs[i])
			br.Failed++
			continue
		}
		br.Stats.Add(res.Stats)
	}

	logger.Info("tokenize batch finished",
		zap.Int("statements", len(inputs)),
		zap.Int("failed", br.Failed),
		zap.Int64("tokens", tokens.Load()),
		zap.Int64("invalid", invalid.Load()),
		zap.Duration("elapsed", time.Since(start)))
	return br, allErr
}
