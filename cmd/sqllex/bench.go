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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/docker/go-units"
	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/sqlscan/mysqllex/pkg/lexer"
	"github.com/sqlscan/mysqllex/pkg/metrics"
	"github.com/sqlscan/mysqllex/pkg/tokenize"
	"github.com/sqlscan/mysqllex/pkg/util/logutil"
	"go.uber.org/zap"
)

func newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench <queries.csv>",
		Short: "Tokenize every query of a CSV file concurrently and report throughput",
		Args:  cobra.ExactArgs(1),
		RunE:  runBench,
	}
	cmd.Flags().Int("column", 0, "CSV column holding the query")
	cmd.Flags().Bool("header", false, "Skip the first CSV record")
	cmd.Flags().Int("concurrency", 0, "Statements tokenized at once, 0 for the config value")
	cmd.Flags().Int("top", 5, "Number of most frequent digests to print")
	cmd.Flags().Bool("print-metrics", false, "Print the metrics in Prometheus text format")
	return cmd
}

// readQueries reads one query per CSV record.
func readQueries(r io.Reader, column int, header bool) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	var queries []string
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			return queries, nil
		}
		if err != nil {
			return nil, errors.Annotate(err, "read csv")
		}
		if header && line == 1 {
			continue
		}
		if column >= len(record) {
			return nil, errors.Errorf("csv record %d has no column %d", line, column)
		}
		queries = append(queries, record[column])
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	column, _ := flags.GetInt("column")
	header, _ := flags.GetBool("header")
	concurrency, _ := flags.GetInt("concurrency")
	top, _ := flags.GetInt("top")
	printMetrics, _ := flags.GetBool("print-metrics")
	if concurrency <= 0 {
		concurrency = conf.Tokenize.Concurrency
	}

	f, err := os.Open(args[0])
	if err != nil {
		return errors.Trace(err)
	}
	defer f.Close()
	queries, err := readQueries(f, column, header)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	if printMetrics {
		metrics.RegisterMetrics(registry)
	}
	tk, err := tokenize.NewFromConfig(conf, tokenize.WithMetrics(conf.Metrics.Enable || printMetrics))
	if err != nil {
		return err
	}
	ctx := logutil.WithCategory(cmd.Context(), "bench")
	start := time.Now()
	br, err := tk.Batch(ctx, queries, concurrency)
	if br == nil {
		return err
	}
	if err != nil {
		logutil.Logger(ctx).Warn("some statements were skipped", zap.Error(err))
	}
	elapsed := time.Since(start)

	w := cmd.OutOrStdout()
	t := newTable(w)
	t.AddHeader("STATEMENTS", "FAILED", "TOKENS", "INVALID", "SIZE", "ELAPSED", "THROUGHPUT")
	throughput := float64(br.Stats.Bytes) / max(elapsed.Seconds(), 1e-9)
	t.AddLine(len(queries), br.Failed, br.Stats.Tokens, br.Stats.Invalid,
		units.HumanSize(float64(br.Stats.Bytes)), elapsed.Round(time.Microsecond), units.HumanSize(throughput)+"/s")
	t.Print()

	fmt.Fprintln(w)
	t = newTable(w)
	categories := make([]any, 0, len(categoryColumns))
	counts := make([]any, 0, len(categoryColumns))
	for _, c := range categoryColumns {
		categories = append(categories, c.String())
		counts = append(counts, br.Stats.Categories[c])
	}
	t.AddHeader(categories...)
	t.AddLine(counts...)
	t.Print()

	mode, _ := conf.Lexer.Mode()
	summaries := tokenize.Summarize(br.Results, mode)
	if top > 0 && len(summaries) > 0 {
		fmt.Fprintln(w)
		t = newTable(w)
		t.AddHeader("DIGEST", "COUNT", "TOKENS", "NORMALIZED")
		for _, sum := range summaries[:min(top, len(summaries))] {
			t.AddLine(sum.Digest, sum.Count, sum.Tokens, logutil.Truncate(sum.Normalized, conf.Log.StatementLogMaxLen))
		}
		t.Print()
	}

	if printMetrics {
		fmt.Fprintln(w)
		if err := metrics.WriteText(w, registry); err != nil {
			return err
		}
	}
	return nil
}

// categoryColumns is the order categories are reported in.
var categoryColumns = []lexer.Category{
	lexer.CategoryKeyword, lexer.CategoryDataType, lexer.CategoryOperator,
	lexer.CategoryLiteral, lexer.CategorySpecial, lexer.CategoryInvalid,
}
