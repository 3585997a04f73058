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

package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndWrite(t *testing.T) {
	registry := prometheus.NewRegistry()
	RegisterMetrics(registry)

	before := ReadCounter(TokenCounter.WithLabelValues("keyword"))
	TokenCounter.WithLabelValues("keyword").Add(3)
	InvalidInputCounter.Inc()
	StatementCounter.WithLabelValues(LblOK).Inc()
	TokenizeDuration.Observe(0.001)
	require.Equal(t, before+3, ReadCounter(TokenCounter.WithLabelValues("keyword")))
	require.NotZero(t, ReadHistogramCount(TokenizeDuration))

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, registry))
	out := buf.String()
	require.Contains(t, out, "# TYPE mysqllex_tokenize_tokens_total counter")
	require.Contains(t, out, `mysqllex_tokenize_tokens_total{category="keyword"}`)
	require.Contains(t, out, `mysqllex_tokenize_statements_total{result="ok"}`)
	require.Contains(t, out, "mysqllex_tokenize_duration_seconds_bucket")
	require.Contains(t, out, "mysqllex_tokenize_invalid_input_total")

	require.Panics(t, func() { RegisterMetrics(registry) })
}

func TestConstLabels(t *testing.T) {
	defer SetConstLabels()
	SetConstLabels("instance", "bench")
	c := NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"})
	registry := prometheus.NewRegistry()
	registry.MustRegister(c)
	c.Inc()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, registry))
	require.Contains(t, buf.String(), `test_total{instance="bench"} 1`)

	require.Panics(t, func() { SetConstLabels("odd") })
}
