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
	"github.com/prometheus/client_golang/prometheus"
)

// Label values of StatementCounter.
const (
	LblOK       = "ok"
	LblTooLong  = "too_long"
	LblCanceled = "canceled"
)

// Label names.
const (
	LblCategory = "category"
	LblResult   = "result"
)

// Tokenize metrics.
var (
	TokenCounter        *prometheus.CounterVec
	InvalidInputCounter prometheus.Counter
	StatementCounter    *prometheus.CounterVec
	TokenizeDuration    prometheus.Histogram
	BatchInflightGauge  prometheus.Gauge
)

// InitTokenizeMetrics initializes tokenize metrics.
func InitTokenizeMetrics() {
	TokenCounter = NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mysqllex",
			Subsystem: "tokenize",
			Name:      "tokens_total",
			Help:      "Counter of visible tokens by kind category.",
		}, []string{LblCategory})

	InvalidInputCounter = NewCounter(
		prometheus.CounterOpts{
			Namespace: "mysqllex",
			Subsystem: "tokenize",
			Name:      "invalid_input_total",
			Help:      "Counter of INVALID_INPUT tokens.",
		})

	StatementCounter = NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mysqllex",
			Subsystem: "tokenize",
			Name:      "statements_total",
			Help:      "Counter of tokenized statements by result.",
		}, []string{LblResult})

	TokenizeDuration = NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mysqllex",
			Subsystem: "tokenize",
			Name:      "duration_seconds",
			Help:      "Bucketed histogram of time (s) spent tokenizing one statement.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 2, 24), // 1us ~ 8s
		})

	BatchInflightGauge = NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mysqllex",
			Subsystem: "tokenize",
			Name:      "batch_inflight",
			Help:      "Number of statements being tokenized by batches.",
		})
}
