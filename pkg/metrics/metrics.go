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
	"io"
	"math"

	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

func init() {
	InitMetrics()
}

// InitMetrics is used to initialize metrics.
func InitMetrics() {
	InitTokenizeMetrics()
}

// RegisterMetrics registers the metrics of this package in registry.
func RegisterMetrics(registry prometheus.Registerer) {
	registry.MustRegister(TokenCounter)
	registry.MustRegister(InvalidInputCounter)
	registry.MustRegister(StatementCounter)
	registry.MustRegister(TokenizeDuration)
	registry.MustRegister(BatchInflightGauge)
}

// WriteText renders every metric family of gatherer in the Prometheus text
// exposition format.
func WriteText(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return errors.Trace(err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// ReadCounter reports the current value of the counter.
func ReadCounter(counter prometheus.Counter) float64 {
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		return math.NaN()
	}
	return metric.Counter.GetValue()
}

// ReadHistogramCount reports how many observations the histogram has.
func ReadHistogramCount(h prometheus.Histogram) uint64 {
	var metric dto.Metric
	if err := h.Write(&metric); err != nil {
		return 0
	}
	return metric.Histogram.GetSampleCount()
}
