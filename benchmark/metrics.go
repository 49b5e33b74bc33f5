/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package benchmark

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports per-call timings and skipped cases of a run.
type Metrics struct {
	callSeconds  *prometheus.HistogramVec
	skippedCases prometheus.Counter
}

// NewMetrics creates the benchmark collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		callSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quickmedian",
			Subsystem: "benchmark",
			Name:      "call_seconds",
			Help:      "Duration of a single timed median call.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 16),
		}, []string{"algorithm", "distribution", "size"}),
		skippedCases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quickmedian",
			Subsystem: "benchmark",
			Name:      "skipped_cases_total",
			Help:      "Number of (size, distribution) cases the generator could not build.",
		}),
	}
	for _, c := range []prometheus.Collector{m.callSeconds, m.skippedCases} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeCall(algorithm string, distribution string, size int, d time.Duration) {
	if m == nil {
		return
	}
	m.callSeconds.WithLabelValues(algorithm, distribution, strconv.Itoa(size)).Observe(d.Seconds())
}

func (m *Metrics) caseSkipped() {
	if m == nil {
		return
	}
	m.skippedCases.Inc()
}
