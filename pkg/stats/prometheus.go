// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// registration pairs a kind label with the source it was registered under.
type registration struct {
	kind   string
	source Source
}

// PrometheusRegistry implements Registry and prometheus.Collector: every
// registered source is snapshotted fresh on each scrape and exported as
// watchfleetd_watcher_counter{kind="...",counter="..."}, grounded on the
// reset-on-read promauto.NewGauge pattern the ambient server package and
// the teacher's snapshotter metrics already use, generalized to a dynamic
// set of kinds instead of one promauto var per metric.
type PrometheusRegistry struct {
	mu            sync.Mutex
	registrations []registration

	desc *prometheus.Desc
}

// NewPrometheusRegistry returns a PrometheusRegistry. Callers must register
// it with a prometheus.Registerer (e.g. prometheus.MustRegister or
// promauto's DefaultRegisterer) for it to be scraped.
func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{
		desc: prometheus.NewDesc(
			"watchfleetd_watcher_counter",
			"Reset-on-read watcher telemetry counters.",
			[]string{"kind", "counter"},
			nil,
		),
	}
}

// Register implements Registry.
func (r *PrometheusRegistry) Register(kind string, source Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations = append(r.registrations, registration{kind: kind, source: source})
}

// Describe implements prometheus.Collector.
func (r *PrometheusRegistry) Describe(ch chan<- *prometheus.Desc) {
	ch <- r.desc
}

// Collect implements prometheus.Collector, calling every registered source
// and emitting one gauge sample per counter it returns.
func (r *PrometheusRegistry) Collect(ch chan<- prometheus.Metric) {
	r.mu.Lock()
	regs := make([]registration, len(r.registrations))
	copy(regs, r.registrations)
	r.mu.Unlock()

	for _, reg := range regs {
		for _, counter := range reg.source() {
			ch <- prometheus.MustNewConstMetric(
				r.desc,
				prometheus.GaugeValue,
				float64(counter.Value),
				reg.kind,
				counter.Name,
			)
		}
	}
}
