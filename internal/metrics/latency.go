/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/metrics/latency.go
*/

// Package metrics implements the per-command latency table backing
// LATENCY HISTOGRAM and the INFO Commandstats section: a per-verb
// prometheus.Histogram whose bucket snapshot is read back via the
// metric's own Write(*dto.Metric) protobuf, rather than scraped through
// an HTTP exporter — this server answers LATENCY HISTOGRAM over the
// RESP connection itself, not a /metrics endpoint.
package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Bucket is one (upper-bound, cumulative-count) pair from a histogram,
// the exact shape the LATENCY HISTOGRAM response needs.
type Bucket struct {
	UpperBound float64
	Cumulative uint64
}

// Snapshot is one verb's latency summary at the moment LATENCY HISTOGRAM
// was issued.
type Snapshot struct {
	Verb    string
	Calls   uint64
	UsecSum float64
	Buckets []Bucket
}

// UsecPerCall returns the mean latency, or 0 if the verb was never
// called.
func (s Snapshot) UsecPerCall() float64 {
	if s.Calls == 0 {
		return 0
	}
	return s.UsecSum / float64(s.Calls)
}

// LatencyTable holds one exponential-bucketed histogram per command verb
// seen so far, lazily created on first observation. It is safe for
// concurrent use, though the single-threaded event loop never actually
// calls it from more than one goroutine.
type LatencyTable struct {
	mu    sync.Mutex
	hists map[string]prometheus.Histogram
	calls map[string]uint64
}

// NewLatencyTable returns an empty table.
func NewLatencyTable() *LatencyTable {
	return &LatencyTable{
		hists: make(map[string]prometheus.Histogram),
		calls: make(map[string]uint64),
	}
}

// Observe records one command's elapsed microseconds against its verb's
// histogram, creating the histogram on first use with a 30-bucket
// exponential scale starting at 1us and doubling; the exact bucketing
// is an implementation choice, not a wire-visible guarantee.
func (t *LatencyTable) Observe(verb string, usec float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	h, ok := t.hists[verb]
	if !ok {
		h = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "goredis_command_latency_usec",
			Help:    "Per-command latency in microseconds.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 30),
		})
		t.hists[verb] = h
	}
	h.Observe(usec)
	t.calls[verb]++
}

// Verbs returns every verb observed so far, in sorted order.
func (t *LatencyTable) Verbs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.hists))
	for v := range t.hists {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Snapshot returns each requested verb's latency summary, in the order
// given. An empty verbs slice snapshots every verb observed so far,
// sorted alphabetically, matching LATENCY HISTOGRAM's "no args means all
// verbs" rule.
func (t *LatencyTable) Snapshot(verbs []string) []Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(verbs) == 0 {
		for v := range t.hists {
			verbs = append(verbs, v)
		}
		sort.Strings(verbs)
	}

	out := make([]Snapshot, 0, len(verbs))
	for _, verb := range verbs {
		h, ok := t.hists[verb]
		if !ok {
			continue
		}
		var m dto.Metric
		if err := h.Write(&m); err != nil {
			continue
		}
		hist := m.GetHistogram()
		buckets := make([]Bucket, 0, len(hist.GetBucket()))
		for _, b := range hist.GetBucket() {
			buckets = append(buckets, Bucket{
				UpperBound: b.GetUpperBound(),
				Cumulative: b.GetCumulativeCount(),
			})
		}
		out = append(out, Snapshot{
			Verb:    verb,
			Calls:   t.calls[verb],
			UsecSum: hist.GetSampleSum(),
			Buckets: buckets,
		})
	}
	return out
}
