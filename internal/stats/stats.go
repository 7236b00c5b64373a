package stats

import (
	"sort"
	"time"

	"github.com/rcrowley/go-metrics"
)

const (
	simulationsPrefix = "simulations."
	failuresPrefix    = "simulations.failed."
	cacheHits         = "cache.hits"
	cacheMisses       = "cache.misses"
	sampleSize        = 1028
)

// Recorder counts simulations per algorithm and times them.
type Recorder struct {
	registry metrics.Registry
}

func NewRecorder() *Recorder {
	return &Recorder{registry: metrics.NewRegistry()}
}

// Simulation records one completed run of algorithm over processCount processes.
func (r *Recorder) Simulation(algorithm string, processCount int, started time.Time) {
	metrics.GetOrRegisterTimer(simulationsPrefix+algorithm+".latency", r.registry).UpdateSince(started)
	metrics.GetOrRegisterHistogram(simulationsPrefix+algorithm+".processes", r.registry,
		metrics.NewUniformSample(sampleSize)).Update(int64(processCount))
}

// Failure records a rejected simulation, keyed by a short reason.
func (r *Recorder) Failure(reason string) {
	metrics.GetOrRegisterCounter(failuresPrefix+reason, r.registry).Inc(1)
}

func (r *Recorder) CacheHit() {
	metrics.GetOrRegisterCounter(cacheHits, r.registry).Inc(1)
}

func (r *Recorder) CacheMiss() {
	metrics.GetOrRegisterCounter(cacheMisses, r.registry).Inc(1)
}

// Count returns the number of events recorded under name, 0 if unknown.
func (r *Recorder) Count(name string) int64 {
	switch m := r.registry.Get(name).(type) {
	case metrics.Counter:
		return m.Count()
	case metrics.Timer:
		return m.Count()
	case metrics.Histogram:
		return m.Count()
	}
	return 0
}

// Metric is a flattened view of one registered metric.
type Metric struct {
	Name   string  `json:"name"`
	Count  int64   `json:"count"`
	Mean   float64 `json:"mean,omitempty"`
	Max    int64   `json:"max,omitempty"`
	P95Ms  float64 `json:"p95_ms,omitempty"`
	MeanMs float64 `json:"mean_ms,omitempty"`
}

// Snapshot lists every metric sorted by name.
func (r *Recorder) Snapshot() []Metric {
	snapshot := make([]Metric, 0)
	r.registry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case metrics.Counter:
			snapshot = append(snapshot, Metric{Name: name, Count: m.Count()})
		case metrics.Timer:
			t := m.Snapshot()
			snapshot = append(snapshot, Metric{
				Name:   name,
				Count:  t.Count(),
				MeanMs: t.Mean() / float64(time.Millisecond),
				P95Ms:  t.Percentile(0.95) / float64(time.Millisecond),
			})
		case metrics.Histogram:
			h := m.Snapshot()
			snapshot = append(snapshot, Metric{Name: name, Count: h.Count(), Mean: h.Mean(), Max: h.Max()})
		}
	})
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].Name < snapshot[j].Name })
	return snapshot
}

// Close unregisters every metric.
func (r *Recorder) Close() {
	r.registry.UnregisterAll()
}
