package metrics

import (
	"sync"
	"time"
)

// sink receives every observation the Recorder sees. The OpenTelemetry
// instruments are the only implementation outside tests.
type sink interface {
	httpRequest(method, route string, status int, duration time.Duration)
	upstreamCall(upstream string, duration time.Duration, failed bool)
	degraded(lookup string)
}

// UpstreamStats is a point-in-time copy of the counters kept for one upstream.
type UpstreamStats struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// Recorder keeps in-process counters for upstream calls, degraded enrichment
// lookups and served routes. A nil *Recorder is valid and records nothing.
type Recorder struct {
	mu       sync.Mutex
	upstream map[string]UpstreamStats
	degraded map[string]int
	routes   map[string]int
	sink     sink
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(s sink) *Recorder {
	return &Recorder{
		upstream: make(map[string]UpstreamStats),
		degraded: make(map[string]int),
		routes:   make(map[string]int),
		sink:     s,
	}
}

// RecordProviderAttempt counts one upstream call and keeps its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.upstream[provider]
	stats.Calls++
	stats.LastCallLatency = duration
	if err != nil {
		stats.Errors++
	}
	r.upstream[provider] = stats
	r.mu.Unlock()

	if r.sink != nil {
		r.sink.upstreamCall(provider, duration, err != nil)
	}
}

// RecordEnrichmentDegraded counts a card or recommendation lookup that was
// replaced by its fallback.
func (r *Recorder) RecordEnrichmentDegraded(lookup string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.degraded[lookup]++
	r.mu.Unlock()

	if r.sink != nil {
		r.sink.degraded(lookup)
	}
}

// RecordHTTPRequest counts a served request against its normalized route.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.routes[route]++
	r.mu.Unlock()

	if r.sink != nil {
		r.sink.httpRequest(method, route, status, duration)
	}
}

// Upstream returns the counters for one upstream; unknown names yield zeros.
func (r *Recorder) Upstream(provider string) UpstreamStats {
	if r == nil {
		return UpstreamStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.upstream[provider]
}

func (r *Recorder) ProviderCalls(provider string) int {
	return r.Upstream(provider).Calls
}

func (r *Recorder) ProviderErrors(provider string) int {
	return r.Upstream(provider).Errors
}

func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Upstream(provider).LastCallLatency
}

// DegradedCount returns how often the given lookup fell back.
func (r *Recorder) DegradedCount(lookup string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.degraded[lookup]
}

// RequestCount returns how many requests were recorded for a route.
func (r *Recorder) RequestCount(route string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.routes[route]
}
