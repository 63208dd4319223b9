package metrics

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/preston-bernstein/pokedex-service"

// Attribute keys attached to exported series.
const (
	AttrMethod   = "http.request.method"
	AttrRoute    = "http.route"
	AttrStatus   = "http.response.status_code"
	AttrUpstream = "upstream"
	AttrLookup   = "lookup"
)

type otelInstruments struct {
	ctx              context.Context
	requests         metric.Int64Counter
	requestDuration  metric.Float64Histogram
	upstreamCalls    metric.Int64Counter
	upstreamFailures metric.Int64Counter
	upstreamDuration metric.Float64Histogram
	degradedLookups  metric.Int64Counter
}

// instrumentSet collects creation errors so construction reads as a list.
type instrumentSet struct {
	meter metric.Meter
	errs  []error
}

func (s *instrumentSet) counter(name, description string) metric.Int64Counter {
	c, err := s.meter.Int64Counter(name, metric.WithDescription(description))
	s.errs = append(s.errs, err)
	return c
}

func (s *instrumentSet) histogram(name, description string) metric.Float64Histogram {
	h, err := s.meter.Float64Histogram(name, metric.WithDescription(description), metric.WithUnit("ms"))
	s.errs = append(s.errs, err)
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	set := &instrumentSet{meter: provider.Meter(meterName)}
	inst := &otelInstruments{
		ctx:              context.Background(),
		requests:         set.counter("pokedex.http.requests", "HTTP requests served, by route and status."),
		requestDuration:  set.histogram("pokedex.http.request.duration", "HTTP request latency."),
		upstreamCalls:    set.counter("pokedex.upstream.calls", "Calls made to PokeAPI, the card API and the recommendation model."),
		upstreamFailures: set.counter("pokedex.upstream.failures", "Upstream calls that returned an error."),
		upstreamDuration: set.histogram("pokedex.upstream.duration", "Upstream call latency."),
		degradedLookups:  set.counter("pokedex.enrichment.degraded", "Card or recommendation lookups replaced by their fallback."),
	}
	if err := errors.Join(set.errs...); err != nil {
		return nil, err
	}
	return inst, nil
}

func (o *otelInstruments) httpRequest(method, route string, status int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrRoute, route),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.requestDuration.Record(o.ctx, milliseconds(duration), attrs)
}

func (o *otelInstruments) upstreamCall(upstream string, duration time.Duration, failed bool) {
	attrs := metric.WithAttributes(attribute.String(AttrUpstream, upstream))
	o.upstreamCalls.Add(o.ctx, 1, attrs)
	o.upstreamDuration.Record(o.ctx, milliseconds(duration), attrs)
	if failed {
		o.upstreamFailures.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) degraded(lookup string) {
	o.degradedLookups.Add(o.ctx, 1, metric.WithAttributes(attribute.String(AttrLookup, lookup)))
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
