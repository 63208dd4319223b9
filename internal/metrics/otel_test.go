package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledExposesPrometheusMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil || handler == nil || shutdown == nil {
		t.Fatalf("expected recorder, handler and shutdown")
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	rec.RecordHTTPRequest("GET", "/pokemon/:id", 200, time.Millisecond)
	rec.RecordProviderAttempt("pokeapi", time.Millisecond, nil)
	rec.RecordProviderAttempt("tcg", time.Millisecond, errors.New("timeout"))
	rec.RecordEnrichmentDegraded("card")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	for _, name := range []string{
		"pokedex_http_requests",
		"pokedex_upstream_calls",
		"pokedex_upstream_failures",
		"pokedex_enrichment_degraded",
		`service_name="pokedex-service"`,
	} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in scrape output:\n%s", name, body)
		}
	}
}

func TestSetupPropagatesReaderFailure(t *testing.T) {
	original := promReaderFactory
	t.Cleanup(func() { promReaderFactory = original })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry broken")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected error from reader factory")
	}
}

func TestSetupPropagatesOTLPFailure(t *testing.T) {
	original := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = original })
	otlpReaderFactory = func(context.Context, string, bool) (sdkmetric.Reader, error) {
		return nil, errors.New("collector unreachable")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "collector:4318"})
	if err == nil || !strings.Contains(err.Error(), "collector unreachable") {
		t.Fatalf("expected otlp error, got %v", err)
	}
}

func TestInstrumentsRecordUpstreamFailuresOnlyOnError(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	inst, err := newOtelInstruments(provider)
	if err != nil {
		t.Fatalf("instruments: %v", err)
	}
	rec := newRecorder(inst)
	rec.RecordProviderAttempt("gemini", 2*time.Millisecond, nil)
	rec.RecordProviderAttempt("gemini", 3*time.Millisecond, errors.New("quota"))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	sums := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	if sums["pokedex.upstream.calls"] != 2 || sums["pokedex.upstream.failures"] != 1 {
		t.Fatalf("unexpected upstream sums %v", sums)
	}
}
