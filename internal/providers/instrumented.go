package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
	"github.com/preston-bernstein/pokedex-service/internal/metrics"
)

// observer times a single upstream call, feeds the recorder and logs the
// outcome on the request-scoped logger. Calls are never retried.
type observer struct {
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

func newObserver(name string, logger *slog.Logger, recorder *metrics.Recorder) observer {
	return observer{name: name, logger: logger, metrics: recorder, now: time.Now}
}

func (o observer) observe(ctx context.Context, op string, call func() error) error {
	start := o.now()
	err := call()
	elapsed := o.now().Sub(start)
	o.metrics.RecordProviderAttempt(o.name, elapsed, err)

	logger := logging.FromContext(ctx, o.logger)
	if logger == nil {
		return err
	}
	attrs := []any{logging.Provider(o.name), slog.String("operation", op), logging.Elapsed(elapsed)}
	if err != nil {
		logger.WarnContext(ctx, "provider call failed", append(attrs, slog.Any("error", err))...)
		return err
	}
	logger.DebugContext(ctx, "provider call complete", attrs...)
	return nil
}

type instrumentedPokemonProvider struct {
	inner PokemonProvider
	obs   observer
}

// NewInstrumentedPokemonProvider wraps a PokemonProvider with per-call metrics and logging.
func NewInstrumentedPokemonProvider(inner PokemonProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) PokemonProvider {
	return &instrumentedPokemonProvider{inner: inner, obs: newObserver(name, logger, recorder)}
}

func (p *instrumentedPokemonProvider) FetchPokemon(ctx context.Context, id string) (pokemon.Record, error) {
	var out pokemon.Record
	err := p.obs.observe(ctx, "pokemon", func() (err error) {
		out, err = p.inner.FetchPokemon(ctx, id)
		return err
	})
	return out, err
}

func (p *instrumentedPokemonProvider) FetchSpecies(ctx context.Context, url string) (pokemon.Species, error) {
	var out pokemon.Species
	err := p.obs.observe(ctx, "species", func() (err error) {
		out, err = p.inner.FetchSpecies(ctx, url)
		return err
	})
	return out, err
}

func (p *instrumentedPokemonProvider) FetchEvolutionChain(ctx context.Context, url string) (pokemon.EvolutionNode, error) {
	var out pokemon.EvolutionNode
	err := p.obs.observe(ctx, "evolution_chain", func() (err error) {
		out, err = p.inner.FetchEvolutionChain(ctx, url)
		return err
	})
	return out, err
}

func (p *instrumentedPokemonProvider) FetchGeneration(ctx context.Context, id string) ([]pokemon.NamedResource, error) {
	var out []pokemon.NamedResource
	err := p.obs.observe(ctx, "generation", func() (err error) {
		out, err = p.inner.FetchGeneration(ctx, id)
		return err
	})
	return out, err
}

func (p *instrumentedPokemonProvider) FetchType(ctx context.Context, name string) ([]pokemon.NamedResource, error) {
	var out []pokemon.NamedResource
	err := p.obs.observe(ctx, "type", func() (err error) {
		out, err = p.inner.FetchType(ctx, name)
		return err
	})
	return out, err
}

func (p *instrumentedPokemonProvider) FetchCatalog(ctx context.Context) ([]pokemon.NamedResource, error) {
	var out []pokemon.NamedResource
	err := p.obs.observe(ctx, "catalog", func() (err error) {
		out, err = p.inner.FetchCatalog(ctx)
		return err
	})
	return out, err
}

type instrumentedCardProvider struct {
	inner CardProvider
	obs   observer
}

// NewInstrumentedCardProvider wraps a CardProvider with per-call metrics and logging.
func NewInstrumentedCardProvider(inner CardProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) CardProvider {
	return &instrumentedCardProvider{inner: inner, obs: newObserver(name, logger, recorder)}
}

func (p *instrumentedCardProvider) FetchCard(ctx context.Context, name string) (*pokemon.CardInfo, error) {
	var out *pokemon.CardInfo
	err := p.obs.observe(ctx, "card", func() (err error) {
		out, err = p.inner.FetchCard(ctx, name)
		return err
	})
	return out, err
}

type instrumentedRecommendationProvider struct {
	inner RecommendationProvider
	obs   observer
}

// NewInstrumentedRecommendationProvider wraps a RecommendationProvider with per-call metrics and logging.
func NewInstrumentedRecommendationProvider(inner RecommendationProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) RecommendationProvider {
	return &instrumentedRecommendationProvider{inner: inner, obs: newObserver(name, logger, recorder)}
}

func (p *instrumentedRecommendationProvider) FetchRecommendation(ctx context.Context, name string, types []string) (pokemon.Recommendation, error) {
	var out pokemon.Recommendation
	err := p.obs.observe(ctx, "recommendation", func() (err error) {
		out, err = p.inner.FetchRecommendation(ctx, name, types)
		return err
	})
	return out, err
}
