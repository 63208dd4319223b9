package server

import (
	"context"
	"log/slog"

	apppokemon "github.com/preston-bernstein/pokedex-service/internal/app/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/config"
	"github.com/preston-bernstein/pokedex-service/internal/metrics"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

// providerFactory assembles the providers with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(ctx context.Context, cfg config.Config) providerSet {
	return f.wrap(selectProviders(ctx, cfg, f.logger))
}

func (f providerFactory) wrap(set providerSet) providerSet {
	return providerSet{
		data:  providers.NewInstrumentedPokemonProvider(set.data, normalizeProviderName("", set.data), f.logger, f.metrics),
		cards: providers.NewInstrumentedCardProvider(set.cards, normalizeProviderName("", set.cards), f.logger, f.metrics),
		recs:  providers.NewInstrumentedRecommendationProvider(set.recs, normalizeProviderName("", set.recs), f.logger, f.metrics),
	}
}

// NewService wires the Pokémon service with the configured providers and an
// in-process recorder. The operator CLI uses it in place of a full Server.
func NewService(ctx context.Context, cfg config.Config, logger *slog.Logger) *apppokemon.Service {
	recorder := metrics.NewRecorder()
	set := newProviderFactory(logger, recorder).build(ctx, cfg)
	return apppokemon.NewService(set.data, set.cards, set.recs, logger, recorder)
}
