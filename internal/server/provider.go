package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/pokedex-service/internal/config"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
	"github.com/preston-bernstein/pokedex-service/internal/providers/fixture"
	"github.com/preston-bernstein/pokedex-service/internal/providers/gemini"
	"github.com/preston-bernstein/pokedex-service/internal/providers/pokeapi"
	"github.com/preston-bernstein/pokedex-service/internal/providers/tcg"
)

const (
	providerFixture = "fixture"
	providerPokeAPI = "pokeapi"
	providerTCG     = "tcg"
	providerGemini  = "gemini"
)

// providerSet holds one implementation per provider role.
type providerSet struct {
	data  providers.PokemonProvider
	cards providers.CardProvider
	recs  providers.RecommendationProvider
}

// selectProviders picks the upstream clients for the configured provider. The
// fixture mode serves every role offline; pokeapi mode talks to the real APIs
// and only enables recommendations when a Gemini key is configured.
func selectProviders(ctx context.Context, cfg config.Config, logger *slog.Logger) providerSet {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", providerFixture:
		return fixtureSet()
	case providerPokeAPI:
		return providerSet{
			data: pokeapi.NewClient(pokeapi.Config{
				BaseURL: cfg.PokeAPI.BaseURL,
				Timeout: cfg.PokeAPI.Timeout,
			}),
			cards: tcg.NewClient(tcg.Config{
				BaseURL: cfg.TCG.BaseURL,
				APIKey:  cfg.TCG.APIKey,
				Timeout: cfg.TCG.Timeout,
			}),
			recs: selectRecommendations(ctx, cfg.Gemini, logger),
		}
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.Provider(cfg.Provider))
		return fixtureSet()
	}
}

func fixtureSet() providerSet {
	fx := fixture.New()
	return providerSet{data: fx, cards: fx, recs: fx}
}

func selectRecommendations(ctx context.Context, cfg config.GeminiConfig, logger *slog.Logger) providers.RecommendationProvider {
	if cfg.APIKey == "" {
		logging.Info(logger, "gemini api key not set, recommendations use the default")
		return providers.DisabledRecommendations{}
	}
	client, err := gemini.NewClient(ctx, gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model})
	if err != nil {
		logging.Warn(logger, "gemini client unavailable, recommendations use the default", "error", err)
		return providers.DisabledRecommendations{}
	}
	return client
}
