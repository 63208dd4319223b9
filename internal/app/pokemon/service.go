package pokemon

import (
	"log/slog"

	"github.com/preston-bernstein/pokedex-service/internal/metrics"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

const (
	lookupCard           = "card"
	lookupRecommendation = "recommendation"
)

// Service builds listings and enriched detail documents from the providers.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	data    providers.PokemonProvider
	cards   providers.CardProvider
	recs    providers.RecommendationProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService wires the providers. Missing card or recommendation providers are
// replaced with disabled ones so detail requests always degrade to fallbacks.
func NewService(
	data providers.PokemonProvider,
	cards providers.CardProvider,
	recs providers.RecommendationProvider,
	logger *slog.Logger,
	recorder *metrics.Recorder,
) *Service {
	if cards == nil {
		cards = providers.DisabledCards{}
	}
	if recs == nil {
		recs = providers.DisabledRecommendations{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		data:    data,
		cards:   cards,
		recs:    recs,
		logger:  logger,
		metrics: recorder,
	}
}
