package providers

import (
	"context"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

// DisabledRecommendations stands in when no recommendation backend is configured.
type DisabledRecommendations struct{}

func (DisabledRecommendations) FetchRecommendation(ctx context.Context, name string, types []string) (pokemon.Recommendation, error) {
	return pokemon.Recommendation{}, ErrProviderUnavailable
}

// DisabledCards stands in when no card backend is configured.
type DisabledCards struct{}

func (DisabledCards) FetchCard(ctx context.Context, name string) (*pokemon.CardInfo, error) {
	return nil, ErrProviderUnavailable
}
