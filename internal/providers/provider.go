package providers

import (
	"context"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

// PokemonProvider fetches Pokémon, species, evolution chains and the collections
// the listing is built from. Species and evolution chains are addressed by the
// absolute locators embedded in earlier responses.
type PokemonProvider interface {
	FetchPokemon(ctx context.Context, id string) (pokemon.Record, error)
	FetchSpecies(ctx context.Context, url string) (pokemon.Species, error)
	FetchEvolutionChain(ctx context.Context, url string) (pokemon.EvolutionNode, error)
	FetchGeneration(ctx context.Context, id string) ([]pokemon.NamedResource, error)
	FetchType(ctx context.Context, name string) ([]pokemon.NamedResource, error)
	FetchCatalog(ctx context.Context) ([]pokemon.NamedResource, error)
}

// CardProvider looks up a trading card by Pokémon name. A nil card with a nil
// error means no card matched.
type CardProvider interface {
	FetchCard(ctx context.Context, name string) (*pokemon.CardInfo, error)
}

// RecommendationProvider asks for a competitive recommendation.
type RecommendationProvider interface {
	FetchRecommendation(ctx context.Context, name string, types []string) (pokemon.Recommendation, error)
}
