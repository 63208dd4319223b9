package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

// StubPokemonProvider is a test double for providers.PokemonProvider. Lists are
// keyed by generation id or type name; a missing key returns MissingErr.
type StubPokemonProvider struct {
	Record      pokemon.Record
	Species     pokemon.Species
	Chain       pokemon.EvolutionNode
	Generations map[string][]pokemon.NamedResource
	Types       map[string][]pokemon.NamedResource
	Catalog     []pokemon.NamedResource

	PokemonErr    error
	SpeciesErr    error
	ChainErr      error
	CatalogErr    error
	MissingErr    error
	PokemonCalls  atomic.Int32
	SpeciesCalls  atomic.Int32
	ChainCalls    atomic.Int32
	ListCalls     atomic.Int32
	mu            sync.Mutex
	requestedURLs []string
}

func (s *StubPokemonProvider) FetchPokemon(ctx context.Context, id string) (pokemon.Record, error) {
	s.PokemonCalls.Add(1)
	return s.Record, s.PokemonErr
}

func (s *StubPokemonProvider) FetchSpecies(ctx context.Context, url string) (pokemon.Species, error) {
	s.SpeciesCalls.Add(1)
	s.track(url)
	return s.Species, s.SpeciesErr
}

func (s *StubPokemonProvider) FetchEvolutionChain(ctx context.Context, url string) (pokemon.EvolutionNode, error) {
	s.ChainCalls.Add(1)
	s.track(url)
	return s.Chain, s.ChainErr
}

func (s *StubPokemonProvider) FetchGeneration(ctx context.Context, id string) ([]pokemon.NamedResource, error) {
	s.ListCalls.Add(1)
	list, ok := s.Generations[id]
	if !ok {
		return nil, s.MissingErr
	}
	return list, nil
}

func (s *StubPokemonProvider) FetchType(ctx context.Context, name string) ([]pokemon.NamedResource, error) {
	s.ListCalls.Add(1)
	list, ok := s.Types[name]
	if !ok {
		return nil, s.MissingErr
	}
	return list, nil
}

func (s *StubPokemonProvider) FetchCatalog(ctx context.Context) ([]pokemon.NamedResource, error) {
	s.ListCalls.Add(1)
	return s.Catalog, s.CatalogErr
}

// RequestedURLs returns the species and chain locators fetched so far.
func (s *StubPokemonProvider) RequestedURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestedURLs...)
}

func (s *StubPokemonProvider) track(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestedURLs = append(s.requestedURLs, url)
}

// StubCardProvider returns Card and Err. When Block is set the call waits for
// it to close or for ctx to end.
type StubCardProvider struct {
	Card  *pokemon.CardInfo
	Err   error
	Block chan struct{}
	Calls atomic.Int32
}

func (s *StubCardProvider) FetchCard(ctx context.Context, name string) (*pokemon.CardInfo, error) {
	s.Calls.Add(1)
	if err := wait(ctx, s.Block); err != nil {
		return nil, err
	}
	return s.Card, s.Err
}

// StubRecommendationProvider returns Recommendation and Err, honouring Block
// the same way as StubCardProvider.
type StubRecommendationProvider struct {
	Recommendation pokemon.Recommendation
	Err            error
	Block          chan struct{}
	Calls          atomic.Int32
}

func (s *StubRecommendationProvider) FetchRecommendation(ctx context.Context, name string, types []string) (pokemon.Recommendation, error) {
	s.Calls.Add(1)
	if err := wait(ctx, s.Block); err != nil {
		return pokemon.Recommendation{}, err
	}
	return s.Recommendation, s.Err
}

func wait(ctx context.Context, block chan struct{}) error {
	if block == nil {
		return nil
	}
	select {
	case <-block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
