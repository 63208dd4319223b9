package pokemon

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	domain "github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
)

// Detail assembles the enriched document for one Pokémon. The base record,
// species and evolution chain are required; the card and recommendation are
// optional and fall back to nil and the default recommendation.
func (s *Service) Detail(ctx context.Context, id string) (domain.Detail, error) {
	record, err := s.data.FetchPokemon(ctx, id)
	if err != nil {
		return domain.Detail{}, fmt.Errorf("fetch pokemon %s: %w", id, err)
	}
	species, err := s.data.FetchSpecies(ctx, record.Species.URL)
	if err != nil {
		return domain.Detail{}, fmt.Errorf("fetch species for %s: %w", record.Name, err)
	}
	chain, err := s.data.FetchEvolutionChain(ctx, species.EvolutionChainURL)
	if err != nil {
		return domain.Detail{}, fmt.Errorf("fetch evolution chain for %s: %w", record.Name, err)
	}

	forms := ClassifyForms(record.Forms, species.Varieties)
	card, rec := s.enrich(ctx, record)

	types := make([]string, 0, len(record.Types))
	types = append(types, record.Types...)
	stats := make(map[string]int, len(record.Stats))
	for _, st := range record.Stats {
		stats[st.Name] = st.BaseStat
	}

	return domain.Detail{
		ID:              record.ID,
		Name:            record.Name,
		SpriteURL:       record.SpriteURL,
		Types:           types,
		Stats:           stats,
		EvolutionLine:   ResolveLineage(chain),
		MegaForms:       forms.Mega,
		GigantamaxForms: forms.Gigantamax,
		Card:            card,
		Recommendation:  rec,
	}, nil
}

// enrich runs the card and recommendation lookups concurrently and waits for
// both to settle. Neither goroutine returns an error; failures become fallbacks.
func (s *Service) enrich(ctx context.Context, record domain.Record) (*domain.CardInfo, domain.Recommendation) {
	logger := logging.FromContext(ctx, s.logger).With(logging.PokemonID(record.ID))

	var (
		card *domain.CardInfo
		rec  = domain.DefaultRecommendation()
		g    errgroup.Group
	)

	g.Go(func() error {
		c, err := s.cards.FetchCard(ctx, record.Name)
		if err != nil {
			logging.Degraded(logger, lookupCard, err)
			s.metrics.RecordEnrichmentDegraded(lookupCard)
			return nil
		}
		card = c
		return nil
	})

	g.Go(func() error {
		r, err := s.recs.FetchRecommendation(ctx, record.Name, record.Types)
		if err != nil {
			logging.Degraded(logger, lookupRecommendation, err)
			s.metrics.RecordEnrichmentDegraded(lookupRecommendation)
			return nil
		}
		if r.SuggestedMoves == nil {
			r.SuggestedMoves = []string{}
		}
		rec = r
		return nil
	})

	_ = g.Wait()
	return card, rec
}
