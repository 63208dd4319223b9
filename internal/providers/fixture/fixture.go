package fixture

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

// Provider serves a small deterministic Pokédex for local runs and tests. It
// implements the data, card and recommendation roles.
type Provider struct {
	byID   map[int]entry
	byName map[string]entry
}

// New creates a fixture provider.
func New() *Provider {
	p := &Provider{
		byID:   make(map[int]entry, len(entries)),
		byName: make(map[string]entry, len(entries)),
	}
	for _, e := range entries {
		p.byID[e.id] = e
		p.byName[e.name] = e
	}
	return p
}

// FetchPokemon accepts a numeric id or a lowercase name.
func (p *Provider) FetchPokemon(ctx context.Context, id string) (pokemon.Record, error) {
	e, ok := p.lookup(id)
	if !ok {
		return pokemon.Record{}, notFound("pokemon", id)
	}

	record := pokemon.Record{
		ID:        e.id,
		Name:      e.name,
		SpriteURL: pokemon.ListSpriteURL(e.id),
		Stats:     make([]pokemon.Stat, 0, len(statNames)),
		Types:     append([]string(nil), e.types...),
		Forms:     []pokemon.NamedResource{{Name: e.name, URL: formURL(e.id)}},
		Species:   pokemon.NamedResource{Name: e.name, URL: speciesURL(e.id)},
	}
	for i, name := range statNames {
		record.Stats = append(record.Stats, pokemon.Stat{Name: name, BaseStat: e.stats[i]})
	}
	return record, nil
}

func (p *Provider) FetchSpecies(ctx context.Context, url string) (pokemon.Species, error) {
	id, ok := pokemon.ResourceID(url)
	e, found := p.byID[id]
	if !ok || !found {
		return pokemon.Species{}, notFound("species", url)
	}

	species := pokemon.Species{
		EvolutionChainURL: chainURL(e.chain),
		Varieties:         []pokemon.NamedResource{{Name: e.name, URL: pokemonURL(e.id)}},
	}
	for _, v := range e.varieties {
		species.Varieties = append(species.Varieties, pokemon.NamedResource{Name: v.name, URL: pokemonURL(v.id)})
	}
	return species, nil
}

func (p *Provider) FetchEvolutionChain(ctx context.Context, url string) (pokemon.EvolutionNode, error) {
	id, ok := pokemon.ResourceID(url)
	link, found := chains[id]
	if !ok || !found {
		return pokemon.EvolutionNode{}, notFound("evolution chain", url)
	}
	return p.node(link), nil
}

func (p *Provider) node(link chainLink) pokemon.EvolutionNode {
	n := pokemon.EvolutionNode{
		SpeciesName: p.byID[link.speciesID].name,
		SpeciesURL:  speciesURL(link.speciesID),
	}
	for _, child := range link.evolvesTo {
		n.Children = append(n.Children, p.node(child))
	}
	return n
}

// FetchGeneration returns the species introduced in a numbered generation.
func (p *Provider) FetchGeneration(ctx context.Context, id string) ([]pokemon.NamedResource, error) {
	gen, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return nil, notFound("generation", id)
	}
	out := make([]pokemon.NamedResource, 0)
	for _, e := range entries {
		if e.generation == gen {
			out = append(out, pokemon.NamedResource{Name: e.name, URL: speciesURL(e.id)})
		}
	}
	if len(out) == 0 {
		return nil, notFound("generation", id)
	}
	return out, nil
}

func (p *Provider) FetchType(ctx context.Context, name string) ([]pokemon.NamedResource, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	out := make([]pokemon.NamedResource, 0)
	for _, e := range entries {
		for _, t := range e.types {
			if t == name {
				out = append(out, pokemon.NamedResource{Name: e.name, URL: pokemonURL(e.id)})
				break
			}
		}
	}
	if len(out) == 0 {
		return nil, notFound("type", name)
	}
	return out, nil
}

func (p *Provider) FetchCatalog(ctx context.Context) ([]pokemon.NamedResource, error) {
	out := make([]pokemon.NamedResource, 0, len(entries))
	for _, e := range entries {
		out = append(out, pokemon.NamedResource{Name: e.name, URL: pokemonURL(e.id)})
	}
	return out, nil
}

// FetchCard returns a canned card for a few well known names and nil otherwise.
func (p *Provider) FetchCard(ctx context.Context, name string) (*pokemon.CardInfo, error) {
	card, ok := cards[strings.ToLower(name)]
	if !ok {
		return nil, nil
	}
	return &card, nil
}

// FetchRecommendation picks a set by primary type, falling back to the default.
func (p *Provider) FetchRecommendation(ctx context.Context, name string, types []string) (pokemon.Recommendation, error) {
	if len(types) > 0 {
		if rec, ok := roleByType[types[0]]; ok {
			rec.SuggestedMoves = append([]string(nil), rec.SuggestedMoves...)
			return rec, nil
		}
	}
	return pokemon.DefaultRecommendation(), nil
}

func (p *Provider) lookup(id string) (entry, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if n, err := strconv.Atoi(id); err == nil {
		e, ok := p.byID[n]
		return e, ok
	}
	e, ok := p.byName[id]
	return e, ok
}

func notFound(kind, ref string) error {
	return fmt.Errorf("fixture: %s %q: %w", kind, ref, providers.ErrNotFound)
}
