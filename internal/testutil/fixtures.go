package testutil

import (
	"fmt"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

// SampleResource returns a named resource with a PokeAPI style locator.
func SampleResource(kind, name string, id int) pokemon.NamedResource {
	return pokemon.NamedResource{
		Name: name,
		URL:  fmt.Sprintf("https://pokeapi.co/api/v2/%s/%d/", kind, id),
	}
}

// SampleRecord returns a minimal base record whose species points at the same id.
func SampleRecord(id int, name string) pokemon.Record {
	return pokemon.Record{
		ID:        id,
		Name:      name,
		SpriteURL: pokemon.ListSpriteURL(id),
		Stats:     []pokemon.Stat{{Name: "hp", BaseStat: 50}},
		Types:     []string{"normal"},
		Forms:     []pokemon.NamedResource{SampleResource("pokemon-form", name, id)},
		Species:   SampleResource("pokemon-species", name, id),
	}
}

// SampleSpecies returns a species with the default variety and a chain locator.
func SampleSpecies(id int, name string, chainID int) pokemon.Species {
	return pokemon.Species{
		EvolutionChainURL: fmt.Sprintf("https://pokeapi.co/api/v2/evolution-chain/%d/", chainID),
		Varieties:         []pokemon.NamedResource{SampleResource("pokemon", name, id)},
	}
}

// SampleChain returns a single-node evolution chain.
func SampleChain(id int, name string) pokemon.EvolutionNode {
	return pokemon.EvolutionNode{
		SpeciesName: name,
		SpeciesURL:  SampleResource("pokemon-species", name, id).URL,
	}
}
