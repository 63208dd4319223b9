package pokeapi

import "github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"

func mapResource(r namedAPIResource) pokemon.NamedResource {
	return pokemon.NamedResource{Name: r.Name, URL: r.URL}
}

func mapResources(in []namedAPIResource) []pokemon.NamedResource {
	out := make([]pokemon.NamedResource, 0, len(in))
	for _, r := range in {
		out = append(out, mapResource(r))
	}
	return out
}

func mapPokemon(p pokemonResponse) pokemon.Record {
	record := pokemon.Record{
		ID:        p.ID,
		Name:      p.Name,
		SpriteURL: p.Sprites.FrontDefault,
		Stats:     make([]pokemon.Stat, 0, len(p.Stats)),
		Types:     make([]string, 0, len(p.Types)),
		Forms:     mapResources(p.Forms),
		Species:   mapResource(p.Species),
	}
	for _, s := range p.Stats {
		record.Stats = append(record.Stats, pokemon.Stat{Name: s.Stat.Name, BaseStat: s.BaseStat})
	}
	for _, t := range p.Types {
		record.Types = append(record.Types, t.Type.Name)
	}
	return record
}

func mapSpecies(s speciesResponse) pokemon.Species {
	species := pokemon.Species{
		EvolutionChainURL: s.EvolutionChain.URL,
		Varieties:         make([]pokemon.NamedResource, 0, len(s.Varieties)),
	}
	for _, v := range s.Varieties {
		species.Varieties = append(species.Varieties, mapResource(v.Pokemon))
	}
	return species
}

func mapChain(link chainLink) pokemon.EvolutionNode {
	node := pokemon.EvolutionNode{
		SpeciesName: link.Species.Name,
		SpeciesURL:  link.Species.URL,
	}
	if len(link.EvolvesTo) > 0 {
		node.Children = make([]pokemon.EvolutionNode, 0, len(link.EvolvesTo))
		for _, child := range link.EvolvesTo {
			node.Children = append(node.Children, mapChain(child))
		}
	}
	return node
}

func mapTypeMembers(t typeResponse) []pokemon.NamedResource {
	out := make([]pokemon.NamedResource, 0, len(t.Pokemon))
	for _, p := range t.Pokemon {
		out = append(out, mapResource(p.Pokemon))
	}
	return out
}
