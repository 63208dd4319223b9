package pokeapi

type namedAPIResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Stats []struct {
		BaseStat int              `json:"base_stat"`
		Stat     namedAPIResource `json:"stat"`
	} `json:"stats"`
	Types []struct {
		Slot int              `json:"slot"`
		Type namedAPIResource `json:"type"`
	} `json:"types"`
	Forms   []namedAPIResource `json:"forms"`
	Species namedAPIResource   `json:"species"`
}

type speciesResponse struct {
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	Varieties []struct {
		IsDefault bool             `json:"is_default"`
		Pokemon   namedAPIResource `json:"pokemon"`
	} `json:"varieties"`
}

type chainLink struct {
	Species   namedAPIResource `json:"species"`
	EvolvesTo []chainLink      `json:"evolves_to"`
}

type evolutionChainResponse struct {
	ID    int       `json:"id"`
	Chain chainLink `json:"chain"`
}

type generationResponse struct {
	PokemonSpecies []namedAPIResource `json:"pokemon_species"`
}

type typeResponse struct {
	Pokemon []struct {
		Slot    int              `json:"slot"`
		Pokemon namedAPIResource `json:"pokemon"`
	} `json:"pokemon"`
}

type listResponse struct {
	Count   int                `json:"count"`
	Results []namedAPIResource `json:"results"`
}
