package fixture

import (
	"fmt"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

const apiBase = "https://pokeapi.co/api/v2"

type entry struct {
	id         int
	name       string
	types      []string
	stats      [6]int
	generation int
	chain      int
	varieties  []variety
}

type variety struct {
	id   int
	name string
}

type chainLink struct {
	speciesID int
	evolvesTo []chainLink
}

var statNames = [6]string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

var entries = []entry{
	{id: 1, name: "bulbasaur", types: []string{"grass", "poison"}, stats: [6]int{45, 49, 49, 65, 65, 45}, generation: 1, chain: 1},
	{id: 2, name: "ivysaur", types: []string{"grass", "poison"}, stats: [6]int{60, 62, 63, 80, 80, 60}, generation: 1, chain: 1},
	{id: 3, name: "venusaur", types: []string{"grass", "poison"}, stats: [6]int{80, 82, 83, 100, 100, 80}, generation: 1, chain: 1,
		varieties: []variety{{10033, "venusaur-mega"}, {10195, "venusaur-gmax"}}},
	{id: 4, name: "charmander", types: []string{"fire"}, stats: [6]int{39, 52, 43, 60, 50, 65}, generation: 1, chain: 2},
	{id: 5, name: "charmeleon", types: []string{"fire"}, stats: [6]int{58, 64, 58, 80, 65, 80}, generation: 1, chain: 2},
	{id: 6, name: "charizard", types: []string{"fire", "flying"}, stats: [6]int{78, 84, 78, 109, 85, 100}, generation: 1, chain: 2,
		varieties: []variety{{10034, "charizard-mega-x"}, {10035, "charizard-mega-y"}, {10196, "charizard-gmax"}}},
	{id: 25, name: "pikachu", types: []string{"electric"}, stats: [6]int{35, 55, 40, 50, 50, 90}, generation: 1, chain: 10,
		varieties: []variety{{10199, "pikachu-gmax"}}},
	{id: 26, name: "raichu", types: []string{"electric"}, stats: [6]int{60, 90, 55, 90, 80, 110}, generation: 1, chain: 10},
	{id: 133, name: "eevee", types: []string{"normal"}, stats: [6]int{55, 55, 50, 45, 65, 55}, generation: 1, chain: 67,
		varieties: []variety{{10205, "eevee-gmax"}}},
	{id: 134, name: "vaporeon", types: []string{"water"}, stats: [6]int{130, 65, 60, 110, 95, 65}, generation: 1, chain: 67},
	{id: 135, name: "jolteon", types: []string{"electric"}, stats: [6]int{65, 65, 60, 110, 95, 130}, generation: 1, chain: 67},
	{id: 136, name: "flareon", types: []string{"fire"}, stats: [6]int{65, 130, 60, 95, 110, 65}, generation: 1, chain: 67},
	{id: 172, name: "pichu", types: []string{"electric"}, stats: [6]int{20, 40, 15, 35, 35, 60}, generation: 2, chain: 10},
}

var chains = map[int]chainLink{
	1:  {speciesID: 1, evolvesTo: []chainLink{{speciesID: 2, evolvesTo: []chainLink{{speciesID: 3}}}}},
	2:  {speciesID: 4, evolvesTo: []chainLink{{speciesID: 5, evolvesTo: []chainLink{{speciesID: 6}}}}},
	10: {speciesID: 172, evolvesTo: []chainLink{{speciesID: 25, evolvesTo: []chainLink{{speciesID: 26}}}}},
	67: {speciesID: 133, evolvesTo: []chainLink{{speciesID: 134}, {speciesID: 135}, {speciesID: 136}}},
}

var cards = map[string]pokemon.CardInfo{
	"pikachu": {
		Name:      "Pikachu",
		ImageURL:  "https://images.pokemontcg.io/base1/58_hires.png",
		Rarity:    "Common",
		HP:        "40",
		Supertype: "Pokémon",
	},
	"charizard": {
		Name:      "Charizard",
		ImageURL:  "https://images.pokemontcg.io/base1/4_hires.png",
		Rarity:    "Rare Holo",
		HP:        "120",
		Supertype: "Pokémon",
	},
}

var roleByType = map[string]pokemon.Recommendation{
	"fire":     {Role: "Special Sweeper", SuggestedMoves: []string{"Flamethrower", "Air Slash", "Roost", "Focus Blast"}, Nature: "Timid"},
	"grass":    {Role: "Bulky Support", SuggestedMoves: []string{"Giga Drain", "Sludge Bomb", "Sleep Powder", "Synthesis"}, Nature: "Bold"},
	"electric": {Role: "Fast Pivot", SuggestedMoves: []string{"Thunderbolt", "Volt Switch", "Grass Knot", "Protect"}, Nature: "Timid"},
	"water":    {Role: "Special Wall", SuggestedMoves: []string{"Scald", "Wish", "Protect", "Haze"}, Nature: "Calm"},
}

func pokemonURL(id int) string { return fmt.Sprintf("%s/pokemon/%d/", apiBase, id) }
func formURL(id int) string    { return fmt.Sprintf("%s/pokemon-form/%d/", apiBase, id) }
func speciesURL(id int) string { return fmt.Sprintf("%s/pokemon-species/%d/", apiBase, id) }
func chainURL(id int) string   { return fmt.Sprintf("%s/evolution-chain/%d/", apiBase, id) }
