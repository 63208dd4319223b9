package pokemon

// NamedResource is an upstream name plus the locator used to fetch it.
type NamedResource struct {
	Name string
	URL  string
}

// Stat is a single base stat on an upstream record.
type Stat struct {
	Name     string
	BaseStat int
}

// Record is the base Pokémon as returned by the data provider.
type Record struct {
	ID        int
	Name      string
	SpriteURL string
	Stats     []Stat
	Types     []string
	Forms     []NamedResource
	Species   NamedResource
}

// Species holds the parts of a species record the enrichment needs.
type Species struct {
	EvolutionChainURL string
	Varieties         []NamedResource
}

// EvolutionNode is one node of an upstream evolution chain. The tree is owned by
// the provider and must be treated as read-only.
type EvolutionNode struct {
	SpeciesName string
	SpeciesURL  string
	Children    []EvolutionNode
}
