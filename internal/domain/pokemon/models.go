package pokemon

// SortField selects the key used to order listings.
type SortField string

// SortOrder selects ascending or descending listings.
type SortOrder string

const (
	SortByID   SortField = "id"
	SortByName SortField = "name"

	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"
)

// Summary is a single listing entry.
type Summary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SpriteURL string `json:"spriteUrl"`
}

// ListQuery carries the filters, ordering and pagination of a listing request.
type ListQuery struct {
	Generation string
	Types      []string
	Search     string
	Sort       SortField
	Order      SortOrder
	Page       int
	Limit      int
}

// ListResult is the payload returned by GET /pokemon.
type ListResult struct {
	CurrentPage int       `json:"currentPage"`
	TotalData   int       `json:"totalData"`
	Data        []Summary `json:"data"`
}

// Sprite names a species or form together with its artwork.
type Sprite struct {
	Name      string `json:"name"`
	SpriteURL string `json:"spriteUrl"`
}

// CardInfo is the trading-card summary attached to a detail response.
type CardInfo struct {
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	Rarity    string `json:"rarity"`
	HP        string `json:"hp"`
	Supertype string `json:"supertype"`
}

// Recommendation is the competitive suggestion attached to a detail response.
type Recommendation struct {
	Role           string   `json:"role"`
	SuggestedMoves []string `json:"suggestedMoves"`
	Nature         string   `json:"nature"`
}

// DefaultRecommendation is served whenever the recommendation source fails.
func DefaultRecommendation() Recommendation {
	return Recommendation{
		Role:           "Balanced",
		SuggestedMoves: []string{},
		Nature:         "Neutral",
	}
}

// Detail is the enriched document returned by GET /pokemon/{id}.
// Card is nil when the card source is unavailable; Recommendation is always set.
type Detail struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	SpriteURL       string         `json:"spriteUrl"`
	Types           []string       `json:"types"`
	Stats           map[string]int `json:"stats"`
	EvolutionLine   []Sprite       `json:"evolutionLine"`
	MegaForms       []Sprite       `json:"megaForms"`
	GigantamaxForms []Sprite       `json:"gigantamaxForms"`
	Card            *CardInfo      `json:"card"`
	Recommendation  Recommendation `json:"recommendation"`
}
