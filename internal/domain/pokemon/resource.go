package pokemon

import (
	"strconv"
	"strings"
)

const (
	spriteBaseURL  = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
	artworkBaseURL = spriteBaseURL + "/other/official-artwork"
)

// ResourceID extracts the trailing numeric path segment of an upstream locator,
// e.g. https://pokeapi.co/api/v2/pokemon-species/25/ yields 25.
func ResourceID(url string) (int, bool) {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")
	if trimmed == "" {
		return 0, false
	}
	segment := trimmed
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		segment = trimmed[idx+1:]
	}
	id, err := strconv.Atoi(segment)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListSpriteURL is the small front sprite used on listings.
func ListSpriteURL(id int) string {
	return spriteBaseURL + "/" + strconv.Itoa(id) + ".png"
}

// ArtworkURL is the official artwork used for evolution lines and forms.
func ArtworkURL(id int) string {
	return artworkBaseURL + "/" + strconv.Itoa(id) + ".png"
}

// ArtworkForURL derives the artwork URL from a resource locator, or "" when the
// locator carries no id.
func ArtworkForURL(url string) string {
	id, ok := ResourceID(url)
	if !ok {
		return ""
	}
	return ArtworkURL(id)
}
