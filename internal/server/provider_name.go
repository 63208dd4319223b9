package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/pokedex-service/internal/providers"
	"github.com/preston-bernstein/pokedex-service/internal/providers/fixture"
	"github.com/preston-bernstein/pokedex-service/internal/providers/gemini"
	"github.com/preston-bernstein/pokedex-service/internal/providers/pokeapi"
	"github.com/preston-bernstein/pokedex-service/internal/providers/tcg"
)

// normalizeProviderName returns a lower-cased provider name, deriving it from the
// instance when not explicitly configured. Used for metric and log labels.
func normalizeProviderName(raw string, provider any) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	switch provider.(type) {
	case nil:
		return "provider"
	case *fixture.Provider:
		return providerFixture
	case *pokeapi.Client:
		return providerPokeAPI
	case *tcg.Client:
		return providerTCG
	case *gemini.Client:
		return providerGemini
	case providers.DisabledCards, providers.DisabledRecommendations:
		return "disabled"
	default:
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
}
