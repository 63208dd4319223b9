package gemini

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

// ErrNoJSON is returned when model output carries no JSON object.
var ErrNoJSON = errors.New("gemini: no json object in output")

type recommendationPayload struct {
	Role           string   `json:"role"`
	SuggestedMoves []string `json:"suggestedMoves"`
	Nature         string   `json:"nature"`
}

// ParseRecommendation decodes a recommendation from free-form model text.
// Markdown fences and surrounding prose are tolerated; missing fields take
// the default recommendation's values.
func ParseRecommendation(text string) (pokemon.Recommendation, error) {
	raw, ok := extractObject(stripFences(text))
	if !ok {
		return pokemon.Recommendation{}, ErrNoJSON
	}

	var payload recommendationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return pokemon.Recommendation{}, err
	}

	rec := pokemon.DefaultRecommendation()
	if role := strings.TrimSpace(payload.Role); role != "" {
		rec.Role = role
	}
	if nature := strings.TrimSpace(payload.Nature); nature != "" {
		rec.Nature = nature
	}
	if payload.SuggestedMoves != nil {
		rec.SuggestedMoves = payload.SuggestedMoves
	}
	return rec, nil
}

// RecommendationOrDefault never fails: unparseable text yields the default.
func RecommendationOrDefault(text string) pokemon.Recommendation {
	rec, err := ParseRecommendation(text)
	if err != nil {
		return pokemon.DefaultRecommendation()
	}
	return rec
}

func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// extractObject cuts the first balanced {...} value out of s, honouring
// string literals so braces inside move names do not confuse it.
func extractObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
