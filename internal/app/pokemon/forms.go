package pokemon

import (
	"strings"

	domain "github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

const (
	megaMarker = "mega"
	gmaxMarker = "gmax"
)

// Forms groups the alternate forms shown on a detail page.
type Forms struct {
	Mega       []domain.Sprite
	Gigantamax []domain.Sprite
}

// ClassifyForms picks mega forms from forms then varieties, and gigantamax
// forms from varieties only. Matching is a case-sensitive substring test.
func ClassifyForms(forms, varieties []domain.NamedResource) Forms {
	out := Forms{
		Mega:       make([]domain.Sprite, 0),
		Gigantamax: make([]domain.Sprite, 0),
	}
	out.Mega = appendMatching(out.Mega, forms, megaMarker)
	out.Mega = appendMatching(out.Mega, varieties, megaMarker)
	out.Gigantamax = appendMatching(out.Gigantamax, varieties, gmaxMarker)
	return out
}

func appendMatching(dst []domain.Sprite, src []domain.NamedResource, marker string) []domain.Sprite {
	for _, r := range src {
		if strings.Contains(r.Name, marker) {
			dst = append(dst, domain.Sprite{Name: r.Name, SpriteURL: domain.ArtworkForURL(r.URL)})
		}
	}
	return dst
}
