package pokemon

import (
	"strings"

	domain "github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// NormalizeQuery applies listing defaults. Unknown sort fields fall back to id
// and the order is matched case-insensitively.
func NormalizeQuery(q domain.ListQuery) domain.ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if domain.SortField(strings.ToLower(string(q.Sort))) == domain.SortByName {
		q.Sort = domain.SortByName
	} else {
		q.Sort = domain.SortByID
	}
	if strings.EqualFold(string(q.Order), string(domain.OrderDesc)) {
		q.Order = domain.OrderDesc
	} else {
		q.Order = domain.OrderAsc
	}
	q.Generation = strings.TrimSpace(q.Generation)
	q.Search = strings.TrimSpace(q.Search)
	q.Types = normalizeTypes(q.Types)
	return q
}

// NormalizeID folds a detail id or name to the lowercase form upstream lookups expect.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// SplitTypes parses a comma separated type filter such as "fire,flying".
func SplitTypes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return normalizeTypes(strings.Split(raw, ","))
}

func normalizeTypes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
