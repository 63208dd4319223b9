package pokemon

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	domain "github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
)

type listEntry struct {
	id   int
	name string
}

// List builds one page of the Pokédex. A type filter replaces a generation
// filter when both are given. Any upstream failure fails the whole listing.
func (s *Service) List(ctx context.Context, q domain.ListQuery) (domain.ListResult, error) {
	q = NormalizeQuery(q)

	base, err := s.baseList(ctx, q)
	if err != nil {
		return domain.ListResult{}, err
	}

	filtered := filterByName(base, q.Search)
	sortEntries(filtered, q.Sort, q.Order)

	page := paginate(filtered, q.Page, q.Limit)
	data := make([]domain.Summary, 0, len(page))
	for _, e := range page {
		data = append(data, domain.Summary{ID: e.id, Name: e.name, SpriteURL: domain.ListSpriteURL(e.id)})
	}

	logging.FromContext(ctx, s.logger).Debug("listing built",
		logging.Count(len(data)),
		"total", len(filtered),
	)

	return domain.ListResult{
		CurrentPage: q.Page,
		TotalData:   len(filtered),
		Data:        data,
	}, nil
}

func (s *Service) baseList(ctx context.Context, q domain.ListQuery) ([]listEntry, error) {
	var base []listEntry
	if q.Generation != "" {
		species, err := s.data.FetchGeneration(ctx, q.Generation)
		if err != nil {
			return nil, fmt.Errorf("fetch generation %s: %w", q.Generation, err)
		}
		base = toEntries(species)
	}
	if len(q.Types) > 0 {
		members, err := s.typeIntersection(ctx, q.Types)
		if err != nil {
			return nil, err
		}
		base = members
	}
	if q.Generation == "" && len(q.Types) == 0 {
		all, err := s.data.FetchCatalog(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch catalog: %w", err)
		}
		base = toEntries(all)
	}
	return base, nil
}

// typeIntersection fetches every type concurrently and keeps the members of
// the first type that appear in all the others, in the first type's order.
func (s *Service) typeIntersection(ctx context.Context, types []string) ([]listEntry, error) {
	results := make([][]listEntry, len(types))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range types {
		g.Go(func() error {
			members, err := s.data.FetchType(gctx, t)
			if err != nil {
				return fmt.Errorf("fetch type %s: %w", t, err)
			}
			results[i] = toEntries(members)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := results[0]
	for _, other := range results[1:] {
		ids := make(map[int]struct{}, len(other))
		for _, e := range other {
			ids[e.id] = struct{}{}
		}
		kept := make([]listEntry, 0, len(out))
		for _, e := range out {
			if _, ok := ids[e.id]; ok {
				kept = append(kept, e)
			}
		}
		out = kept
	}
	return out, nil
}

// toEntries drops resources whose locator carries no numeric id.
func toEntries(in []domain.NamedResource) []listEntry {
	out := make([]listEntry, 0, len(in))
	for _, r := range in {
		id, ok := domain.ResourceID(r.URL)
		if !ok {
			continue
		}
		out = append(out, listEntry{id: id, name: r.Name})
	}
	return out
}

func filterByName(in []listEntry, search string) []listEntry {
	if search == "" {
		return in
	}
	needle := strings.ToLower(search)
	out := make([]listEntry, 0, len(in))
	for _, e := range in {
		if strings.Contains(strings.ToLower(e.name), needle) {
			out = append(out, e)
		}
	}
	return out
}

func sortEntries(entries []listEntry, field domain.SortField, order domain.SortOrder) {
	var cmp func(a, b listEntry) int
	if field == domain.SortByName {
		// Collators keep internal buffers, so each sort gets its own.
		col := collate.New(language.English)
		cmp = func(a, b listEntry) int { return col.CompareString(a.name, b.name) }
	} else {
		cmp = func(a, b listEntry) int { return a.id - b.id }
	}
	if order == domain.OrderDesc {
		asc := cmp
		cmp = func(a, b listEntry) int { return asc(b, a) }
	}
	slices.SortStableFunc(entries, cmp)
}

// paginate returns entries[(page-1)*limit : page*limit] clamped to bounds.
func paginate(entries []listEntry, page, limit int) []listEntry {
	total := len(entries)
	if page-1 > total/limit {
		return nil
	}
	start := (page - 1) * limit
	end := start + min(limit, total-start)
	return entries[start:end]
}
