package pokemon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
	"github.com/preston-bernstein/pokedex-service/internal/teststubs"
	"github.com/preston-bernstein/pokedex-service/internal/testutil"
)

func catalog(names ...string) []domain.NamedResource {
	out := make([]domain.NamedResource, 0, len(names))
	for i, n := range names {
		out = append(out, testutil.SampleResource("pokemon", n, i+1))
	}
	return out
}

func listService(data *teststubs.StubPokemonProvider) *Service {
	return NewService(data, nil, nil, nil, nil)
}

func ids(result domain.ListResult) []int {
	out := make([]int, 0, len(result.Data))
	for _, s := range result.Data {
		out = append(out, s.ID)
	}
	return out
}

func TestListCatalogDefaults(t *testing.T) {
	data := &teststubs.StubPokemonProvider{Catalog: catalog("bulbasaur", "ivysaur", "venusaur")}

	result, err := listService(data).List(context.Background(), domain.ListQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 3, result.TotalData)
	assert.Equal(t, []domain.Summary{
		{ID: 1, Name: "bulbasaur", SpriteURL: domain.ListSpriteURL(1)},
		{ID: 2, Name: "ivysaur", SpriteURL: domain.ListSpriteURL(2)},
		{ID: 3, Name: "venusaur", SpriteURL: domain.ListSpriteURL(3)},
	}, result.Data)
}

func TestListSortsIDsNumerically(t *testing.T) {
	data := &teststubs.StubPokemonProvider{Catalog: []domain.NamedResource{
		testutil.SampleResource("pokemon", "pikachu", 25),
		testutil.SampleResource("pokemon", "charizard-mega-x", 10034),
		testutil.SampleResource("pokemon", "charmander", 4),
	}}
	svc := listService(data)

	asc, err := svc.List(context.Background(), domain.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 25, 10034}, ids(asc))

	desc, err := svc.List(context.Background(), domain.ListQuery{Order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []int{10034, 25, 4}, ids(desc))
}

func TestListSortsNamesWithCollation(t *testing.T) {
	data := &teststubs.StubPokemonProvider{Catalog: catalog("Zubat", "abra", "Beedrill", "éevee")}
	svc := listService(data)

	asc, err := svc.List(context.Background(), domain.ListQuery{Sort: domain.SortByName})
	require.NoError(t, err)
	names := make([]string, 0, len(asc.Data))
	for _, s := range asc.Data {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"abra", "Beedrill", "éevee", "Zubat"}, names)

	desc, err := svc.List(context.Background(), domain.ListQuery{Sort: domain.SortByName, Order: domain.OrderDesc})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3, 2}, ids(desc))
}

func TestListSortIsStableForTies(t *testing.T) {
	data := &teststubs.StubPokemonProvider{Catalog: []domain.NamedResource{
		testutil.SampleResource("pokemon", "unown", 201),
		testutil.SampleResource("pokemon", "unown", 10001),
		testutil.SampleResource("pokemon", "abra", 63),
	}}
	svc := listService(data)

	asc, err := svc.List(context.Background(), domain.ListQuery{Sort: domain.SortByName})
	require.NoError(t, err)
	assert.Equal(t, []int{63, 201, 10001}, ids(asc))

	desc, err := svc.List(context.Background(), domain.ListQuery{Sort: domain.SortByName, Order: domain.OrderDesc})
	require.NoError(t, err)
	assert.Equal(t, []int{201, 10001, 63}, ids(desc))
}

func TestListUnknownSortFallsBackToID(t *testing.T) {
	data := &teststubs.StubPokemonProvider{Catalog: []domain.NamedResource{
		testutil.SampleResource("pokemon", "abra", 63),
		testutil.SampleResource("pokemon", "zubat", 41),
	}}

	result, err := listService(data).List(context.Background(), domain.ListQuery{Sort: "weight"})
	require.NoError(t, err)
	assert.Equal(t, []int{41, 63}, ids(result))
}

func TestListSearchIsCaseInsensitiveSubstring(t *testing.T) {
	data := &teststubs.StubPokemonProvider{Catalog: catalog("Charmander", "charmeleon", "charizard", "pikachu", "")}
	svc := listService(data)

	result, err := svc.List(context.Background(), domain.ListQuery{Search: "CHARM"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalData)
	assert.Equal(t, []int{1, 2}, ids(result))

	all, err := svc.List(context.Background(), domain.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 5, all.TotalData, "entries without names are kept when not searching")
}

func TestListContractExamples(t *testing.T) {
	cases := []struct {
		name      string
		catalog   []string
		query     domain.ListQuery
		wantNames []string
		wantTotal int
	}{
		{
			name:      "page 1 limit 1 over two items",
			catalog:   []string{"pikachu", "bulbasaur"},
			query:     domain.ListQuery{Page: 1, Limit: 1},
			wantNames: []string{"pikachu"},
			wantTotal: 2,
		},
		{
			name:      "search pika",
			catalog:   []string{"pikachu", "bulbasaur"},
			query:     domain.ListQuery{Search: "pika"},
			wantNames: []string{"pikachu"},
			wantTotal: 1,
		},
		{
			name:      "search PIKA",
			catalog:   []string{"pikachu", "bulbasaur"},
			query:     domain.ListQuery{Search: "PIKA"},
			wantNames: []string{"pikachu"},
			wantTotal: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := &teststubs.StubPokemonProvider{Catalog: catalog(tc.catalog...)}

			result, err := listService(data).List(context.Background(), tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, result.TotalData)
			names := make([]string, 0, len(result.Data))
			for _, s := range result.Data {
				names = append(names, s.Name)
			}
			assert.Equal(t, tc.wantNames, names)
		})
	}
}

func TestListPagination(t *testing.T) {
	names := make([]string, 0, 45)
	for i := 0; i < 45; i++ {
		names = append(names, "mon")
	}
	data := &teststubs.StubPokemonProvider{Catalog: catalog(names...)}
	svc := listService(data)

	page3, err := svc.List(context.Background(), domain.ListQuery{Page: 3, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 3, page3.CurrentPage)
	assert.Equal(t, 45, page3.TotalData)
	assert.Equal(t, []int{41, 42, 43, 44, 45}, ids(page3))

	beyond, err := svc.List(context.Background(), domain.ListQuery{Page: 4, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 45, beyond.TotalData)
	assert.NotNil(t, beyond.Data)
	assert.Empty(t, beyond.Data)

	huge, err := svc.List(context.Background(), domain.ListQuery{Page: 1 << 40, Limit: 1 << 40})
	require.NoError(t, err)
	assert.Empty(t, huge.Data)
}

func TestListExactPageBoundary(t *testing.T) {
	data := &teststubs.StubPokemonProvider{Catalog: catalog("a", "b", "c", "d")}
	svc := listService(data)

	second, err := svc.List(context.Background(), domain.ListQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, ids(second))

	third, err := svc.List(context.Background(), domain.ListQuery{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, third.Data)
}

func TestListGenerationFilter(t *testing.T) {
	data := &teststubs.StubPokemonProvider{
		Generations: map[string][]domain.NamedResource{
			"1": {testutil.SampleResource("pokemon-species", "bulbasaur", 1), testutil.SampleResource("pokemon-species", "mew", 151)},
		},
	}

	result, err := listService(data).List(context.Background(), domain.ListQuery{Generation: "1"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 151}, ids(result))
	assert.Equal(t, "mew", result.Data[1].Name)
}

func TestListTypeIntersectionKeepsFirstTypeOrder(t *testing.T) {
	data := &teststubs.StubPokemonProvider{
		Types: map[string][]domain.NamedResource{
			"flying": {
				testutil.SampleResource("pokemon", "charizard", 6),
				testutil.SampleResource("pokemon", "pidgey", 16),
				testutil.SampleResource("pokemon", "zubat", 41),
			},
			"poison": {
				testutil.SampleResource("pokemon", "zubat", 41),
				testutil.SampleResource("pokemon", "bulbasaur", 1),
			},
		},
		MissingErr: providers.ErrNotFound,
	}

	result, err := listService(data).List(context.Background(), domain.ListQuery{Types: []string{"flying", "poison"}})
	require.NoError(t, err)
	assert.Equal(t, []domain.Summary{{ID: 41, Name: "zubat", SpriteURL: domain.ListSpriteURL(41)}}, result.Data)
}

func TestListTypeFilterOverridesGeneration(t *testing.T) {
	data := &teststubs.StubPokemonProvider{
		Generations: map[string][]domain.NamedResource{
			"1": {testutil.SampleResource("pokemon-species", "bulbasaur", 1)},
		},
		Types: map[string][]domain.NamedResource{
			"dragon": {testutil.SampleResource("pokemon", "dratini", 147), testutil.SampleResource("pokemon", "garchomp", 445)},
		},
	}

	result, err := listService(data).List(context.Background(), domain.ListQuery{Generation: "1", Types: []string{"dragon"}})
	require.NoError(t, err)
	assert.Equal(t, []int{147, 445}, ids(result))
	assert.EqualValues(t, 2, data.ListCalls.Load(), "generation is still fetched before being replaced")
}

func TestListDropsEntriesWithoutNumericID(t *testing.T) {
	data := &teststubs.StubPokemonProvider{Catalog: []domain.NamedResource{
		{Name: "broken", URL: "https://pokeapi.co/api/v2/pokemon/"},
		testutil.SampleResource("pokemon", "mew", 151),
	}}

	result, err := listService(data).List(context.Background(), domain.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalData)
}

func TestListUpstreamFailureFailsWholeListing(t *testing.T) {
	boom := errors.New("pokeapi down")

	_, err := listService(&teststubs.StubPokemonProvider{CatalogErr: boom}).
		List(context.Background(), domain.ListQuery{})
	assert.ErrorIs(t, err, boom)

	_, err = listService(&teststubs.StubPokemonProvider{MissingErr: providers.ErrNotFound}).
		List(context.Background(), domain.ListQuery{Generation: "99"})
	assert.ErrorIs(t, err, providers.ErrNotFound)

	data := &teststubs.StubPokemonProvider{
		Types:      map[string][]domain.NamedResource{"fire": {testutil.SampleResource("pokemon", "charmander", 4)}},
		MissingErr: boom,
	}
	_, err = listService(data).List(context.Background(), domain.ListQuery{Types: []string{"fire", "shadow"}})
	assert.ErrorIs(t, err, boom)
}
