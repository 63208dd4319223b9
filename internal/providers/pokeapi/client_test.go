package pokeapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// routeClient serves canned bodies keyed by request path (plus query when present).
func routeClient(t *testing.T, routes map[string]string, seen *[]string) *Client {
	t.Helper()
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		key := req.URL.Path
		if req.URL.RawQuery != "" {
			key += "?" + req.URL.RawQuery
		}
		if seen != nil {
			*seen = append(*seen, key)
		}
		body, ok := routes[key]
		if !ok {
			return jsonResponse(http.StatusNotFound, "Not Found"), nil
		}
		return jsonResponse(http.StatusOK, body), nil
	})
	return NewClient(Config{
		BaseURL:    "http://example.com/api/v2/",
		HTTPClient: &http.Client{Transport: rt},
	})
}

const pikachuBody = `{
	"id": 25,
	"name": "pikachu",
	"sprites": {"front_default": "https://sprites.example/25.png"},
	"stats": [
		{"base_stat": 35, "stat": {"name": "hp", "url": "https://pokeapi.co/api/v2/stat/1/"}},
		{"base_stat": 90, "stat": {"name": "speed", "url": "https://pokeapi.co/api/v2/stat/6/"}}
	],
	"types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
	"forms": [{"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon-form/25/"}],
	"species": {"name": "pikachu", "url": "http://example.com/api/v2/pokemon-species/25/"}
}`

func TestFetchPokemonMapsRecord(t *testing.T) {
	var seen []string
	client := routeClient(t, map[string]string{"/api/v2/pokemon/25": pikachuBody}, &seen)

	record, err := client.FetchPokemon(context.Background(), "25")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(seen) != 1 || seen[0] != "/api/v2/pokemon/25" {
		t.Fatalf("unexpected requests %v", seen)
	}
	if record.ID != 25 || record.Name != "pikachu" || record.SpriteURL != "https://sprites.example/25.png" {
		t.Fatalf("unexpected record %+v", record)
	}
	if len(record.Stats) != 2 || record.Stats[1].Name != "speed" || record.Stats[1].BaseStat != 90 {
		t.Fatalf("unexpected stats %+v", record.Stats)
	}
	if len(record.Types) != 1 || record.Types[0] != "electric" {
		t.Fatalf("unexpected types %+v", record.Types)
	}
	if len(record.Forms) != 1 || record.Forms[0].Name != "pikachu" {
		t.Fatalf("unexpected forms %+v", record.Forms)
	}
	if record.Species.URL != "http://example.com/api/v2/pokemon-species/25/" {
		t.Fatalf("unexpected species ref %+v", record.Species)
	}
}

func TestFetchSpeciesAndChainFollowEmbeddedLocators(t *testing.T) {
	client := routeClient(t, map[string]string{
		"/api/v2/pokemon-species/133/": `{
			"evolution_chain": {"url": "https://pokeapi.co/api/v2/evolution-chain/67/"},
			"varieties": [{"is_default": true, "pokemon": {"name": "eevee", "url": "https://pokeapi.co/api/v2/pokemon/133/"}},
			              {"is_default": false, "pokemon": {"name": "eevee-gmax", "url": "https://pokeapi.co/api/v2/pokemon/10205/"}}]
		}`,
		"/api/v2/evolution-chain/67/": `{
			"id": 67,
			"chain": {
				"species": {"name": "eevee", "url": "https://pokeapi.co/api/v2/pokemon-species/133/"},
				"evolves_to": [
					{"species": {"name": "vaporeon", "url": "https://pokeapi.co/api/v2/pokemon-species/134/"}, "evolves_to": []},
					{"species": {"name": "jolteon", "url": "https://pokeapi.co/api/v2/pokemon-species/135/"}, "evolves_to": []}
				]
			}
		}`,
	}, nil)

	species, err := client.FetchSpecies(context.Background(), "https://pokeapi.co/api/v2/pokemon-species/133/")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if species.EvolutionChainURL != "https://pokeapi.co/api/v2/evolution-chain/67/" {
		t.Fatalf("unexpected chain url %s", species.EvolutionChainURL)
	}
	if len(species.Varieties) != 2 || species.Varieties[1].Name != "eevee-gmax" {
		t.Fatalf("unexpected varieties %+v", species.Varieties)
	}

	root, err := client.FetchEvolutionChain(context.Background(), species.EvolutionChainURL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if root.SpeciesName != "eevee" || len(root.Children) != 2 || root.Children[1].SpeciesName != "jolteon" {
		t.Fatalf("unexpected chain %+v", root)
	}
	if root.Children[0].Children != nil {
		t.Fatalf("expected leaf nodes to carry no children")
	}
}

func TestFetchCollections(t *testing.T) {
	var seen []string
	client := routeClient(t, map[string]string{
		"/api/v2/generation/1": `{"pokemon_species": [{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon-species/1/"}]}`,
		"/api/v2/type/fire":    `{"pokemon": [{"slot": 1, "pokemon": {"name": "charmander", "url": "https://pokeapi.co/api/v2/pokemon/4/"}}]}`,
		"/api/v2/pokemon?limit=100000&offset=0": `{"count": 2, "results": [
			{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
			{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"}
		]}`,
	}, &seen)
	ctx := context.Background()

	gen, err := client.FetchGeneration(ctx, "1")
	if err != nil || len(gen) != 1 || gen[0].Name != "bulbasaur" {
		t.Fatalf("unexpected generation result %+v %v", gen, err)
	}
	typ, err := client.FetchType(ctx, "fire")
	if err != nil || len(typ) != 1 || typ[0].URL != "https://pokeapi.co/api/v2/pokemon/4/" {
		t.Fatalf("unexpected type result %+v %v", typ, err)
	}
	cat, err := client.FetchCatalog(ctx)
	if err != nil || len(cat) != 2 || cat[1].Name != "ivysaur" {
		t.Fatalf("unexpected catalog result %+v %v", cat, err)
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 requests, got %v", seen)
	}
}

func TestFetchPokemonHandlesNotFound(t *testing.T) {
	client := routeClient(t, map[string]string{}, nil)

	_, err := client.FetchPokemon(context.Background(), "99999")
	if err == nil {
		t.Fatal("expected error on 404 response")
	}
	if !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	upErr, ok := providers.AsUpstreamError(err)
	if !ok || upErr.Provider != providerName || upErr.Message != "Not Found" {
		t.Fatalf("unexpected upstream error %+v", upErr)
	}
}

func TestFetchHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "boom"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchType(context.Background(), "fire")
	if err == nil {
		t.Fatal("expected error on non-200 response")
	}
	if errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected 502 not to be reported as not found")
	}
}

func TestFetchHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{bad json"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchCatalog(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchPropagatesTransportError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchGeneration(context.Background(), "1"); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", httpClient.Timeout)
	}
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
}
