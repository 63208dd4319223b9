package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

// Config controls how the PokeAPI client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches Pokémon data from PokeAPI and maps it to domain records.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a PokeAPI client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchPokemon retrieves the base record for an id or name.
func (c *Client) FetchPokemon(ctx context.Context, id string) (pokemon.Record, error) {
	var payload pokemonResponse
	if err := c.getJSON(ctx, c.baseURL+"/pokemon/"+url.PathEscape(id), &payload); err != nil {
		return pokemon.Record{}, err
	}
	return mapPokemon(payload), nil
}

// FetchSpecies follows the species locator embedded in a base record.
func (c *Client) FetchSpecies(ctx context.Context, ref string) (pokemon.Species, error) {
	var payload speciesResponse
	if err := c.getJSON(ctx, resolveURL(c.baseURL, ref), &payload); err != nil {
		return pokemon.Species{}, err
	}
	return mapSpecies(payload), nil
}

// FetchEvolutionChain follows the evolution-chain locator embedded in a species record.
func (c *Client) FetchEvolutionChain(ctx context.Context, ref string) (pokemon.EvolutionNode, error) {
	var payload evolutionChainResponse
	if err := c.getJSON(ctx, resolveURL(c.baseURL, ref), &payload); err != nil {
		return pokemon.EvolutionNode{}, err
	}
	return mapChain(payload.Chain), nil
}

// FetchGeneration lists the species introduced in a generation.
func (c *Client) FetchGeneration(ctx context.Context, id string) ([]pokemon.NamedResource, error) {
	var payload generationResponse
	if err := c.getJSON(ctx, c.baseURL+"/generation/"+url.PathEscape(id), &payload); err != nil {
		return nil, err
	}
	return mapResources(payload.PokemonSpecies), nil
}

// FetchType lists the Pokémon that have a type.
func (c *Client) FetchType(ctx context.Context, name string) ([]pokemon.NamedResource, error) {
	var payload typeResponse
	if err := c.getJSON(ctx, c.baseURL+"/type/"+url.PathEscape(name), &payload); err != nil {
		return nil, err
	}
	return mapTypeMembers(payload), nil
}

// FetchCatalog lists every Pokémon in a single page.
func (c *Client) FetchCatalog(ctx context.Context) ([]pokemon.NamedResource, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(catalogPageSize))
	q.Set("offset", "0")

	var payload listResponse
	if err := c.getJSON(ctx, c.baseURL+"/pokemon?"+q.Encode(), &payload); err != nil {
		return nil, err
	}
	return mapResources(payload.Results), nil
}

func (c *Client) getJSON(ctx context.Context, target string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, req.URL.Path, err)
	}
	return nil
}
