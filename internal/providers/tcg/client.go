package tcg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

const (
	providerName       = "tcg"
	defaultBaseURL     = "https://api.pokemontcg.io/v2"
	defaultHTTPTimeout = 3 * time.Second
)

// Config controls how the card client reaches the Pokémon TCG API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client looks up the first trading card matching a Pokémon name.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

type cardsResponse struct {
	Data []struct {
		Name   string `json:"name"`
		Images struct {
			Small string `json:"small"`
			Large string `json:"large"`
		} `json:"images"`
		Rarity    string `json:"rarity"`
		HP        string `json:"hp"`
		Supertype string `json:"supertype"`
	} `json:"data"`
}

// NewClient constructs a card client. The HTTP timeout bounds every lookup.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: doer,
	}
}

// FetchCard returns the first matching card, or nil when nothing matches.
func (c *Client) FetchCard(ctx context.Context, name string) (*pokemon.CardInfo, error) {
	q := url.Values{}
	q.Set("q", "name:"+name)
	q.Set("pageSize", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cards?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload cardsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: decode cards: %w", providerName, err)
	}
	if len(payload.Data) == 0 {
		return nil, nil
	}

	card := payload.Data[0]
	return &pokemon.CardInfo{
		Name:      card.Name,
		ImageURL:  card.Images.Large,
		Rarity:    card.Rarity,
		HP:        card.HP,
		Supertype: card.Supertype,
	}, nil
}
