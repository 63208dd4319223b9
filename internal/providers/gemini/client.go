package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

const (
	providerName = "gemini"
	defaultModel = "gemini-2.5-flash"
)

// ErrEmptyResponse is returned when the model produced no text candidate.
var ErrEmptyResponse = errors.New("gemini: empty response")

// contentGenerator is the slice of *genai.Models the client calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config controls the Gemini recommendation client.
type Config struct {
	APIKey string
	Model  string
}

// Client asks Gemini for a competitive set suggestion.
type Client struct {
	models contentGenerator
	model  string
}

// NewClient builds a Gemini API backed client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini: api key is required")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newClient(cli.Models, cfg.Model), nil
}

func newClient(models contentGenerator, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{models: models, model: model}
}

// FetchRecommendation prompts the model and parses its reply. Transport
// failures and empty replies are returned as errors; unparseable text
// degrades to the default recommendation.
func (c *Client) FetchRecommendation(ctx context.Context, name string, types []string) (pokemon.Recommendation, error) {
	resp, err := c.models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: buildPrompt(name, types)}}}},
		nil,
	)
	if err != nil {
		return pokemon.Recommendation{}, fmt.Errorf("%s: generate content: %w", providerName, err)
	}
	text, ok := firstText(resp)
	if !ok {
		return pokemon.Recommendation{}, ErrEmptyResponse
	}
	return RecommendationOrDefault(text), nil
}

func buildPrompt(name string, types []string) string {
	var b strings.Builder
	b.WriteString("You are a competitive Pokémon coach.\n")
	fmt.Fprintf(&b, "Suggest a recommended competitive moveset, role, and nature for %s, which has type(s): %s.\n",
		name, strings.Join(types, ", "))
	b.WriteString("Provide result as JSON with keys: role, suggestedMoves, nature.")
	return b.String()
}

func firstText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return "", false
	}
	text := content.Parts[0].Text
	return text, strings.TrimSpace(text) != ""
}
