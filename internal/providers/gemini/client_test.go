package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/preston-bernstein/pokedex-service/internal/domain/pokemon"
)

type stubGenerator struct {
	resp     *genai.GenerateContentResponse
	err      error
	model    string
	contents []*genai.Content
}

func (s *stubGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.model = model
	s.contents = contents
	return s.resp, s.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestFetchRecommendationParsesModelOutput(t *testing.T) {
	gen := &stubGenerator{resp: textResponse("```json\n{\"role\":\"Special Sweeper\",\"suggestedMoves\":[\"Flamethrower\"],\"nature\":\"Modest\"}\n```")}
	client := newClient(gen, "")

	rec, err := client.FetchRecommendation(context.Background(), "charizard", []string{"fire", "flying"})
	require.NoError(t, err)
	assert.Equal(t, "Special Sweeper", rec.Role)
	assert.Equal(t, []string{"Flamethrower"}, rec.SuggestedMoves)
	assert.Equal(t, defaultModel, gen.model)

	require.Len(t, gen.contents, 1)
	prompt := gen.contents[0].Parts[0].Text
	assert.True(t, strings.Contains(prompt, "charizard"))
	assert.True(t, strings.Contains(prompt, "fire, flying"))
}

func TestFetchRecommendationDegradesOnUnparseableText(t *testing.T) {
	client := newClient(&stubGenerator{resp: textResponse("no idea")}, "gemini-custom")

	rec, err := client.FetchRecommendation(context.Background(), "ditto", []string{"normal"})
	require.NoError(t, err)
	assert.Equal(t, pokemon.DefaultRecommendation(), rec)
	assert.Equal(t, "gemini-custom", client.model)
}

func TestFetchRecommendationPropagatesTransportError(t *testing.T) {
	boom := errors.New("quota exceeded")
	client := newClient(&stubGenerator{err: boom}, "")

	_, err := client.FetchRecommendation(context.Background(), "mew", []string{"psychic"})
	assert.True(t, errors.Is(err, boom))
}

func TestFetchRecommendationRejectsEmptyResponse(t *testing.T) {
	cases := []*genai.GenerateContentResponse{
		nil,
		{},
		{Candidates: []*genai.Candidate{{}}},
		textResponse("   "),
	}
	for _, resp := range cases {
		client := newClient(&stubGenerator{resp: resp}, "")
		_, err := client.FetchRecommendation(context.Background(), "mew", nil)
		assert.True(t, errors.Is(err, ErrEmptyResponse))
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.Error(t, err)
}
