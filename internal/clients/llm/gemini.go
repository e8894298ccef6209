package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/riftline/encounter-engine/internal/errors"
)

// Gemini implements Client against the Gemini generation API
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// GeminiConfig contains configuration for the Gemini client
type GeminiConfig struct {
	APIKey string
	// Model is the model name, e.g. "gemini-2.5-flash".
	Model string
}

// Validate validates the GeminiConfig
func (cfg *GeminiConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	errors.ValidateRequired("Model", cfg.Model, vb)
	return vb.Build()
}

// NewGemini creates a Gemini-backed generation client
func NewGemini(ctx context.Context, cfg *GeminiConfig) (*Gemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeTransportFailure, "failed to create generation client")
	}

	return &Gemini{
		client: client,
		model:  client.GenerativeModel(cfg.Model),
	}, nil
}

// Close releases the underlying client
func (g *Gemini) Close() {
	g.client.Close()
}

// Generate resolves a prompt to raw model output
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeTransportFailure, "generation call failed")
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.EmptyResponse("generation service returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return "", errors.EmptyResponse("generation service returned blank text")
	}
	return out, nil
}
