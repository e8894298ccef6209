// Package llm is the text-generation service boundary. One call, one prompt,
// one raw string back. The client carries no retry or timeout policy; the
// lifecycle controller owns both.
package llm

//go:generate mockgen -destination=mock/mock_client.go -package=llmmock github.com/riftline/encounter-engine/internal/clients/llm Client

import "context"

// Client defines the interface for text generation
type Client interface {
	// Generate resolves a prompt to raw model output.
	// Returns errors.TransportFailure when the call itself fails
	// Returns errors.EmptyResponse when the model returns nothing
	Generate(ctx context.Context, prompt string) (string, error)
}
