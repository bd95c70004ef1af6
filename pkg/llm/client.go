// Package llm adapts configured model providers behind a streaming
// chunk-channel interface and parses their output into typed results.
package llm

import (
	"context"
	"strings"
)

// ChunkType discriminates streamed generation chunks.
type ChunkType string

// Chunk types.
const (
	ChunkTypeText  ChunkType = "text"
	ChunkTypeUsage ChunkType = "usage"
	ChunkTypeError ChunkType = "error"
)

// Chunk is one streamed piece of a generation.
type Chunk struct {
	Type  ChunkType
	Text  string
	Usage *Usage
	Err   string
}

// Usage reports token consumption for one generation.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Request is one generation request. The model and sampling options come
// from the client's provider configuration.
type Request struct {
	System string
	Prompt string
}

// Client generates text from a single configured provider. One client
// instance per model role.
type Client interface {
	// Generate starts a generation and returns a channel of chunks. The
	// channel closes when the generation completes, errors, or the
	// context is canceled. Errors during streaming arrive as an error
	// chunk before close.
	Generate(ctx context.Context, req Request) (<-chan Chunk, error)

	// Model returns the provider's model name, for logging.
	Model() string
}

// Embedder produces embedding vectors for semantic search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Complete runs a generation to completion and returns the concatenated
// text. The non-streaming path used by every pipeline stage.
func Complete(ctx context.Context, c Client, req Request) (string, error) {
	chunks, err := c.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for chunk := range chunks {
		switch chunk.Type {
		case ChunkTypeText:
			sb.WriteString(chunk.Text)
		case ChunkTypeError:
			return "", &GenerationError{Model: c.Model(), Message: chunk.Err}
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
