// Package vector indexes processed documents in a vector store and
// answers similarity queries for the document-link stage.
package vector

import "context"

// Point is one stored vector with its payload.
type Point struct {
	ID      int            `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload"`
}

// Match is one similarity query result.
type Match struct {
	ID      int            `json:"id"`
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}

// Store persists vectors and answers nearest-neighbor queries.
type Store interface {
	// Upsert writes or replaces the point with the given id.
	Upsert(ctx context.Context, point Point) error

	// Query returns up to topK matches with cosine score >= minScore,
	// best first.
	Query(ctx context.Context, vector []float32, topK int, minScore float64) ([]Match, error)

	// Delete removes the point with the given id, if present.
	Delete(ctx context.Context, id int) error
}
