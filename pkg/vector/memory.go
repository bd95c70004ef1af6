package vector

import (
	"context"
	"math"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store. Used in tests and when no external
// vector store is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	points map[int]Point
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{points: make(map[int]Point)}
}

func (s *MemoryStore) Upsert(_ context.Context, point Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points[point.ID] = point
	return nil
}

func (s *MemoryStore) Query(_ context.Context, vector []float32, topK int, minScore float64) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []Match
	for _, p := range s.points {
		score := cosine(vector, p.Vector)
		if score >= minScore {
			matches = append(matches, Match{ID: p.ID, Score: score, Payload: p.Payload})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.points, id)
	return nil
}

// Len returns the number of stored points.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.points)
}

// cosine computes cosine similarity; zero or mismatched vectors score 0.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
