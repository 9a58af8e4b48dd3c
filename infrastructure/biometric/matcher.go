package biometric

import (
	"errors"
	"math"
)

var (
	ErrEmptyEmbedding        = errors.New("embedding is empty")
	ErrEmbeddingSizeMismatch = errors.New("embeddings have different dimensions")
)

// MatchResult is the outcome of comparing two face embeddings against a
// distance threshold.
type MatchResult struct {
	Distance      float64
	Score         float64
	Passed        bool
	ThresholdUsed float64
}

// MatchDistance is the Euclidean distance between two embeddings.
func MatchDistance(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyEmbedding
	}
	if len(a) != len(b) {
		return 0, ErrEmbeddingSizeMismatch
	}
	total := 0.0
	for i := range a {
		diff := a[i] - b[i]
		total += diff * diff
	}
	return math.Sqrt(total), nil
}

// MatchScore maps a non-negative distance to a similarity in (0, 1],
// monotonically decreasing, with distance 0 mapping to exactly 1.
func MatchScore(distance float64) float64 {
	return 1 / (1 + distance)
}

// CompareEmbeddings computes distance and score and applies the threshold.
// Identical embedding pairs always yield identical results.
func CompareEmbeddings(a, b []float64, threshold float64) (*MatchResult, error) {
	distance, err := MatchDistance(a, b)
	if err != nil {
		return nil, err
	}
	return &MatchResult{
		Distance:      distance,
		Score:         MatchScore(distance),
		Passed:        distance <= threshold,
		ThresholdUsed: threshold,
	}, nil
}
