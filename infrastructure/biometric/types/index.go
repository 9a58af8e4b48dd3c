package types

import "context"

// FaceEngineType is the face-detection/embedding capability: pixel buffer
// in, zero or more candidate regions out, each with a bounding box and,
// optionally, an embedding vector and a passive liveness probability.
type FaceEngineType interface {
	DetectFaces(ctx context.Context, image []byte) (*DetectionResult, error)
}

type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (b BoundingBox) Area() int {
	return b.Width * b.Height
}

type FaceCandidate struct {
	Box                 BoundingBox `json:"box"`
	Confidence          float64     `json:"confidence"`
	Embedding           []float64   `json:"embedding,omitempty"`
	LivenessProbability *float64    `json:"liveness_probability,omitempty"`
}

type DetectionResult struct {
	Faces []FaceCandidate `json:"faces"`
}

type DetectionRequest struct {
	Image string `json:"image"`
}
