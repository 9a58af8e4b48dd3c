package biometric

import (
	"context"
	"errors"
	"image"
	"testing"

	"veriface.io/infrastructure/biometric/types"
)

type fakeFaceEngine struct {
	result *types.DetectionResult
	err    error
}

func (f *fakeFaceEngine) DetectFaces(ctx context.Context, image []byte) (*types.DetectionResult, error) {
	return f.result, f.err
}

func TestLocateLargestFace(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 640, 480))
	raw := []byte("decoded elsewhere")

	t.Run("picks the largest qualifying candidate", func(t *testing.T) {
		engine := &fakeFaceEngine{result: &types.DetectionResult{Faces: []types.FaceCandidate{
			{Box: types.BoundingBox{X: 10, Y: 10, Width: 120, Height: 120}, Embedding: []float64{0.1}},
			{Box: types.BoundingBox{X: 200, Y: 50, Width: 220, Height: 220}, Embedding: []float64{0.2}},
			{Box: types.BoundingBox{X: 400, Y: 100, Width: 150, Height: 150}, Embedding: []float64{0.3}},
		}}}
		face, err := LocateLargestFace(context.Background(), engine, img, raw, 100)
		if err != nil {
			t.Fatalf("LocateLargestFace() unexpected error = %v", err)
		}
		if face == nil {
			t.Fatal("expected a face, got nil")
		}
		if face.Box.Width != 220 {
			t.Errorf("expected the 220px candidate, got %+v", face.Box)
		}
		if len(face.Crop) == 0 {
			t.Error("expected a non-empty crop")
		}
		if len(face.Embedding) != 1 || face.Embedding[0] != 0.2 {
			t.Errorf("expected the embedding of the chosen candidate, got %v", face.Embedding)
		}
	})

	t.Run("rejects candidates below the minimum size", func(t *testing.T) {
		engine := &fakeFaceEngine{result: &types.DetectionResult{Faces: []types.FaceCandidate{
			{Box: types.BoundingBox{X: 10, Y: 10, Width: 80, Height: 90}},
			{Box: types.BoundingBox{X: 200, Y: 50, Width: 99, Height: 300}},
		}}}
		face, err := LocateLargestFace(context.Background(), engine, img, raw, 100)
		if err != nil {
			t.Fatalf("LocateLargestFace() unexpected error = %v", err)
		}
		if face != nil {
			t.Errorf("expected no qualifying face, got %+v", face.Box)
		}
	})

	t.Run("no faces is a normal empty result", func(t *testing.T) {
		engine := &fakeFaceEngine{result: &types.DetectionResult{}}
		face, err := LocateLargestFace(context.Background(), engine, img, raw, 100)
		if err != nil {
			t.Fatalf("LocateLargestFace() unexpected error = %v", err)
		}
		if face != nil {
			t.Error("expected nil face for an empty detection result")
		}
	})

	t.Run("propagates engine failures", func(t *testing.T) {
		engine := &fakeFaceEngine{err: errors.New("engine offline")}
		_, err := LocateLargestFace(context.Background(), engine, img, raw, 100)
		if err == nil {
			t.Error("expected the engine error to propagate")
		}
	})

	t.Run("deterministic for the same detection output", func(t *testing.T) {
		engine := &fakeFaceEngine{result: &types.DetectionResult{Faces: []types.FaceCandidate{
			{Box: types.BoundingBox{X: 0, Y: 0, Width: 150, Height: 150}, Embedding: []float64{1}},
			{Box: types.BoundingBox{X: 300, Y: 0, Width: 150, Height: 150}, Embedding: []float64{2}},
		}}}
		first, _ := LocateLargestFace(context.Background(), engine, img, raw, 100)
		second, _ := LocateLargestFace(context.Background(), engine, img, raw, 100)
		if first.Embedding[0] != second.Embedding[0] {
			t.Error("expected the same face to be chosen on every run")
		}
	})
}
