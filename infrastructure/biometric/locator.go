package biometric

import (
	"context"
	"image"

	"veriface.io/infrastructure/biometric/types"
	"veriface.io/infrastructure/imaging"
	"veriface.io/infrastructure/logger"
)

// LocatedFace is the largest qualifying face found in an image: its crop as
// jpeg bytes, its embedding, and the region it came from.
type LocatedFace struct {
	Crop                []byte
	Embedding           []float64
	Box                 types.BoundingBox
	LivenessProbability *float64
}

// LocateLargestFace runs the face engine over the raw image bytes and picks
// the candidate with the largest bounding-box area, rejecting any candidate
// smaller than minFaceSize on either side. A nil result with a nil error
// means no qualifying face was found, which is a normal outcome — the
// caller decides whether that is fatal to its own stage.
func LocateLargestFace(ctx context.Context, engine types.FaceEngineType, img image.Image, raw []byte, minFaceSize int) (*LocatedFace, error) {
	detection, err := engine.DetectFaces(ctx, raw)
	if err != nil {
		return nil, err
	}
	if detection == nil || len(detection.Faces) == 0 {
		return nil, nil
	}

	var best *types.FaceCandidate
	for i := range detection.Faces {
		candidate := &detection.Faces[i]
		if candidate.Box.Width < minFaceSize || candidate.Box.Height < minFaceSize {
			continue
		}
		if best == nil || candidate.Box.Area() > best.Box.Area() {
			best = candidate
		}
	}
	if best == nil {
		logger.Info("faces detected but none met the minimum size", logger.LoggerOptions{
			Key:  "candidates",
			Data: len(detection.Faces),
		}, logger.LoggerOptions{
			Key:  "minFaceSize",
			Data: minFaceSize,
		})
		return nil, nil
	}

	rect := image.Rect(best.Box.X, best.Box.Y, best.Box.X+best.Box.Width, best.Box.Y+best.Box.Height)
	crop, err := imaging.EncodeJPEG(imaging.Crop(img, rect))
	if err != nil {
		return nil, err
	}

	return &LocatedFace{
		Crop:                crop,
		Embedding:           best.Embedding,
		Box:                 best.Box,
		LivenessProbability: best.LivenessProbability,
	}, nil
}

// CropImage returns the decoded face region for a located face.
func (f *LocatedFace) CropImage(img image.Image) image.Image {
	rect := image.Rect(f.Box.X, f.Box.Y, f.Box.X+f.Box.Width, f.Box.Y+f.Box.Height)
	return imaging.Crop(img, rect)
}
