package types

import "context"

// TextRecognizerType is the optical-recognition capability: pixel buffer in,
// recognized text spans with per-span confidence out.
type TextRecognizerType interface {
	RecognizeText(ctx context.Context, image []byte) (*RecognitionResult, error)
}

type TextSpan struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"` // 0-100
}

type RecognitionResult struct {
	FullText string     `json:"full_text"`
	Spans    []TextSpan `json:"spans"`
}

// MeanConfidence is the average confidence across all recognized spans, or
// 0 when nothing was recognized.
func (r *RecognitionResult) MeanConfidence() float64 {
	if len(r.Spans) == 0 {
		return 0
	}
	total := 0.0
	for _, span := range r.Spans {
		total += span.Confidence
	}
	return total / float64(len(r.Spans))
}

type RecognitionRequest struct {
	Image string `json:"image"`
}
