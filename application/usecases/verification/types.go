package verification

import "errors"

// Input errors reject the request outright, no record is written.
// Precondition errors mean a referenced record or its face data is missing.
var (
	ErrUndecodableImage = errors.New("submitted payload is not a decodable image")
	ErrRecordNotFound   = errors.New("record not found")
	ErrFaceDataMissing  = errors.New("record carries no usable face data")
)

type DocumentExtractionInput struct {
	Image           string
	AdditionalPages []string
	FileName        string
}

type LivenessAssessmentInput struct {
	Image string
}

type FaceMatchInput struct {
	DocumentID string
	LivenessID string
}
