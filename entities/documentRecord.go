package entities

import (
	"time"

	"veriface.io/application/utils"
)

// DocumentRecord is the persisted result of one document-extraction
// request. Immutable once created.
type DocumentRecord struct {
	DocumentType    DocumentType      `bson:"documentType" json:"documentType"`
	SourceFile      SourceFile        `bson:"sourceFile" json:"sourceFile"`
	ExtractedFields map[string]string `bson:"extractedFields" json:"extractedFields"`
	FaceImage       []byte            `bson:"faceImage,omitempty" json:"-"`
	FaceEmbedding   []float64         `bson:"faceEmbedding,omitempty" json:"-"`
	ConfidenceScore float64           `bson:"confidenceScore" json:"confidenceScore"`
	Status          RecordStatus      `bson:"status" json:"status"`
	FailureReason   *string           `bson:"failureReason,omitempty" json:"failureReason,omitempty"`
	ProcessedAt     *time.Time        `bson:"processedAt" json:"processedAt"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (model DocumentRecord) ParseModel() any {
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	return &model
}

func (model DocumentRecord) RecordID() string {
	return model.ID
}

// HasFaceData reports whether the record carries a usable face for
// matching.
func (model DocumentRecord) HasFaceData() bool {
	return len(model.FaceImage) > 0 && len(model.FaceEmbedding) > 0
}
