package entities

import (
	"time"

	"veriface.io/application/utils"
)

// LivenessRecord is the persisted result of one live-capture liveness
// check. Immutable once created.
type LivenessRecord struct {
	LivenessScore  float64       `bson:"livenessScore" json:"livenessScore"`
	LivenessPassed bool          `bson:"livenessPassed" json:"livenessPassed"`
	QualityChecks  QualityChecks `bson:"qualityChecks" json:"qualityChecks"`
	LiveFaceImage  []byte        `bson:"liveFaceImage,omitempty" json:"-"`
	FaceEmbedding  []float64     `bson:"faceEmbedding,omitempty" json:"-"`
	ThresholdUsed  float64       `bson:"thresholdUsed" json:"thresholdUsed"`
	FailureReason  *string       `bson:"failureReason,omitempty" json:"failureReason,omitempty"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (model LivenessRecord) ParseModel() any {
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	return &model
}

func (model LivenessRecord) RecordID() string {
	return model.ID
}

func (model LivenessRecord) HasFaceData() bool {
	return len(model.LiveFaceImage) > 0 && len(model.FaceEmbedding) > 0
}
