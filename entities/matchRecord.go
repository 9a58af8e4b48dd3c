package entities

import (
	"time"

	"veriface.io/application/utils"
)

// MatchRecord links a document record and a liveness record with the
// outcome of comparing their face embeddings. The references are
// lookup-only; a match record must never be created unless both referenced
// records exist and carry usable face data.
type MatchRecord struct {
	DocumentID    string  `bson:"documentID" json:"documentID"`
	LivenessID    string  `bson:"livenessID" json:"livenessID"`
	MatchScore    float64 `bson:"matchScore" json:"matchScore"`
	MatchDistance float64 `bson:"matchDistance" json:"matchDistance"`
	MatchPassed   bool    `bson:"matchPassed" json:"matchPassed"`
	ThresholdUsed float64 `bson:"thresholdUsed" json:"thresholdUsed"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (model MatchRecord) ParseModel() any {
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	return &model
}

func (model MatchRecord) RecordID() string {
	return model.ID
}
