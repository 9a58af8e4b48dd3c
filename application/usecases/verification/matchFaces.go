package verification

import (
	"context"
	"fmt"
	"time"

	"veriface.io/application/config"
	"veriface.io/application/repository"
	"veriface.io/application/utils"
	"veriface.io/entities"
	"veriface.io/infrastructure/biometric"
)

// MatchFaces compares the face on a stored document record against the face
// from a stored liveness record and persists the immutable outcome. Both
// referenced records must exist and carry usable face data before any
// comparison runs; a missing reference never produces a zero-score match.
func MatchFaces(ctx context.Context, input FaceMatchInput) (*entities.MatchRecord, int64, error) {
	started := time.Now()
	cfg := config.Snapshot()

	document, err := repository.DocumentRecordRepo().FindByID(ctx, input.DocumentID)
	if err != nil {
		return nil, 0, err
	}
	if document == nil {
		return nil, 0, fmt.Errorf("document record %s: %w", input.DocumentID, ErrRecordNotFound)
	}
	liveness, err := repository.LivenessRecordRepo().FindByID(ctx, input.LivenessID)
	if err != nil {
		return nil, 0, err
	}
	if liveness == nil {
		return nil, 0, fmt.Errorf("liveness record %s: %w", input.LivenessID, ErrRecordNotFound)
	}

	if !document.HasFaceData() {
		return nil, 0, fmt.Errorf("document record %s: %w", input.DocumentID, ErrFaceDataMissing)
	}
	if !liveness.HasFaceData() {
		return nil, 0, fmt.Errorf("liveness record %s: %w", input.LivenessID, ErrFaceDataMissing)
	}

	result, err := biometric.CompareEmbeddings(document.FaceEmbedding, liveness.FaceEmbedding, cfg.MatchDistanceThreshold)
	if err != nil {
		return nil, 0, err
	}

	record := entities.MatchRecord{
		ID:            utils.GenerateULIDString(),
		DocumentID:    input.DocumentID,
		LivenessID:    input.LivenessID,
		MatchScore:    result.Score,
		MatchDistance: result.Distance,
		MatchPassed:   result.Passed,
		ThresholdUsed: result.ThresholdUsed,
	}
	created, err := repository.MatchRecordRepo().CreateOne(ctx, record)
	if err != nil {
		return nil, 0, err
	}
	cacheRecord("match", created.ID, created)
	notifyRecordWritten("match", created.ID, entities.RecordStatusCompleted, utils.GetBooleanPointer(created.MatchPassed))
	return created, time.Since(started).Milliseconds(), nil
}
