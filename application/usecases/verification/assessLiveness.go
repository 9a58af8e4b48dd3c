package verification

import (
	"context"
	"time"

	"veriface.io/application/config"
	"veriface.io/application/repository"
	"veriface.io/application/utils"
	"veriface.io/entities"
	"veriface.io/infrastructure/biometric"
	"veriface.io/infrastructure/imaging"
	"veriface.io/infrastructure/logger"
)

// AssessLiveness scores a live capture and persists the immutable result.
// No detectable face is a normal negative outcome: the record is written
// with a zero score and passed false.
func AssessLiveness(ctx context.Context, input LivenessAssessmentInput) (*entities.LivenessRecord, int64, error) {
	started := time.Now()
	cfg := config.Snapshot()

	raw, err := utils.DecodeBase64Image(input.Image)
	if err != nil {
		return nil, 0, ErrUndecodableImage
	}
	img, _, err := imaging.Decode(raw)
	if err != nil {
		return nil, 0, ErrUndecodableImage
	}

	stageCtx, cancel := context.WithTimeout(ctx, cfg.StageTimeout)
	defer cancel()

	record := entities.LivenessRecord{
		ID:            utils.GenerateULIDString(),
		ThresholdUsed: cfg.LivenessThreshold(),
	}

	status := entities.RecordStatusCompleted
	face, faceErr := biometric.LocateLargestFace(stageCtx, biometric.FaceEngine, img, raw, cfg.MinFaceSize)
	switch {
	case faceErr != nil:
		logger.Error("liveness capability failure", logger.LoggerOptions{
			Key:  "error",
			Data: faceErr,
		})
		record.FailureReason = utils.GetStringPointer(faceErr.Error())
		status = entities.RecordStatusFailed
	case face == nil:
		record.FailureReason = utils.GetStringPointer("no face detected")
	default:
		assessment := biometric.AssessLiveness(face.CropImage(img), face.LivenessProbability, cfg)
		record.LivenessScore = assessment.Score
		record.LivenessPassed = assessment.Passed
		record.QualityChecks = assessment.Checks
		record.ThresholdUsed = assessment.ThresholdUsed
		record.LiveFaceImage = face.Crop
		record.FaceEmbedding = face.Embedding
	}

	created, err := repository.LivenessRecordRepo().CreateOne(ctx, record)
	if err != nil {
		return nil, 0, err
	}
	cacheRecord("liveness", created.ID, created)
	notifyRecordWritten("liveness", created.ID, status, utils.GetBooleanPointer(created.LivenessPassed))
	return created, time.Since(started).Milliseconds(), nil
}
