package verification

import (
	"context"
	"fmt"
	"image"
	"time"

	"veriface.io/application/config"
	"veriface.io/application/repository"
	"veriface.io/application/services/extraction"
	"veriface.io/application/utils"
	"veriface.io/entities"
	"veriface.io/infrastructure/biometric"
	"veriface.io/infrastructure/imaging"
	"veriface.io/infrastructure/logger"
	"veriface.io/infrastructure/ocr"
)

type documentPage struct {
	raw []byte
	img image.Image
}

// ExtractDocument runs the document pipeline end to end: decode, recognize,
// parse, locate the portrait and persist the immutable result record. The
// returned duration is the total processing time in milliseconds.
//
// An undecodable page rejects the whole request and writes nothing. A page
// that decodes but carries no recognizable document still produces a failed
// record, and a recognizer or face engine outage produces a failed record
// naming the cause.
func ExtractDocument(ctx context.Context, input DocumentExtractionInput) (*entities.DocumentRecord, int64, error) {
	started := time.Now()
	cfg := config.Snapshot()

	pages, format, totalSize, err := decodePages(input)
	if err != nil {
		return nil, 0, err
	}

	stageCtx, cancel := context.WithTimeout(ctx, cfg.StageTimeout)
	defer cancel()

	engine := &extraction.Engine{Recognizer: ocr.TextRecognizer, Config: cfg}

	var best *extraction.ExtractionResult
	bestPage := 0
	var capabilityFailure error
	for i, page := range pages {
		result, err := engine.ExtractPage(stageCtx, page.raw)
		if err != nil {
			capabilityFailure = err
			break
		}
		if best == nil || result.ConfidenceScore > best.ConfidenceScore {
			best = result
			bestPage = i
		}
	}

	fileName := input.FileName
	if fileName == "" {
		fileName = "document." + format
	}
	record := entities.DocumentRecord{
		ID: utils.GenerateULIDString(),
		SourceFile: entities.SourceFile{
			FileName:  fileName,
			Format:    format,
			Size:      totalSize,
			PageCount: len(pages),
		},
	}

	if capabilityFailure != nil {
		logger.Error("document extraction capability failure", logger.LoggerOptions{
			Key:  "error",
			Data: capabilityFailure,
		})
		record.DocumentType = entities.DocumentTypeUnknown
		record.Status = entities.RecordStatusFailed
		record.FailureReason = utils.GetStringPointer(capabilityFailure.Error())
	} else {
		record.DocumentType = best.DocumentType
		record.ExtractedFields = best.Fields
		record.ConfidenceScore = best.ConfidenceScore
		record.Status = best.Status
		record.FailureReason = best.FailureReason

		if best.Status != entities.RecordStatusFailed {
			attachPortrait(stageCtx, &record, pages[bestPage], cfg)
		}
	}

	now := time.Now()
	record.ProcessedAt = &now

	if key := archiveArtifact(ctx, "document", record.ID, fileName, pages[0].raw, "image/"+format); key != "" {
		record.SourceFile.StorageKey = key
	}

	created, err := repository.DocumentRecordRepo().CreateOne(ctx, record)
	if err != nil {
		return nil, 0, err
	}
	cacheRecord("document", created.ID, created)
	notifyRecordWritten("document", created.ID, created.Status, nil)
	return created, time.Since(started).Milliseconds(), nil
}

// attachPortrait locates the document holder's portrait on the best page.
// A missing portrait downgrades a completed extraction to partial; a face
// engine outage fails the record.
func attachPortrait(ctx context.Context, record *entities.DocumentRecord, page documentPage, cfg config.VerificationConfig) {
	face, err := biometric.LocateLargestFace(ctx, biometric.FaceEngine, page.img, page.raw, cfg.MinFaceSize)
	if err != nil {
		logger.Error("portrait location capability failure", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		record.Status = entities.RecordStatusFailed
		record.FailureReason = utils.GetStringPointer(err.Error())
		return
	}
	if face == nil {
		if record.Status == entities.RecordStatusCompleted {
			record.Status = entities.RecordStatusPartial
		}
		return
	}
	record.FaceImage = face.Crop
	record.FaceEmbedding = face.Embedding
}

func decodePages(input DocumentExtractionInput) ([]documentPage, string, int64, error) {
	encoded := append([]string{input.Image}, input.AdditionalPages...)
	pages := make([]documentPage, 0, len(encoded))
	format := ""
	var totalSize int64
	for i, payload := range encoded {
		raw, err := utils.DecodeBase64Image(payload)
		if err != nil {
			return nil, "", 0, fmt.Errorf("page %d: %w", i+1, ErrUndecodableImage)
		}
		img, pageFormat, err := imaging.Decode(raw)
		if err != nil {
			return nil, "", 0, fmt.Errorf("page %d: %w", i+1, ErrUndecodableImage)
		}
		if format == "" {
			format = pageFormat
		}
		totalSize += int64(len(raw))
		pages = append(pages, documentPage{raw: raw, img: img})
	}
	return pages, format, totalSize, nil
}
