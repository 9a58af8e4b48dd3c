package verification

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"veriface.io/entities"
	"veriface.io/infrastructure/biometric"
	bio_types "veriface.io/infrastructure/biometric/types"
	"veriface.io/infrastructure/ocr"
	ocr_types "veriface.io/infrastructure/ocr/types"
)

const (
	passportLine1 = "P<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<<<<<<<<<"
	passportLine2 = "L898902C36UTO7408122F1204159ZE184226B<<<<<10"
)

type stubRecognizer struct {
	result *ocr_types.RecognitionResult
	err    error
}

func (s *stubRecognizer) RecognizeText(ctx context.Context, image []byte) (*ocr_types.RecognitionResult, error) {
	return s.result, s.err
}

type stubFaceEngine struct {
	result *bio_types.DetectionResult
	err    error
}

func (s *stubFaceEngine) DetectFaces(ctx context.Context, image []byte) (*bio_types.DetectionResult, error) {
	return s.result, s.err
}

func withEngines(t *testing.T, recognizer ocr_types.TextRecognizerType, faceEngine bio_types.FaceEngineType) {
	t.Helper()
	prevRecognizer := ocr.TextRecognizer
	prevFaceEngine := biometric.FaceEngine
	ocr.TextRecognizer = recognizer
	biometric.FaceEngine = faceEngine
	t.Cleanup(func() {
		ocr.TextRecognizer = prevRecognizer
		biometric.FaceEngine = prevFaceEngine
	})
}

func passportRecognition(confidence float64) *ocr_types.RecognitionResult {
	lines := []string{"REPUBLIC OF UTOPIA", passportLine1, passportLine2}
	spans := make([]ocr_types.TextSpan, 0, len(lines))
	for _, line := range lines {
		spans = append(spans, ocr_types.TextSpan{Text: line, Confidence: confidence})
	}
	return &ocr_types.RecognitionResult{FullText: strings.Join(lines, "\n"), Spans: spans}
}

func singleFace(embedding []float64) *bio_types.DetectionResult {
	probability := 0.95
	return &bio_types.DetectionResult{Faces: []bio_types.FaceCandidate{{
		Box:                 bio_types.BoundingBox{X: 0, Y: 0, Width: 150, Height: 150},
		Confidence:          0.99,
		Embedding:           embedding,
		LivenessProbability: &probability,
	}}}
}

// checkerboardPNG produces a sharp, high contrast capture that clears every
// quality gate.
func checkerboardPNG(t *testing.T, size int) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestExtractDocument(t *testing.T) {
	t.Run("repeat submissions yield equivalent records with distinct ids", func(t *testing.T) {
		withEngines(t,
			&stubRecognizer{result: passportRecognition(92)},
			&stubFaceEngine{result: singleFace([]float64{0.1, 0.2, 0.3})})

		input := DocumentExtractionInput{Image: checkerboardPNG(t, 300), FileName: "passport.png"}
		first, firstMS, err := ExtractDocument(context.Background(), input)
		if err != nil {
			t.Fatalf("ExtractDocument() unexpected error = %v", err)
		}
		second, _, err := ExtractDocument(context.Background(), input)
		if err != nil {
			t.Fatalf("ExtractDocument() unexpected error = %v", err)
		}

		if first.Status != entities.RecordStatusCompleted {
			t.Errorf("status = %s, want completed", first.Status)
		}
		if first.DocumentType != entities.DocumentTypePassport {
			t.Errorf("document type = %s, want passport", first.DocumentType)
		}
		if first.ExtractedFields["document_number"] != "L898902C3" {
			t.Errorf("document number = %q", first.ExtractedFields["document_number"])
		}
		if !first.HasFaceData() {
			t.Error("expected the portrait crop and embedding on the record")
		}
		if first.ID == second.ID {
			t.Error("expected distinct record ids for repeat submissions")
		}
		if first.ExtractedFields["full_name"] != second.ExtractedFields["full_name"] {
			t.Error("expected equivalent fields for identical input")
		}
		if firstMS < 0 {
			t.Errorf("duration = %d, want non-negative", firstMS)
		}
	})

	t.Run("unrecognizable document writes a failed record", func(t *testing.T) {
		withEngines(t,
			&stubRecognizer{result: &ocr_types.RecognitionResult{FullText: "GROCERY RECEIPT\nTOTAL 12.40"}},
			&stubFaceEngine{result: &bio_types.DetectionResult{}})

		record, _, err := ExtractDocument(context.Background(), DocumentExtractionInput{Image: checkerboardPNG(t, 300)})
		if err != nil {
			t.Fatalf("ExtractDocument() unexpected error = %v", err)
		}
		if record.Status != entities.RecordStatusFailed {
			t.Errorf("status = %s, want failed", record.Status)
		}
		if record.ConfidenceScore != 0 {
			t.Errorf("confidence = %f, want 0", record.ConfidenceScore)
		}
		if record.FailureReason == nil {
			t.Error("expected a failure reason on the record")
		}

		fetched, err := FetchRecord(context.Background(), "document", record.ID)
		if err != nil {
			t.Fatalf("expected the failed record to be retrievable, got %v", err)
		}
		if fetched.(*entities.DocumentRecord).ID != record.ID {
			t.Error("fetched record does not match the created one")
		}
	})

	t.Run("missing portrait downgrades a completed extraction to partial", func(t *testing.T) {
		withEngines(t,
			&stubRecognizer{result: passportRecognition(92)},
			&stubFaceEngine{result: &bio_types.DetectionResult{}})

		record, _, err := ExtractDocument(context.Background(), DocumentExtractionInput{Image: checkerboardPNG(t, 300)})
		if err != nil {
			t.Fatalf("ExtractDocument() unexpected error = %v", err)
		}
		if record.Status != entities.RecordStatusPartial {
			t.Errorf("status = %s, want partial", record.Status)
		}
		if record.HasFaceData() {
			t.Error("expected no face data on the record")
		}
	})

	t.Run("recognizer outage writes a failed record naming the cause", func(t *testing.T) {
		withEngines(t,
			&stubRecognizer{err: errors.New("recognizer unreachable")},
			&stubFaceEngine{result: &bio_types.DetectionResult{}})

		record, _, err := ExtractDocument(context.Background(), DocumentExtractionInput{Image: checkerboardPNG(t, 300)})
		if err != nil {
			t.Fatalf("ExtractDocument() unexpected error = %v", err)
		}
		if record.Status != entities.RecordStatusFailed {
			t.Errorf("status = %s, want failed", record.Status)
		}
		if record.FailureReason == nil || !strings.Contains(*record.FailureReason, "unreachable") {
			t.Errorf("expected the outage cause on the record, got %v", record.FailureReason)
		}
	})

	t.Run("undecodable payload writes nothing", func(t *testing.T) {
		withEngines(t,
			&stubRecognizer{result: passportRecognition(92)},
			&stubFaceEngine{result: &bio_types.DetectionResult{}})

		record, _, err := ExtractDocument(context.Background(), DocumentExtractionInput{Image: "bm90IGFuIGltYWdl"})
		if !errors.Is(err, ErrUndecodableImage) {
			t.Errorf("expected ErrUndecodableImage, got %v", err)
		}
		if record != nil {
			t.Error("expected no record for an undecodable payload")
		}
	})
}

func TestAssessLiveness(t *testing.T) {
	t.Run("live capture that clears every gate passes", func(t *testing.T) {
		withEngines(t,
			&stubRecognizer{result: passportRecognition(92)},
			&stubFaceEngine{result: singleFace([]float64{0.1, 0.2, 0.3})})

		record, _, err := AssessLiveness(context.Background(), LivenessAssessmentInput{Image: checkerboardPNG(t, 300)})
		if err != nil {
			t.Fatalf("AssessLiveness() unexpected error = %v", err)
		}
		if !record.LivenessPassed {
			t.Errorf("expected pass, score %f threshold %f checks %+v", record.LivenessScore, record.ThresholdUsed, record.QualityChecks)
		}
		if !record.HasFaceData() {
			t.Error("expected the face crop and embedding on the record")
		}
	})

	t.Run("no detectable face scores zero and does not pass", func(t *testing.T) {
		withEngines(t,
			&stubRecognizer{result: passportRecognition(92)},
			&stubFaceEngine{result: &bio_types.DetectionResult{}})

		record, _, err := AssessLiveness(context.Background(), LivenessAssessmentInput{Image: checkerboardPNG(t, 300)})
		if err != nil {
			t.Fatalf("AssessLiveness() unexpected error = %v", err)
		}
		if record.LivenessScore != 0 || record.LivenessPassed {
			t.Errorf("expected zero score and no pass, got %f %v", record.LivenessScore, record.LivenessPassed)
		}
		if record.FailureReason == nil || *record.FailureReason != "no face detected" {
			t.Errorf("failure reason = %v", record.FailureReason)
		}
	})
}

func TestMatchFaces(t *testing.T) {
	embedding := []float64{0.5, 0.25, 0.75}

	makeRecords := func(t *testing.T) (string, string) {
		t.Helper()
		withEngines(t,
			&stubRecognizer{result: passportRecognition(92)},
			&stubFaceEngine{result: singleFace(embedding)})
		document, _, err := ExtractDocument(context.Background(), DocumentExtractionInput{Image: checkerboardPNG(t, 300)})
		if err != nil {
			t.Fatalf("ExtractDocument() unexpected error = %v", err)
		}
		liveness, _, err := AssessLiveness(context.Background(), LivenessAssessmentInput{Image: checkerboardPNG(t, 300)})
		if err != nil {
			t.Fatalf("AssessLiveness() unexpected error = %v", err)
		}
		return document.ID, liveness.ID
	}

	t.Run("identical embeddings match perfectly", func(t *testing.T) {
		documentID, livenessID := makeRecords(t)
		record, _, err := MatchFaces(context.Background(), FaceMatchInput{DocumentID: documentID, LivenessID: livenessID})
		if err != nil {
			t.Fatalf("MatchFaces() unexpected error = %v", err)
		}
		if record.MatchDistance != 0 {
			t.Errorf("distance = %f, want 0", record.MatchDistance)
		}
		if record.MatchScore != 1 {
			t.Errorf("score = %f, want 1", record.MatchScore)
		}
		if !record.MatchPassed {
			t.Error("expected a self match to pass")
		}
	})

	t.Run("unknown record ids are reported as not found", func(t *testing.T) {
		_, _, err := MatchFaces(context.Background(), FaceMatchInput{
			DocumentID: "01J00000000000000000000000",
			LivenessID: "01J00000000000000000000001",
		})
		if !errors.Is(err, ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("record without face data is a precondition failure", func(t *testing.T) {
		withEngines(t,
			&stubRecognizer{result: passportRecognition(92)},
			&stubFaceEngine{result: &bio_types.DetectionResult{}})
		document, _, err := ExtractDocument(context.Background(), DocumentExtractionInput{Image: checkerboardPNG(t, 300)})
		if err != nil {
			t.Fatalf("ExtractDocument() unexpected error = %v", err)
		}
		_, livenessID := makeRecords(t)

		_, _, err = MatchFaces(context.Background(), FaceMatchInput{DocumentID: document.ID, LivenessID: livenessID})
		if !errors.Is(err, ErrFaceDataMissing) {
			t.Errorf("expected ErrFaceDataMissing, got %v", err)
		}
	})
}

func TestFetchRecord(t *testing.T) {
	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := FetchRecord(context.Background(), "match", "01J0000000000000000000FFFF")
		if !errors.Is(err, ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("unsupported kind is rejected", func(t *testing.T) {
		_, err := FetchRecord(context.Background(), "session", "01J0000000000000000000FFFF")
		if err == nil {
			t.Error("expected an error for an unsupported record kind")
		}
	})
}
