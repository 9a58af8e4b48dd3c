package extraction

import (
	"context"
	"strings"

	"veriface.io/application/config"
	"veriface.io/application/utils"
	"veriface.io/entities"
	"veriface.io/infrastructure/logger"
	ocr_types "veriface.io/infrastructure/ocr/types"
)

// Engine runs text recognition over a document page, classifies the
// document and parses the type-specific field grammar out of the result.
type Engine struct {
	Recognizer ocr_types.TextRecognizerType
	Config     config.VerificationConfig
}

// ExtractPage recognizes and parses a single page. A recognizer failure is
// returned as an error so the caller can record the capability failure; a
// page that simply carries no recognizable pattern produces a failed result
// with a zero confidence score instead.
func (engine *Engine) ExtractPage(ctx context.Context, image []byte) (*ExtractionResult, error) {
	recognition, err := engine.Recognizer.RecognizeText(ctx, image)
	if err != nil {
		return nil, err
	}

	result := &ExtractionResult{
		DocumentType:     DetectDocumentType(recognition),
		Fields:           map[string]string{},
		FieldConfidences: map[string]float64{},
	}

	lines := cleanLines(recognition.FullText)

	switch result.DocumentType {
	case entities.DocumentTypePassport:
		engine.parsePassportPage(recognition, lines, result)
	case entities.DocumentTypeNationalID:
		engine.parseNationalIDPage(recognition, lines, result)
	default:
		result.Status = entities.RecordStatusFailed
		result.FailureReason = utils.GetStringPointer("no recognizable document pattern")
		return result, nil
	}

	if result.Status == entities.RecordStatusFailed {
		return result, nil
	}

	engine.applyConfidenceGate(result)
	engine.resolveStatus(result)
	return result, nil
}

func (engine *Engine) parsePassportPage(recognition *ocr_types.RecognitionResult, lines []string, result *ExtractionResult) {
	mrz := machineReadableLines(lines)
	if len(mrz) < 2 {
		result.Status = entities.RecordStatusFailed
		result.FailureReason = utils.GetStringPointer("machine readable zone not found")
		return
	}

	parsed, err := ParseTD3(mrz[len(mrz)-2], mrz[len(mrz)-1])
	if err != nil {
		result.Status = entities.RecordStatusFailed
		result.FailureReason = utils.GetStringPointer(err.Error())
		return
	}
	if !parsed.CompositeValid {
		logger.Warning("composite check digit failed on a machine readable zone")
	}
	if len(parsed.RejectedFields) != 0 {
		logger.Info("dropped machine readable fields with failed check digits",
			logger.LoggerOptions{Key: "fields", Data: parsed.RejectedFields})
	}

	result.RejectedFields = parsed.RejectedFields
	confidence := lineConfidence(recognition, mrz[len(mrz)-1])
	for field, value := range parsed.Fields {
		result.Fields[field] = value
		result.FieldConfidences[field] = confidence
	}
	// the name zone lives on the first line, score it separately
	if _, ok := result.Fields[FieldFullName]; ok {
		result.FieldConfidences[FieldFullName] = lineConfidence(recognition, mrz[len(mrz)-2])
	}
	if _, ok := result.Fields[FieldIssuingCountry]; ok {
		result.FieldConfidences[FieldIssuingCountry] = lineConfidence(recognition, mrz[len(mrz)-2])
	}
}

func (engine *Engine) parseNationalIDPage(recognition *ocr_types.RecognitionResult, lines []string, result *ExtractionResult) {
	fields, sources := ParseNationalID(lines)
	for field, value := range fields {
		result.Fields[field] = value
		result.FieldConfidences[field] = lineConfidence(recognition, sources[field])
	}
}

// applyConfidenceGate drops every field whose recognition confidence falls
// below the configured minimum and recomputes the record confidence as the
// mean over what survived.
func (engine *Engine) applyConfidenceGate(result *ExtractionResult) {
	total := 0.0
	for field := range result.Fields {
		confidence := result.FieldConfidences[field]
		if confidence < engine.Config.OCRConfidenceMin {
			delete(result.Fields, field)
			delete(result.FieldConfidences, field)
			result.RejectedFields = append(result.RejectedFields, field)
			continue
		}
		total += confidence
	}
	if len(result.Fields) == 0 {
		result.ConfidenceScore = 0
		return
	}
	result.ConfidenceScore = total / float64(len(result.Fields))
}

func (engine *Engine) resolveStatus(result *ExtractionResult) {
	if len(result.Fields) == 0 {
		result.Status = entities.RecordStatusFailed
		result.FailureReason = utils.GetStringPointer("no field cleared the confidence threshold")
		return
	}
	expected := expectedFields[result.DocumentType]
	found := 0
	for _, field := range expected {
		if _, ok := result.Fields[field]; ok {
			found++
		}
	}
	if found*2 < len(expected) {
		result.Status = entities.RecordStatusPartial
		return
	}
	result.Status = entities.RecordStatusCompleted
}

// lineConfidence averages the confidence of the recognition spans that
// overlap the given line, falling back to the page mean when none do.
func lineConfidence(recognition *ocr_types.RecognitionResult, line string) float64 {
	compactLine := compactUpper(line)
	total := 0.0
	count := 0
	for _, span := range recognition.Spans {
		compactSpan := compactUpper(span.Text)
		if compactSpan == "" {
			continue
		}
		if strings.Contains(compactLine, compactSpan) || strings.Contains(compactSpan, compactLine) {
			total += span.Confidence
			count++
		}
	}
	if count == 0 {
		return recognition.MeanConfidence()
	}
	return total / float64(count)
}

func compactUpper(text string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(text), " ", ""))
}
