package extraction

import (
	"regexp"
	"strings"

	"veriface.io/entities"
	ocr_types "veriface.io/infrastructure/ocr/types"
)

var (
	mrzCharset              = regexp.MustCompile(`^[A-Z0-9<]+$`)
	nationalIDNumberPattern = regexp.MustCompile(`\b784-?\d{4}-?\d{7}-?\d\b`)
)

var nationalIDTokens = []string{"NATIONAL ID", "IDENTITY CARD", "ID CARD", "RESIDENT IDENTITY"}

// DetectDocumentType inspects recognized text for discriminating patterns
// and picks the best-scoring document type, defaulting to unknown when no
// pattern matches confidently.
func DetectDocumentType(result *ocr_types.RecognitionResult) entities.DocumentType {
	lines := cleanLines(result.FullText)
	upper := strings.ToUpper(result.FullText)

	passportScore := 0
	if len(machineReadableLines(lines)) >= 2 {
		passportScore += 2
	}
	if strings.Contains(upper, "PASSPORT") {
		passportScore++
	}

	nationalScore := 0
	for _, token := range nationalIDTokens {
		if strings.Contains(upper, token) {
			nationalScore++
			break
		}
	}
	if nationalIDNumberPattern.MatchString(upper) {
		nationalScore += 2
	}

	switch {
	case passportScore == 0 && nationalScore == 0:
		return entities.DocumentTypeUnknown
	case passportScore >= nationalScore:
		return entities.DocumentTypePassport
	default:
		return entities.DocumentTypeNationalID
	}
}

func cleanLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// machineReadableLines returns candidate MRZ lines normalized to the
// 44-character TD3 width. OCR output sometimes trims trailing filler, so
// lines between 40 and 44 characters are padded back out with '<'.
func machineReadableLines(lines []string) []string {
	mrz := []string{}
	for _, line := range lines {
		compact := strings.ToUpper(strings.ReplaceAll(line, " ", ""))
		if len(compact) < 40 || len(compact) > 44 {
			continue
		}
		if !mrzCharset.MatchString(compact) {
			continue
		}
		if !strings.Contains(compact, "<") {
			continue
		}
		for len(compact) < 44 {
			compact += "<"
		}
		mrz = append(mrz, compact)
	}
	return mrz
}
