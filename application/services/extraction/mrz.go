package extraction

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var mrzWeights = []int{7, 3, 1}

// TD3Result carries the fields recovered from a passport machine readable
// zone along with the names of fields dropped for failing their check digit.
type TD3Result struct {
	Fields         map[string]string
	RejectedFields []string
	CompositeValid bool
}

// ParseTD3 parses the two 44-character lines of a TD3 machine readable
// zone. Fields protected by a check digit are only emitted when the digit
// verifies; a failed check rejects that field alone, not the whole zone.
func ParseTD3(line1, line2 string) (*TD3Result, error) {
	if len(line1) != 44 || len(line2) != 44 {
		return nil, fmt.Errorf("expected two 44 character lines, got %d and %d", len(line1), len(line2))
	}
	if line1[0] != 'P' {
		return nil, errors.New("line one does not carry the passport document code")
	}

	result := &TD3Result{Fields: map[string]string{}}

	result.Fields[FieldIssuingCountry] = strings.Trim(line1[2:5], "<")
	if name := parseMRZName(line1[5:]); name != "" {
		result.Fields[FieldFullName] = name
	}

	documentNumber := line2[0:9]
	if mrzCheckDigitValid(documentNumber, line2[9]) {
		result.Fields[FieldDocumentNumber] = strings.Trim(documentNumber, "<")
	} else {
		result.RejectedFields = append(result.RejectedFields, FieldDocumentNumber)
	}

	result.Fields[FieldNationality] = strings.Trim(line2[10:13], "<")

	birth := line2[13:19]
	if mrzCheckDigitValid(birth, line2[19]) {
		if date, ok := expandMRZDate(birth, false); ok {
			result.Fields[FieldDateOfBirth] = date
		} else {
			result.RejectedFields = append(result.RejectedFields, FieldDateOfBirth)
		}
	} else {
		result.RejectedFields = append(result.RejectedFields, FieldDateOfBirth)
	}

	switch line2[20] {
	case 'M':
		result.Fields[FieldGender] = "M"
	case 'F':
		result.Fields[FieldGender] = "F"
	}

	expiry := line2[21:27]
	if mrzCheckDigitValid(expiry, line2[27]) {
		if date, ok := expandMRZDate(expiry, true); ok {
			result.Fields[FieldExpiryDate] = date
		} else {
			result.RejectedFields = append(result.RejectedFields, FieldExpiryDate)
		}
	} else {
		result.RejectedFields = append(result.RejectedFields, FieldExpiryDate)
	}

	personal := line2[28:42]
	if trimmed := strings.Trim(personal, "<"); trimmed != "" {
		if mrzCheckDigitValid(personal, line2[42]) {
			result.Fields[FieldPersonalNumber] = trimmed
		} else {
			result.RejectedFields = append(result.RejectedFields, FieldPersonalNumber)
		}
	}

	composite := line2[0:10] + line2[13:20] + line2[21:43]
	result.CompositeValid = mrzCheckDigitValid(composite, line2[43])

	return result, nil
}

// parseMRZName converts the `SURNAME<<GIVEN<NAMES` name zone into
// "GIVEN NAMES SURNAME".
func parseMRZName(zone string) string {
	parts := strings.SplitN(zone, "<<", 2)
	surname := strings.TrimSpace(strings.ReplaceAll(parts[0], "<", " "))
	given := ""
	if len(parts) == 2 {
		given = strings.TrimSpace(strings.ReplaceAll(parts[1], "<", " "))
	}
	return strings.TrimSpace(given + " " + surname)
}

// mrzCheckDigit computes the 7-3-1 weighted mod 10 check digit. Digits keep
// their face value, letters map to 10 through 35 and filler counts as zero.
func mrzCheckDigit(data string) int {
	total := 0
	for i, char := range data {
		total += mrzCharValue(char) * mrzWeights[i%3]
	}
	return total % 10
}

func mrzCheckDigitValid(data string, check byte) bool {
	if check == '<' {
		// filler in a check position stands for zero
		return mrzCheckDigit(data) == 0
	}
	if check < '0' || check > '9' {
		return false
	}
	return mrzCheckDigit(data) == int(check-'0')
}

func mrzCharValue(char rune) int {
	switch {
	case char >= '0' && char <= '9':
		return int(char - '0')
	case char >= 'A' && char <= 'Z':
		return int(char-'A') + 10
	default:
		return 0
	}
}

// expandMRZDate turns a YYMMDD zone date into YYYY-MM-DD. Birth years use a
// sliding pivot so a two-digit year just past the current one still lands in
// the previous century; expiry dates always land in the current one.
func expandMRZDate(yymmdd string, expiry bool) (string, bool) {
	parsed, err := time.Parse("060102", yymmdd)
	if err != nil {
		return "", false
	}
	year := parsed.Year() % 100
	century := 2000
	if !expiry {
		pivot := time.Now().Year()%100 + 1
		if year > pivot {
			century = 1900
		}
	}
	return fmt.Sprintf("%04d-%02d-%02d", century+year, parsed.Month(), parsed.Day()), true
}
