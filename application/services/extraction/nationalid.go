package extraction

import (
	"regexp"
	"strings"
	"time"
)

type labelPattern struct {
	field   string
	pattern *regexp.Regexp
}

var labelPatterns = []labelPattern{
	{FieldFullName, regexp.MustCompile(`(?i)^(?:full\s*)?name\s*[:\-]\s*(.+)$`)},
	{FieldDocumentNumber, regexp.MustCompile(`(?i)^(?:id|identity|document|card)\s*(?:no|number|#)\.?\s*[:\-]\s*(.+)$`)},
	{FieldNationality, regexp.MustCompile(`(?i)^nationality\s*[:\-]\s*(.+)$`)},
	{FieldDateOfBirth, regexp.MustCompile(`(?i)^(?:date\s*of\s*birth|birth\s*date|dob)\s*[:\-]\s*(.+)$`)},
	{FieldGender, regexp.MustCompile(`(?i)^(?:sex|gender)\s*[:\-]\s*(.+)$`)},
	{FieldIssueDate, regexp.MustCompile(`(?i)^(?:issue|issuing)\s*date\s*[:\-]\s*(.+)$`)},
	{FieldExpiryDate, regexp.MustCompile(`(?i)^(?:expiry|expiration|exp)\.?\s*date\s*[:\-]\s*(.+)$`)},
	{FieldPlaceOfBirth, regexp.MustCompile(`(?i)^place\s*of\s*birth\s*[:\-]\s*(.+)$`)},
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
}

// ParseNationalID recovers labeled key-value fields from the recognized
// lines of a national identity card. It returns the normalized fields and,
// for confidence scoring, the source line each field came from.
func ParseNationalID(lines []string) (map[string]string, map[string]string) {
	fields := map[string]string{}
	sources := map[string]string{}

	for _, line := range lines {
		for _, label := range labelPatterns {
			if _, seen := fields[label.field]; seen {
				continue
			}
			match := label.pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			value := normalizeFieldValue(label.field, strings.TrimSpace(match[1]))
			if value == "" {
				continue
			}
			fields[label.field] = value
			sources[label.field] = line
		}
	}

	// the card number often appears without a label
	if _, seen := fields[FieldDocumentNumber]; !seen {
		for _, line := range lines {
			if match := nationalIDNumberPattern.FindString(strings.ToUpper(line)); match != "" {
				fields[FieldDocumentNumber] = match
				sources[FieldDocumentNumber] = line
				break
			}
		}
	}

	return fields, sources
}

func normalizeFieldValue(field, value string) string {
	switch field {
	case FieldDateOfBirth, FieldIssueDate, FieldExpiryDate:
		return normalizeDate(value)
	case FieldGender:
		return normalizeGender(value)
	default:
		return value
	}
}

// normalizeDate tries the date layouts seen on identity cards and returns
// the value in YYYY-MM-DD, or the raw value when no layout matches.
func normalizeDate(value string) string {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return value
}

func normalizeGender(value string) string {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "M", "MALE":
		return "M"
	case "F", "FEMALE":
		return "F"
	default:
		return ""
	}
}
