package extraction

import "testing"

func TestParseNationalID(t *testing.T) {
	t.Run("recovers labeled fields", func(t *testing.T) {
		lines := []string{
			"IDENTITY CARD",
			"Name: Anna Maria Eriksson",
			"ID Number: 784-1974-1234567-1",
			"Nationality: Utopian",
			"Date of Birth: 12/08/1974",
			"Sex: Female",
			"Expiry Date: 2030-01-15",
		}
		fields, sources := ParseNationalID(lines)

		want := map[string]string{
			FieldFullName:       "Anna Maria Eriksson",
			FieldDocumentNumber: "784-1974-1234567-1",
			FieldNationality:    "Utopian",
			FieldDateOfBirth:    "1974-08-12",
			FieldGender:         "F",
			FieldExpiryDate:     "2030-01-15",
		}
		for field, value := range want {
			if fields[field] != value {
				t.Errorf("field %s = %q, want %q", field, fields[field], value)
			}
			if sources[field] == "" {
				t.Errorf("expected a source line for %s", field)
			}
		}
	})

	t.Run("finds an unlabeled card number", func(t *testing.T) {
		fields, _ := ParseNationalID([]string{"NATIONAL ID", "784-2001-7654321-9"})
		if fields[FieldDocumentNumber] != "784-2001-7654321-9" {
			t.Errorf("document number = %q", fields[FieldDocumentNumber])
		}
	})

	t.Run("first labeled occurrence wins", func(t *testing.T) {
		fields, _ := ParseNationalID([]string{"Name: First Value", "Name: Second Value"})
		if fields[FieldFullName] != "First Value" {
			t.Errorf("full name = %q, want the first occurrence", fields[FieldFullName])
		}
	})

	t.Run("unparseable dates are kept raw", func(t *testing.T) {
		fields, _ := ParseNationalID([]string{"Date of Birth: sometime in winter"})
		if fields[FieldDateOfBirth] != "sometime in winter" {
			t.Errorf("date of birth = %q", fields[FieldDateOfBirth])
		}
	})

	t.Run("no labels yields no fields", func(t *testing.T) {
		fields, _ := ParseNationalID([]string{"just some text", "nothing labeled here"})
		if len(fields) != 0 {
			t.Errorf("expected no fields, got %v", fields)
		}
	})
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"1974-08-12", "1974-08-12"},
		{"12/08/1974", "1974-08-12"},
		{"12-08-1974", "1974-08-12"},
		{"12.08.1974", "1974-08-12"},
		{"12 Aug 1974", "1974-08-12"},
		{"Aug 12, 1974", "1974-08-12"},
		{"not a date", "not a date"},
	}

	for _, tt := range tests {
		if got := normalizeDate(tt.value); got != tt.want {
			t.Errorf("normalizeDate(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
