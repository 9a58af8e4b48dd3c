package extraction

import (
	"testing"

	"veriface.io/entities"
	ocr_types "veriface.io/infrastructure/ocr/types"
)

func TestDetectDocumentType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want entities.DocumentType
	}{
		{
			name: "two machine readable lines classify as passport",
			text: "REPUBLIC OF UTOPIA\n" + specimenLine1 + "\n" + specimenLine2,
			want: entities.DocumentTypePassport,
		},
		{
			name: "passport keyword alone classifies as passport",
			text: "PASSPORT\nERIKSSON, ANNA MARIA",
			want: entities.DocumentTypePassport,
		},
		{
			name: "identity card keyword classifies as national id",
			text: "IDENTITY CARD\nName: Anna Eriksson",
			want: entities.DocumentTypeNationalID,
		},
		{
			name: "card number pattern classifies as national id",
			text: "Resident Card\n784-1974-1234567-1",
			want: entities.DocumentTypeNationalID,
		},
		{
			name: "machine readable zone outranks a stray id keyword",
			text: "ID CARD\n" + specimenLine1 + "\n" + specimenLine2,
			want: entities.DocumentTypePassport,
		},
		{
			name: "unrelated text is unknown",
			text: "GROCERY RECEIPT\nTOTAL 12.40",
			want: entities.DocumentTypeUnknown,
		},
		{
			name: "empty text is unknown",
			text: "",
			want: entities.DocumentTypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectDocumentType(&ocr_types.RecognitionResult{FullText: tt.text})
			if got != tt.want {
				t.Errorf("DetectDocumentType() = %s, want %s", got, tt.want)
			}
		})
	}
}
