package extraction

import "veriface.io/entities"

// Canonical field names shared by every document variant. Each variant
// supplies its own parsing and checksum rules but all produce this shape.
const (
	FieldFullName       = "full_name"
	FieldDocumentNumber = "document_number"
	FieldNationality    = "nationality"
	FieldDateOfBirth    = "date_of_birth"
	FieldGender         = "gender"
	FieldIssueDate      = "issue_date"
	FieldExpiryDate     = "expiry_date"
	FieldPlaceOfBirth   = "place_of_birth"
	FieldIssuingCountry = "issuing_country"
	FieldPersonalNumber = "personal_number"
)

// expectedFields drives the partial-status rule: a page that yields fewer
// than half of its type's expected fields is a partial extraction.
var expectedFields = map[entities.DocumentType][]string{
	entities.DocumentTypePassport: {
		FieldFullName, FieldDocumentNumber, FieldNationality,
		FieldDateOfBirth, FieldGender, FieldExpiryDate,
	},
	entities.DocumentTypeNationalID: {
		FieldFullName, FieldDocumentNumber, FieldNationality, FieldDateOfBirth,
	},
}

// ExtractionResult is the outcome of running recognition and type-specific
// parsing over a single document page.
type ExtractionResult struct {
	DocumentType     entities.DocumentType
	Fields           map[string]string
	FieldConfidences map[string]float64
	RejectedFields   []string
	ConfidenceScore  float64
	Status           entities.RecordStatus
	FailureReason    *string
}
