package dto

type DocumentExtractionDTO struct {
	Image           string   `json:"image" validate:"required,image_payload"`
	AdditionalPages []string `json:"additionalPages" validate:"omitempty,max=5,dive,image_payload"`
	FileName        string   `json:"fileName" validate:"omitempty,max=120"`
}

type LivenessAssessmentDTO struct {
	Image string `json:"image" validate:"required,image_payload"`
}

type FaceMatchDTO struct {
	DocumentID string `json:"documentID" validate:"required,ulid"`
	LivenessID string `json:"livenessID" validate:"required,ulid"`
}
