package dto

import (
	"strings"
	"testing"

	"veriface.io/infrastructure/validator"
)

func TestValidateDocumentExtractionDTO(t *testing.T) {
	validImage := strings.Repeat("abcd", 50)

	tests := []struct {
		name    string
		payload DocumentExtractionDTO
		wantErr bool
		errMsg  string
	}{
		{
			name:    "missing image",
			payload: DocumentExtractionDTO{},
			wantErr: true,
			errMsg:  "Image is required",
		},
		{
			name:    "image is not base64",
			payload: DocumentExtractionDTO{Image: "!!not base64!!"},
			wantErr: true,
			errMsg:  "base64 encoded image",
		},
		{
			name:    "valid base64 image",
			payload: DocumentExtractionDTO{Image: validImage},
			wantErr: false,
		},
		{
			name:    "valid data url image",
			payload: DocumentExtractionDTO{Image: "data:image/png;base64," + validImage},
			wantErr: false,
		},
		{
			name: "too many additional pages",
			payload: DocumentExtractionDTO{
				Image:           validImage,
				AdditionalPages: []string{validImage, validImage, validImage, validImage, validImage, validImage},
			},
			wantErr: true,
			errMsg:  "at most 5",
		},
		{
			name: "additional page is not base64",
			payload: DocumentExtractionDTO{
				Image:           validImage,
				AdditionalPages: []string{"definitely not an image!"},
			},
			wantErr: true,
			errMsg:  "base64 encoded image",
		},
		{
			name: "valid with pages and file name",
			payload: DocumentExtractionDTO{
				Image:           validImage,
				AdditionalPages: []string{validImage},
				FileName:        "passport.png",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.ValidatorInstance.ValidateStruct(tt.payload)

			if tt.wantErr {
				if errs == nil {
					t.Error("ValidateStruct() expected errors but got none")
					return
				}
				if !containsError(*errs, tt.errMsg) {
					t.Errorf("ValidateStruct() errors = %v, want one containing %q", *errs, tt.errMsg)
				}
			} else if errs != nil {
				t.Errorf("ValidateStruct() unexpected errors = %v", *errs)
			}
		})
	}
}

func TestValidateFaceMatchDTO(t *testing.T) {
	validID := "01HV3E8ZT5T2V4B8Y0M8KQWXYZ"

	tests := []struct {
		name    string
		payload FaceMatchDTO
		wantErr bool
		errMsg  string
	}{
		{
			name:    "missing both ids",
			payload: FaceMatchDTO{},
			wantErr: true,
			errMsg:  "DocumentID is required",
		},
		{
			name:    "malformed document id",
			payload: FaceMatchDTO{DocumentID: "not-a-ulid", LivenessID: validID},
			wantErr: true,
			errMsg:  "DocumentID must be a valid record id",
		},
		{
			name:    "malformed liveness id",
			payload: FaceMatchDTO{DocumentID: validID, LivenessID: "12345"},
			wantErr: true,
			errMsg:  "LivenessID must be a valid record id",
		},
		{
			name:    "valid pair",
			payload: FaceMatchDTO{DocumentID: validID, LivenessID: validID},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.ValidatorInstance.ValidateStruct(tt.payload)

			if tt.wantErr {
				if errs == nil {
					t.Error("ValidateStruct() expected errors but got none")
					return
				}
				if !containsError(*errs, tt.errMsg) {
					t.Errorf("ValidateStruct() errors = %v, want one containing %q", *errs, tt.errMsg)
				}
			} else if errs != nil {
				t.Errorf("ValidateStruct() unexpected errors = %v", *errs)
			}
		})
	}
}

func TestValidateLivenessAssessmentDTO(t *testing.T) {
	if errs := validator.ValidatorInstance.ValidateStruct(LivenessAssessmentDTO{}); errs == nil {
		t.Error("expected a missing image to fail validation")
	}
	if errs := validator.ValidatorInstance.ValidateStruct(LivenessAssessmentDTO{Image: strings.Repeat("abcd", 50)}); errs != nil {
		t.Errorf("unexpected errors = %v", *errs)
	}
}

func containsError(errs []error, fragment string) bool {
	for _, err := range errs {
		if strings.Contains(err.Error(), fragment) {
			return true
		}
	}
	return false
}
