package controller

import (
	"context"
	"errors"
	"net/http"

	apperrors "veriface.io/application/appErrors"
	"veriface.io/application/constants"
	"veriface.io/application/controller/dto"
	"veriface.io/application/interfaces"
	"veriface.io/application/usecases/verification"
	"veriface.io/application/utils"
	"veriface.io/entities"
	"veriface.io/infrastructure/biometric"
	server_response "veriface.io/infrastructure/serverResponse"
	"veriface.io/infrastructure/validator"
	"github.com/gin-gonic/gin"
)

func requestContext(transport any) context.Context {
	if ginCtx, ok := transport.(*gin.Context); ok {
		return ginCtx.Request.Context()
	}
	return context.Background()
}

// ExtractDocument accepts a document image (plus optional extra pages), runs
// the extraction pipeline and returns the persisted record with its
// processing time.
func ExtractDocument(ctx *interfaces.ApplicationContext[dto.DocumentExtractionDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	record, durationMS, err := verification.ExtractDocument(requestContext(ctx.Ctx), verification.DocumentExtractionInput{
		Image:           ctx.Body.Image,
		AdditionalPages: ctx.Body.AdditionalPages,
		FileName:        ctx.Body.FileName,
	})
	if err != nil {
		if errors.Is(err, verification.ErrUndecodableImage) {
			apperrors.ClientError(ctx.Ctx, err.Error(), nil, &constants.UNDECODABLE_IMAGE)
			return
		}
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	responseCode := &constants.VERIFICATION_COMPLETED
	if record.Status == entities.RecordStatusFailed {
		responseCode = &constants.VERIFICATION_FAILED
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "document processed", map[string]any{
		"record":     record,
		"durationMS": durationMS,
	}, nil, responseCode)
}

// AssessLiveness accepts a live capture and returns the persisted liveness
// record with its processing time.
func AssessLiveness(ctx *interfaces.ApplicationContext[dto.LivenessAssessmentDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	record, durationMS, err := verification.AssessLiveness(requestContext(ctx.Ctx), verification.LivenessAssessmentInput{
		Image: ctx.Body.Image,
	})
	if err != nil {
		if errors.Is(err, verification.ErrUndecodableImage) {
			apperrors.ClientError(ctx.Ctx, err.Error(), nil, &constants.UNDECODABLE_IMAGE)
			return
		}
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	responseCode := &constants.VERIFICATION_COMPLETED
	if !record.LivenessPassed {
		responseCode = &constants.VERIFICATION_FAILED
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "liveness assessed", map[string]any{
		"record":     record,
		"durationMS": durationMS,
	}, nil, responseCode)
}

// MatchFaces compares the faces on two previously stored records and returns
// the persisted match record with its processing time.
func MatchFaces(ctx *interfaces.ApplicationContext[dto.FaceMatchDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	record, durationMS, err := verification.MatchFaces(requestContext(ctx.Ctx), verification.FaceMatchInput{
		DocumentID: ctx.Body.DocumentID,
		LivenessID: ctx.Body.LivenessID,
	})
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrRecordNotFound):
			apperrors.NotFoundError(ctx.Ctx, err.Error(), &constants.RECORD_NOT_FOUND)
		case errors.Is(err, verification.ErrFaceDataMissing):
			apperrors.CustomError(ctx.Ctx, err.Error(), &constants.FACE_DATA_MISSING)
		case errors.Is(err, biometric.ErrEmptyEmbedding), errors.Is(err, biometric.ErrEmbeddingSizeMismatch):
			apperrors.ClientError(ctx.Ctx, err.Error(), nil, nil)
		default:
			apperrors.FatalServerError(ctx.Ctx, err)
		}
		return
	}

	responseCode := &constants.VERIFICATION_COMPLETED
	if !record.MatchPassed {
		responseCode = &constants.VERIFICATION_FAILED
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "faces compared", map[string]any{
		"record":     record,
		"durationMS": durationMS,
	}, nil, responseCode)
}

// FetchRecord retrieves a stored record by kind and id.
func FetchRecord(ctx *interfaces.ApplicationContext[any]) {
	kind, _ := ctx.GetKey("kind").(string)
	id, _ := ctx.GetKey("id").(string)
	if !utils.HasItemString(&constants.AVAILABLE_RECORD_KINDS, kind) {
		apperrors.ClientError(ctx.Ctx, "unsupported record kind", nil, nil)
		return
	}
	if id == "" {
		apperrors.ClientError(ctx.Ctx, "record id is required", nil, nil)
		return
	}

	record, err := verification.FetchRecord(requestContext(ctx.Ctx), kind, id)
	if err != nil {
		if errors.Is(err, verification.ErrRecordNotFound) {
			apperrors.NotFoundError(ctx.Ctx, err.Error(), &constants.RECORD_NOT_FOUND)
			return
		}
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	payload := map[string]any{"record": record}
	if artifactURL := verification.ArtifactDownloadURL(record); artifactURL != nil {
		payload["artifactURL"] = *artifactURL
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "record retrieved", payload, nil, nil)
}
