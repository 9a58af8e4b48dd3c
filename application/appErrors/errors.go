package apperrors

import (
	"fmt"
	"net/http"

	"veriface.io/infrastructure/logger"
	server_response "veriface.io/infrastructure/serverResponse"
)

func NotFoundError(ctx interface{}, message string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusNotFound, message, nil, nil, responseCode)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error) {
	server_response.Responder.Respond(ctx, http.StatusUnprocessableEntity, "Payload validation failed 🙄", nil, *errMessages, nil)
}

func ExternalDependencyError(ctx interface{}, serviceName string, statusCode string, err error) {
	logger.Error(err.Error(), logger.LoggerOptions{
		Key: fmt.Sprintf("error with %s. status code %s", serviceName, statusCode),
	})
	server_response.Responder.Respond(ctx, http.StatusServiceUnavailable,
		"Omo! Our service is temporarily down 😢. Our team is working to fix it. Please check back later.", nil, nil, nil)
}

func ErrorProcessingPayload(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "Abnormal payload passed 🤨", nil, nil, nil)
}

func FatalServerError(ctx interface{}, err error) {
	logger.Error("fatal server error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusInternalServerError,
		"Omo! Our service is temporarily down 😢. Our team is working to fix it. Please check back later.", nil, nil, nil)
}

func UnknownError(ctx interface{}, err error, responseCode *uint) {
	logger.Error("unknown error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"Omo! Something went wrong somewhere 😭. Please check back later.", nil, nil, responseCode)
}

func CustomError(ctx interface{}, msg string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, nil, responseCode)
}

func ClientError(ctx interface{}, msg string, errs []error, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, errs, responseCode)
}
