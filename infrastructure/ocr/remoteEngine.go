package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"veriface.io/infrastructure/logger"
	"veriface.io/infrastructure/network"
	"veriface.io/infrastructure/ocr/types"
)

// RemoteTextRecognizer talks to the OCR engine service over HTTP.
type RemoteTextRecognizer struct {
	Network *network.NetworkController
}

func (r *RemoteTextRecognizer) RecognizeText(ctx context.Context, image []byte) (*types.RecognitionResult, error) {
	requestBody := types.RecognitionRequest{
		Image: base64.StdEncoding.EncodeToString(image),
	}

	response, statusCode, err := r.Network.Post(ctx, "/recognize-text", &map[string]string{}, requestBody)
	if err != nil {
		logger.Error("error performing text recognition", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	if statusCode == nil || *statusCode != 200 {
		logger.Error("text recognition failed with status code", logger.LoggerOptions{
			Key:  "status_code",
			Data: statusCode,
		})
		return nil, fmt.Errorf("text recognition service returned an unexpected status")
	}

	var result types.RecognitionResult
	if err := json.Unmarshal(*response, &result); err != nil {
		logger.Error("error unmarshaling text recognition response", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	return &result, nil
}
