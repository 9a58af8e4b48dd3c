package biometric

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"veriface.io/infrastructure/biometric/types"
	"veriface.io/infrastructure/logger"
	"veriface.io/infrastructure/network"
)

// RemoteFaceEngine talks to the face detection/embedding service over HTTP.
type RemoteFaceEngine struct {
	Network *network.NetworkController
}

func (r *RemoteFaceEngine) DetectFaces(ctx context.Context, image []byte) (*types.DetectionResult, error) {
	requestBody := types.DetectionRequest{
		Image: base64.StdEncoding.EncodeToString(image),
	}

	response, statusCode, err := r.Network.Post(ctx, "/detect-faces", &map[string]string{}, requestBody)
	if err != nil {
		logger.Error("error performing face detection", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	if statusCode == nil || *statusCode != 200 {
		logger.Error("face detection failed with status code", logger.LoggerOptions{
			Key:  "status_code",
			Data: statusCode,
		})
		return nil, fmt.Errorf("face detection service returned an unexpected status")
	}

	var result types.DetectionResult
	if err := json.Unmarshal(*response, &result); err != nil {
		logger.Error("error unmarshaling face detection response", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	return &result, nil
}
