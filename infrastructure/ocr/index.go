package ocr

import (
	"os"
	"time"

	"veriface.io/infrastructure/network"
	"veriface.io/infrastructure/ocr/types"
)

var TextRecognizer types.TextRecognizerType

func InitialiseTextRecognizer() {
	TextRecognizer = &RemoteTextRecognizer{
		Network: &network.NetworkController{
			BaseUrl: os.Getenv("OCR_ENGINE_BASE_URL"),
			Timeout: 30 * time.Second,
		},
	}
}
