package biometric

import (
	"os"
	"time"

	"veriface.io/infrastructure/biometric/types"
	"veriface.io/infrastructure/network"
)

var FaceEngine types.FaceEngineType

func InitialiseFaceEngine() {
	FaceEngine = &RemoteFaceEngine{
		Network: &network.NetworkController{
			BaseUrl: os.Getenv("FACE_ENGINE_BASE_URL"),
			Timeout: 30 * time.Second,
		},
	}
}
