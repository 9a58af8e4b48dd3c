package logger

import (
	"os"

	"go.uber.org/zap"
)

var Logger *zap.Logger = zap.NewNop()

func InitializeLogger() {
	var err error
	if os.Getenv("ENV") == "prod" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
}
