package env

import (
	"github.com/joho/godotenv"

	"veriface.io/infrastructure/logger"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		logger.Warning("no .env file found, relying on process environment")
	}
}
