package startup

import (
	"veriface.io/application/config"
	"veriface.io/infrastructure/biometric"
	"veriface.io/infrastructure/database"
	"veriface.io/infrastructure/database/connection/datastore"
	fileupload "veriface.io/infrastructure/file_upload"
	"veriface.io/infrastructure/logger"
	"veriface.io/infrastructure/ocr"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	config.Initialise()
	database.SetUpDatabase()
	fileupload.InitialiseFileUploader()
	ocr.InitialiseTextRecognizer()
	biometric.InitialiseFaceEngine()
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
}
