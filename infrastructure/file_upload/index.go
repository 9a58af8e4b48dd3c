package fileupload

import (
	"os"

	"veriface.io/infrastructure/file_upload/azure"
	"veriface.io/infrastructure/file_upload/types"
	"veriface.io/infrastructure/logger"
)

// FileUploader stays nil when blob storage is not configured. Callers treat
// archival as best effort and skip it in that case.
var FileUploader types.FileUploaderType

func InitialiseFileUploader() {
	if os.Getenv("AZURE_STORAGE_ACCOUNT_NAME") == "" {
		logger.Warning("AZURE_STORAGE_ACCOUNT_NAME not set, source artifact archival disabled")
		return
	}
	FileUploader = &azure.AzureBlobStorageService{
		AccountName:   os.Getenv("AZURE_STORAGE_ACCOUNT_NAME"),
		AccountKey:    os.Getenv("AZURE_STORAGE_ACCOUNT_KEY"),
		ContainerName: os.Getenv("AZURE_CONTAINER_NAME"),
	}
}
