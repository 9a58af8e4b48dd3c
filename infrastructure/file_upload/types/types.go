package types

import (
	"context"
	"time"
)

type FileUploaderType interface {
	UploadFile(ctx context.Context, fileName string, data []byte, contentType string) error
	GeneratedSignedURL(fileName string, permission SignedURLPermission, ttl time.Duration) (*string, error)
	CheckFileExists(fileName string) (bool, error)
	DeleteFile(fileName string) error
}

type SignedURLPermission struct {
	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Delete bool `json:"delete"`
}
