package verification

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"veriface.io/application/constants"
	"veriface.io/entities"
	"veriface.io/infrastructure/database/repository/cache"
	fileupload "veriface.io/infrastructure/file_upload"
	fu_types "veriface.io/infrastructure/file_upload/types"
	"veriface.io/infrastructure/logger"
	messagequeue "veriface.io/infrastructure/message_queue"
	queue_tasks "veriface.io/infrastructure/message_queue/tasks"
	mq_types "veriface.io/infrastructure/message_queue/types"
)

// notifyRecordWritten queues a webhook delivery for a freshly written
// record. Delivery is best effort and never affects the pipeline outcome.
func notifyRecordWritten(kind string, id string, status entities.RecordStatus, passed *bool) {
	payload, err := json.Marshal(queue_tasks.WebhookPayload{
		RecordKind: kind,
		RecordID:   id,
		Status:     string(status),
		Passed:     passed,
	})
	if err != nil {
		logger.Error("error serialising webhook payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Name:     queue_tasks.HandleWebhookDeliveryTaskName,
		Payload:  payload,
		Priority: mq_types.Low,
		MaxRetry: 5,
	})
}

// archiveArtifact uploads the submitted bytes to blob storage when an
// uploader is configured. Failures are logged and swallowed, archival never
// blocks record creation.
func archiveArtifact(ctx context.Context, kind string, id string, fileName string, data []byte, contentType string) string {
	if fileupload.FileUploader == nil {
		return ""
	}
	storageKey := fmt.Sprintf("%s/%s/%s", kind, id, fileName)
	if err := fileupload.FileUploader.UploadFile(ctx, storageKey, data, contentType); err != nil {
		logger.Warning("artifact archival failed", logger.LoggerOptions{
			Key:  "storageKey",
			Data: storageKey,
		})
		return ""
	}
	return storageKey
}

// ArtifactDownloadURL mints a short-lived read URL for a record's archived
// source artifact. Returns nil when no uploader is configured or the record
// carries no archived artifact.
func ArtifactDownloadURL(record any) *string {
	if fileupload.FileUploader == nil {
		return nil
	}
	doc, ok := record.(*entities.DocumentRecord)
	if !ok || doc.SourceFile.StorageKey == "" {
		return nil
	}
	url, err := fileupload.FileUploader.GeneratedSignedURL(doc.SourceFile.StorageKey, fu_types.SignedURLPermission{Read: true}, 15*time.Minute)
	if err != nil {
		logger.Warning("could not sign artifact download url", logger.LoggerOptions{
			Key:  "storageKey",
			Data: doc.SourceFile.StorageKey,
		})
		return nil
	}
	return url
}

func recordCacheKey(kind string, id string) string {
	return fmt.Sprintf("record-%s-%s", kind, id)
}

func cacheRecord(kind string, id string, record any) {
	if os.Getenv("REDIS_ADDR") == "" {
		return
	}
	marshalled, err := json.Marshal(record)
	if err != nil {
		return
	}
	cache.Cache.CreateEntry(recordCacheKey(kind, id), marshalled, constants.RECORD_CACHE_TTL)
}
