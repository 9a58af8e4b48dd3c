package queue_tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hibiken/asynq"
	"veriface.io/infrastructure/logger"
	mq_types "veriface.io/infrastructure/message_queue/types"
	"veriface.io/infrastructure/network"
)

const HandleWebhookDeliveryTaskName mq_types.Queues = "send_record_webhook"

// WebhookPayload is the notification body posted to the configured
// consumer endpoint after a verification record is written.
type WebhookPayload struct {
	RecordKind string `json:"recordKind"`
	RecordID   string `json:"recordId"`
	Status     string `json:"status"`
	Passed     *bool  `json:"passed,omitempty"`
}

func HandleWebhookDeliveryTask(ctx context.Context, t *asynq.Task) error {
	webhookURL := os.Getenv("WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	var payload WebhookPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("error parsing webhook delivery payload", logger.LoggerOptions{
			Key: "error", Data: err,
		})
		return err
	}

	controller := network.NetworkController{
		BaseUrl: webhookURL,
		Timeout: 10 * time.Second,
	}
	_, statusCode, err := controller.Post(ctx, "", &map[string]string{
		"Content-Type": "application/json",
	}, payload)
	if err != nil {
		logger.Error("webhook delivery failed", logger.LoggerOptions{
			Key: "error", Data: err,
		}, logger.LoggerOptions{
			Key: "recordId", Data: payload.RecordID,
		})
		return err
	}
	if *statusCode >= 400 {
		err = fmt.Errorf("webhook endpoint returned status %d", *statusCode)
		logger.Error("webhook delivery rejected", logger.LoggerOptions{
			Key: "recordId", Data: payload.RecordID,
		}, logger.LoggerOptions{
			Key: "statusCode", Data: *statusCode,
		})
		return err
	}

	logger.Info("webhook delivered", logger.LoggerOptions{
		Key: "recordId", Data: payload.RecordID,
	}, logger.LoggerOptions{
		Key: "recordKind", Data: payload.RecordKind,
	})
	return nil
}
