package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"
	"housing-assist-backend/importer/repositories"
	"housing-assist-backend/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeImportReportEmail = "email:import_report"

// ImportReportEmailPayload carries everything the worker needs to deliver an
// import error report to the uploader.
type ImportReportEmailPayload struct {
	Recipient      string `json:"recipient"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	AttachmentPath string `json:"attachment_path"`
}

// NewImportReportEmailTask builds the asynq task for a report delivery.
func NewImportReportEmailTask(payload ImportReportEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal email payload: %w", err)
	}
	return asynq.NewTask(TypeImportReportEmail, data, asynq.MaxRetry(3)), nil
}

// EmailTaskHandler processes queued report emails and records each delivery.
type EmailTaskHandler struct {
	repo repositories.ImportRepository
}

func NewEmailTaskHandler(repo repositories.ImportRepository) *EmailTaskHandler {
	return &EmailTaskHandler{repo: repo}
}

func (h *EmailTaskHandler) HandleImportReportEmail(ctx context.Context, t *asynq.Task) error {
	var payload ImportReportEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal email payload: %w", err)
	}

	if err := utils.SendEmail(payload.Recipient, payload.Message, payload.Subject, payload.AttachmentPath); err != nil {
		return err
	}

	active := true
	emailLog := models.EmailLog{
		ID:             uuid.New(),
		Recipient:      payload.Recipient,
		Subject:        payload.Subject,
		Message:        payload.Message,
		SentAt:         time.Now(),
		Active:         &active,
		AttachmentPath: payload.AttachmentPath,
	}
	if err := h.repo.LogEmailSent(&emailLog); err != nil {
		config.Logger.Warn("Failed to log sent email", zap.Error(err))
	}

	return nil
}

// RunEmailWorker starts the asynq server consuming report-email tasks. It
// blocks, so callers run it in a goroutine.
func RunEmailWorker(redisAddr string, repo repositories.ImportRepository) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 2},
	)

	mux := asynq.NewServeMux()
	handler := NewEmailTaskHandler(repo)
	mux.HandleFunc(TypeImportReportEmail, handler.HandleImportReportEmail)

	if err := srv.Run(mux); err != nil {
		config.Logger.Error("Email worker stopped", zap.Error(err))
	}
}
