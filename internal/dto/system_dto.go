package dto

import (
	"time"

	"ai-study-assistant-be/internal/pkg/logger"
)

type HealthResponse struct {
	Status      string `json:"status"`
	AiAvailable bool   `json:"ai_available"`
	OcrEnabled  bool   `json:"ocr_enabled"`
	Environment string `json:"environment"`
}

type ApiStatusResponse struct {
	Provider            string    `json:"provider"`
	Model               string    `json:"model"`
	Available           bool      `json:"api_available"`
	QuotaExceeded       bool      `json:"quota_exceeded"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastChecked         time.Time `json:"last_checked"`
}

type CheckQuotaResponse struct {
	Available     bool   `json:"api_available"`
	QuotaExceeded bool   `json:"quota_exceeded"`
	Message       string `json:"message"`
}

type GetLogsResponse struct {
	Logs  []logger.LogEntry `json:"logs"`
	Count int               `json:"count"`
}
