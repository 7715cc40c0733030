// FILE: internal/service/system_service.go
package service

import (
	"context"

	"ai-study-assistant-be/internal/config"
	"ai-study-assistant-be/internal/dto"
	"ai-study-assistant-be/internal/pkg/logger"
	"ai-study-assistant-be/pkg/extract"
	"ai-study-assistant-be/pkg/health"
)

type ISystemService interface {
	Health(ctx context.Context) *dto.HealthResponse
	ApiStatus(ctx context.Context) *dto.ApiStatusResponse
	CheckQuota(ctx context.Context) *dto.CheckQuotaResponse
	GetLogs(level string, limit, offset int) (*dto.GetLogsResponse, error)
}

type systemService struct {
	monitor *health.Monitor
	ocr     extract.OCRRunner
	cfg     *config.Config
	logger  logger.ILogger
}

func NewSystemService(monitor *health.Monitor, ocr extract.OCRRunner, cfg *config.Config, log logger.ILogger) ISystemService {
	return &systemService{
		monitor: monitor,
		ocr:     ocr,
		cfg:     cfg,
		logger:  log,
	}
}

func (s *systemService) Health(ctx context.Context) *dto.HealthResponse {
	st := s.monitor.Check(ctx)
	return &dto.HealthResponse{
		Status:      "ok",
		AiAvailable: st.Available,
		OcrEnabled:  s.ocr != nil && s.ocr.Available(),
		Environment: s.cfg.App.Environment,
	}
}

func (s *systemService) ApiStatus(ctx context.Context) *dto.ApiStatusResponse {
	st := s.monitor.Check(ctx)
	return &dto.ApiStatusResponse{
		Provider:            s.cfg.Ai.LLMProvider,
		Model:               s.cfg.Ai.LLMModel,
		Available:           st.Available,
		QuotaExceeded:       st.QuotaExceeded,
		ConsecutiveFailures: st.ConsecutiveFailures,
		LastChecked:         st.LastChecked,
	}
}

// CheckQuota forces a fresh probe, bypassing the cached health window.
func (s *systemService) CheckQuota(ctx context.Context) *dto.CheckQuotaResponse {
	s.monitor.Reset()
	st := s.monitor.Check(ctx)

	message := "AI service is available."
	switch {
	case st.QuotaExceeded:
		message = "API quota exceeded. Generation requests will use fallback mode."
	case !st.Available:
		message = "AI service is unreachable. Generation requests will use fallback mode."
	}
	return &dto.CheckQuotaResponse{
		Available:     st.Available,
		QuotaExceeded: st.QuotaExceeded,
		Message:       message,
	}
}

func (s *systemService) GetLogs(level string, limit, offset int) (*dto.GetLogsResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	logs, err := s.logger.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.GetLogsResponse{Logs: logs, Count: len(logs)}, nil
}
