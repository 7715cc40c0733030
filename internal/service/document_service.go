// FILE: internal/service/document_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ai-study-assistant-be/internal/config"
	"ai-study-assistant-be/internal/dto"
	"ai-study-assistant-be/internal/pkg/logger"
	"ai-study-assistant-be/internal/pkg/serverutils"
	"ai-study-assistant-be/internal/repository/contract"
	"ai-study-assistant-be/pkg/extract"
	"ai-study-assistant-be/pkg/health"
	"ai-study-assistant-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentService interface {
	Upload(ctx context.Context, file *multipart.FileHeader, sessionId string) (*dto.UploadDocumentResponse, error)
	GetSession(ctx context.Context, sessionId string) (*dto.SessionInfoResponse, error)
	ClearSession(sessionId string)
}

type documentService struct {
	extractor   *extract.Extractor
	sessionRepo contract.SessionRepository
	publisher   IPublisherService
	monitor     *health.Monitor
	cfg         config.UploadConfig
	logger      logger.ILogger
}

func NewDocumentService(
	extractor *extract.Extractor,
	sessionRepo contract.SessionRepository,
	publisher IPublisherService,
	monitor *health.Monitor,
	cfg config.UploadConfig,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		extractor:   extractor,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		monitor:     monitor,
		cfg:         cfg,
		logger:      log,
	}
}

func (s *documentService) Upload(ctx context.Context, file *multipart.FileHeader, sessionId string) (*dto.UploadDocumentResponse, error) {
	if sessionId == "" {
		sessionId = DefaultSessionId
	}
	if file == nil || file.Size == 0 {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "No file uploaded.")
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "Only PDF files are supported.")
	}
	if file.Size > int64(s.cfg.MaxSizeMB)*1024*1024 {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest,
			fmt.Sprintf("File exceeds the %dMB limit.", s.cfg.MaxSizeMB))
	}

	path, err := s.saveUpload(file)
	if err != nil {
		s.logger.Error("DocumentService", "Failed to store upload", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	defer os.Remove(path)

	extractCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSecs)*time.Second)
	defer cancel()

	result, err := s.extractor.Extract(extractCtx, path)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serverutils.NewApiError(fiber.StatusRequestTimeout, "Document extraction timed out.")
		}
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "Could not read the PDF file.")
	}
	if result.WordCount < 10 {
		return nil, serverutils.NewApiError(fiber.StatusUnprocessableEntity,
			"The PDF contains too little extractable text. It may be a scanned document without OCR support.")
	}

	session := &store.Session{
		ID:               sessionId,
		Filename:         file.Filename,
		Text:             result.Text,
		WordCount:        result.WordCount,
		PageCount:        result.PageCount,
		PagesWithText:    result.PagesWithText,
		ExtractionMethod: strings.Join(result.Methods, "+"),
		UploadedAt:       time.Now(),
	}
	s.sessionRepo.Save(session)

	s.publishProcessed(ctx, sessionId)

	s.logger.Info("DocumentService", "Document processed", map[string]interface{}{
		"session_id": sessionId,
		"filename":   file.Filename,
		"word_count": result.WordCount,
		"pages":      result.PageCount,
		"methods":    result.Methods,
	})
	return &dto.UploadDocumentResponse{
		SessionId:     sessionId,
		Filename:      file.Filename,
		Status:        result.Status,
		WordCount:     result.WordCount,
		PageCount:     result.PageCount,
		PagesWithText: result.PagesWithText,
		Methods:       result.Methods,
		Message:       uploadMessage(result),
	}, nil
}

func (s *documentService) saveUpload(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(s.cfg.Dir, uuid.NewString()+".pdf")

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

func (s *documentService) publishProcessed(ctx context.Context, sessionId string) {
	payload, err := json.Marshal(dto.DocumentProcessedEvent{SessionId: sessionId})
	if err != nil {
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("DocumentService", "Failed to publish processed event", map[string]interface{}{
			"session_id": sessionId, "error": err.Error(),
		})
	}
}

func uploadMessage(result *extract.Result) string {
	switch result.Status {
	case extract.StatusSuccess:
		return "Document processed successfully."
	case extract.StatusWarning:
		return "Document processed, but very little text was found."
	default:
		return "No text could be extracted from the document."
	}
}

func (s *documentService) GetSession(ctx context.Context, sessionId string) (*dto.SessionInfoResponse, error) {
	if sessionId == "" {
		sessionId = DefaultSessionId
	}
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "No active session.")
	}
	status := s.monitor.Check(ctx)
	return &dto.SessionInfoResponse{
		SessionId:        session.ID,
		Filename:         session.Filename,
		WordCount:        session.WordCount,
		PageCount:        session.PageCount,
		ExtractionMethod: session.ExtractionMethod,
		Keywords:         session.Keywords,
		Topic:            session.Topic,
		Exchanges:        len(session.History),
		UploadedAt:       session.UploadedAt,
		ApiStatus: dto.SessionApiStatus{
			Available:     status.Available,
			FallbackMode:  !status.Available,
			QuotaExceeded: status.QuotaExceeded,
		},
	}, nil
}

func (s *documentService) ClearSession(sessionId string) {
	if sessionId == "" {
		sessionId = DefaultSessionId
	}
	s.sessionRepo.Delete(sessionId)
	s.logger.Info("DocumentService", "Session cleared", map[string]interface{}{"session_id": sessionId})
}
