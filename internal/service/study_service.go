// FILE: internal/service/study_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-study-assistant-be/internal/constant"
	"ai-study-assistant-be/internal/dto"
	"ai-study-assistant-be/internal/pkg/logger"
	"ai-study-assistant-be/internal/pkg/serverutils"
	"ai-study-assistant-be/internal/repository/contract"
	"ai-study-assistant-be/pkg/jsonx"
	"ai-study-assistant-be/pkg/store"
	"ai-study-assistant-be/pkg/study"
	"ai-study-assistant-be/pkg/study/fallback"

	"github.com/gofiber/fiber/v2"
)

const DefaultSessionId = "default"

type IStudyService interface {
	Summary(ctx context.Context, req *dto.SummaryRequest) (*dto.SummaryResponse, error)
	Flashcards(ctx context.Context, req *dto.FlashcardsRequest) (*dto.FlashcardsResponse, error)
	Quiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
	SuggestedQuestions(ctx context.Context, sessionId string) (*dto.SuggestedQuestionsResponse, error)
	EnsureKeywords(ctx context.Context, sessionId string) (study.KeywordResult, error)
}

type studyService struct {
	agent       *study.Agent
	gen         *fallback.Generator
	sessionRepo contract.SessionRepository
	logger      logger.ILogger
}

func NewStudyService(
	agent *study.Agent,
	sessionRepo contract.SessionRepository,
	log logger.ILogger,
) IStudyService {
	return &studyService{
		agent:       agent,
		gen:         fallback.New(),
		sessionRepo: sessionRepo,
		logger:      log,
	}
}

func (s *studyService) loadSession(sessionId string) (*store.Session, error) {
	if sessionId == "" {
		sessionId = DefaultSessionId
	}
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "No document uploaded. Upload a PDF first.")
	}
	if !session.HasDocument() {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "The uploaded document contains no usable text.")
	}
	return session, nil
}

func (s *studyService) Summary(ctx context.Context, req *dto.SummaryRequest) (*dto.SummaryResponse, error) {
	session, err := s.loadSession(req.SessionId)
	if err != nil {
		return nil, err
	}

	c := study.Capability[string]{
		Name:     "summary",
		MaxChars: 8000,
		Timeout:  90 * time.Second,
		Prompt: func(text string) string {
			return fmt.Sprintf(constant.SummaryPrompt, text)
		},
		Parse: func(raw string) (string, bool) {
			out := strings.TrimSpace(raw)
			return out, out != ""
		},
		Fallback: s.gen.Summary,
	}

	res := study.Run(ctx, s.agent, c, session.Text)
	if res.Err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, res.Err.Error())
	}

	s.logger.Info("StudyService", "Summary generated", map[string]interface{}{
		"session_id": session.ID, "fallback": res.UsedFallback, "model": res.Model,
	})
	return &dto.SummaryResponse{
		Summary:      res.Payload,
		FallbackUsed: res.UsedFallback,
		Model:        res.Model,
	}, nil
}

func (s *studyService) Flashcards(ctx context.Context, req *dto.FlashcardsRequest) (*dto.FlashcardsResponse, error) {
	session, err := s.loadSession(req.SessionId)
	if err != nil {
		return nil, err
	}
	n := clamp(req.NumCards, 1, 20, 10)

	c := study.Capability[[]study.Flashcard]{
		Name:     "flashcards",
		MaxChars: 6000,
		Timeout:  120 * time.Second,
		Prompt: func(text string) string {
			return fmt.Sprintf(constant.FlashcardsPrompt, n, text)
		},
		Parse: func(raw string) ([]study.Flashcard, bool) {
			var cards []study.Flashcard
			if !jsonx.Decode(raw, &cards) {
				return nil, false
			}
			cards, ok := study.SanitizeFlashcards(cards)
			if len(cards) > n {
				cards = cards[:n]
			}
			return cards, ok
		},
		Fallback: func(text string) []study.Flashcard {
			return s.gen.Flashcards(text, n)
		},
	}

	res := study.Run(ctx, s.agent, c, session.Text)
	if res.Err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, res.Err.Error())
	}

	s.logger.Info("StudyService", "Flashcards generated", map[string]interface{}{
		"session_id": session.ID, "count": len(res.Payload), "fallback": res.UsedFallback,
	})
	return &dto.FlashcardsResponse{
		Flashcards:   res.Payload,
		Count:        len(res.Payload),
		FallbackUsed: res.UsedFallback,
		Model:        res.Model,
	}, nil
}

func (s *studyService) Quiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	session, err := s.loadSession(req.SessionId)
	if err != nil {
		return nil, err
	}
	n := clamp(req.NumQuestions, 1, 15, 5)

	c := study.Capability[[]study.QuizQuestion]{
		Name:     "quiz",
		MaxChars: 6000,
		Timeout:  120 * time.Second,
		Prompt: func(text string) string {
			return fmt.Sprintf(constant.QuizPrompt, n, text)
		},
		Parse: func(raw string) ([]study.QuizQuestion, bool) {
			var questions []study.QuizQuestion
			if !jsonx.Decode(raw, &questions) {
				return nil, false
			}
			questions, ok := study.SanitizeQuiz(questions)
			if len(questions) > n {
				questions = questions[:n]
			}
			return questions, ok
		},
		Fallback: func(text string) []study.QuizQuestion {
			return s.gen.Quiz(text, n)
		},
	}

	res := study.Run(ctx, s.agent, c, session.Text)
	if res.Err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, res.Err.Error())
	}

	s.logger.Info("StudyService", "Quiz generated", map[string]interface{}{
		"session_id": session.ID, "count": len(res.Payload), "fallback": res.UsedFallback,
	})
	return &dto.QuizResponse{
		Questions:    res.Payload,
		Count:        len(res.Payload),
		FallbackUsed: res.UsedFallback,
		Model:        res.Model,
	}, nil
}

func (s *studyService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "Question must not be empty.")
	}
	session, err := s.loadSession(req.SessionId)
	if err != nil {
		return nil, err
	}

	history := formatHistory(session.RecentHistory(3))
	c := study.Capability[string]{
		Name:     "ask",
		MaxChars: 6000,
		Timeout:  60 * time.Second,
		Prompt: func(text string) string {
			return fmt.Sprintf(constant.AskPrompt, text, history, question)
		},
		Parse: func(raw string) (string, bool) {
			out := strings.TrimSpace(raw)
			return out, out != ""
		},
		Fallback: func(text string) string {
			return s.gen.Answer(question, text)
		},
	}

	res := study.Run(ctx, s.agent, c, session.Text)
	if res.Err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, res.Err.Error())
	}

	session.AddExchange(question, res.Payload, time.Now())
	s.sessionRepo.Save(session)

	s.logger.Info("StudyService", "Question answered", map[string]interface{}{
		"session_id": session.ID, "fallback": res.UsedFallback,
	})
	return &dto.AskResponse{
		Question:     question,
		Answer:       res.Payload,
		FallbackUsed: res.UsedFallback,
		Model:        res.Model,
	}, nil
}

func (s *studyService) SuggestedQuestions(ctx context.Context, sessionId string) (*dto.SuggestedQuestionsResponse, error) {
	session, err := s.loadSession(sessionId)
	if err != nil {
		return nil, err
	}

	const numQuestions = 8
	c := study.Capability[[]string]{
		Name:     "suggested_questions",
		MaxChars: 4000,
		Timeout:  30 * time.Second,
		Prompt: func(text string) string {
			return fmt.Sprintf(constant.SuggestedQuestionsPrompt, numQuestions, text)
		},
		Parse: func(raw string) ([]string, bool) {
			var questions []string
			if !jsonx.Decode(raw, &questions) || len(questions) == 0 {
				return nil, false
			}
			if len(questions) > numQuestions {
				questions = questions[:numQuestions]
			}
			return questions, true
		},
		Fallback: func(text string) []string {
			return s.gen.SuggestedQuestions(text, numQuestions)
		},
	}

	res := study.Run(ctx, s.agent, c, session.Text)
	if res.Err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, res.Err.Error())
	}
	return &dto.SuggestedQuestionsResponse{
		Questions:    res.Payload,
		FallbackUsed: res.UsedFallback,
	}, nil
}

// EnsureKeywords returns the cached keyword analysis for the session,
// computing and persisting it on first use.
func (s *studyService) EnsureKeywords(ctx context.Context, sessionId string) (study.KeywordResult, error) {
	session, err := s.loadSession(sessionId)
	if err != nil {
		return study.KeywordResult{}, err
	}
	if len(session.Keywords) > 0 {
		return study.KeywordResult{MainTopic: session.Topic, Keywords: session.Keywords}, nil
	}

	c := study.Capability[study.KeywordResult]{
		Name:     "keywords",
		MaxChars: 6000,
		Timeout:  30 * time.Second,
		Prompt: func(text string) string {
			return fmt.Sprintf(constant.KeywordsPrompt, text)
		},
		Parse: func(raw string) (study.KeywordResult, bool) {
			var result study.KeywordResult
			if !jsonx.Decode(raw, &result) || len(result.Keywords) == 0 {
				return study.KeywordResult{}, false
			}
			return result, true
		},
		Fallback: s.gen.Keywords,
	}

	res := study.Run(ctx, s.agent, c, session.Text)
	if res.Err != nil {
		return study.KeywordResult{}, serverutils.NewApiError(fiber.StatusBadRequest, res.Err.Error())
	}

	session.Keywords = res.Payload.Keywords
	session.Topic = res.Payload.MainTopic
	s.sessionRepo.Save(session)

	s.logger.Info("StudyService", "Keywords extracted", map[string]interface{}{
		"session_id": session.ID, "topic": session.Topic, "fallback": res.UsedFallback,
	})
	return res.Payload, nil
}

func formatHistory(exchanges []store.QAExchange) string {
	if len(exchanges) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nPrevious conversation:\n")
	for _, ex := range exchanges {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", ex.Question, ex.Answer)
	}
	return b.String()
}

func clamp(value, min, max, fallbackValue int) int {
	if value == 0 {
		return fallbackValue
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
