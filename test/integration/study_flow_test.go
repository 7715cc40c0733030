package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"ai-study-assistant-be/internal/controller"
	"ai-study-assistant-be/internal/dto"
	"ai-study-assistant-be/internal/pkg/logger"
	"ai-study-assistant-be/internal/pkg/serverutils"
	"ai-study-assistant-be/internal/repository/memory"
	"ai-study-assistant-be/internal/service"
	"ai-study-assistant-be/pkg/health"
	"ai-study-assistant-be/pkg/llm"
	"ai-study-assistant-be/pkg/llm/chain"
	"ai-study-assistant-be/pkg/retry"
	"ai-study-assistant-be/pkg/store"
	"ai-study-assistant-be/pkg/study"
	"ai-study-assistant-be/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleText is long enough for every fallback generator to engage
// (the quiz generator needs at least a hundred words).
const sampleText = "Photosynthesis is the process by which green plants convert light energy into chemical energy. " +
	"Chlorophyll molecules in the leaves absorb sunlight and drive the production of glucose from carbon dioxide and water. " +
	"The light dependent reactions take place in the thylakoid membranes and produce both ATP and NADPH molecules. " +
	"The Calvin cycle then uses these energy carriers to fix carbon dioxide into stable sugar molecules. " +
	"Oxygen is released as a byproduct of splitting water molecules during the light reactions. " +
	"Plants store excess glucose as starch which animals later consume as an energy source. " +
	"Temperature and light intensity both influence the overall rate of photosynthesis in measurable ways. " +
	"Scientists study these reactions carefully because they form the foundation of almost every food chain on Earth."

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.reply, s.err
}

type envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func newTestApp(t *testing.T, p llm.LLMProvider, seed bool) (*fiber.App, *memory.SessionRepository) {
	t.Helper()

	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "app.log"), false)
	policy := retry.Policy{
		MaxAttempts: 1,
		Delay:       time.Second,
		Sleep:       func(ctx context.Context, d time.Duration) error { return nil },
	}
	client := chain.New(p, []string{"test-model"}, policy)
	monitor := health.NewMonitor(p, "test-model")
	agent := study.NewAgent(client, monitor)

	repo := memory.NewSessionRepository()
	if seed {
		repo.Save(&store.Session{
			ID:               service.DefaultSessionId,
			Filename:         "biology.pdf",
			Text:             sampleText,
			WordCount:        utils.WordCount(sampleText),
			PageCount:        1,
			PagesWithText:    1,
			ExtractionMethod: store.MethodTextLayer,
			UploadedAt:       time.Now(),
		})
	}

	studyService := service.NewStudyService(agent, repo, log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	controller.NewStudyController(studyService).RegisterRoutes(api)

	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestSummaryFallsBackWhenProviderDown(t *testing.T) {
	app, _ := newTestApp(t, &stubProvider{err: errors.New("connection refused")}, true)

	resp, raw := doJSON(t, app, "POST", "/api/study/v1/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body envelope[dto.SummaryResponse]
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "success", body.Status)
	assert.True(t, body.Data.FallbackUsed)
	assert.Contains(t, body.Data.Summary, "Fallback Mode")
}

func TestSummaryUsesModelWhenAvailable(t *testing.T) {
	app, _ := newTestApp(t, &stubProvider{reply: "A concise overview of photosynthesis."}, true)

	resp, raw := doJSON(t, app, "POST", "/api/study/v1/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body envelope[dto.SummaryResponse]
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.False(t, body.Data.FallbackUsed)
	assert.Equal(t, "test-model", body.Data.Model)
	assert.Equal(t, "A concise overview of photosynthesis.", body.Data.Summary)
}

func TestFlashcardsTruncatedToRequestedCount(t *testing.T) {
	reply := `[
		{"question": "What is photosynthesis?", "answer": "Conversion of light to chemical energy"},
		{"question": "Where does the Calvin cycle run?", "answer": "In the stroma"},
		{"question": "What pigment absorbs light?", "answer": "Chlorophyll"}
	]`
	app, _ := newTestApp(t, &stubProvider{reply: reply}, true)

	resp, raw := doJSON(t, app, "POST", "/api/study/v1/flashcards", dto.FlashcardsRequest{NumCards: 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body envelope[dto.FlashcardsResponse]
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.False(t, body.Data.FallbackUsed)
	assert.Equal(t, 2, body.Data.Count)
	require.Len(t, body.Data.Flashcards, 2)
	// missing difficulty and category are filled with defaults
	assert.Equal(t, "Basic", body.Data.Flashcards[0].Difficulty)
	assert.Equal(t, "General", body.Data.Flashcards[0].Category)
}

func TestQuizFallbackInvariants(t *testing.T) {
	app, _ := newTestApp(t, &stubProvider{err: errors.New("down")}, true)

	resp, raw := doJSON(t, app, "POST", "/api/study/v1/quiz", dto.QuizRequest{NumQuestions: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body envelope[dto.QuizResponse]
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body.Data.FallbackUsed)
	require.Equal(t, 3, body.Data.Count)
	for _, q := range body.Data.Questions {
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.Less(t, q.CorrectAnswer, 4)
		assert.NotEmpty(t, q.Question)
	}
}

func TestAskRecordsHistory(t *testing.T) {
	app, repo := newTestApp(t, &stubProvider{reply: "Light energy becomes chemical energy."}, true)

	resp, raw := doJSON(t, app, "POST", "/api/study/v1/ask",
		dto.AskRequest{Question: "What does photosynthesis produce?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body envelope[dto.AskResponse]
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "What does photosynthesis produce?", body.Data.Question)
	assert.Equal(t, "Light energy becomes chemical energy.", body.Data.Answer)

	session, found := repo.Get(service.DefaultSessionId)
	require.True(t, found)
	require.Len(t, session.History, 1)
	assert.Equal(t, "What does photosynthesis produce?", session.History[0].Question)
}

func TestAskRequiresQuestion(t *testing.T) {
	app, _ := newTestApp(t, &stubProvider{reply: "x"}, true)

	resp, _ := doJSON(t, app, "POST", "/api/study/v1/ask", dto.AskRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStudyWithoutUploadReturns404(t *testing.T) {
	app, _ := newTestApp(t, &stubProvider{reply: "x"}, false)

	resp, raw := doJSON(t, app, "POST", "/api/study/v1/summary", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body envelope[any]
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "error", body.Status)
}

func TestSuggestedQuestionsFallback(t *testing.T) {
	app, _ := newTestApp(t, &stubProvider{err: errors.New("down")}, true)

	resp, raw := doJSON(t, app, "GET", "/api/study/v1/suggested-questions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body envelope[dto.SuggestedQuestionsResponse]
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body.Data.FallbackUsed)
	assert.NotEmpty(t, body.Data.Questions)
}
