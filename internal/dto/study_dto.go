package dto

import "ai-study-assistant-be/pkg/study"

type SummaryRequest struct {
	SessionId string `json:"session_id"`
}

type SummaryResponse struct {
	Summary      string `json:"summary"`
	FallbackUsed bool   `json:"fallback_used"`
	Model        string `json:"model,omitempty"`
}

type FlashcardsRequest struct {
	SessionId string `json:"session_id"`
	NumCards  int    `json:"num_cards"`
}

type FlashcardsResponse struct {
	Flashcards   []study.Flashcard `json:"flashcards"`
	Count        int               `json:"count"`
	FallbackUsed bool              `json:"fallback_used"`
	Model        string            `json:"model,omitempty"`
}

type QuizRequest struct {
	SessionId    string `json:"session_id"`
	NumQuestions int    `json:"num_questions"`
}

type QuizResponse struct {
	Questions    []study.QuizQuestion `json:"questions"`
	Count        int                  `json:"count"`
	FallbackUsed bool                 `json:"fallback_used"`
	Model        string               `json:"model,omitempty"`
}

type AskRequest struct {
	SessionId string `json:"session_id"`
	Question  string `json:"question" validate:"required"`
}

type AskResponse struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	FallbackUsed bool   `json:"fallback_used"`
	Model        string `json:"model,omitempty"`
}

type SuggestedQuestionsResponse struct {
	Questions    []string `json:"questions"`
	FallbackUsed bool     `json:"fallback_used"`
}
