package store

import "time"

// Extraction methods recorded on a session after PDF processing.
const (
	MethodTextLayer = "text_layer"
	MethodOCR       = "ocr"
	MethodMixed     = "text_layer+ocr"
)

// QAExchange is one question/answer turn kept in the session history.
type QAExchange struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}

// Session holds the state of one uploaded document in memory. All study
// and discovery operations read the document text from here.
type Session struct {
	ID               string `json:"id"`
	Filename         string `json:"filename"`
	Text             string `json:"text"`
	WordCount        int    `json:"word_count"`
	PageCount        int    `json:"page_count"`
	PagesWithText    int    `json:"pages_with_text"`
	ExtractionMethod string `json:"extraction_method"`

	// Precomputed in the background after upload so keyword driven
	// features respond instantly.
	Keywords []string `json:"keywords,omitempty"`
	Topic    string   `json:"topic,omitempty"`

	History    []QAExchange `json:"history,omitempty"`
	UploadedAt time.Time    `json:"uploaded_at"`
}

// maxHistory bounds the per-session conversation memory.
const maxHistory = 10

// AddExchange appends a Q&A turn, evicting the oldest once the history
// is full.
func (s *Session) AddExchange(question, answer string, at time.Time) {
	s.History = append(s.History, QAExchange{
		Question: question,
		Answer:   answer,
		AskedAt:  at,
	})
	if len(s.History) > maxHistory {
		s.History = s.History[len(s.History)-maxHistory:]
	}
}

// RecentHistory returns up to n most recent exchanges, oldest first.
func (s *Session) RecentHistory(n int) []QAExchange {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

func (s *Session) HasDocument() bool {
	return s != nil && s.WordCount > 0
}
