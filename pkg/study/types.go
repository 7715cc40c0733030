package study

import "strings"

// Flashcard is one study card. Difficulty is Basic, Intermediate or
// Advanced; Hint may be empty.
type Flashcard struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
	Hint       string `json:"hint"`
}

// QuizQuestion is one multiple choice question. Options always has
// exactly four entries and CorrectAnswer indexes into it.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

// KeywordResult is the outcome of keyword extraction over a document.
type KeywordResult struct {
	MainTopic string   `json:"main_topic"`
	Keywords  []string `json:"keywords"`
}

// SanitizeFlashcards filters AI-produced cards down to usable ones and
// fills defaulted fields. Returns false when nothing usable remains.
func SanitizeFlashcards(cards []Flashcard) ([]Flashcard, bool) {
	out := make([]Flashcard, 0, len(cards))
	for _, c := range cards {
		if strings.TrimSpace(c.Question) == "" || strings.TrimSpace(c.Answer) == "" {
			continue
		}
		if c.Difficulty == "" {
			c.Difficulty = "Basic"
		}
		if c.Category == "" {
			c.Category = "General"
		}
		out = append(out, c)
	}
	return out, len(out) > 0
}

// SanitizeQuiz enforces the quiz schema. Questions without exactly four
// options are dropped; an out-of-range correct index is coerced to 0.
func SanitizeQuiz(questions []QuizQuestion) ([]QuizQuestion, bool) {
	out := make([]QuizQuestion, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) != 4 {
			continue
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			q.CorrectAnswer = 0
		}
		if q.Explanation == "" {
			q.Explanation = "No explanation provided"
		}
		if q.Difficulty == "" {
			q.Difficulty = "Basic"
		}
		out = append(out, q)
	}
	return out, len(out) > 0
}
