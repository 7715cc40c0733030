package fallback

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatWords(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}

func TestSummaryEmptyText(t *testing.T) {
	g := New()
	assert.Equal(t, "No content available to summarize.", g.Summary("   "))
}

func TestSummaryTemplate(t *testing.T) {
	g := New()
	text := "Photosynthesis is the process by which plants convert light into energy. " +
		"Chlorophyll absorbs light in the blue and red parts of the spectrum. " +
		"The light reactions take place in the thylakoid membranes of chloroplasts. " +
		"Short one."

	out := g.Summary(text)

	assert.Contains(t, out, "DOCUMENT SUMMARY (Fallback Mode)")
	assert.Contains(t, out, "Word Count: 36 words")
	assert.Contains(t, out, "Photosynthesis is the process")
	assert.NotContains(t, out, "Short one")
}

func TestSummaryDeterministic(t *testing.T) {
	g := New()
	text := "Machine learning systems improve with data. They generalize from examples to unseen cases."
	assert.Equal(t, g.Summary(text), g.Summary(text))
}

func TestFlashcardsBelowWordFloor(t *testing.T) {
	g := New()
	assert.Empty(t, g.Flashcards("too few words here", 5))
}

func TestFlashcardsFromSentencesAndTerms(t *testing.T) {
	g := New()
	text := "Neural Networks are computing systems inspired by biological brains and their structure. " +
		"Backpropagation adjusts the weights of the network by propagating errors backwards. " +
		repeatWords("filler", 60)

	cards := g.Flashcards(text, 5)

	require.NotEmpty(t, cards)
	assert.LessOrEqual(t, len(cards), 5)
	assert.Contains(t, cards[0].Question, "What does the document say about:")
	for _, c := range cards {
		assert.NotEmpty(t, c.Question)
		assert.NotEmpty(t, c.Answer)
		assert.NotEmpty(t, c.Difficulty)
	}
}

func TestFlashcardsRespectsRequestedCount(t *testing.T) {
	g := New()
	text := "Gravity pulls objects toward each other with a force proportional to their masses. " +
		repeatWords("word", 100)

	cards := g.Flashcards(text, 1)
	assert.Len(t, cards, 1)
}

func TestFlashcardsAndQuizKeepValidUTF8(t *testing.T) {
	g := New()
	// multi-byte characters placed exactly on the flashcard (50 byte)
	// and quiz statement (60 byte) cut points
	accented := strings.Repeat("a", 49) + "é plus enough trailing words to finish this sentence"
	statement := strings.Repeat("b", 59) + "é with a tail long enough to cross the statement limit"
	text := accented + ". " + statement + ". " + repeatWords("filler", 120)

	cards := g.Flashcards(text, 10)
	require.NotEmpty(t, cards)
	for _, c := range cards {
		assert.True(t, utf8.ValidString(c.Question), "question: %q", c.Question)
		assert.True(t, utf8.ValidString(c.Answer))
	}

	qs := g.Quiz(text, 10)
	require.NotEmpty(t, qs)
	for _, q := range qs {
		assert.True(t, utf8.ValidString(q.Question))
		for _, opt := range q.Options {
			assert.True(t, utf8.ValidString(opt), "option: %q", opt)
		}
	}
}

func TestQuizBelowWordFloor(t *testing.T) {
	g := New()
	assert.Empty(t, g.Quiz(repeatWords("word", 99), 5))
}

func TestQuizMetaQuestionsFirst(t *testing.T) {
	g := New()
	text := "The mitochondria generate most of the chemical energy needed to power the cell. " +
		repeatWords("biology", 120)

	qs := g.Quiz(text, 5)

	require.GreaterOrEqual(t, len(qs), 2)
	assert.Contains(t, qs[0].Question, "how many words")
	assert.Contains(t, qs[1].Question, "type of document")
	assert.Equal(t, "Academic or professional material", qs[1].Options[0])
	for _, q := range qs {
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.Less(t, q.CorrectAnswer, 4)
	}
}

func TestQuizCorrectOptionIsFirst(t *testing.T) {
	g := New()
	text := "The industrial revolution transformed manufacturing processes across Europe and America. " +
		repeatWords("history", 120)

	qs := g.Quiz(text, 5)
	for _, q := range qs {
		assert.Equal(t, 0, q.CorrectAnswer)
	}
}

func TestAnswerExactMatchOutranksPartial(t *testing.T) {
	g := New()
	text := "Machine learning is a field of artificial intelligence. " +
		"The machines in the factory run day and night. " +
		"Weather patterns change seasonally."

	out := g.Answer("What is machine learning?", text)

	assert.Contains(t, out, "**Primary Information:**\nMachine learning is a field of artificial intelligence")
	assert.Contains(t, out, "**Confidence:** High")
}

func TestAnswerNotFound(t *testing.T) {
	g := New()
	out := g.Answer("What is quantum entanglement?", "Cooking pasta requires boiling water and salt for flavor.")

	assert.Contains(t, out, "could not find information")
	assert.Contains(t, out, "Suggestions")
}

func TestAnswerDeterministic(t *testing.T) {
	g := New()
	text := "Photosynthesis converts light energy. Light energy drives reactions. Reactions produce sugar."
	assert.Equal(t, g.Answer("What is photosynthesis?", text), g.Answer("What is photosynthesis?", text))
}

func TestKeywords(t *testing.T) {
	g := New()
	text := repeatWords("photosynthesis", 5) + " " + repeatWords("chlorophyll", 3) + " the and of light"

	res := g.Keywords(text)

	require.NotEmpty(t, res.Keywords)
	assert.Equal(t, "photosynthesis", res.Keywords[0])
	assert.Equal(t, "Photosynthesis", res.MainTopic)
	assert.LessOrEqual(t, len(res.Keywords), 8)
}

func TestSuggestedQuestions(t *testing.T) {
	g := New()
	text := "Thermodynamics governs heat. Entropy always increases in isolated systems."

	qs := g.SuggestedQuestions(text, 6)

	require.NotEmpty(t, qs)
	assert.LessOrEqual(t, len(qs), 6)
	assert.Equal(t, "What is Thermodynamics?", qs[0])
	assert.Contains(t, qs, "What is the main topic of this document?")
}