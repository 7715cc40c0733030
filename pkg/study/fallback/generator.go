package fallback

import (
	"ai-study-assistant-be/pkg/study"
	"ai-study-assistant-be/pkg/utils"
	"fmt"
	"sort"
	"strings"
)

// Generator produces study content from local text statistics alone.
// Every method is pure: identical input yields identical output, so the
// degraded mode stays testable and cacheable.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

const (
	flashcardWordFloor = 50
	quizWordFloor      = 100
)

// Summary builds a fixed-template report with word count, estimated
// reading time and the first representative sentences.
func (g *Generator) Summary(text string) string {
	if strings.TrimSpace(text) == "" {
		return "No content available to summarize."
	}

	wordCount := utils.WordCount(text)
	readingTime := wordCount / 200
	sentences := utils.SplitSentences(text, 20)
	if len(sentences) > 3 {
		sentences = sentences[:3]
	}

	var b strings.Builder
	b.WriteString("## 📋 DOCUMENT SUMMARY (Fallback Mode)\n\n")
	b.WriteString("**Document Statistics:**\n")
	fmt.Fprintf(&b, "- Word Count: %d words\n", wordCount)
	fmt.Fprintf(&b, "- Estimated Reading Time: %d minutes\n\n", readingTime)
	b.WriteString("**Key Content:**\n")
	for i, s := range sentences {
		fmt.Fprintf(&b, "%d. %s.\n", i+1, s)
	}
	b.WriteString("\n*Note: AI service unavailable. This summary was generated from document structure analysis.*")
	return b.String()
}

// Flashcards derives cards from long sentences first, then pads with
// capitalized terms until n cards exist or material runs out.
func (g *Generator) Flashcards(text string, n int) []study.Flashcard {
	if utils.WordCount(text) < flashcardWordFloor {
		return []study.Flashcard{}
	}

	cards := make([]study.Flashcard, 0, n)
	for _, sentence := range utils.SplitSentences(text, 30) {
		if len(cards) >= n {
			break
		}
		prompt := utils.Clip(sentence, 50)
		cards = append(cards, study.Flashcard{
			Question:   fmt.Sprintf("What does the document say about: %s...?", prompt),
			Answer:     sentence,
			Difficulty: "Basic",
			Category:   "Content",
			Hint:       "Look for this statement in the document",
		})
	}

	for _, term := range utils.CapitalizedTerms(text, 3) {
		if len(cards) >= n {
			break
		}
		cards = append(cards, study.Flashcard{
			Question:   fmt.Sprintf("What is %s?", term),
			Answer:     fmt.Sprintf("%s is a key term mentioned in the document. Review the surrounding context for its meaning.", term),
			Difficulty: "Basic",
			Category:   "Key Terms",
			Hint:       "This term appears capitalized in the text",
		})
	}
	return cards
}

// Quiz emits two fixed meta questions about the document, then turns
// long sentences into statement questions. The correct option is always
// first.
func (g *Generator) Quiz(text string, n int) []study.QuizQuestion {
	wordCount := utils.WordCount(text)
	if wordCount < quizWordFloor {
		return []study.QuizQuestion{}
	}

	questions := []study.QuizQuestion{
		{
			Question: "Approximately how many words does this document contain?",
			Options: []string{
				fmt.Sprintf("%d words", wordCount),
				fmt.Sprintf("%d words", wordCount/2),
				fmt.Sprintf("%d words", wordCount*2),
				fmt.Sprintf("%d words", wordCount/3),
			},
			CorrectAnswer: 0,
			Explanation:   "The word count was computed directly from the extracted text.",
			Difficulty:    "Basic",
		},
		{
			Question: "What type of document does this appear to be?",
			Options: []string{
				"Academic or professional material",
				"A fictional story",
				"A recipe collection",
				"A personal diary",
			},
			CorrectAnswer: 0,
			Explanation:   "The structure and vocabulary indicate academic or professional content.",
			Difficulty:    "Basic",
		},
	}

	for _, sentence := range utils.SplitSentences(text, 40) {
		if len(questions) >= n {
			break
		}
		statement := sentence
		if len(statement) > 60 {
			statement = utils.Clip(statement, 60) + "..."
		}
		questions = append(questions, study.QuizQuestion{
			Question: "According to the document, which statement is accurate?",
			Options: []string{
				statement,
				"This information is not mentioned in the document",
				"The document states the opposite of this",
				"This is only mentioned as a possibility",
			},
			CorrectAnswer: 0,
			Explanation:   "This statement appears directly in the document.",
			Difficulty:    "Basic",
		})
	}

	if len(questions) > n {
		questions = questions[:n]
	}
	return questions
}

var definitionIndicators = []string{" is ", " are ", " means ", " refers to ", " defined as "}

// Answer scores document sentences against the question keywords and
// quotes the best matches. Ties keep original sentence order.
func (g *Generator) Answer(question, text string) string {
	keywords := questionKeywords(question)
	sentences := utils.SplitSentences(text, 10)

	type scored struct {
		sentence string
		score    int
	}
	matches := make([]scored, 0)
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		words := strings.Fields(lower)
		score := 0
		for _, kw := range keywords {
			exact := false
			for _, w := range words {
				if utils.CleanWord(w) == kw {
					exact = true
					break
				}
			}
			if exact {
				score += 2
			} else if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > 0 {
			for _, ind := range definitionIndicators {
				if strings.Contains(lower, ind) {
					score++
					break
				}
			}
			matches = append(matches, scored{sentence: sentence, score: score})
		}
	}

	if len(matches) == 0 {
		return notFoundAnswer(question, keywords)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > 3 {
		matches = matches[:3]
	}

	sections := []string{"**Primary Information:**", "**Additional Context:**", "**Related Information:**"}
	confidence := "Low"
	if matches[0].score >= 3 {
		confidence = "High"
	} else if matches[0].score >= 2 {
		confidence = "Medium"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Question:** %s\n\n", question)
	for i, m := range matches {
		fmt.Fprintf(&b, "%s\n%s.\n\n", sections[i], m.sentence)
	}
	fmt.Fprintf(&b, "**Keywords found:** %s\n", strings.Join(keywords, ", "))
	fmt.Fprintf(&b, "**Confidence:** %s", confidence)
	return b.String()
}

func notFoundAnswer(question string, keywords []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Question:** %s\n\n", question)
	b.WriteString("I could not find information about this in the document.\n\n")
	b.WriteString("**Suggestions:**\n")
	b.WriteString("- Try rephrasing the question with terms used in the document\n")
	b.WriteString("- Ask about the document's main topics instead\n")
	b.WriteString("- Check whether the document covers this subject at all")
	if len(keywords) > 0 {
		fmt.Fprintf(&b, "\n\n**Searched for:** %s", strings.Join(keywords, ", "))
	}
	return b.String()
}

func questionKeywords(question string) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0)
	for _, w := range strings.Fields(strings.ToLower(question)) {
		clean := utils.CleanWord(w)
		if len(clean) <= 3 || utils.IsStopword(clean) || seen[clean] {
			continue
		}
		seen[clean] = true
		keywords = append(keywords, clean)
	}
	return keywords
}

// Keywords ranks stopword-filtered terms by frequency and takes the
// most frequent one as the main topic.
func (g *Generator) Keywords(text string) study.KeywordResult {
	top := utils.TopFrequentWords(text, 3, 8)
	result := study.KeywordResult{Keywords: top}
	if len(top) > 0 {
		result.MainTopic = utils.TitleCase(top[0])
	}
	return result
}

// SuggestedQuestions turns capitalized terms into question templates
// and appends document-agnostic prompts.
func (g *Generator) SuggestedQuestions(text string, max int) []string {
	templates := []string{
		"What is %s?",
		"How does %s work?",
		"Why is %s important?",
	}
	questions := make([]string, 0, max)
	for i, term := range utils.CapitalizedTerms(text, 3) {
		if len(questions) >= max || i >= len(templates) {
			break
		}
		questions = append(questions, fmt.Sprintf(templates[i], term))
	}
	general := []string{
		"What is the main topic of this document?",
		"What are the key points discussed?",
		"Can you summarize the most important findings?",
	}
	for _, q := range general {
		if len(questions) >= max {
			break
		}
		questions = append(questions, q)
	}
	return questions
}
