package utils

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopwords excluded from frequency-based keyword extraction.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "have": {}, "has": {},
	"had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "can": {},
	"cannot": {}, "a": {}, "an": {}, "this": {}, "that": {}, "these": {},
	"those": {},
}

// SplitSentences splits text on '.' and keeps trimmed sentences longer than
// minLen characters. Order is preserved so callers can rely on stable ranking.
func SplitSentences(text string, minLen int) []string {
	parts := strings.Split(text, ".")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if len(s) > minLen {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Words splits on whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the whitespace-separated word count.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Clip cuts text to at most max bytes without splitting a rune, so PDF
// text full of accented characters and smart quotes stays valid UTF-8.
func Clip(text string, max int) string {
	if len(text) <= max {
		return text
	}
	if max <= 0 {
		return ""
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// Truncate cuts text to max bytes and appends "..." when it was cut.
// Both the AI prompt and the fallback generator see the same truncated text.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return Clip(text, max) + "..."
}

// CleanWord strips surrounding punctuation from a token.
func CleanWord(word string) string {
	return strings.Trim(word, `.,!?;:"()[]{}`)
}

// IsStopword reports whether the lowercased token carries no topical signal.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// IsAlpha reports whether the token is letters only.
func IsAlpha(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// TopFrequentWords returns up to max distinct words longer than minLen,
// stopword-filtered and alphabetic, ordered by descending frequency.
// Ties keep first-seen order so output is deterministic.
func TopFrequentWords(text string, minLen, max int) []string {
	freq := make(map[string]int)
	order := make([]string, 0)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		clean := CleanWord(w)
		if len(clean) <= minLen || IsStopword(clean) || !IsAlpha(clean) {
			continue
		}
		if _, seen := freq[clean]; !seen {
			order = append(order, clean)
		}
		freq[clean]++
	}

	result := make([]string, len(order))
	copy(result, order)
	sort.SliceStable(result, func(i, j int) bool {
		return freq[result[i]] > freq[result[j]]
	})

	if len(result) > max {
		result = result[:max]
	}
	return result
}

// CapitalizedTerms returns distinct capitalized (not all-caps) alphabetic
// tokens longer than minLen, in order of first appearance. These approximate
// the important named concepts in a document.
func CapitalizedTerms(text string, minLen int) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, w := range strings.Fields(text) {
		clean := CleanWord(w)
		if len(clean) <= minLen || !IsAlpha(clean) {
			continue
		}
		first := rune(clean[0])
		if !unicode.IsUpper(first) || clean == strings.ToUpper(clean) {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		terms = append(terms, clean)
	}
	return terms
}

// TitleCase uppercases the first letter of a single token.
func TitleCase(word string) string {
	if word == "" {
		return word
	}
	r := []rune(word)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// CleanWhitespace collapses runs of whitespace and decodes the HTML entities
// that show up in scraped titles.
func CleanWhitespace(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	replacer := strings.NewReplacer("&amp;", "&", "&quot;", `"`, "&#39;", "'")
	return replacer.Replace(text)
}
