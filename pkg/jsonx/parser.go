// Package jsonx extracts structured JSON from LLM responses. Models often
// wrap their JSON in code fences or commentary; callers need the first
// balanced top-level array or object, strictly decoded, or nothing.
package jsonx

import (
	"encoding/json"
	"strings"
)

// Extract returns the first balanced top-level JSON array or object found in
// raw, after stripping code-fence markers. The second return value is false
// when no decodable JSON region exists. Extract never panics and never
// returns partial JSON.
func Extract(raw string) (json.RawMessage, bool) {
	text := stripFences(strings.TrimSpace(raw))

	region, ok := findBalanced(text)
	if !ok {
		return nil, false
	}
	if !json.Valid([]byte(region)) {
		return nil, false
	}
	return json.RawMessage(region), true
}

// Decode extracts and unmarshals into v. Any failure reports false; callers
// treat that the same as an AI-path failure.
func Decode(raw string, v interface{}) bool {
	region, ok := Extract(raw)
	if !ok {
		return false
	}
	return json.Unmarshal(region, v) == nil
}

func stripFences(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[3:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// findBalanced scans for the first '[' or '{' and returns the substring up to
// its matching close bracket, respecting strings and escapes.
func findBalanced(text string) (string, bool) {
	start := -1
	var open, close byte
	for i := 0; i < len(text); i++ {
		if text[i] == '[' || text[i] == '{' {
			start = i
			open = text[i]
			if open == '[' {
				close = ']'
			} else {
				close = '}'
			}
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
