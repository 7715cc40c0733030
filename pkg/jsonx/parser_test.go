package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainObject(t *testing.T) {
	region, ok := Extract(`{"main_topic":"biology","keywords":["cell"]}`)
	require.True(t, ok)
	assert.JSONEq(t, `{"main_topic":"biology","keywords":["cell"]}`, string(region))
}

func TestExtractStripsCodeFences(t *testing.T) {
	raw := "```json\n[{\"question\":\"Q\",\"answer\":\"A\"}]\n```"
	region, ok := Extract(raw)
	require.True(t, ok)
	assert.JSONEq(t, `[{"question":"Q","answer":"A"}]`, string(region))
}

func TestExtractIgnoresSurroundingCommentary(t *testing.T) {
	raw := `Sure! Here are your flashcards: [{"question":"Q1","answer":"A1"}] Hope that helps.`
	region, ok := Extract(raw)
	require.True(t, ok)
	assert.JSONEq(t, `[{"question":"Q1","answer":"A1"}]`, string(region))
}

func TestExtractHandlesBracketsInsideStrings(t *testing.T) {
	raw := `{"answer":"use arr[0] and obj} carefully"}`
	region, ok := Extract(raw)
	require.True(t, ok)
	assert.JSONEq(t, raw, string(region))
}

func TestExtractRejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		"no json here at all",
		`{"unterminated": "value`,
		`[1, 2,]`,
		"",
	} {
		_, ok := Extract(raw)
		assert.False(t, ok, "input %q should not parse", raw)
	}
}

func TestDecode(t *testing.T) {
	var out struct {
		MainTopic string   `json:"main_topic"`
		Keywords  []string `json:"keywords"`
	}
	ok := Decode("```json\n{\"main_topic\":\"physics\",\"keywords\":[\"quantum\"]}\n```", &out)
	require.True(t, ok)
	assert.Equal(t, "physics", out.MainTopic)
	assert.Equal(t, []string{"quantum"}, out.Keywords)
}

func TestDecodeTypeMismatch(t *testing.T) {
	var out []string
	assert.False(t, Decode(`{"a":1}`, &out))
}
