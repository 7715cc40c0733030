package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddExchangeCapsHistory(t *testing.T) {
	s := &Session{ID: "s1"}
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		s.AddExchange(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i), at)
	}

	assert.Len(t, s.History, 10)
	assert.Equal(t, "q5", s.History[0].Question)
	assert.Equal(t, "q14", s.History[9].Question)
}

func TestRecentHistory(t *testing.T) {
	s := &Session{ID: "s1"}
	at := time.Now()
	for i := 0; i < 5; i++ {
		s.AddExchange(fmt.Sprintf("q%d", i), "a", at)
	}

	recent := s.RecentHistory(3)
	assert.Len(t, recent, 3)
	assert.Equal(t, "q2", recent[0].Question)

	assert.Len(t, s.RecentHistory(100), 5)
	assert.Nil(t, s.RecentHistory(0))
}

func TestHasDocument(t *testing.T) {
	assert.False(t, (&Session{}).HasDocument())
	assert.True(t, (&Session{WordCount: 1}).HasDocument())

	var nilSession *Session
	assert.False(t, nilSession.HasDocument())
}
