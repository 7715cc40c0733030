package contract

import "ai-study-assistant-be/pkg/store"

// SessionRepository stores document sessions. Implementations are free
// to expire entries; callers must handle a miss.
type SessionRepository interface {
	Save(session *store.Session)
	Get(sessionID string) (*store.Session, bool)
	Delete(sessionID string)
}
