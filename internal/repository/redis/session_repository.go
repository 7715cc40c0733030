package redis

import (
	"ai-study-assistant-be/pkg/store"
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "study:session:"
	sessionTTL = 1 * time.Hour
)

// SessionRepository persists sessions in Redis so they survive process
// restarts. Marshal and connectivity failures are swallowed: the caller
// sees a miss, same as an expired in-memory entry.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func (r *SessionRepository) Save(session *store.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		return
	}
	r.rdb.Set(context.Background(), keyPrefix+session.ID, data, sessionTTL)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	data, err := r.rdb.Get(context.Background(), keyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, false
	}
	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Delete(sessionID string) {
	r.rdb.Del(context.Background(), keyPrefix+sessionID)
}
