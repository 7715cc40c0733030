package dto

// DocumentProcessedEvent is published after a successful upload so
// keyword extraction can run in the background.
type DocumentProcessedEvent struct {
	SessionId string `json:"session_id"`
}
