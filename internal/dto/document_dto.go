package dto

import "time"

type UploadDocumentResponse struct {
	SessionId     string   `json:"session_id"`
	Filename      string   `json:"filename"`
	Status        string   `json:"status"`
	WordCount     int      `json:"word_count"`
	PageCount     int      `json:"page_count"`
	PagesWithText int      `json:"pages_with_text"`
	Methods       []string `json:"methods"`
	Message       string   `json:"message,omitempty"`
}

type SessionInfoResponse struct {
	SessionId        string           `json:"session_id"`
	Filename         string           `json:"filename"`
	WordCount        int              `json:"word_count"`
	PageCount        int              `json:"page_count"`
	ExtractionMethod string           `json:"extraction_method"`
	Keywords         []string         `json:"keywords,omitempty"`
	Topic            string           `json:"topic,omitempty"`
	Exchanges        int              `json:"exchanges"`
	UploadedAt       time.Time        `json:"uploaded_at"`
	ApiStatus        SessionApiStatus `json:"api_status"`
}

type SessionApiStatus struct {
	Available     bool `json:"available"`
	FallbackMode  bool `json:"fallback_mode"`
	QuotaExceeded bool `json:"quota_exceeded"`
}
