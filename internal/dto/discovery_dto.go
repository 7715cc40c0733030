package dto

import "ai-study-assistant-be/pkg/discovery"

type DiscoverRequest struct {
	SessionId  string `json:"session_id"`
	MaxResults int    `json:"max_results"`
}

type PapersResponse struct {
	Topic    string            `json:"topic"`
	Keywords []string          `json:"keywords"`
	Papers   []discovery.Paper `json:"papers"`
	Count    int               `json:"count"`
}

type VideosResponse struct {
	Topic    string            `json:"topic"`
	Keywords []string          `json:"keywords"`
	Videos   []discovery.Video `json:"videos"`
	Count    int               `json:"count"`
}

type ResourcesResponse struct {
	Topic     string               `json:"topic"`
	Keywords  []string             `json:"keywords"`
	Resources []discovery.Resource `json:"resources"`
	Count     int                  `json:"count"`
}
