// FILE: internal/service/discovery_service.go
package service

import (
	"context"
	"time"

	"ai-study-assistant-be/internal/dto"
	"ai-study-assistant-be/internal/pkg/logger"
	"ai-study-assistant-be/pkg/discovery"
)

type IDiscoveryService interface {
	Papers(ctx context.Context, req *dto.DiscoverRequest) (*dto.PapersResponse, error)
	Videos(ctx context.Context, req *dto.DiscoverRequest) (*dto.VideosResponse, error)
	Resources(ctx context.Context, req *dto.DiscoverRequest) (*dto.ResourcesResponse, error)
}

type discoveryService struct {
	studyService IStudyService
	papers       *discovery.PapersAgent
	videos       *discovery.VideosAgent
	resources    *discovery.ResourcesAgent
	logger       logger.ILogger
}

func NewDiscoveryService(
	studyService IStudyService,
	papers *discovery.PapersAgent,
	videos *discovery.VideosAgent,
	resources *discovery.ResourcesAgent,
	log logger.ILogger,
) IDiscoveryService {
	return &discoveryService{
		studyService: studyService,
		papers:       papers,
		videos:       videos,
		resources:    resources,
		logger:       log,
	}
}

func (s *discoveryService) Papers(ctx context.Context, req *dto.DiscoverRequest) (*dto.PapersResponse, error) {
	keywords, err := s.studyService.EnsureKeywords(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, 180*time.Second)
	defer cancel()

	papers := s.papers.Discover(callCtx, keywords.Keywords, keywords.MainTopic, req.MaxResults)
	s.logger.Info("DiscoveryService", "Papers discovered", map[string]interface{}{
		"session_id": req.SessionId, "topic": keywords.MainTopic, "count": len(papers),
	})
	return &dto.PapersResponse{
		Topic:    keywords.MainTopic,
		Keywords: keywords.Keywords,
		Papers:   papers,
		Count:    len(papers),
	}, nil
}

func (s *discoveryService) Videos(ctx context.Context, req *dto.DiscoverRequest) (*dto.VideosResponse, error) {
	keywords, err := s.studyService.EnsureKeywords(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	videos := s.videos.Discover(callCtx, keywords.Keywords, keywords.MainTopic, req.MaxResults)
	s.logger.Info("DiscoveryService", "Videos discovered", map[string]interface{}{
		"session_id": req.SessionId, "topic": keywords.MainTopic, "count": len(videos),
	})
	return &dto.VideosResponse{
		Topic:    keywords.MainTopic,
		Keywords: keywords.Keywords,
		Videos:   videos,
		Count:    len(videos),
	}, nil
}

func (s *discoveryService) Resources(ctx context.Context, req *dto.DiscoverRequest) (*dto.ResourcesResponse, error) {
	keywords, err := s.studyService.EnsureKeywords(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, 150*time.Second)
	defer cancel()

	resources := s.resources.Discover(callCtx, keywords.Keywords, keywords.MainTopic, req.MaxResults)
	s.logger.Info("DiscoveryService", "Resources discovered", map[string]interface{}{
		"session_id": req.SessionId, "topic": keywords.MainTopic, "count": len(resources),
	})
	return &dto.ResourcesResponse{
		Topic:     keywords.MainTopic,
		Keywords:  keywords.Keywords,
		Resources: resources,
		Count:     len(resources),
	}, nil
}
