// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"ai-study-assistant-be/internal/dto"
	"ai-study-assistant-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService precomputes keyword analysis in the background after
// each upload, so the first discovery request does not pay for it.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	studyService IStudyService
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	studyService IStudyService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		studyService: studyService,
		logger:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.DocumentProcessedEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if _, err := cs.studyService.EnsureKeywords(ctx, payload.SessionId); err != nil {
		// Session may have expired already; nothing to retry.
		cs.logger.Warn("ConsumerService", "Keyword precomputation skipped", map[string]interface{}{
			"session_id": payload.SessionId, "error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("ConsumerService", "Keywords precomputed", map[string]interface{}{
		"session_id": payload.SessionId,
	})
	msg.Ack()
}
