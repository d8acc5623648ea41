package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/trananhhq/shopbill/internal/storage/mq"
)

// Service consumes product change events relayed from the outbox.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger,
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	for _, topic := range []string{TopicProductCreated, TopicProductUpdated} {
		if err := s.mqConsumer.RegisterHandler(topic,
			func(ctx context.Context, topic string, payload []byte) error {
				var ev ProductChangedEvent
				if err := json.Unmarshal(payload, &ev); err != nil {
					return fmt.Errorf("unmarshal product changed event: %w", err)
				}

				if err := s.handleProductChangedEvent(ctx, topic, ev); err != nil {
					return fmt.Errorf("handle product changed event: %w", err)
				}

				return nil
			},
		); err != nil {
			return nil, fmt.Errorf("register handler for %s: %w", topic, err)
		}
	}

	if err := s.mqConsumer.RegisterHandler(TopicProductDeleted,
		func(ctx context.Context, _ string, payload []byte) error {
			var ev ProductDeletedEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal product deleted event: %w", err)
			}

			if err := s.handleProductDeletedEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle product deleted event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register product deleted event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	return CleanupFunc(mqCleanup), nil
}
