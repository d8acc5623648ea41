package event

import (
	"context"
	"log/slog"
)

const (
	TopicProductCreated = "product.created"
	TopicProductUpdated = "product.updated"
	TopicProductDeleted = "product.deleted"
)

// ProductChangedEvent is published for created and updated products and
// carries the full document after the write.
type ProductChangedEvent struct {
	ItemCode    string  `json:"item_code"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
}

type ProductDeletedEvent struct {
	ItemCode string `json:"item_code"`
}

func (s *Service) handleProductChangedEvent(ctx context.Context, topic string, ev ProductChangedEvent) error {
	s.logger.InfoContext(ctx, "handling product changed event",
		slog.String("topic", topic),
		slog.Any("event", ev),
	)
	return nil
}

func (s *Service) handleProductDeletedEvent(ctx context.Context, ev ProductDeletedEvent) error {
	s.logger.InfoContext(ctx, "handling product deleted event", slog.Any("event", ev))
	return nil
}
