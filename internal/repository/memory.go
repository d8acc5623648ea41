package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trananhhq/shopbill/internal/apperr"
	"github.com/trananhhq/shopbill/internal/model"
	"github.com/trananhhq/shopbill/internal/storage/db"
)

// InMemoryProductRepository keeps products in a map. It backs tests and local
// experiments; semantics mirror the Postgres implementation.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

var _ ProductRepository = (*InMemoryProductRepository)(nil)

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[string]model.Product),
	}
}

func (r *InMemoryProductRepository) WithDB(_ db.DB) ProductRepository {
	return r
}

func (r *InMemoryProductRepository) ListAllProducts(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].ItemCode < products[j].ItemCode
	})

	return products, nil
}

func (r *InMemoryProductRepository) GetProduct(_ context.Context, itemCode string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[itemCode]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	return product, nil
}

func (r *InMemoryProductRepository) UpsertProduct(_ context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.products[product.ItemCode]; ok {
		product.CreatedAt = existing.CreatedAt
	}
	r.products[product.ItemCode] = product

	return nil
}

func (r *InMemoryProductRepository) UpdateProduct(_ context.Context, itemCode string, params UpdateProductParams) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[itemCode]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	if params.ItemCode != nil {
		product.ItemCode = *params.ItemCode
	}
	if params.Description != nil {
		product.Description = *params.Description
	}
	if params.Unit != nil {
		product.Unit = *params.Unit
	}
	if params.Price != nil {
		product.Price = *params.Price
	}
	product.UpdatedAt = time.Now()

	delete(r.products, itemCode)
	r.products[product.ItemCode] = product

	return product, nil
}

func (r *InMemoryProductRepository) DeleteProduct(_ context.Context, itemCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[itemCode]; !ok {
		return apperr.ProductNotFoundErr
	}
	delete(r.products, itemCode)

	return nil
}

// InMemoryOutboxMsgRepository records outbox messages in order.
type InMemoryOutboxMsgRepository struct {
	mu   sync.Mutex
	msgs []recordedOutboxMsg
}

type recordedOutboxMsg struct {
	result    ListUnprocessedOutboxMsgsResult
	processed bool
}

var _ OutboxMsgRepository = (*InMemoryOutboxMsgRepository)(nil)

func NewInMemoryOutboxMsgRepository() *InMemoryOutboxMsgRepository {
	return &InMemoryOutboxMsgRepository{}
}

func (r *InMemoryOutboxMsgRepository) WithDB(_ db.DB) OutboxMsgRepository {
	return r
}

func (r *InMemoryOutboxMsgRepository) CreateOutboxMsg(_ context.Context, params CreateOutboxMsgParams) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate uuid v7: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.msgs = append(r.msgs, recordedOutboxMsg{
		result: ListUnprocessedOutboxMsgsResult{
			ID:           id,
			Topic:        params.Topic,
			Headers:      params.Headers,
			Payload:      params.Payload,
			PartitionKey: params.PartitionKey,
		},
	})

	return nil
}

func (r *InMemoryOutboxMsgRepository) ListUnprocessedOutboxMsgs(_ context.Context, params ListUnprocessedOutboxMsgsParams) ([]ListUnprocessedOutboxMsgsResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]ListUnprocessedOutboxMsgsResult, 0)
	for _, msg := range r.msgs {
		if msg.processed {
			continue
		}
		results = append(results, msg.result)
		if len(results) == int(params.BatchSize) {
			break
		}
	}

	return results, nil
}

func (r *InMemoryOutboxMsgRepository) BulkUpdateOutboxMsgs(_ context.Context, params BulkUpdateOutboxMsgsParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range params.Items {
		for i := range r.msgs {
			if r.msgs[i].result.ID == item.ID {
				r.msgs[i].processed = true
			}
		}
	}

	return nil
}

// Topics returns the topics of all recorded messages in creation order.
func (r *InMemoryOutboxMsgRepository) Topics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	topics := make([]string, 0, len(r.msgs))
	for _, msg := range r.msgs {
		topics = append(topics, msg.result.Topic)
	}

	return topics
}
