package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trananhhq/shopbill/internal/apperr"
	"github.com/trananhhq/shopbill/internal/event"
	"github.com/trananhhq/shopbill/internal/model"
	"github.com/trananhhq/shopbill/internal/repository"
	"github.com/trananhhq/shopbill/internal/storage/db"
	"github.com/trananhhq/shopbill/pkg/outbox"
	"github.com/trananhhq/shopbill/pkg/ptr"
)

type CreateProductParams struct {
	ItemCode    string
	Description string
	Unit        string
	Price       float64
}

type UpdateProductParams struct {
	ItemCode    *string
	Description *string
	Unit        *string
	Price       *float64
}

type ProductService interface {
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, itemCode string) (model.Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, itemCode string, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, itemCode string) error
}

type productService struct {
	db            db.DB
	productRepo   repository.ProductRepository
	outboxMsgRepo repository.OutboxMsgRepository
}

func NewProductService(
	db db.DB,
	productRepo repository.ProductRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) ProductService {
	return &productService{
		db:            db,
		productRepo:   productRepo,
		outboxMsgRepo: outboxMsgRepo,
	}
}

func (s *productService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all products: %w", err)
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, itemCode string) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, itemCode)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

// CreateProduct writes the product and its change event in one transaction.
// An existing product under the same item code is overwritten.
func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	if params.ItemCode == "" {
		return model.Product{}, apperr.ItemCodeRequiredErr
	}

	now := time.Now()
	product := model.Product{
		ItemCode:    params.ItemCode,
		Description: params.Description,
		Unit:        params.Unit,
		Price:       params.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.productRepo.
			WithDB(db).
			UpsertProduct(ctx, product); err != nil {
			return fmt.Errorf("product repository upsert product: %w", err)
		}

		if err := s.createChangeOutboxMsg(ctx, db, event.TopicProductCreated, product); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return model.Product{}, fmt.Errorf("db with tx: %w", err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, itemCode string, params UpdateProductParams) (model.Product, error) {
	if params.ItemCode == nil && params.Description == nil && params.Unit == nil && params.Price == nil {
		return model.Product{}, apperr.NoUpdateFieldsErr
	}

	var product model.Product
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		updated, err := s.productRepo.
			WithDB(db).
			UpdateProduct(ctx, itemCode, repository.UpdateProductParams{
				ItemCode:    params.ItemCode,
				Description: params.Description,
				Unit:        params.Unit,
				Price:       params.Price,
			})
		if err != nil {
			return fmt.Errorf("product repository update product: %w", err)
		}
		product = updated

		if err := s.createChangeOutboxMsg(ctx, db, event.TopicProductUpdated, product); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return model.Product{}, err
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, itemCode string) error {
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.productRepo.
			WithDB(db).
			DeleteProduct(ctx, itemCode); err != nil {
			return fmt.Errorf("product repository delete product: %w", err)
		}

		ev := event.ProductDeletedEvent{ItemCode: itemCode}
		evBytes, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}

		if err := s.outboxMsgRepo.
			WithDB(db).
			CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
				Topic:        event.TopicProductDeleted,
				Headers:      outbox.BuildHeaders(ctx),
				Payload:      evBytes,
				PartitionKey: ptr.New(itemCode),
			}); err != nil {
			return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
		}

		return nil
	}); err != nil {
		return err
	}

	return nil
}

func (s *productService) createChangeOutboxMsg(ctx context.Context, db db.DB, topic string, product model.Product) error {
	ev := event.ProductChangedEvent{
		ItemCode:    product.ItemCode,
		Description: product.Description,
		Unit:        product.Unit,
		Price:       product.Price,
	}

	evBytes, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := s.outboxMsgRepo.
		WithDB(db).
		CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
			Topic:        topic,
			Headers:      outbox.BuildHeaders(ctx),
			Payload:      evBytes,
			PartitionKey: ptr.New(product.ItemCode),
		}); err != nil {
		return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
	}

	return nil
}
