package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trananhhq/shopbill/internal/apperr"
	"github.com/trananhhq/shopbill/internal/model"
	"github.com/trananhhq/shopbill/internal/storage/db"
)

// UpdateProductParams carries the optional fields of a partial update.
// Nil fields are left untouched.
type UpdateProductParams struct {
	ItemCode    *string
	Description *string
	Unit        *string
	Price       *float64
}

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, itemCode string) (model.Product, error)
	UpsertProduct(ctx context.Context, product model.Product) error
	UpdateProduct(ctx context.Context, itemCode string, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, itemCode string) error
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `item_code, description, unit, price, created_at, updated_at`

func (r productRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY item_code;
	`)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}

	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("collect products: %w", err)
	}

	return products, nil
}

func (r productRepository) GetProduct(ctx context.Context, itemCode string) (model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE item_code = $1;
	`, itemCode)
	if err != nil {
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	product, err := pgx.CollectOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ProductNotFoundErr
		}
		return model.Product{}, fmt.Errorf("collect product: %w", err)
	}

	return product, nil
}

func (r productRepository) UpsertProduct(ctx context.Context, product model.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (item_code, description, unit, price, created_at, updated_at)
		VALUES (@item_code, @description, @unit, @price, @created_at, @updated_at)
		ON CONFLICT (item_code) DO UPDATE
		SET
			description = EXCLUDED.description,
			unit        = EXCLUDED.unit,
			price       = EXCLUDED.price,
			updated_at  = EXCLUDED.updated_at;
	`, pgx.NamedArgs{
		"item_code":   product.ItemCode,
		"description": product.Description,
		"unit":        product.Unit,
		"price":       product.Price,
		"created_at":  product.CreatedAt,
		"updated_at":  product.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}

	return nil
}

func (r productRepository) UpdateProduct(ctx context.Context, itemCode string, params UpdateProductParams) (model.Product, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE products
		SET
			item_code   = COALESCE(@new_item_code, item_code),
			description = COALESCE(@description, description),
			unit        = COALESCE(@unit, unit),
			price       = COALESCE(@price, price),
			updated_at  = NOW()
		WHERE item_code = @item_code
		RETURNING `+productColumns+`;
	`, pgx.NamedArgs{
		"item_code":     itemCode,
		"new_item_code": params.ItemCode,
		"description":   params.Description,
		"unit":          params.Unit,
		"price":         params.Price,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("update product: %w", err)
	}

	product, err := pgx.CollectOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ProductNotFoundErr
		}
		return model.Product{}, fmt.Errorf("collect updated product: %w", err)
	}

	return product, nil
}

func (r productRepository) DeleteProduct(ctx context.Context, itemCode string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM products
		WHERE item_code = $1;
	`, itemCode)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.ProductNotFoundErr
	}

	return nil
}

func scanProduct(row pgx.CollectableRow) (model.Product, error) {
	var p model.Product
	if err := row.Scan(&p.ItemCode, &p.Description, &p.Unit, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return model.Product{}, fmt.Errorf("scan product row: %w", err)
	}
	return p, nil
}
