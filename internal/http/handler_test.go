package http

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/trananhhq/shopbill/internal/config"
	"github.com/trananhhq/shopbill/internal/repository"
	"github.com/trananhhq/shopbill/internal/service"
	"github.com/trananhhq/shopbill/internal/storage/db"
	"github.com/trananhhq/shopbill/pkg/testutil"
	"github.com/trananhhq/shopbill/pkg/validator"
)

// testDB satisfies db.DB for handler tests running over in-memory
// repositories; WithTx just runs the function.
type testDB struct{}

var _ db.DB = testDB{}

func (testDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (testDB) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (testDB) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (d testDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	return txFunc(d)
}

// newTestRouter wires the full handler stack over in-memory storage.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	validate, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	productRepo := repository.NewInMemoryProductRepository()
	outboxRepo := repository.NewInMemoryOutboxMsgRepository()

	productSvc := service.NewProductService(testDB{}, productRepo, outboxRepo)
	billSvc := service.NewBillService(
		config.Billing{ShopName: "Test Shop", CurrencySymbol: "₹"},
		testutil.Logger(),
		productRepo,
	)

	s := New(config.HTTP{}, testutil.Logger(), validate, productSvc, billSvc)

	r := chi.NewRouter()
	s.RegisterHandlers(r)

	return r
}
