package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trananhhq/shopbill/internal/apperr"
	"github.com/trananhhq/shopbill/internal/config"
	"github.com/trananhhq/shopbill/internal/model"
	"github.com/trananhhq/shopbill/internal/repository"
	"github.com/trananhhq/shopbill/internal/service"
	"github.com/trananhhq/shopbill/pkg/testutil"
)

func newBillService(t *testing.T, products ...model.Product) service.BillService {
	t.Helper()

	repo := repository.NewInMemoryProductRepository()
	for _, p := range products {
		require.NoError(t, repo.UpsertProduct(context.Background(), p))
	}

	cfg := config.Billing{ShopName: "Default Shop", CurrencySymbol: "₹"}
	return service.NewBillService(cfg, testutil.Logger(), repo)
}

func product(itemCode string, price float64) model.Product {
	now := time.Now()
	return model.Product{
		ItemCode:    itemCode,
		Description: itemCode + " description",
		Unit:        "pcs",
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestBuildBillEmptyItems(t *testing.T) {
	svc := newBillService(t)

	_, err := svc.BuildBill(context.Background(), service.BuildBillParams{})
	assert.ErrorIs(t, err, apperr.EmptyBillErr)
}

func TestBuildBillSkipsUnresolvedItems(t *testing.T) {
	svc := newBillService(t, product("A", 10))

	result, err := svc.BuildBill(context.Background(), service.BuildBillParams{
		Items: []service.BillItemParams{
			{ItemCode: "A", Qty: 2},
			{ItemCode: "MISSING", Qty: 5},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(result.Content))
	require.NoError(t, err)
	defer f.Close()

	// exactly one line: the resolvable item
	itemCode, err := f.GetCellValue("Invoice", "B6")
	require.NoError(t, err)
	assert.Equal(t, "A", itemCode)

	nextLine, err := f.GetCellValue("Invoice", "B7")
	require.NoError(t, err)
	assert.Empty(t, nextLine)

	total, err := f.GetCellValue("Invoice", "G6")
	require.NoError(t, err)
	assert.Equal(t, "₹20.00", total)

	grandTotal, err := f.GetCellValue("Invoice", "G8")
	require.NoError(t, err)
	assert.Equal(t, "₹20.00", grandTotal)
}

func TestBuildBillQtyCoercion(t *testing.T) {
	tests := []struct {
		name      string
		qty       any
		wantTotal string
	}{
		{"numeric string", "3", "₹30.00"},
		{"number", 2.0, "₹20.00"},
		{"garbage string", "abc", "₹0.00"},
		{"absent", nil, "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newBillService(t, product("A", 10))

			result, err := svc.BuildBill(context.Background(), service.BuildBillParams{
				Items: []service.BillItemParams{{ItemCode: "A", Qty: tt.qty}},
			})
			require.NoError(t, err)

			f, err := excelize.OpenReader(bytes.NewReader(result.Content))
			require.NoError(t, err)
			defer f.Close()

			total, err := f.GetCellValue("Invoice", "G6")
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestBuildBillFilenameAndShopDefault(t *testing.T) {
	svc := newBillService(t, product("A", 1))

	t.Run("invoice number present", func(t *testing.T) {
		result, err := svc.BuildBill(context.Background(), service.BuildBillParams{
			Items: []service.BillItemParams{{ItemCode: "A", Qty: 1}},
			Meta:  model.BillMeta{InvoiceNo: "INV-1"},
		})
		require.NoError(t, err)
		assert.Equal(t, "bill_INV-1.xlsx", result.Filename)

		f, err := excelize.OpenReader(bytes.NewReader(result.Content))
		require.NoError(t, err)
		defer f.Close()

		title, err := f.GetCellValue("Invoice", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Default Shop", title)
	})

	t.Run("invoice number absent", func(t *testing.T) {
		result, err := svc.BuildBill(context.Background(), service.BuildBillParams{
			Items: []service.BillItemParams{{ItemCode: "A", Qty: 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, "bill.xlsx", result.Filename)
	})
}
