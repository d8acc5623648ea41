package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/trananhhq/shopbill/internal/apperr"
	"github.com/trananhhq/shopbill/internal/config"
	"github.com/trananhhq/shopbill/internal/invoice"
	"github.com/trananhhq/shopbill/internal/model"
	"github.com/trananhhq/shopbill/internal/repository"
	"github.com/trananhhq/shopbill/pkg/numeric"
	"github.com/trananhhq/shopbill/pkg/zerror"
)

// BillItemParams is one requested bill line. Qty is kept loosely typed
// because callers send it as either a number or a string.
type BillItemParams struct {
	ItemCode string
	Qty      any
}

type BuildBillParams struct {
	Items []BillItemParams
	Meta  model.BillMeta
}

// BuildBillResult is the rendered sheet plus the filename it should be
// served under.
type BuildBillResult struct {
	Content  []byte
	Filename string
}

type BillService interface {
	BuildBill(ctx context.Context, params BuildBillParams) (BuildBillResult, error)
}

type billService struct {
	cfg         config.Billing
	logger      *slog.Logger
	productRepo repository.ProductRepository
}

func NewBillService(
	cfg config.Billing,
	logger *slog.Logger,
	productRepo repository.ProductRepository,
) BillService {
	return &billService{
		cfg:         cfg,
		logger:      logger.With(slog.String("service", "bill")),
		productRepo: productRepo,
	}
}

// BuildBill resolves the requested items against the catalog in input order,
// totals the resolved lines and renders the bill sheet. Item codes that do
// not resolve to a product are skipped without error.
func (s *billService) BuildBill(ctx context.Context, params BuildBillParams) (BuildBillResult, error) {
	if len(params.Items) == 0 {
		return BuildBillResult{}, apperr.EmptyBillErr
	}

	meta := params.Meta
	if meta.ShopName == "" {
		meta.ShopName = s.cfg.ShopName
	}

	bill := model.Bill{Meta: meta}
	for _, item := range params.Items {
		product, err := s.productRepo.GetProduct(ctx, item.ItemCode)
		if err != nil {
			var zErr zerror.ZError
			if errors.As(err, &zErr) && zErr.Status() == zerror.StatusNotFound {
				s.logger.DebugContext(ctx, "skipping unresolved bill item",
					slog.String("item_code", item.ItemCode))
				continue
			}
			return BuildBillResult{}, fmt.Errorf("product repository get product: %w", err)
		}

		qty := numeric.Coerce(item.Qty)
		line := model.BillLine{
			ItemCode:    product.ItemCode,
			Description: product.Description,
			Unit:        product.Unit,
			Price:       product.Price,
			Quantity:    qty,
			Total:       qty * product.Price,
		}
		bill.Lines = append(bill.Lines, line)
		bill.GrandTotal += line.Total
	}

	content, err := invoice.Render(bill, s.cfg.CurrencySymbol)
	if err != nil {
		return BuildBillResult{}, fmt.Errorf("render bill: %w", err)
	}

	return BuildBillResult{
		Content:  content,
		Filename: invoice.Filename(meta.InvoiceNo),
	}, nil
}
