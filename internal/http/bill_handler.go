package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/trananhhq/shopbill/internal/apperr"
	"github.com/trananhhq/shopbill/internal/invoice"
	"github.com/trananhhq/shopbill/internal/model"
	"github.com/trananhhq/shopbill/internal/service"
	"github.com/trananhhq/shopbill/pkg/validator"
)

type billHandler struct {
	logger   *slog.Logger
	validate validator.Validator
	billSvc  service.BillService
}

func newBillHandler(logger *slog.Logger, validate validator.Validator, billSvc service.BillService) *billHandler {
	return &billHandler{
		logger:   logger,
		validate: validate,
		billSvc:  billSvc,
	}
}

type billItemRequest struct {
	ItemCode string `json:"itemCode" validate:"required"`

	// Qty is loosely typed; non-numeric values coerce to zero downstream.
	Qty any `json:"qty"`
}

type billMetaRequest struct {
	ShopName     string `json:"shopName"`
	InvoiceNo    string `json:"invoiceNo" validate:"omitempty,itemcode"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
}

type downloadBillRequest struct {
	Items []billItemRequest `json:"items" validate:"min=1,dive"`
	Meta  billMetaRequest   `json:"meta"`
}

func (h *billHandler) Download(w http.ResponseWriter, r *http.Request) {
	var req downloadBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, apperr.ValidationErr.WrapParent(err))
		return
	}

	if len(req.Items) == 0 {
		writeError(w, r, h.logger, apperr.EmptyBillErr)
		return
	}

	if err := h.validate.Validate(req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items := make([]service.BillItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.BillItemParams{
			ItemCode: item.ItemCode,
			Qty:      item.Qty,
		})
	}

	result, err := h.billSvc.BuildBill(r.Context(), service.BuildBillParams{
		Items: items,
		Meta: model.BillMeta{
			ShopName:     req.Meta.ShopName,
			InvoiceNo:    req.Meta.InvoiceNo,
			CustomerName: req.Meta.CustomerName,
			Date:         req.Meta.Date,
		},
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", invoice.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Content); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write bill response", slog.Any("error", err))
	}
}
