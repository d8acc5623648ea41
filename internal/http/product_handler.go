package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trananhhq/shopbill/internal/apperr"
	"github.com/trananhhq/shopbill/internal/model"
	"github.com/trananhhq/shopbill/internal/service"
	"github.com/trananhhq/shopbill/pkg/numeric"
	"github.com/trananhhq/shopbill/pkg/ptr"
	"github.com/trananhhq/shopbill/pkg/validator"
)

type productHandler struct {
	logger     *slog.Logger
	validate   validator.Validator
	productSvc service.ProductService
}

func newProductHandler(logger *slog.Logger, validate validator.Validator, productSvc service.ProductService) *productHandler {
	return &productHandler{
		logger:     logger,
		validate:   validate,
		productSvc: productSvc,
	}
}

type createProductRequest struct {
	ItemCode    string `json:"itemCode" validate:"required"`
	Description string `json:"description"`
	Unit        string `json:"unit"`

	// Price arrives as either a number or a numeric string.
	Price any `json:"price"`
}

// updateProductRequest carries a partial update. Absent fields stay nil and
// leave the stored value untouched.
type updateProductRequest struct {
	ItemCode    *string `json:"itemCode"`
	Description *string `json:"description"`
	Unit        *string `json:"unit"`
	Price       any     `json:"price"`
}

type deleteProductResponse struct {
	Success bool `json:"success"`
}

func (h *productHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.ListAllProducts(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	// an empty catalog must serialize as [], not null
	if products == nil {
		products = []model.Product{}
	}

	writeJSON(w, h.logger, http.StatusOK, products)
}

func (h *productHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemCode := chi.URLParam(r, "itemCode")

	product, err := h.productSvc.GetProduct(r.Context(), itemCode)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, product)
}

func (h *productHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, apperr.ValidationErr.WrapParent(err))
		return
	}

	if err := h.validate.Validate(req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	product, err := h.productSvc.CreateProduct(r.Context(), service.CreateProductParams{
		ItemCode:    req.ItemCode,
		Description: req.Description,
		Unit:        req.Unit,
		Price:       numeric.Coerce(req.Price),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, product)
}

func (h *productHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemCode := chi.URLParam(r, "itemCode")

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, apperr.ValidationErr.WrapParent(err))
		return
	}

	params := service.UpdateProductParams{
		ItemCode:    req.ItemCode,
		Description: req.Description,
		Unit:        req.Unit,
	}
	if req.Price != nil {
		params.Price = ptr.New(numeric.Coerce(req.Price))
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), itemCode, params)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, product)
}

func (h *productHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemCode := chi.URLParam(r, "itemCode")

	if err := h.productSvc.DeleteProduct(r.Context(), itemCode); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, deleteProductResponse{Success: true})
}
