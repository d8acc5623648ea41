package apperr

import "github.com/trananhhq/shopbill/pkg/zerror"

const (
	ValidationErrorCode  = "VALIDATION_FAILED"
	ProductNotFoundCode  = "PRODUCT_NOT_FOUND"
	ItemCodeRequiredCode = "ITEM_CODE_REQUIRED"
	NoUpdateFieldsCode   = "NO_UPDATE_FIELDS"
	EmptyBillCode        = "EMPTY_BILL"
)

var (
	ValidationErr       = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr  = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	ItemCodeRequiredErr = zerror.NewBadRequest(ItemCodeRequiredCode, "itemCode is required")
	NoUpdateFieldsErr   = zerror.NewBadRequest(NoUpdateFieldsCode, "no updatable fields supplied")
	EmptyBillErr        = zerror.NewBadRequest(EmptyBillCode, "bill requires at least one item")
)
