package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trananhhq/shopbill/pkg/zerror"
)

func TestZErrorWrapping(t *testing.T) {
	notFound := zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")

	wrapped := fmt.Errorf("service layer: %w", notFound.WrapParent(errors.New("no rows")))

	var zErr zerror.ZError
	require.True(t, errors.As(wrapped, &zErr))
	assert.Equal(t, zerror.StatusNotFound, zErr.Status())
	assert.Equal(t, "PRODUCT_NOT_FOUND", zErr.Code())
	assert.Equal(t, "product not found", zErr.Msg())
	assert.EqualError(t, zErr.Parent(), "no rows")
}

func TestZErrorIsComparableSentinel(t *testing.T) {
	sentinel := zerror.NewBadRequest("EMPTY_BILL", "bill requires at least one item")

	err := fmt.Errorf("handler: %w", sentinel)
	assert.ErrorIs(t, err, sentinel)
}
