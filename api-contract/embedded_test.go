package apicontract_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/trananhhq/shopbill/api-contract"
)

func TestEmbeddedContractIsValid(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(apicontract.Contract())
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{"/products", "/products/{itemCode}", "/bill/download"} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s missing from contract", path)
	}
}
