package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trananhhq/shopbill/internal/model"
)

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProduct(t *testing.T, w *httptest.ResponseRecorder) model.Product {
	t.Helper()

	var p model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	return p
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body["error"]
}

func TestRootBanner(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "running")
}

func TestCreateProduct(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing item code", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/products", `{"description":"no code"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEmpty(t, decodeError(t, w))
	})

	t.Run("created", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/products",
			`{"itemCode":"P-1","description":"Rice","unit":"kg","price":82.5}`)
		require.Equal(t, http.StatusCreated, w.Code)

		p := decodeProduct(t, w)
		assert.Equal(t, "P-1", p.ItemCode)
		assert.Equal(t, 82.5, p.Price)
	})

	t.Run("price sent as string", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/products",
			`{"itemCode":"P-2","price":"9.5"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 9.5, decodeProduct(t, w).Price)
	})

	t.Run("round trip", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/products/P-1", "")
		require.Equal(t, http.StatusOK, w.Code)

		p := decodeProduct(t, w)
		assert.Equal(t, "Rice", p.Description)
		assert.Equal(t, "kg", p.Unit)
		assert.Equal(t, 82.5, p.Price)
	})
}

func TestListProducts(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/products", `{"itemCode":"B","price":1}`)
	doJSON(t, r, http.MethodPost, "/products", `{"itemCode":"A","price":2}`)

	w := doJSON(t, r, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].ItemCode)
	assert.Equal(t, "B", products[1].ItemCode)
}

func TestGetProductNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/products/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "product not found", decodeError(t, w))
}

func TestUpdateProduct(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/products",
		`{"itemCode":"P-1","description":"Sugar","unit":"kg","price":40}`)

	t.Run("no recognized fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/products/P-1", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no recognized fields on missing id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/products/missing", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/products/missing", `{"price":1}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("merges supplied fields only", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/products/P-1", `{"price":45}`)
		require.Equal(t, http.StatusOK, w.Code)

		p := decodeProduct(t, w)
		assert.Equal(t, "Sugar", p.Description)
		assert.Equal(t, "kg", p.Unit)
		assert.Equal(t, float64(45), p.Price)
	})
}

func TestDeleteProduct(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/products", `{"itemCode":"P-1"}`)

	t.Run("missing id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/products/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("existing id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/products/P-1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]bool
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.True(t, body["success"])

		w = doJSON(t, r, http.MethodGet, "/products/P-1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
