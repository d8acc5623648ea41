package http

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trananhhq/shopbill/internal/invoice"
)

func TestDownloadBillValidation(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing items", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/bill/download", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty items", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/bill/download", `{"items":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/bill/download", `{"items":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDownloadBill(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/products",
		`{"itemCode":"A","description":"Rice","unit":"kg","price":10}`)

	body := `{
		"items": [
			{"itemCode": "A", "qty": "2"},
			{"itemCode": "MISSING", "qty": 5}
		],
		"meta": {"invoiceNo": "INV-1", "customerName": "Ravi"}
	}`

	w := doJSON(t, r, http.MethodPost, "/bill/download", body)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, invoice.MIMEType, w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=bill_INV-1.xlsx", w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Invoice", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Test Shop", title)

	// one resolved line; the missing item produced no row
	itemCode, err := f.GetCellValue("Invoice", "B6")
	require.NoError(t, err)
	assert.Equal(t, "A", itemCode)

	next, err := f.GetCellValue("Invoice", "B7")
	require.NoError(t, err)
	assert.Empty(t, next)

	grandTotal, err := f.GetCellValue("Invoice", "G8")
	require.NoError(t, err)
	assert.Equal(t, "₹20.00", grandTotal)
}

func TestDownloadBillDefaultFilename(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/products", `{"itemCode":"A","price":1}`)

	w := doJSON(t, r, http.MethodPost, "/bill/download",
		`{"items":[{"itemCode":"A","qty":1}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=bill.xlsx", w.Header().Get("Content-Disposition"))
}
