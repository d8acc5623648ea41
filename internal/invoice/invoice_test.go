package invoice_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trananhhq/shopbill/internal/invoice"
	"github.com/trananhhq/shopbill/internal/model"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "bill_INV-1.xlsx", invoice.Filename("INV-1"))
	assert.Equal(t, "bill.xlsx", invoice.Filename(""))
}

func TestRender(t *testing.T) {
	bill := model.Bill{
		Meta: model.BillMeta{
			ShopName:     "Acme Traders",
			InvoiceNo:    "INV-42",
			CustomerName: "Ravi",
			Date:         "2024-03-01",
		},
		Lines: []model.BillLine{
			{ItemCode: "A1", Description: "Rice", Unit: "kg", Price: 10, Quantity: 2, Total: 20},
			{ItemCode: "B2", Description: "Sugar", Unit: "kg", Price: 5.5, Quantity: 1, Total: 5.5},
		},
		GrandTotal: 25.5,
	}

	content, err := invoice.Render(bill, "₹")
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	t.Run("title block", func(t *testing.T) {
		title, err := f.GetCellValue("Invoice", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Acme Traders", title)

		merged, err := f.GetMergeCells("Invoice")
		require.NoError(t, err)
		require.Len(t, merged, 1)
		assert.Equal(t, "A1", merged[0].GetStartAxis())
		assert.Equal(t, "G1", merged[0].GetEndAxis())

		styleID, err := f.GetCellStyle("Invoice", "A1")
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		assert.True(t, style.Font.Bold)
		assert.Equal(t, float64(14), style.Font.Size)
		assert.Equal(t, "center", style.Alignment.Horizontal)
	})

	t.Run("meta row", func(t *testing.T) {
		for cell, want := range map[string]string{
			"A3": "Invoice No.",
			"B3": "INV-42",
			"C3": "Customer",
			"D3": "Ravi",
			"E3": "Date",
			"F3": "2024-03-01",
		} {
			got, err := f.GetCellValue("Invoice", cell)
			require.NoError(t, err)
			assert.Equal(t, want, got, "cell %s", cell)
		}
	})

	t.Run("header row", func(t *testing.T) {
		want := []string{"S.No", "Item Code", "Description", "Unit", "Price", "Quantity", "Total"}
		for i, col := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			got, err := f.GetCellValue("Invoice", col+"5")
			require.NoError(t, err)
			assert.Equal(t, want[i], got)
		}

		styleID, err := f.GetCellStyle("Invoice", "A5")
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		assert.True(t, style.Font.Bold)
		assert.Len(t, style.Border, 4)
	})

	t.Run("line rows", func(t *testing.T) {
		serial, err := f.GetCellValue("Invoice", "A6")
		require.NoError(t, err)
		assert.Equal(t, "1", serial)

		price, err := f.GetCellValue("Invoice", "E6")
		require.NoError(t, err)
		assert.Equal(t, "₹10.00", price)

		total, err := f.GetCellValue("Invoice", "G7")
		require.NoError(t, err)
		assert.Equal(t, "₹5.50", total)
	})

	t.Run("grand total after a blank row", func(t *testing.T) {
		blank, err := f.GetCellValue("Invoice", "C8")
		require.NoError(t, err)
		assert.Empty(t, blank)

		label, err := f.GetCellValue("Invoice", "C9")
		require.NoError(t, err)
		assert.Equal(t, "GRAND TOTAL", label)

		total, err := f.GetCellValue("Invoice", "G9")
		require.NoError(t, err)
		assert.Equal(t, "₹25.50", total)

		styleID, err := f.GetCellStyle("Invoice", "G9")
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		assert.True(t, style.Font.Bold)
	})
}

func TestRenderEmptyBill(t *testing.T) {
	content, err := invoice.Render(model.Bill{Meta: model.BillMeta{ShopName: "Acme"}}, "$")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue("Invoice", "C7")
	require.NoError(t, err)
	assert.Equal(t, "GRAND TOTAL", label)

	total, err := f.GetCellValue("Invoice", "G7")
	require.NoError(t, err)
	assert.Equal(t, "$0.00", total)
}
