package invoice

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/trananhhq/shopbill/internal/model"
)

// MIMEType is the content type of the generated workbook.
const MIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Invoice"

// The sheet is laid out over seven columns, A through G.
const (
	colSerial      = "A"
	colItemCode    = "B"
	colDescription = "C"
	colUnit        = "D"
	colPrice       = "E"
	colQuantity    = "F"
	colTotal       = "G"
)

const (
	titleRow  = 1
	metaRow   = 3
	headerRow = 5
	firstLine = 6
)

var headerTitles = []string{"S.No", "Item Code", "Description", "Unit", "Price", "Quantity", "Total"}

// Filename derives the attachment filename from the invoice number.
func Filename(invoiceNo string) string {
	if invoiceNo == "" {
		return "bill.xlsx"
	}
	return fmt.Sprintf("bill_%s.xlsx", invoiceNo)
}

// Render lays the bill out as a single-sheet workbook and returns the
// serialized bytes.
func Render(bill model.Bill, currencySymbol string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	styles, err := newStyles(f, currencySymbol)
	if err != nil {
		return nil, err
	}

	if err := writeTitle(f, bill.Meta.ShopName, styles); err != nil {
		return nil, err
	}
	if err := writeMeta(f, bill.Meta); err != nil {
		return nil, err
	}
	if err := writeHeader(f, styles); err != nil {
		return nil, err
	}
	if err := writeLines(f, bill.Lines, styles); err != nil {
		return nil, err
	}
	if err := writeGrandTotal(f, len(bill.Lines), bill.GrandTotal, styles); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}

type sheetStyles struct {
	title        int
	header       int
	currency     int
	boldCurrency int
	boldLabel    int
}

func newStyles(f *excelize.File, currencySymbol string) (sheetStyles, error) {
	var s sheetStyles

	numFmt := fmt.Sprintf(`"%s"#,##0.00`, currencySymbol)
	thinBox := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	var err error
	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return s, fmt.Errorf("new title style: %w", err)
	}

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thinBox,
	}); err != nil {
		return s, fmt.Errorf("new header style: %w", err)
	}

	if s.currency, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
	}); err != nil {
		return s, fmt.Errorf("new currency style: %w", err)
	}

	if s.boldCurrency, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &numFmt,
	}); err != nil {
		return s, fmt.Errorf("new bold currency style: %w", err)
	}

	if s.boldLabel, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return s, fmt.Errorf("new bold label style: %w", err)
	}

	return s, nil
}

func writeTitle(f *excelize.File, shopName string, styles sheetStyles) error {
	topLeft := cell(colSerial, titleRow)
	topRight := cell(colTotal, titleRow)

	if err := f.MergeCell(sheetName, topLeft, topRight); err != nil {
		return fmt.Errorf("merge title cell: %w", err)
	}
	if err := f.SetCellValue(sheetName, topLeft, shopName); err != nil {
		return fmt.Errorf("set title value: %w", err)
	}
	if err := f.SetCellStyle(sheetName, topLeft, topRight, styles.title); err != nil {
		return fmt.Errorf("set title style: %w", err)
	}

	return nil
}

func writeMeta(f *excelize.File, meta model.BillMeta) error {
	pairs := []struct {
		labelCol, valueCol string
		label, value       string
	}{
		{colSerial, colItemCode, "Invoice No.", meta.InvoiceNo},
		{colDescription, colUnit, "Customer", meta.CustomerName},
		{colPrice, colQuantity, "Date", meta.Date},
	}

	for _, p := range pairs {
		if err := f.SetCellValue(sheetName, cell(p.labelCol, metaRow), p.label); err != nil {
			return fmt.Errorf("set meta label: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell(p.valueCol, metaRow), p.value); err != nil {
			return fmt.Errorf("set meta value: %w", err)
		}
	}

	return nil
}

func writeHeader(f *excelize.File, styles sheetStyles) error {
	cols := []string{colSerial, colItemCode, colDescription, colUnit, colPrice, colQuantity, colTotal}
	for i, title := range headerTitles {
		if err := f.SetCellValue(sheetName, cell(cols[i], headerRow), title); err != nil {
			return fmt.Errorf("set header cell: %w", err)
		}
	}

	if err := f.SetCellStyle(sheetName, cell(colSerial, headerRow), cell(colTotal, headerRow), styles.header); err != nil {
		return fmt.Errorf("set header style: %w", err)
	}

	return nil
}

func writeLines(f *excelize.File, lines []model.BillLine, styles sheetStyles) error {
	for i, line := range lines {
		row := firstLine + i
		values := map[string]any{
			colSerial:      i + 1,
			colItemCode:    line.ItemCode,
			colDescription: line.Description,
			colUnit:        line.Unit,
			colPrice:       line.Price,
			colQuantity:    line.Quantity,
			colTotal:       line.Total,
		}
		for col, v := range values {
			if err := f.SetCellValue(sheetName, cell(col, row), v); err != nil {
				return fmt.Errorf("set line cell: %w", err)
			}
		}

		for _, col := range []string{colPrice, colTotal} {
			if err := f.SetCellStyle(sheetName, cell(col, row), cell(col, row), styles.currency); err != nil {
				return fmt.Errorf("set line currency style: %w", err)
			}
		}
	}

	return nil
}

func writeGrandTotal(f *excelize.File, lineCount int, grandTotal float64, styles sheetStyles) error {
	// one blank row between the last line and the totals row
	row := firstLine + lineCount + 1

	labelCell := cell(colDescription, row)
	totalCell := cell(colTotal, row)

	if err := f.SetCellValue(sheetName, labelCell, "GRAND TOTAL"); err != nil {
		return fmt.Errorf("set grand total label: %w", err)
	}
	if err := f.SetCellStyle(sheetName, labelCell, labelCell, styles.boldLabel); err != nil {
		return fmt.Errorf("set grand total label style: %w", err)
	}

	if err := f.SetCellValue(sheetName, totalCell, grandTotal); err != nil {
		return fmt.Errorf("set grand total value: %w", err)
	}
	if err := f.SetCellStyle(sheetName, totalCell, totalCell, styles.boldCurrency); err != nil {
		return fmt.Errorf("set grand total style: %w", err)
	}

	return nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
