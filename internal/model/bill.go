package model

// BillMeta is the free-form header information printed on a bill. All fields
// are optional; ShopName falls back to the configured default.
type BillMeta struct {
	ShopName     string
	InvoiceNo    string
	CustomerName string
	Date         string
}

// BillLine is one resolved row of a bill. It only exists for the duration of
// a single bill request.
type BillLine struct {
	ItemCode    string
	Description string
	Unit        string
	Price       float64
	Quantity    float64
	Total       float64
}

// Bill is a fully resolved bill ready for rendering.
type Bill struct {
	Meta       BillMeta
	Lines      []BillLine
	GrandTotal float64
}
