package config

// Billing carries bill rendering defaults. ShopName is used when a bill
// request supplies no shop name of its own, CurrencySymbol prefixes every
// money cell in the generated sheet.
type Billing struct {
	ShopName       string `env:"SHOP_NAME" envDefault:"My Shop"`
	CurrencySymbol string `env:"CURRENCY_SYMBOL" envDefault:"₹"`
}
