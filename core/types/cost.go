// Package types - Cost types
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyPKR Currency = "PKR"
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display prefix for amounts in this currency.
// Unknown codes render as the code followed by a space.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyPKR:
		return "₨"
	case CurrencyINR:
		return "₹"
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	default:
		return string(c) + " "
	}
}
