// Package currency serves the supported-currency list and converts
// amounts through a cached exchange-rate table.
package currency

// BaseCode is the reference currency every cross-currency conversion is
// routed through (the rate API quotes everything against EUR).
const BaseCode = "EUR"

// FallbackCode is stamped on expenses whose currency is missing or unknown.
const FallbackCode = "CAD"

// Currency is one supported display currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var supported = []Currency{
	{Code: "CAD", Symbol: "CA$", Name: "Canadian Dollar"},
	{Code: "USD", Symbol: "US$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
}

// Supported returns the fixed currency list.
func Supported() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code is a known ISO code.
func IsSupported(code string) bool {
	for _, c := range supported {
		if c.Code == code {
			return true
		}
	}
	return false
}

// SymbolList returns the comma-joined codes for the rate API query.
func SymbolList() string {
	s := ""
	for i, c := range supported {
		if i > 0 {
			s += ","
		}
		s += c.Code
	}
	return s
}
