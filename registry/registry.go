// Package registry holds the compiled-in table of supported currencies.
package registry

import "sort"

// Entry pairs a currency code with its display name.
type Entry struct {
	Code string
	Name string
}

var currencies = map[string]string{
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"JPY": "Japanese Yen",
	"AUD": "Australian Dollar",
	"CAD": "Canadian Dollar",
	"CHF": "Swiss Franc",
	"CNY": "Chinese Yuan",
	"NZD": "New Zealand Dollar",
	"SEK": "Swedish Krona",
	"KRW": "South Korean Won",
	"SGD": "Singapore Dollar",
	"NOK": "Norwegian Krone",
	"MXN": "Mexican Peso",
	"INR": "Indian Rupee",
	"RUB": "Russian Ruble",
	"ZAR": "South African Rand",
	"TRY": "Turkish Lira",
	"BRL": "Brazilian Real",
	"TWD": "Taiwan Dollar",
	"DKK": "Danish Krone",
	"PLN": "Polish Zloty",
	"THB": "Thai Baht",
	"IDR": "Indonesian Rupiah",
	"HUF": "Hungarian Forint",
	"CZK": "Czech Koruna",
	"ILS": "Israeli Shekel",
	"CLP": "Chilean Peso",
	"PHP": "Philippine Peso",
	"AED": "UAE Dirham",
	"COP": "Colombian Peso",
	"SAR": "Saudi Riyal",
	"MYR": "Malaysian Ringgit",
	"RON": "Romanian Leu",
	"DOP": "Dominican Peso",
	"BGN": "Bulgarian Lev",
	"HKD": "Hong Kong Dollar",
	"HRK": "Croatian Kuna",
	"PKR": "Pakistani Rupee",
	"EGP": "Egyptian Pound",
	"ISK": "Icelandic Króna",
	"VND": "Vietnamese Dong",
	"NGN": "Nigerian Naira",
}

func IsSupported(code string) bool {
	_, ok := currencies[code]
	return ok
}

func Name(code string) (string, bool) {
	name, ok := currencies[code]
	return name, ok
}

// List returns every supported currency sorted ascending by code.
func List() []Entry {
	entries := make([]Entry, 0, len(currencies))

	for code, name := range currencies {
		entries = append(entries, Entry{Code: code, Name: name})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})

	return entries
}
