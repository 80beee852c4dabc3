// Package money renders numeric amounts as human currency strings.
//
// Formatting is table-driven: adding a currency is a data-only change to
// the currencies map, never a new formatting function.
package money

import (
	"math"
	"strconv"
	"strings"
)

// Currency describes how amounts are rendered for one currency code.
type Currency struct {
	Decimals     int    // fractional digits
	Separator    string // thousands separator
	Symbol       string
	SymbolSuffix bool // true = symbol rendered after the amount
}

// DefaultCode is used when a currency code is not recognized.
const DefaultCode = "RUB"

var currencies = map[string]Currency{
	"RUB": {Decimals: 2, Separator: " ", Symbol: "₽", SymbolSuffix: true},
	"UZS": {Decimals: 2, Separator: ",", Symbol: "som", SymbolSuffix: true},
	"USD": {Decimals: 2, Separator: ",", Symbol: "$", SymbolSuffix: false},
	"EUR": {Decimals: 2, Separator: " ", Symbol: "€", SymbolSuffix: true},
}

// Lookup returns the currency config for code, falling back to DefaultCode.
func Lookup(code string) Currency {
	if c, ok := currencies[code]; ok {
		return c
	}
	return currencies[DefaultCode]
}

// Known reports whether code has its own formatting entry.
func Known(code string) bool {
	_, ok := currencies[code]
	return ok
}

// Format renders amount for the given currency code. It is pure and
// deterministic: identical inputs always produce identical output.
func Format(amount float64, code string) string {
	c := Lookup(code)

	s := strconv.FormatFloat(math.Abs(amount), 'f', c.Decimals, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	out := groupDigits(intPart, c.Separator)
	if c.Decimals > 0 {
		out += "." + fracPart
	}

	// A value that rounds to zero must not render as "-0.00".
	if amount < 0 && strings.Trim(s, "0.") != "" {
		out = "-" + out
	}

	if c.SymbolSuffix {
		return out + " " + c.Symbol
	}
	return c.Symbol + out
}

// groupDigits inserts sep between every group of three digits,
// counting from the right.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
