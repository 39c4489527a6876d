package types

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// FormatAmount formats a decimal amount for display with the symbol of
// the ISO 4217 currency passed in, e.g. "$ 1234.50".
//
// When the currency code is unknown, the amount is formatted without
// a symbol.
func FormatAmount(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return amount.StringFixed(2)
	}

	return fmt.Sprintf("%v %s", currency.NarrowSymbol(unit), amount.StringFixed(2))
}
