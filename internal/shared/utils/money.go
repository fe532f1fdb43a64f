package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with its currency symbol, for example
// "₹ 499.00". Unknown currency codes fall back to "XYZ 12.50".
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return fmt.Sprintf("%s %s", currencyCode, amount.StringFixed(2))
	}
	value, _ := amount.Float64()
	return moneyPrinter.Sprint(currency.Symbol(unit.Amount(value)))
}
