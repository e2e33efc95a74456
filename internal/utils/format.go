package utils

import "github.com/shopspring/decimal"

// MoneyPrecision is the number of decimal places used when rendering amounts.
const MoneyPrecision = 2

// FormatMoney renders an amount with two decimal places, e.g. 1500 -> "1500.00".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}
