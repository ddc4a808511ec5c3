package utils

import "github.com/shopspring/decimal"

// RoundMoney arredonda um valor monetário para duas casas decimais,
// com a metade afastando do zero
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
