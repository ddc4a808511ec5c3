package unleasheddomain

import (
	"github.com/shopspring/decimal"
)

// Product é o produto do catálogo como retornado pela API externa.
// DefaultPurchasePrice alimenta o cálculo de margem.
type Product struct {
	Guid                 string          `json:"Guid"`
	ProductCode          string          `json:"ProductCode"`
	ProductDescription   string          `json:"ProductDescription"`
	DefaultPurchasePrice decimal.Decimal `json:"DefaultPurchasePrice"`
	DefaultSellPrice     decimal.Decimal `json:"DefaultSellPrice"`
	Obsolete             bool            `json:"Obsolete"`
}
