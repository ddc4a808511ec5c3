package unleasheddomain

import (
	"github.com/shopspring/decimal"
)

// CreditNote é a nota de crédito como retornada pela API externa
type CreditNote struct {
	Guid             string          `json:"Guid"`
	CreditNoteNumber string          `json:"CreditNoteNumber"`
	CreditNoteDate   Date            `json:"CreditNoteDate"`
	Customer         OrderCustomer   `json:"Customer"`
	SubTotal         decimal.Decimal `json:"SubTotal"`
	TaxTotal         decimal.Decimal `json:"TaxTotal"`
	Total            decimal.Decimal `json:"Total"`
	Status           string          `json:"Status"`
}
