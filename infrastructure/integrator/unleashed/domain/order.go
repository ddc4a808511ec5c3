package unleasheddomain

import (
	"github.com/shopspring/decimal"
)

// SalesOrder é o pedido de venda como retornado pela API externa.
// SubTotal é o valor sem impostos; Total inclui impostos.
type SalesOrder struct {
	Guid            string            `json:"Guid"`
	OrderNumber     string            `json:"OrderNumber"`
	OrderDate       Date              `json:"OrderDate"`
	CompletedDate   Date              `json:"CompletedDate"`
	OrderStatus     string            `json:"OrderStatus"`
	Customer        OrderCustomer     `json:"Customer"`
	SalesPerson     *OrderSalesperson `json:"SalesPerson"`
	SubTotal        decimal.Decimal   `json:"SubTotal"`
	TaxTotal        decimal.Decimal   `json:"TaxTotal"`
	Total           decimal.Decimal   `json:"Total"`
	SalesOrderLines []SalesOrderLine  `json:"SalesOrderLines"`
}

type OrderCustomer struct {
	Guid         string `json:"Guid"`
	CustomerCode string `json:"CustomerCode"`
	CustomerName string `json:"CustomerName"`
}

type OrderSalesperson struct {
	Guid     string `json:"Guid"`
	FullName string `json:"FullName"`
	Email    string `json:"Email"`
}

type SalesOrderLine struct {
	LineNumber    int             `json:"LineNumber"`
	Product       LineProduct     `json:"Product"`
	OrderQuantity decimal.Decimal `json:"OrderQuantity"`
	UnitPrice     decimal.Decimal `json:"UnitPrice"`
	LineTotal     decimal.Decimal `json:"LineTotal"`
	LineTax       decimal.Decimal `json:"LineTax"`
}

type LineProduct struct {
	Guid               string `json:"Guid"`
	ProductCode        string `json:"ProductCode"`
	ProductDescription string `json:"ProductDescription"`
}
