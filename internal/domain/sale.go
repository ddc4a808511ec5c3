package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recursos disponíveis na API externa de vendas/estoque
const (
	ResourceSalesOrders  = "sales_orders"
	ResourceCreditNotes  = "credit_notes"
	ResourceProducts     = "products"
	ResourceCustomers    = "customers"
	ResourceSalespersons = "salespersons"
)

// SalesRecord representa um pedido de venda concluído, imutável após a busca.
// AmountExclTax é o valor sem impostos (SubTotal da API externa).
type SalesRecord struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	Date            time.Time       `json:"date"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	SalespersonID   string          `json:"salesperson_id"`
	SalespersonName string          `json:"salesperson_name"`
	AmountExclTax   decimal.Decimal `json:"amount_excl_tax"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Lines           []SaleLine      `json:"lines,omitempty"`
}

// SaleLine representa um item do pedido de venda
type SaleLine struct {
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// CreditNote representa um ajuste negativo de receita emitido para um cliente
type CreditNote struct {
	ID            string          `json:"id"`
	NoteNumber    string          `json:"note_number"`
	Date          time.Time       `json:"date"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	AmountExclTax decimal.Decimal `json:"amount_excl_tax"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
}

// Product representa um produto do catálogo. PurchasePrice alimenta o
// cálculo de margem dos rankings de produto.
type Product struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellPrice     decimal.Decimal `json:"sell_price"`
}

// Salesperson representa um vendedor cadastrado na API externa
type Salesperson struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Customer representa um cliente cadastrado na API externa
type Customer struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
