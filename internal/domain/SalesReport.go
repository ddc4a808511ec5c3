package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerSummary representa o agregado de receita de um cliente no
// período corrente com o comparativo do período anterior. Derivado,
// recalculado a cada consulta; nunca é persistido.
type CustomerSummary struct {
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	Orders         int             `json:"orders"`
	RevenueCurrent decimal.Decimal `json:"revenue_current"`
	RevenuePrior   decimal.Decimal `json:"revenue_prior"`
	Delta          decimal.Decimal `json:"delta"`
}

// ProductSummary representa o agregado de receita e margem de um produto
type ProductSummary struct {
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	Margin      decimal.Decimal `json:"margin"`
}

// SalespersonSummary representa o desempenho de um vendedor no período
// corrente com o comparativo do período anterior
type SalespersonSummary struct {
	SalespersonID   string          `json:"salesperson_id"`
	SalespersonName string          `json:"salesperson_name"`
	Orders          int             `json:"orders"`
	RevenueCurrent  decimal.Decimal `json:"revenue_current"`
	RevenuePrior    decimal.Decimal `json:"revenue_prior"`
	Delta           decimal.Decimal `json:"delta"`
}

// CustomerGrowth consolida a análise de crescimento da carteira de
// clientes entre os dois períodos: contagens por diferença de conjuntos
// e os rankings de maior crescimento e maior queda de receita.
type CustomerGrowth struct {
	NewCount      int               `json:"new_count"`
	ChurnedCount  int               `json:"churned_count"`
	RetainedCount int               `json:"retained_count"`
	Growing       []CustomerSummary `json:"growing"`
	Declining     []CustomerSummary `json:"declining"`
}

// RevenueOverview consolida os totais do período para os cartões de
// resumo do dashboard. Todos os valores monetários excluem impostos.
type RevenueOverview struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	PriorRevenue      decimal.Decimal `json:"prior_revenue"`
	ChangePercent     decimal.Decimal `json:"change_percent"`
	OrderCount        int             `json:"order_count"`
	PriorOrderCount   int             `json:"prior_order_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	CreditNoteTotal   decimal.Decimal `json:"credit_note_total"`
}

// DashboardReport é o payload completo do dashboard para um período
type DashboardReport struct {
	Period       string               `json:"period"`
	PeriodType   PeriodType           `json:"period_type"`
	Window       DateRange            `json:"window"`
	PriorWindow  DateRange            `json:"prior_window"`
	Overview     *RevenueOverview     `json:"overview"`
	TopCustomers []CustomerSummary    `json:"top_customers"`
	Growth       *CustomerGrowth      `json:"customer_growth"`
	TopProducts  []ProductSummary     `json:"top_products"`
	Salespersons []SalespersonSummary `json:"salespersons"`
	GeneratedAt  time.Time            `json:"generated_at"`
}
