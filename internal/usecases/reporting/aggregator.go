package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Funções puras de agregação do dashboard. Todas filtram os registros
// pela janela de datas antes de agregar e nunca fazem I/O; conjuntos
// vazios produzem totais zerados e listas vazias, nunca erro.

var oneHundred = decimal.NewFromInt(100)

// TotalRevenue soma o valor sem impostos dos pedidos dentro da janela.
// O valor de imposto nunca entra na receita.
func TotalRevenue(records []domain.SalesRecord, window domain.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		if !window.Contains(record.Date) {
			continue
		}
		total = total.Add(record.AmountExclTax)
	}

	return total
}

// OrderCount conta os pedidos dentro da janela
func OrderCount(records []domain.SalesRecord, window domain.DateRange) int {
	count := 0
	for _, record := range records {
		if window.Contains(record.Date) {
			count++
		}
	}

	return count
}

// AverageOrderValue calcula o ticket médio da janela. Janela sem
// pedidos tem ticket médio zero.
func AverageOrderValue(records []domain.SalesRecord, window domain.DateRange) decimal.Decimal {
	count := OrderCount(records, window)
	if count == 0 {
		return decimal.Zero
	}

	return TotalRevenue(records, window).Div(decimal.NewFromInt(int64(count)))
}

// ChangePercent calcula a variação percentual entre dois totais.
// Sem base de comparação (anterior <= 0) a variação é zero.
func ChangePercent(current, prior decimal.Decimal) decimal.Decimal {
	if prior.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return current.Sub(prior).Div(prior).Mul(oneHundred)
}

// CreditNoteTotals soma o valor sem impostos das notas de crédito
// emitidas dentro da janela
func CreditNoteTotals(notes []domain.CreditNote, window domain.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, note := range notes {
		if !window.Contains(note.Date) {
			continue
		}
		total = total.Add(note.AmountExclTax)
	}

	return total
}

// TopCustomers agrupa os pedidos da janela corrente por cliente e monta
// o ranking por receita, com o comparativo da janela anterior. Empates
// de receita são desfeitos pelo ID do cliente, em ordem crescente, para
// que o ranking seja determinístico.
func TopCustomers(records, priorRecords []domain.SalesRecord, window, priorWindow domain.DateRange, n int) []domain.CustomerSummary {
	current := groupByCustomer(records, window)
	prior := groupByCustomer(priorRecords, priorWindow)

	summaries := make([]domain.CustomerSummary, 0, len(current))
	for id, agg := range current {
		summary := domain.CustomerSummary{
			CustomerID:     id,
			CustomerName:   agg.name,
			Orders:         agg.orders,
			RevenueCurrent: agg.revenue,
			RevenuePrior:   decimal.Zero,
		}

		if priorAgg, ok := prior[id]; ok {
			summary.RevenuePrior = priorAgg.revenue
		}
		summary.Delta = summary.RevenueCurrent.Sub(summary.RevenuePrior)

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].RevenueCurrent.Equal(summaries[j].RevenueCurrent) {
			return summaries[i].CustomerID < summaries[j].CustomerID
		}
		return summaries[i].RevenueCurrent.GreaterThan(summaries[j].RevenueCurrent)
	})

	if n > 0 && len(summaries) > n {
		summaries = summaries[:n]
	}

	return summaries
}

// CustomerGrowth compara a carteira de clientes das duas janelas por
// diferença de conjuntos: novos (compraram agora, não antes), perdidos
// (compraram antes, não agora) e retidos (compraram nas duas). Também
// monta os rankings de maior crescimento e maior queda de receita,
// limitados a n entradas cada.
func CustomerGrowth(records, priorRecords []domain.SalesRecord, window, priorWindow domain.DateRange, n int) *domain.CustomerGrowth {
	current := groupByCustomer(records, window)
	prior := groupByCustomer(priorRecords, priorWindow)

	growth := &domain.CustomerGrowth{
		Growing:   make([]domain.CustomerSummary, 0),
		Declining: make([]domain.CustomerSummary, 0),
	}

	for id := range current {
		if _, ok := prior[id]; ok {
			growth.RetainedCount++
		} else {
			growth.NewCount++
		}
	}

	for id := range prior {
		if _, ok := current[id]; !ok {
			growth.ChurnedCount++
		}
	}

	// Rankings sobre a união das duas janelas: clientes perdidos também
	// aparecem na lista de queda
	merged := make(map[string]domain.CustomerSummary, len(current)+len(prior))
	for id, agg := range current {
		merged[id] = domain.CustomerSummary{
			CustomerID:     id,
			CustomerName:   agg.name,
			Orders:         agg.orders,
			RevenueCurrent: agg.revenue,
			RevenuePrior:   decimal.Zero,
		}
	}
	for id, agg := range prior {
		summary, ok := merged[id]
		if !ok {
			summary = domain.CustomerSummary{
				CustomerID:     id,
				CustomerName:   agg.name,
				RevenueCurrent: decimal.Zero,
			}
		}
		summary.RevenuePrior = agg.revenue
		merged[id] = summary
	}

	for _, summary := range merged {
		summary.Delta = summary.RevenueCurrent.Sub(summary.RevenuePrior)

		switch {
		case summary.Delta.IsPositive():
			growth.Growing = append(growth.Growing, summary)
		case summary.Delta.IsNegative():
			growth.Declining = append(growth.Declining, summary)
		}
	}

	sort.Slice(growth.Growing, func(i, j int) bool {
		if growth.Growing[i].Delta.Equal(growth.Growing[j].Delta) {
			return growth.Growing[i].CustomerID < growth.Growing[j].CustomerID
		}
		return growth.Growing[i].Delta.GreaterThan(growth.Growing[j].Delta)
	})

	sort.Slice(growth.Declining, func(i, j int) bool {
		if growth.Declining[i].Delta.Equal(growth.Declining[j].Delta) {
			return growth.Declining[i].CustomerID < growth.Declining[j].CustomerID
		}
		return growth.Declining[i].Delta.LessThan(growth.Declining[j].Delta)
	})

	if n > 0 && len(growth.Growing) > n {
		growth.Growing = growth.Growing[:n]
	}
	if n > 0 && len(growth.Declining) > n {
		growth.Declining = growth.Declining[:n]
	}

	return growth
}

// TopProducts agrupa os itens dos pedidos da janela por produto e monta
// o ranking por receita. A margem usa o preço de compra do catálogo;
// produtos fora do catálogo entram com custo zero.
func TopProducts(records []domain.SalesRecord, window domain.DateRange, catalog []domain.Product, n int) []domain.ProductSummary {
	type productAggregate struct {
		code     string
		name     string
		quantity decimal.Decimal
		revenue  decimal.Decimal
	}

	costs := make(map[string]domain.Product, len(catalog))
	for _, product := range catalog {
		costs[product.ID] = product
	}

	groups := make(map[string]*productAggregate)
	for _, record := range records {
		if !window.Contains(record.Date) {
			continue
		}

		for _, line := range record.Lines {
			key := line.ProductID
			if key == "" {
				key = line.ProductCode
			}
			if key == "" {
				continue
			}

			agg, ok := groups[key]
			if !ok {
				agg = &productAggregate{
					quantity: decimal.Zero,
					revenue:  decimal.Zero,
				}
				groups[key] = agg
			}

			if agg.code == "" {
				agg.code = line.ProductCode
			}
			if agg.name == "" {
				agg.name = line.ProductName
			}
			agg.quantity = agg.quantity.Add(line.Quantity)
			agg.revenue = agg.revenue.Add(line.LineTotal)
		}
	}

	summaries := make([]domain.ProductSummary, 0, len(groups))
	for id, agg := range groups {
		summary := domain.ProductSummary{
			ProductID:   id,
			ProductCode: agg.code,
			ProductName: agg.name,
			Quantity:    agg.quantity,
			Revenue:     agg.revenue,
			Margin:      agg.revenue,
		}

		if product, ok := costs[id]; ok {
			summary.Margin = agg.revenue.Sub(agg.quantity.Mul(product.PurchasePrice))
			if summary.ProductName == "" {
				summary.ProductName = product.Name
			}
			if summary.ProductCode == "" {
				summary.ProductCode = product.Code
			}
		}

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Revenue.Equal(summaries[j].Revenue) {
			return summaries[i].ProductID < summaries[j].ProductID
		}
		return summaries[i].Revenue.GreaterThan(summaries[j].Revenue)
	})

	if n > 0 && len(summaries) > n {
		summaries = summaries[:n]
	}

	return summaries
}

// SalespersonPerformance compara a receita dos vendedores entre as duas
// janelas. Vendedores ativos em qualquer uma das janelas aparecem na
// comparação; pedidos sem vendedor associado são ignorados.
func SalespersonPerformance(records, priorRecords []domain.SalesRecord, window, priorWindow domain.DateRange) []domain.SalespersonSummary {
	current := groupBySalesperson(records, window)
	prior := groupBySalesperson(priorRecords, priorWindow)

	merged := make(map[string]domain.SalespersonSummary, len(current)+len(prior))
	for id, agg := range current {
		merged[id] = domain.SalespersonSummary{
			SalespersonID:   id,
			SalespersonName: agg.name,
			Orders:          agg.orders,
			RevenueCurrent:  agg.revenue,
			RevenuePrior:    decimal.Zero,
		}
	}
	for id, agg := range prior {
		summary, ok := merged[id]
		if !ok {
			summary = domain.SalespersonSummary{
				SalespersonID:   id,
				SalespersonName: agg.name,
				RevenueCurrent:  decimal.Zero,
			}
		}
		summary.RevenuePrior = agg.revenue
		merged[id] = summary
	}

	summaries := make([]domain.SalespersonSummary, 0, len(merged))
	for _, summary := range merged {
		summary.Delta = summary.RevenueCurrent.Sub(summary.RevenuePrior)
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].RevenueCurrent.Equal(summaries[j].RevenueCurrent) {
			return summaries[i].SalespersonID < summaries[j].SalespersonID
		}
		return summaries[i].RevenueCurrent.GreaterThan(summaries[j].RevenueCurrent)
	})

	return summaries
}

type entityAggregate struct {
	name    string
	orders  int
	revenue decimal.Decimal
}

func groupByCustomer(records []domain.SalesRecord, window domain.DateRange) map[string]*entityAggregate {
	groups := make(map[string]*entityAggregate)
	for _, record := range records {
		if record.CustomerID == "" || !window.Contains(record.Date) {
			continue
		}

		agg, ok := groups[record.CustomerID]
		if !ok {
			agg = &entityAggregate{revenue: decimal.Zero}
			groups[record.CustomerID] = agg
		}

		if agg.name == "" {
			agg.name = record.CustomerName
		}
		agg.orders++
		agg.revenue = agg.revenue.Add(record.AmountExclTax)
	}

	return groups
}

func groupBySalesperson(records []domain.SalesRecord, window domain.DateRange) map[string]*entityAggregate {
	groups := make(map[string]*entityAggregate)
	for _, record := range records {
		if record.SalespersonID == "" || !window.Contains(record.Date) {
			continue
		}

		agg, ok := groups[record.SalespersonID]
		if !ok {
			agg = &entityAggregate{revenue: decimal.Zero}
			groups[record.SalespersonID] = agg
		}

		if agg.name == "" {
			agg.name = record.SalespersonName
		}
		agg.orders++
		agg.revenue = agg.revenue.Add(record.AmountExclTax)
	}

	return groups
}
