package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var (
	testWindow      = domain.DateRange{Start: date(2024, 8, 1), End: date(2024, 8, 31)}
	testPriorWindow = domain.DateRange{Start: date(2024, 7, 1), End: date(2024, 7, 31)}
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sale(customerID, amount string, when time.Time) domain.SalesRecord {
	return domain.SalesRecord{
		CustomerID:    customerID,
		CustomerName:  "Cliente " + customerID,
		Date:          when,
		AmountExclTax: decimal.RequireFromString(amount),
		TaxAmount:     decimal.RequireFromString("7.77"),
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		"esperado %s, obtido %s", expected, actual)
}

func TestTotalRevenue(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.SalesRecord
		expected string
	}{
		{
			name: "Soma apenas o valor sem impostos",
			records: []domain.SalesRecord{
				sale("A", "100", date(2024, 8, 5)),
				sale("B", "50.25", date(2024, 8, 10)),
			},
			expected: "150.25",
		},
		{
			name: "Pedidos fora da janela não contam",
			records: []domain.SalesRecord{
				sale("A", "100", date(2024, 8, 5)),
				sale("A", "999", date(2024, 7, 31)),
				sale("A", "999", date(2024, 9, 1)),
			},
			expected: "100",
		},
		{
			name:     "Conjunto vazio soma zero",
			records:  []domain.SalesRecord{},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, TotalRevenue(tt.records, testWindow))
		})
	}
}

func TestOrderCount(t *testing.T) {
	records := []domain.SalesRecord{
		sale("A", "100", date(2024, 8, 1)),
		sale("B", "50", date(2024, 8, 31)),
		sale("C", "10", date(2024, 9, 1)),
	}

	assert.Equal(t, 2, OrderCount(records, testWindow))
	assert.Equal(t, 0, OrderCount(nil, testWindow))
}

func TestAverageOrderValue(t *testing.T) {
	t.Run("Ticket médio é a receita dividida pelos pedidos da janela", func(t *testing.T) {
		records := []domain.SalesRecord{
			sale("A", "100", date(2024, 8, 5)),
			sale("B", "50", date(2024, 8, 10)),
		}

		assertDecimal(t, "75", AverageOrderValue(records, testWindow))
	})

	t.Run("Janela sem pedidos tem ticket médio zero", func(t *testing.T) {
		assertDecimal(t, "0", AverageOrderValue(nil, testWindow))
	})
}

func TestChangePercent(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		prior    string
		expected string
	}{
		{name: "Crescimento de 20 por cento", current: "120", prior: "100", expected: "20"},
		{name: "Queda de 20 por cento", current: "80", prior: "100", expected: "-20"},
		{name: "Queda de 75 por cento", current: "50", prior: "200", expected: "-75"},
		{name: "Sem base de comparação a variação é zero", current: "100", prior: "0", expected: "0"},
		{name: "Ambos zerados a variação é zero", current: "0", prior: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ChangePercent(
				decimal.RequireFromString(tt.current),
				decimal.RequireFromString(tt.prior),
			)
			assertDecimal(t, tt.expected, result)
		})
	}
}

func TestCreditNoteTotals(t *testing.T) {
	notes := []domain.CreditNote{
		{CustomerID: "A", Date: date(2024, 8, 10), AmountExclTax: decimal.RequireFromString("40")},
		{CustomerID: "B", Date: date(2024, 8, 20), AmountExclTax: decimal.RequireFromString("15.50")},
		{CustomerID: "A", Date: date(2024, 7, 10), AmountExclTax: decimal.RequireFromString("999")},
	}

	assertDecimal(t, "55.5", CreditNoteTotals(notes, testWindow))
	assertDecimal(t, "0", CreditNoteTotals(nil, testWindow))
}

func TestTopCustomers(t *testing.T) {
	t.Run("Comparativo entre períodos com delta por cliente", func(t *testing.T) {
		records := []domain.SalesRecord{
			sale("A", "100", date(2024, 8, 5)),
			sale("B", "50", date(2024, 8, 10)),
		}
		priorRecords := []domain.SalesRecord{
			sale("A", "80", date(2024, 7, 5)),
		}

		result := TopCustomers(records, priorRecords, testWindow, testPriorWindow, 2)

		require.Len(t, result, 2)

		assert.Equal(t, "A", result[0].CustomerID)
		assertDecimal(t, "100", result[0].RevenueCurrent)
		assertDecimal(t, "80", result[0].RevenuePrior)
		assertDecimal(t, "20", result[0].Delta)

		assert.Equal(t, "B", result[1].CustomerID)
		assertDecimal(t, "50", result[1].RevenueCurrent)
		assertDecimal(t, "0", result[1].RevenuePrior)
		assertDecimal(t, "50", result[1].Delta)
	})

	t.Run("Pedidos do mesmo cliente são somados e contados", func(t *testing.T) {
		records := []domain.SalesRecord{
			sale("A", "60", date(2024, 8, 5)),
			sale("A", "40", date(2024, 8, 15)),
			sale("B", "70", date(2024, 8, 10)),
		}

		result := TopCustomers(records, nil, testWindow, testPriorWindow, 10)

		require.Len(t, result, 2)
		assert.Equal(t, "A", result[0].CustomerID)
		assert.Equal(t, 2, result[0].Orders)
		assertDecimal(t, "100", result[0].RevenueCurrent)
		assert.Equal(t, "B", result[1].CustomerID)
		assert.Equal(t, 1, result[1].Orders)
	})

	t.Run("Empate de receita desempata pelo ID do cliente", func(t *testing.T) {
		records := []domain.SalesRecord{
			sale("C", "100", date(2024, 8, 5)),
			sale("A", "100", date(2024, 8, 5)),
			sale("B", "100", date(2024, 8, 5)),
		}

		result := TopCustomers(records, nil, testWindow, testPriorWindow, 10)

		require.Len(t, result, 3)
		assert.Equal(t, "A", result[0].CustomerID)
		assert.Equal(t, "B", result[1].CustomerID)
		assert.Equal(t, "C", result[2].CustomerID)
	})

	t.Run("Limite corta o ranking depois da ordenação", func(t *testing.T) {
		records := []domain.SalesRecord{
			sale("A", "10", date(2024, 8, 5)),
			sale("B", "30", date(2024, 8, 5)),
			sale("C", "20", date(2024, 8, 5)),
		}

		result := TopCustomers(records, nil, testWindow, testPriorWindow, 2)

		require.Len(t, result, 2)
		assert.Equal(t, "B", result[0].CustomerID)
		assert.Equal(t, "C", result[1].CustomerID)
	})

	t.Run("Cliente apenas do período anterior não entra no ranking", func(t *testing.T) {
		records := []domain.SalesRecord{
			sale("A", "100", date(2024, 8, 5)),
		}
		priorRecords := []domain.SalesRecord{
			sale("Z", "500", date(2024, 7, 5)),
		}

		result := TopCustomers(records, priorRecords, testWindow, testPriorWindow, 10)

		require.Len(t, result, 1)
		assert.Equal(t, "A", result[0].CustomerID)
	})

	t.Run("Períodos sem pedidos produzem lista vazia, não erro", func(t *testing.T) {
		result := TopCustomers(nil, nil, testWindow, testPriorWindow, 10)

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestCustomerGrowth(t *testing.T) {
	t.Run("Contagens por diferença de conjuntos entre os períodos", func(t *testing.T) {
		records := []domain.SalesRecord{
			sale("A", "100", date(2024, 8, 5)),
			sale("B", "50", date(2024, 8, 10)),
			sale("C", "30", date(2024, 8, 15)),
		}
		priorRecords := []domain.SalesRecord{
			sale("B", "80", date(2024, 7, 5)),
			sale("C", "60", date(2024, 7, 10)),
			sale("D", "40", date(2024, 7, 15)),
		}

		growth := CustomerGrowth(records, priorRecords, testWindow, testPriorWindow, 10)

		assert.Equal(t, 1, growth.NewCount)
		assert.Equal(t, 1, growth.ChurnedCount)
		assert.Equal(t, 2, growth.RetainedCount)

		// Novos + retidos cobrem todos os clientes distintos do período corrente
		assert.Equal(t, 3, growth.NewCount+growth.RetainedCount)
	})

	t.Run("Rankings de crescimento e queda ordenados pelo delta", func(t *testing.T) {
		records := []domain.SalesRecord{
			sale("A", "100", date(2024, 8, 5)),
			sale("B", "50", date(2024, 8, 10)),
		}
		priorRecords := []domain.SalesRecord{
			sale("B", "80", date(2024, 7, 5)),
			sale("D", "40", date(2024, 7, 15)),
		}

		growth := CustomerGrowth(records, priorRecords, testWindow, testPriorWindow, 10)

		// A cresceu 100; B caiu 30; D caiu 40 (cliente perdido)
		require.Len(t, growth.Growing, 1)
		assert.Equal(t, "A", growth.Growing[0].CustomerID)
		assertDecimal(t, "100", growth.Growing[0].Delta)

		require.Len(t, growth.Declining, 2)
		assert.Equal(t, "D", growth.Declining[0].CustomerID)
		assertDecimal(t, "-40", growth.Declining[0].Delta)
		assert.Equal(t, "B", growth.Declining[1].CustomerID)
		assertDecimal(t, "-30", growth.Declining[1].Delta)
	})

	t.Run("Períodos vazios zeram contagens e listas", func(t *testing.T) {
		growth := CustomerGrowth(nil, nil, testWindow, testPriorWindow, 10)

		assert.Zero(t, growth.NewCount)
		assert.Zero(t, growth.ChurnedCount)
		assert.Zero(t, growth.RetainedCount)
		assert.NotNil(t, growth.Growing)
		assert.Empty(t, growth.Growing)
		assert.NotNil(t, growth.Declining)
		assert.Empty(t, growth.Declining)
	})
}

func TestTopProducts(t *testing.T) {
	catalog := []domain.Product{
		{ID: "p1", Code: "P-001", Name: "Óculos de Sol", PurchasePrice: decimal.RequireFromString("30")},
		{ID: "p2", Code: "P-002", Name: "Lente de Contato", PurchasePrice: decimal.RequireFromString("5")},
	}

	orderWithLines := func(when time.Time, lines ...domain.SaleLine) domain.SalesRecord {
		record := sale("A", "0", when)
		record.Lines = lines
		return record
	}

	line := func(productID, quantity, total string) domain.SaleLine {
		return domain.SaleLine{
			ProductID: productID,
			Quantity:  decimal.RequireFromString(quantity),
			LineTotal: decimal.RequireFromString(total),
		}
	}

	t.Run("Ranking por receita com margem calculada do catálogo", func(t *testing.T) {
		records := []domain.SalesRecord{
			orderWithLines(date(2024, 8, 5), line("p1", "2", "180"), line("p2", "10", "250")),
			orderWithLines(date(2024, 8, 10), line("p1", "1", "90")),
		}

		result := TopProducts(records, testWindow, catalog, 10)

		require.Len(t, result, 2)

		// p1: receita 270, custo 3 x 30 = 90, margem 180
		assert.Equal(t, "p1", result[0].ProductID)
		assert.Equal(t, "Óculos de Sol", result[0].ProductName)
		assertDecimal(t, "3", result[0].Quantity)
		assertDecimal(t, "270", result[0].Revenue)
		assertDecimal(t, "180", result[0].Margin)

		// p2: receita 250, custo 10 x 5 = 50, margem 200
		assert.Equal(t, "p2", result[1].ProductID)
		assertDecimal(t, "250", result[1].Revenue)
		assertDecimal(t, "200", result[1].Margin)
	})

	t.Run("Produto fora do catálogo entra com custo zero", func(t *testing.T) {
		records := []domain.SalesRecord{
			orderWithLines(date(2024, 8, 5), line("desconhecido", "1", "120")),
		}

		result := TopProducts(records, testWindow, catalog, 10)

		require.Len(t, result, 1)
		assertDecimal(t, "120", result[0].Revenue)
		assertDecimal(t, "120", result[0].Margin)
	})

	t.Run("Empate de receita desempata pelo ID do produto", func(t *testing.T) {
		records := []domain.SalesRecord{
			orderWithLines(date(2024, 8, 5), line("p2", "1", "100"), line("p1", "1", "100")),
		}

		result := TopProducts(records, testWindow, catalog, 10)

		require.Len(t, result, 2)
		assert.Equal(t, "p1", result[0].ProductID)
		assert.Equal(t, "p2", result[1].ProductID)
	})

	t.Run("Pedidos fora da janela não contribuem", func(t *testing.T) {
		records := []domain.SalesRecord{
			orderWithLines(date(2024, 7, 5), line("p1", "1", "90")),
		}

		result := TopProducts(records, testWindow, catalog, 10)

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestSalespersonPerformance(t *testing.T) {
	withSalesperson := func(record domain.SalesRecord, id, name string) domain.SalesRecord {
		record.SalespersonID = id
		record.SalespersonName = name
		return record
	}

	t.Run("Compara as duas janelas incluindo vendedor sem vendas atuais", func(t *testing.T) {
		records := []domain.SalesRecord{
			withSalesperson(sale("A", "100", date(2024, 8, 5)), "v1", "Maria"),
			withSalesperson(sale("B", "50", date(2024, 8, 10)), "v1", "Maria"),
		}
		priorRecords := []domain.SalesRecord{
			withSalesperson(sale("A", "50", date(2024, 7, 5)), "v1", "Maria"),
			withSalesperson(sale("C", "70", date(2024, 7, 10)), "v2", "João"),
		}

		result := SalespersonPerformance(records, priorRecords, testWindow, testPriorWindow)

		require.Len(t, result, 2)

		assert.Equal(t, "v1", result[0].SalespersonID)
		assert.Equal(t, "Maria", result[0].SalespersonName)
		assert.Equal(t, 2, result[0].Orders)
		assertDecimal(t, "150", result[0].RevenueCurrent)
		assertDecimal(t, "50", result[0].RevenuePrior)
		assertDecimal(t, "100", result[0].Delta)

		assert.Equal(t, "v2", result[1].SalespersonID)
		assertDecimal(t, "0", result[1].RevenueCurrent)
		assertDecimal(t, "70", result[1].RevenuePrior)
		assertDecimal(t, "-70", result[1].Delta)
	})

	t.Run("Pedidos sem vendedor são ignorados", func(t *testing.T) {
		records := []domain.SalesRecord{
			sale("A", "100", date(2024, 8, 5)),
			withSalesperson(sale("B", "50", date(2024, 8, 10)), "v1", "Maria"),
		}

		result := SalespersonPerformance(records, nil, testWindow, testPriorWindow)

		require.Len(t, result, 1)
		assert.Equal(t, "v1", result[0].SalespersonID)
	})

	t.Run("Janelas vazias produzem lista vazia", func(t *testing.T) {
		result := SalespersonPerformance(nil, nil, testWindow, testPriorWindow)

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
