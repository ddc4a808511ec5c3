package reporting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Reporter define a interface de consulta do dashboard de vendas
type Reporter interface {
	// GetDashboard monta o relatório completo do período: resumo de
	// receita, rankings de clientes e produtos, crescimento da carteira
	// e desempenho de vendedores
	GetDashboard(ctx context.Context, period domain.Period) (*domain.DashboardReport, error)

	// GetTopCustomers retorna o ranking de clientes por receita do período
	GetTopCustomers(ctx context.Context, period domain.Period, limit int) ([]domain.CustomerSummary, error)

	// GetTopProducts retorna o ranking de produtos por receita do período
	GetTopProducts(ctx context.Context, period domain.Period, limit int) ([]domain.ProductSummary, error)

	// GetSalespersonPerformance compara a receita dos vendedores entre o
	// período corrente e o anterior
	GetSalespersonPerformance(ctx context.Context, period domain.Period) ([]domain.SalespersonSummary, error)

	// GetAvailablePeriods retorna os períodos selecionáveis no dashboard
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}
