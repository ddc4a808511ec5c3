package reporting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	integratormocks "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/mocks"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/unleashedclient"
	repomocks "github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := integratormocks.NewMockSalesIntegrator(ctrl)

	service := NewService(&config.Config{}, mockIntegrator).(*Service)

	// Data de referência: 23 de agosto, mês corrente parcial
	now := date(2024, 8, 23)
	period := domain.Period{Type: domain.PeriodMonthly, Year: 2024, Month: time.August}

	window := domain.DateRange{Start: date(2024, 8, 1), End: date(2024, 8, 23)}
	priorFetchWindow := domain.DateRange{Start: date(2024, 7, 1), End: date(2024, 7, 31)}

	currentRecords := []domain.SalesRecord{
		sale("A", "100", date(2024, 8, 5)),
		sale("B", "50", date(2024, 8, 10)),
	}
	// O pedido de 28 de julho fica fora da janela de comparação
	// (1 a 23 de julho) e não pode entrar nos agregados
	priorRecords := []domain.SalesRecord{
		sale("A", "80", date(2024, 7, 5)),
		sale("A", "999", date(2024, 7, 28)),
	}
	notes := []domain.CreditNote{
		{CustomerID: "A", Date: date(2024, 8, 12), AmountExclTax: decimal.RequireFromString("10")},
	}

	mockIntegrator.EXPECT().FetchSalesOrders(gomock.Any(), window).Return(currentRecords, nil)
	mockIntegrator.EXPECT().FetchSalesOrders(gomock.Any(), priorFetchWindow).Return(priorRecords, nil)
	mockIntegrator.EXPECT().FetchCreditNotes(gomock.Any(), window).Return(notes, nil)
	mockIntegrator.EXPECT().FetchProducts(gomock.Any()).Return([]domain.Product{}, nil)

	report, err := service.getDashboardAt(context.Background(), period, now)

	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "2024-08", report.Period)
	assert.Equal(t, domain.PeriodMonthly, report.PeriodType)
	assert.Equal(t, window, report.Window)
	assert.Equal(t, domain.DateRange{Start: date(2024, 7, 1), End: date(2024, 7, 23)}, report.PriorWindow)

	require.NotNil(t, report.Overview)
	assertDecimal(t, "150", report.Overview.TotalRevenue)
	assertDecimal(t, "80", report.Overview.PriorRevenue)
	assertDecimal(t, "87.5", report.Overview.ChangePercent)
	assert.Equal(t, 2, report.Overview.OrderCount)
	assert.Equal(t, 1, report.Overview.PriorOrderCount)
	assertDecimal(t, "75", report.Overview.AverageOrderValue)
	assertDecimal(t, "10", report.Overview.CreditNoteTotal)

	require.Len(t, report.TopCustomers, 2)
	assert.Equal(t, "A", report.TopCustomers[0].CustomerID)
	assertDecimal(t, "20", report.TopCustomers[0].Delta)
	assert.Equal(t, "B", report.TopCustomers[1].CustomerID)
	assertDecimal(t, "50", report.TopCustomers[1].Delta)

	require.NotNil(t, report.Growth)
	assert.Equal(t, 1, report.Growth.NewCount)
	assert.Equal(t, 0, report.Growth.ChurnedCount)
	assert.Equal(t, 1, report.Growth.RetainedCount)

	assert.NotNil(t, report.TopProducts)
	assert.NotNil(t, report.Salespersons)
	assert.Equal(t, now, report.GeneratedAt)
}

func TestGetDashboardQuandoAPIEstaIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := integratormocks.NewMockSalesIntegrator(ctrl)

	service := NewService(&config.Config{}, mockIntegrator).(*Service)

	remoteErr := &unleashedclient.RemoteUnavailableError{StatusCode: 503}

	mockIntegrator.EXPECT().
		FetchSalesOrders(gomock.Any(), gomock.Any()).
		Return(nil, remoteErr).
		Times(1)
	mockIntegrator.EXPECT().
		FetchSalesOrders(gomock.Any(), gomock.Any()).
		Return([]domain.SalesRecord{}, nil).
		AnyTimes()
	mockIntegrator.EXPECT().
		FetchCreditNotes(gomock.Any(), gomock.Any()).
		Return([]domain.CreditNote{}, nil).
		AnyTimes()
	mockIntegrator.EXPECT().
		FetchProducts(gomock.Any()).
		Return([]domain.Product{}, nil).
		AnyTimes()

	period := domain.Period{Type: domain.PeriodMonthly, Year: 2024, Month: time.August}
	report, err := service.getDashboardAt(context.Background(), period, date(2024, 8, 23))

	require.Error(t, err)
	assert.Nil(t, report)

	var unavailable *unleashedclient.RemoteUnavailableError
	assert.True(t, errors.As(err, &unavailable))
}

func TestGetDashboardQuandoCredenciaisDaAPISaoRejeitadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := integratormocks.NewMockSalesIntegrator(ctrl)

	service := NewService(&config.Config{}, mockIntegrator).(*Service)

	authErr := &unleashedclient.AuthenticationFailedError{StatusCode: 401}

	mockIntegrator.EXPECT().
		FetchSalesOrders(gomock.Any(), gomock.Any()).
		Return(nil, authErr).
		Times(1)
	mockIntegrator.EXPECT().
		FetchSalesOrders(gomock.Any(), gomock.Any()).
		Return([]domain.SalesRecord{}, nil).
		AnyTimes()
	mockIntegrator.EXPECT().
		FetchCreditNotes(gomock.Any(), gomock.Any()).
		Return([]domain.CreditNote{}, nil).
		AnyTimes()
	mockIntegrator.EXPECT().
		FetchProducts(gomock.Any()).
		Return([]domain.Product{}, nil).
		AnyTimes()

	period := domain.Period{Type: domain.PeriodMonthly, Year: 2024, Month: time.August}
	report, err := service.getDashboardAt(context.Background(), period, date(2024, 8, 23))

	// Nenhum relatório parcial quando as credenciais são rejeitadas
	require.Error(t, err)
	assert.Nil(t, report)

	var failed *unleashedclient.AuthenticationFailedError
	assert.True(t, errors.As(err, &failed))
}

func TestGetTopCustomersComSnapshotFresco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := integratormocks.NewMockSalesIntegrator(ctrl)
	mockSnapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)

	service := NewService(&config.Config{}, mockIntegrator).(*Service).WithCache(mockSnapshotRepo)

	now := date(2024, 8, 23)
	period := domain.Period{Type: domain.PeriodMonthly, Year: 2024, Month: time.August}

	currentPayload, err := json.Marshal([]domain.SalesRecord{
		sale("A", "100", date(2024, 8, 5)),
	})
	require.NoError(t, err)

	priorPayload, err := json.Marshal([]domain.SalesRecord{
		sale("A", "80", date(2024, 7, 5)),
	})
	require.NoError(t, err)

	// Snapshots dentro da validade: a API externa não pode ser chamada
	mockSnapshotRepo.EXPECT().
		Get(domain.ResourceSalesOrders, "2024-08").
		Return(&domain.SnapshotEntry{
			Resource:  domain.ResourceSalesOrders,
			PeriodKey: "2024-08",
			Payload:   currentPayload,
			FetchedAt: now.Add(-30 * time.Minute),
		}, nil)
	mockSnapshotRepo.EXPECT().
		Get(domain.ResourceSalesOrders, "2024-07").
		Return(&domain.SnapshotEntry{
			Resource:  domain.ResourceSalesOrders,
			PeriodKey: "2024-07",
			Payload:   priorPayload,
			FetchedAt: now.Add(-30 * time.Minute),
		}, nil)

	summaries, err := service.getTopCustomersAt(context.Background(), period, 10, now)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "A", summaries[0].CustomerID)
	assertDecimal(t, "100", summaries[0].RevenueCurrent)
	assertDecimal(t, "80", summaries[0].RevenuePrior)
	assertDecimal(t, "20", summaries[0].Delta)
}

func TestGetTopCustomersComSnapshotVencido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := integratormocks.NewMockSalesIntegrator(ctrl)
	mockSnapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)

	service := NewService(&config.Config{}, mockIntegrator).(*Service).WithCache(mockSnapshotRepo)

	now := date(2024, 8, 23)
	period := domain.Period{Type: domain.PeriodMonthly, Year: 2024, Month: time.August}

	stalePayload, err := json.Marshal([]domain.SalesRecord{
		sale("Z", "999", date(2024, 8, 1)),
	})
	require.NoError(t, err)

	// Snapshot do mês corrente vencido (3h atrás, validade 2h) e
	// snapshot do mês anterior ausente
	mockSnapshotRepo.EXPECT().
		Get(domain.ResourceSalesOrders, "2024-08").
		Return(&domain.SnapshotEntry{
			Resource:  domain.ResourceSalesOrders,
			PeriodKey: "2024-08",
			Payload:   stalePayload,
			FetchedAt: now.Add(-3 * time.Hour),
		}, nil)
	mockSnapshotRepo.EXPECT().
		Get(domain.ResourceSalesOrders, "2024-07").
		Return(nil, nil)

	mockIntegrator.EXPECT().
		FetchSalesOrders(gomock.Any(), domain.DateRange{Start: date(2024, 8, 1), End: date(2024, 8, 23)}).
		Return([]domain.SalesRecord{sale("A", "100", date(2024, 8, 5))}, nil)
	mockIntegrator.EXPECT().
		FetchSalesOrders(gomock.Any(), domain.DateRange{Start: date(2024, 7, 1), End: date(2024, 7, 31)}).
		Return([]domain.SalesRecord{}, nil)

	// A regravação do snapshot é melhor esforço: a falha em uma delas
	// não derruba a consulta
	var mu sync.Mutex
	saved := make([]string, 0, 2)
	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.SnapshotEntry) error {
			mu.Lock()
			defer mu.Unlock()

			saved = append(saved, entry.PeriodKey)
			if entry.PeriodKey == "2024-07" {
				return errors.New("banco indisponível")
			}
			return nil
		}).
		Times(2)

	summaries, err := service.getTopCustomersAt(context.Background(), period, 10, now)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "A", summaries[0].CustomerID)
	assert.ElementsMatch(t, []string{"2024-08", "2024-07"}, saved)
}

func TestGetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(&config.Config{}, integratormocks.NewMockSalesIntegrator(ctrl))

	periods, err := service.GetAvailablePeriods()

	require.NoError(t, err)
	assert.Len(t, periods.Months, 12)
	assert.Len(t, periods.Quarters, 4)
}
