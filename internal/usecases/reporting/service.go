package reporting

import (
	"context"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Os payloads de snapshot carregam janelas inteiras de registros
var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultTopSize       = 10
	growthRankingSize    = 5
	defaultSnapshotTTL   = 2 * time.Hour
	defaultMaxConcurrent = 3
)

// Service implementa o Reporter sobre o integrador da API externa, com
// cache opcional de snapshots dos registros brutos. Os agregados são
// recalculados a cada consulta e nunca persistidos.
type Service struct {
	cfg          *config.Config
	integrator   unleashed.SalesIntegrator
	snapshotRepo repository.SnapshotRepository
	useCache     bool
}

func NewService(cfg *config.Config, integrator unleashed.SalesIntegrator) Reporter {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
	}
}

// WithCache habilita o cache de snapshots dos registros brutos
func (s *Service) WithCache(snapshotRepo repository.SnapshotRepository) *Service {
	s.snapshotRepo = snapshotRepo
	s.useCache = snapshotRepo != nil
	return s
}

// periodData reúne os registros brutos necessários para montar um
// relatório: vendas das duas janelas, notas de crédito e catálogo
type periodData struct {
	records      []domain.SalesRecord
	priorRecords []domain.SalesRecord
	creditNotes  []domain.CreditNote
	catalog      []domain.Product
}

type loadOptions struct {
	priorSales  bool
	creditNotes bool
	catalog     bool
}

func (s *Service) GetDashboard(ctx context.Context, period domain.Period) (*domain.DashboardReport, error) {
	return s.getDashboardAt(ctx, period, time.Now())
}

// getDashboardAt monta o relatório com uma data de referência explícita
func (s *Service) getDashboardAt(ctx context.Context, period domain.Period, now time.Time) (*domain.DashboardReport, error) {
	window := period.Window(now)
	priorWindow := period.PriorWindow(now)

	data, err := s.loadPeriodData(ctx, period, now, loadOptions{
		priorSales:  true,
		creditNotes: true,
		catalog:     true,
	})
	if err != nil {
		return nil, err
	}

	totalRevenue := TotalRevenue(data.records, window)
	priorRevenue := TotalRevenue(data.priorRecords, priorWindow)

	overview := &domain.RevenueOverview{
		TotalRevenue:      utils.RoundMoney(totalRevenue),
		PriorRevenue:      utils.RoundMoney(priorRevenue),
		ChangePercent:     utils.RoundMoney(ChangePercent(totalRevenue, priorRevenue)),
		OrderCount:        OrderCount(data.records, window),
		PriorOrderCount:   OrderCount(data.priorRecords, priorWindow),
		AverageOrderValue: utils.RoundMoney(AverageOrderValue(data.records, window)),
		CreditNoteTotal:   utils.RoundMoney(CreditNoteTotals(data.creditNotes, window)),
	}

	report := &domain.DashboardReport{
		Period:       period.Label(),
		PeriodType:   period.Type,
		Window:       window,
		PriorWindow:  priorWindow,
		Overview:     overview,
		TopCustomers: roundCustomerSummaries(TopCustomers(data.records, data.priorRecords, window, priorWindow, defaultTopSize)),
		Growth:       roundGrowth(CustomerGrowth(data.records, data.priorRecords, window, priorWindow, growthRankingSize)),
		TopProducts:  roundProductSummaries(TopProducts(data.records, window, data.catalog, defaultTopSize)),
		Salespersons: roundSalespersonSummaries(SalespersonPerformance(data.records, data.priorRecords, window, priorWindow)),
		GeneratedAt:  now,
	}

	return report, nil
}

func (s *Service) GetTopCustomers(ctx context.Context, period domain.Period, limit int) ([]domain.CustomerSummary, error) {
	return s.getTopCustomersAt(ctx, period, limit, time.Now())
}

func (s *Service) getTopCustomersAt(ctx context.Context, period domain.Period, limit int, now time.Time) ([]domain.CustomerSummary, error) {
	data, err := s.loadPeriodData(ctx, period, now, loadOptions{priorSales: true})
	if err != nil {
		return nil, err
	}

	summaries := TopCustomers(data.records, data.priorRecords, period.Window(now), period.PriorWindow(now), limit)
	return roundCustomerSummaries(summaries), nil
}

func (s *Service) GetTopProducts(ctx context.Context, period domain.Period, limit int) ([]domain.ProductSummary, error) {
	return s.getTopProductsAt(ctx, period, limit, time.Now())
}

func (s *Service) getTopProductsAt(ctx context.Context, period domain.Period, limit int, now time.Time) ([]domain.ProductSummary, error) {
	data, err := s.loadPeriodData(ctx, period, now, loadOptions{catalog: true})
	if err != nil {
		return nil, err
	}

	summaries := TopProducts(data.records, period.Window(now), data.catalog, limit)
	return roundProductSummaries(summaries), nil
}

func (s *Service) GetSalespersonPerformance(ctx context.Context, period domain.Period) ([]domain.SalespersonSummary, error) {
	return s.getSalespersonPerformanceAt(ctx, period, time.Now())
}

func (s *Service) getSalespersonPerformanceAt(ctx context.Context, period domain.Period, now time.Time) ([]domain.SalespersonSummary, error) {
	data, err := s.loadPeriodData(ctx, period, now, loadOptions{priorSales: true})
	if err != nil {
		return nil, err
	}

	summaries := SalespersonPerformance(data.records, data.priorRecords, period.Window(now), period.PriorWindow(now))
	return roundSalespersonSummaries(summaries), nil
}

func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	return domain.BuildAvailablePeriods(time.Now()), nil
}

// loadPeriodData busca os recursos necessários em paralelo, limitando a
// concorrência contra a API externa. O primeiro erro cancela o
// resultado inteiro: o dashboard nunca é montado com dados parciais.
func (s *Service) loadPeriodData(ctx context.Context, period domain.Period, now time.Time, opts loadOptions) (*periodData, error) {
	data := &periodData{
		records:      make([]domain.SalesRecord, 0),
		priorRecords: make([]domain.SalesRecord, 0),
		creditNotes:  make([]domain.CreditNote, 0),
		catalog:      make([]domain.Product, 0),
	}

	tasks := []func() error{
		func() error {
			records, err := s.loadSales(ctx, period, now)
			if err != nil {
				return err
			}
			data.records = records
			return nil
		},
	}

	if opts.priorSales {
		tasks = append(tasks, func() error {
			records, err := s.loadSales(ctx, period.Prior(), now)
			if err != nil {
				return err
			}
			data.priorRecords = records
			return nil
		})
	}

	if opts.creditNotes {
		tasks = append(tasks, func() error {
			notes, err := s.loadCreditNotes(ctx, period, now)
			if err != nil {
				return err
			}
			data.creditNotes = notes
			return nil
		})
	}

	if opts.catalog {
		tasks = append(tasks, func() error {
			catalog, err := s.loadCatalog(ctx, now)
			if err != nil {
				return err
			}
			data.catalog = catalog
			return nil
		})
	}

	maxConcurrent := s.cfg.SnapshotSync.MaxConcurrentFetches
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var loadErr error

	for _, task := range tasks {
		wg.Add(1)

		go func(task func() error) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := task(); err != nil {
				mu.Lock()
				if loadErr == nil {
					loadErr = err
				}
				mu.Unlock()
			}
		}(task)
	}

	wg.Wait()

	if loadErr != nil {
		return nil, loadErr
	}

	return data, nil
}

// loadSales busca os pedidos do período, preferindo o snapshot quando
// ainda está dentro da validade. A janela anterior recortada é aplicada
// na agregação, então o snapshot guarda sempre o período inteiro.
func (s *Service) loadSales(ctx context.Context, period domain.Period, now time.Time) ([]domain.SalesRecord, error) {
	key := period.Label()

	if s.useCache {
		records := make([]domain.SalesRecord, 0)
		if s.readSnapshot(domain.ResourceSalesOrders, key, now, &records) {
			return records, nil
		}
	}

	records, err := s.integrator.FetchSalesOrders(ctx, period.Window(now))
	if err != nil {
		return nil, err
	}

	s.writeSnapshot(domain.ResourceSalesOrders, key, records, now)

	return records, nil
}

func (s *Service) loadCreditNotes(ctx context.Context, period domain.Period, now time.Time) ([]domain.CreditNote, error) {
	key := period.Label()

	if s.useCache {
		notes := make([]domain.CreditNote, 0)
		if s.readSnapshot(domain.ResourceCreditNotes, key, now, &notes) {
			return notes, nil
		}
	}

	notes, err := s.integrator.FetchCreditNotes(ctx, period.Window(now))
	if err != nil {
		return nil, err
	}

	s.writeSnapshot(domain.ResourceCreditNotes, key, notes, now)

	return notes, nil
}

func (s *Service) loadCatalog(ctx context.Context, now time.Time) ([]domain.Product, error) {
	if s.useCache {
		catalog := make([]domain.Product, 0)
		if s.readSnapshot(domain.ResourceProducts, domain.CatalogPeriodKey, now, &catalog) {
			return catalog, nil
		}
	}

	catalog, err := s.integrator.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	s.writeSnapshot(domain.ResourceProducts, domain.CatalogPeriodKey, catalog, now)

	return catalog, nil
}

func (s *Service) readSnapshot(resource, key string, now time.Time, out any) bool {
	entry, err := s.snapshotRepo.Get(resource, key)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"resource":   resource,
			"period_key": key,
		}).Warn("Erro ao consultar snapshot no banco de dados")
		return false
	}

	if !entry.IsFresh(s.snapshotTTL(), now) {
		return false
	}

	if err := json.Unmarshal(entry.Payload, out); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"resource":   resource,
			"period_key": key,
		}).Warn("Snapshot com payload inválido, buscando da API")
		return false
	}

	return true
}

func (s *Service) writeSnapshot(resource, key string, payload any, now time.Time) {
	if !s.useCache {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"resource":   resource,
			"period_key": key,
		}).Warn("Erro ao serializar snapshot")
		return
	}

	entry := &domain.SnapshotEntry{
		Resource:  resource,
		PeriodKey: key,
		Payload:   raw,
		FetchedAt: now,
	}

	if err := s.snapshotRepo.SaveOrUpdate(entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"resource":   resource,
			"period_key": key,
		}).Warn("Erro ao salvar snapshot no banco de dados")
	}
}

func (s *Service) snapshotTTL() time.Duration {
	if s.cfg.SnapshotSync.TTLHours > 0 {
		return time.Duration(s.cfg.SnapshotSync.TTLHours) * time.Hour
	}
	return defaultSnapshotTTL
}

// Os agregados mantêm a precisão completa durante o cálculo; o
// arredondamento para duas casas acontece só na montagem da resposta.

func roundCustomerSummaries(summaries []domain.CustomerSummary) []domain.CustomerSummary {
	for i := range summaries {
		summaries[i].RevenueCurrent = utils.RoundMoney(summaries[i].RevenueCurrent)
		summaries[i].RevenuePrior = utils.RoundMoney(summaries[i].RevenuePrior)
		summaries[i].Delta = utils.RoundMoney(summaries[i].Delta)
	}
	return summaries
}

func roundProductSummaries(summaries []domain.ProductSummary) []domain.ProductSummary {
	for i := range summaries {
		summaries[i].Revenue = utils.RoundMoney(summaries[i].Revenue)
		summaries[i].Margin = utils.RoundMoney(summaries[i].Margin)
	}
	return summaries
}

func roundSalespersonSummaries(summaries []domain.SalespersonSummary) []domain.SalespersonSummary {
	for i := range summaries {
		summaries[i].RevenueCurrent = utils.RoundMoney(summaries[i].RevenueCurrent)
		summaries[i].RevenuePrior = utils.RoundMoney(summaries[i].RevenuePrior)
		summaries[i].Delta = utils.RoundMoney(summaries[i].Delta)
	}
	return summaries
}

func roundGrowth(growth *domain.CustomerGrowth) *domain.CustomerGrowth {
	growth.Growing = roundCustomerSummaries(growth.Growing)
	growth.Declining = roundCustomerSummaries(growth.Declining)
	return growth
}
