package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultMaxConcurrentFetches = 3
	recentRunsLimit             = 10
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule         string
	RetentionDays        int
	MaxConcurrentFetches int
	SyncEnabled          bool
}

// SnapshotSyncService gerencia o agendamento e execução da atualização
// dos snapshots da API externa de vendas. A cada ciclo os períodos que o
// dashboard consulta com frequência (mês e trimestre correntes com seus
// anteriores, mais o catálogo) são rebuscados e regravados, e cada
// recurso atualizado gera um registro de auditoria em sync_runs.
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	appConfig           *config.Config
	integrator          unleashed.SalesIntegrator
	snapshotRepo        repository.SnapshotRepository
	syncRunRepo         repository.SyncRunRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// syncTarget é um recurso/período a atualizar em um ciclo de sincronização
type syncTarget struct {
	job       string
	periodKey string
	refresh   func(ctx context.Context) (int, error)
}

// NewSnapshotSyncService cria uma nova instância do serviço de sincronização de snapshots
func NewSnapshotSyncService(
	integrator unleashed.SalesIntegrator,
	snapshotRepo repository.SnapshotRepository,
	syncRunRepo repository.SyncRunRepository,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:         appConfig.SnapshotSync.CronSchedule,
		RetentionDays:        appConfig.SnapshotSync.RetentionDays,
		MaxConcurrentFetches: appConfig.SnapshotSync.MaxConcurrentFetches,
		SyncEnabled:          appConfig.SnapshotSync.Enabled,
	}

	if syncConfig.MaxConcurrentFetches <= 0 {
		syncConfig.MaxConcurrentFetches = defaultMaxConcurrentFetches
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"max_concurrent": syncConfig.MaxConcurrentFetches,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		integrator:   integrator,
		snapshotRepo: snapshotRepo,
		syncRunRepo:  syncRunRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SnapshotSyncService) syncAllSnapshots() {
	s.syncAllSnapshotsAt(time.Now())
}

// syncAllSnapshotsAt executa um ciclo de sincronização com uma data de
// referência explícita
func (s *SnapshotSyncService) syncAllSnapshotsAt(now time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = now
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	targets := s.buildTargets(now)

	logrus.WithFields(logrus.Fields{
		"targets": len(targets),
	}).Info("Iniciando sincronização de snapshots")

	// Canal para controlar o número de buscas concorrentes contra a API
	semaphore := make(chan struct{}, s.config.MaxConcurrentFetches)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	ctx := context.Background()

	for _, target := range targets {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(target syncTarget) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.runTarget(ctx, target); err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}(target)
	}

	wg.Wait()

	s.cleanupOldSnapshots()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"targets":  len(targets),
		"failures": failures,
	}).Info("Sincronização de snapshots concluída")
}

// buildTargets monta a lista de recursos/períodos a atualizar. As vendas
// cobrem as janelas corrente e anterior de mês e trimestre porque o
// dashboard sempre compara as duas; as notas de crédito só entram nos
// totais do período consultado.
func (s *SnapshotSyncService) buildTargets(now time.Time) []syncTarget {
	currentMonth := domain.CurrentPeriod(domain.PeriodMonthly, now)
	currentQuarter := domain.CurrentPeriod(domain.PeriodQuarterly, now)

	salesPeriods := []domain.Period{
		currentMonth,
		currentMonth.Prior(),
		currentQuarter,
		currentQuarter.Prior(),
	}

	creditNotePeriods := []domain.Period{
		currentMonth,
		currentQuarter,
	}

	targets := make([]syncTarget, 0, len(salesPeriods)+len(creditNotePeriods)+1)

	for _, period := range salesPeriods {
		targets = append(targets, syncTarget{
			job:       domain.ResourceSalesOrders,
			periodKey: period.Label(),
			refresh: func(ctx context.Context) (int, error) {
				return s.refreshSales(ctx, period, now)
			},
		})
	}

	for _, period := range creditNotePeriods {
		targets = append(targets, syncTarget{
			job:       domain.ResourceCreditNotes,
			periodKey: period.Label(),
			refresh: func(ctx context.Context) (int, error) {
				return s.refreshCreditNotes(ctx, period, now)
			},
		})
	}

	targets = append(targets, syncTarget{
		job:       domain.ResourceProducts,
		periodKey: domain.CatalogPeriodKey,
		refresh: func(ctx context.Context) (int, error) {
			return s.refreshCatalog(ctx, now)
		},
	})

	return targets
}

// runTarget atualiza um recurso/período e registra a execução para auditoria
func (s *SnapshotSyncService) runTarget(ctx context.Context, target syncTarget) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar o ID da execução: %w", err)
	}

	run := &domain.SyncRun{
		ID:        id,
		Job:       target.job,
		PeriodKey: target.periodKey,
		Status:    domain.SyncStatusRunning,
		StartedAt: time.Now(),
	}

	// O registro de auditoria é melhor esforço: a falha ao gravar não
	// impede a atualização do snapshot
	if err := s.syncRunRepo.Save(run); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"job":        run.Job,
			"period_key": run.PeriodKey,
		}).Warn("Erro ao registrar execução de sincronização")
	}

	records, refreshErr := target.refresh(ctx)

	finishedAt := time.Now()
	run.FinishedAt = &finishedAt

	if refreshErr != nil {
		message := refreshErr.Error()
		run.Status = domain.SyncStatusFailed
		run.Error = &message

		logrus.WithError(refreshErr).WithFields(logrus.Fields{
			"job":        run.Job,
			"period_key": run.PeriodKey,
		}).Error("Erro ao sincronizar snapshot")
	} else {
		run.Status = domain.SyncStatusSuccess
		run.Records = records

		logrus.WithFields(logrus.Fields{
			"job":        run.Job,
			"period_key": run.PeriodKey,
			"records":    records,
		}).Info("Snapshot sincronizado com sucesso")
	}

	if err := s.syncRunRepo.Update(run); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"job":        run.Job,
			"period_key": run.PeriodKey,
		}).Warn("Erro ao atualizar execução de sincronização")
	}

	return refreshErr
}

func (s *SnapshotSyncService) refreshSales(ctx context.Context, period domain.Period, now time.Time) (int, error) {
	records, err := s.integrator.FetchSalesOrders(ctx, period.Window(now))
	if err != nil {
		return 0, err
	}

	if err := s.saveSnapshot(domain.ResourceSalesOrders, period.Label(), records, now); err != nil {
		return 0, err
	}

	return len(records), nil
}

func (s *SnapshotSyncService) refreshCreditNotes(ctx context.Context, period domain.Period, now time.Time) (int, error) {
	notes, err := s.integrator.FetchCreditNotes(ctx, period.Window(now))
	if err != nil {
		return 0, err
	}

	if err := s.saveSnapshot(domain.ResourceCreditNotes, period.Label(), notes, now); err != nil {
		return 0, err
	}

	return len(notes), nil
}

func (s *SnapshotSyncService) refreshCatalog(ctx context.Context, now time.Time) (int, error) {
	catalog, err := s.integrator.FetchProducts(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.saveSnapshot(domain.ResourceProducts, domain.CatalogPeriodKey, catalog, now); err != nil {
		return 0, err
	}

	return len(catalog), nil
}

func (s *SnapshotSyncService) saveSnapshot(resource, periodKey string, payload any, now time.Time) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot: %w", err)
	}

	entry := &domain.SnapshotEntry{
		Resource:  resource,
		PeriodKey: periodKey,
		Payload:   raw,
		FetchedAt: now,
	}

	if err := s.snapshotRepo.SaveOrUpdate(entry); err != nil {
		return fmt.Errorf("erro ao salvar snapshot no banco de dados: %w", err)
	}

	return nil
}

func (s *SnapshotSyncService) cleanupOldSnapshots() {
	if s.config.RetentionDays <= 0 {
		return
	}

	removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots antigos")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":        removed,
			"retention_days": s.config.RetentionDays,
		}).Info("Snapshots antigos removidos")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots")
	go s.syncAllSnapshots()
}

// GetStatus retorna o status atual do agendador com as execuções recentes
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentFetches,
		"retention_days":         s.config.RetentionDays,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}

	runs, err := s.syncRunRepo.ListRecent(recentRunsLimit)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao listar execuções recentes de sincronização")
		return status
	}

	status["recent_runs"] = runs

	return status
}
