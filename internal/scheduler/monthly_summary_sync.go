package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ledger-api/infrastructure/repository"
	"github.com/vfg2006/ledger-api/internal/config"
	"github.com/vfg2006/ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/ledger-api/pkg/metrics"
)

// Resultado de uma execução da sincronização
const (
	SyncStatusSuccess = "success"
	SyncStatusPartial = "partial"
	SyncStatusFailed  = "failed"
	SyncStatusSkipped = "skipped"
)

// SyncResult resume uma execução da sincronização de resumos mensais
type SyncResult struct {
	Status   string        `json:"status"`
	Users    int           `json:"users"`
	Months   []string      `json:"months"`
	Saved    int           `json:"saved"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

// MonthlySummarySyncService recalcula periodicamente os snapshots mensais de cada usuário ativo
type MonthlySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              config.MonthlySummarySync
	userRepo            repository.UserRepository
	reporter            reporting.Reporter
	metrics             *metrics.Registry
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *SyncResult
}

func NewMonthlySummarySyncService(
	userRepo repository.UserRepository,
	reporter reporting.Reporter,
	metricsRegistry *metrics.Registry,
	cfg config.MonthlySummarySync,
) *MonthlySummarySyncService {
	if cfg.MaxConcurrentJobs < 1 {
		cfg.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       cfg.CronSchedule,
		"max_concurrent_jobs": cfg.MaxConcurrentJobs,
		"sync_enabled":        cfg.Enabled,
		"month_lookback":      cfg.MonthLookBack,
	}).Info("Configuração do agendador de resumos mensais carregada")

	return &MonthlySummarySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		userRepo:  userRepo,
		reporter:  reporter,
		metrics:   metricsRegistry,
		now:       time.Now,
	}
}

// Start agenda a sincronização e para o agendador quando ctx for cancelado
func (s *MonthlySummarySyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de resumos mensais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de resumos mensais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de resumos mensais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de resumos mensais")
		s.scheduler.Stop()
	}()

	return nil
}

// Months retorna os meses sincronizados: os MonthLookBack anteriores e o atual, do mais antigo ao mais novo
func (s *MonthlySummarySyncService) Months() []time.Time {
	now := s.now()
	months := make([]time.Time, 0, s.config.MonthLookBack+1)
	for i := s.config.MonthLookBack; i >= 0; i-- {
		months = append(months, time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC))
	}
	return months
}

// Run executa uma sincronização completa; execuções simultâneas são ignoradas
func (s *MonthlySummarySyncService) Run(ctx context.Context) SyncResult {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de resumos mensais já em andamento, ignorando")
		return SyncResult{Status: SyncStatusSkipped}
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	result := s.sync(ctx)
	result.Duration = time.Since(startTime)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastResult = &result
	s.syncMutex.Unlock()

	if s.metrics != nil {
		s.metrics.RecordSummarySync(result.Status)
	}

	logrus.WithFields(logrus.Fields{
		"status":   result.Status,
		"users":    result.Users,
		"saved":    result.Saved,
		"failed":   result.Failed,
		"duration": result.Duration.String(),
	}).Info("Sincronização de resumos mensais concluída")

	return result
}

func (s *MonthlySummarySyncService) sync(ctx context.Context) SyncResult {
	months := s.Months()
	result := SyncResult{Months: make([]string, 0, len(months))}
	for _, m := range months {
		result.Months = append(result.Months, m.Format("2006-01"))
	}

	userIDs, err := s.userRepo.ListActiveUserIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuários para sincronização de resumos mensais")
		result.Status = SyncStatusFailed
		return result
	}
	result.Users = len(userIDs)

	if len(userIDs) == 0 {
		logrus.Info("Nenhum usuário ativo encontrado para sincronização de resumos mensais")
		result.Status = SyncStatusSuccess
		return result
	}

	var saved, failed int64
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, userID := range userIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(uid int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			for _, month := range months {
				if ctx.Err() != nil {
					atomic.AddInt64(&failed, 1)
					return
				}

				if _, err := s.reporter.SyncMonthlySummary(ctx, uid, month); err != nil {
					atomic.AddInt64(&failed, 1)
					logrus.WithError(err).WithFields(logrus.Fields{
						"user_id": uid,
						"period":  month.Format("2006-01"),
					}).Error("Erro ao sincronizar resumo mensal")
					continue
				}
				atomic.AddInt64(&saved, 1)
			}
		}(userID)
	}

	wg.Wait()

	result.Saved = int(saved)
	result.Failed = int(failed)
	switch {
	case failed == 0:
		result.Status = SyncStatusSuccess
	case saved == 0:
		result.Status = SyncStatusFailed
	default:
		result.Status = SyncStatusPartial
	}

	return result
}

// TriggerManualSync dispara uma sincronização em segundo plano
func (s *MonthlySummarySyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de resumos mensais já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de resumos mensais")
	go s.Run(context.Background())
	return true
}

// GetStatus retorna o status atual da sincronização
func (s *MonthlySummarySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"month_lookback":         s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
