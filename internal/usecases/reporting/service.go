package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/ledger-api/infrastructure/cache"
	"github.com/vfg2006/ledger-api/infrastructure/repository"
	"github.com/vfg2006/ledger-api/internal/aggregation"
	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/pkg/apiErrors"
	"github.com/vfg2006/ledger-api/pkg/log"
	"github.com/vfg2006/ledger-api/pkg/metrics"
	"github.com/vfg2006/ledger-api/pkg/utils"
)

// ReportRequest identifica um relatório; também compõe a chave do cache
type ReportRequest struct {
	Filters     domain.FilterConfig      `json:"filters"`
	View        domain.AggregationView   `json:"view"`
	Granularity domain.PeriodGranularity `json:"period"`
}

// NewReportRequest aplica os valores padrão de visão (cliente) e período (mês)
func NewReportRequest(filters domain.FilterConfig, view, period string) ReportRequest {
	return ReportRequest{
		Filters:     filters,
		View:        domain.ParseAggregationView(view),
		Granularity: domain.ParsePeriodGranularity(period),
	}
}

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Reporter interface {
	GetReport(ctx context.Context, userID int, req ReportRequest) (*domain.Report, error)
	GetMonthlySummaries(ctx context.Context, userID, year int) ([]domain.MonthlySummary, error)
	SyncMonthlySummary(ctx context.Context, userID int, month time.Time) (*domain.MonthlySummary, error)
}

type Service struct {
	entries   repository.EntryRepository
	summaries repository.MonthlySummaryRepository
	cache     cache.ReportCache
	metrics   *metrics.Registry
}

func NewService(
	entries repository.EntryRepository,
	summaries repository.MonthlySummaryRepository,
	reportCache cache.ReportCache,
	metricsRegistry *metrics.Registry,
) *Service {
	return &Service{
		entries:   entries,
		summaries: summaries,
		cache:     reportCache,
		metrics:   metricsRegistry,
	}
}

// GetReport devolve o relatório do cache quando a versão do livro não mudou;
// caso contrário calcula a partir dos lançamentos. Falhas do cache não
// interrompem a requisição.
func (s *Service) GetReport(ctx context.Context, userID int, req ReportRequest) (*domain.Report, error) {
	if err := req.Filters.Validate(); err != nil {
		return nil, filterError(err)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id": userID,
		"view":    req.View,
		"period":  req.Granularity,
	})

	version, versionErr := s.cache.Version(ctx, userID)
	if versionErr != nil {
		logger.WithError(versionErr).Warn("Cache de relatórios indisponível, recalculando")
		s.recordCache(metrics.CacheError)
	} else {
		cached, found, err := s.cache.GetReport(ctx, userID, version, req)
		switch {
		case err != nil:
			logger.WithError(err).Warn("Erro ao ler relatório do cache")
			s.recordCache(metrics.CacheError)
		case found:
			s.recordCache(metrics.CacheHit)
			logger.WithField("cache", metrics.CacheHit).Debug("Relatório servido do cache")
			return cached, nil
		default:
			s.recordCache(metrics.CacheMiss)
		}
	}

	entries, err := s.entries.ListByUser(ctx, userID, req.Filters.Start, req.Filters.End)
	if err != nil {
		return nil, databaseError(err)
	}

	start := time.Now()
	report := aggregation.BuildReport(entries, req.Filters, req.View, req.Granularity)
	if s.metrics != nil {
		s.metrics.ObserveReportBuild(time.Since(start))
	}

	if versionErr == nil {
		if err := s.cache.SetReport(ctx, userID, version, req, &report); err != nil {
			logger.WithError(err).Warn("Erro ao gravar relatório no cache")
		}
	}

	return &report, nil
}

func (s *Service) GetMonthlySummaries(ctx context.Context, userID, year int) ([]domain.MonthlySummary, error) {
	if year < 1 || year > 9999 {
		return nil, &ReportError{Err: ErrInvalidYear, Code: apiErrors.ErrInvalidFormat}
	}

	summaries, err := s.summaries.ListByUserAndYear(ctx, userID, year)
	if err != nil {
		return nil, databaseError(err)
	}

	return summaries, nil
}

// SyncMonthlySummary recalcula e grava o snapshot do mês informado
func (s *Service) SyncMonthlySummary(ctx context.Context, userID int, month time.Time) (*domain.MonthlySummary, error) {
	first, last := utils.MonthBounds(month)

	entries, err := s.entries.ListByUser(ctx, userID, first, last)
	if err != nil {
		return nil, databaseError(err)
	}

	summary := aggregation.Summarize(entries)
	snapshot := &domain.MonthlySummary{
		UserID:     userID,
		Period:     first[:7],
		EntryCount: len(entries),
		Sales:      summary.Sales,
		Cost:       summary.Cost,
		Profit:     summary.Profit,
		Margin:     summary.Margin,
	}

	if err := s.summaries.SaveOrUpdate(ctx, snapshot); err != nil {
		return nil, databaseError(err)
	}

	return snapshot, nil
}

func (s *Service) recordCache(result string) {
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(result)
	}
}
