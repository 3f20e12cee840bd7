package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/ledger-api/infrastructure/cache/mocks"
	"github.com/vfg2006/ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/pkg/apiErrors"
	"github.com/vfg2006/ledger-api/pkg/log"
	"github.com/vfg2006/ledger-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc       *Service
	entries   *mocks.MockEntryRepository
	summaries *mocks.MockMonthlySummaryRepository
	cache     *cachemocks.MockReportCache
	metrics   *metrics.Registry
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	f := fixture{
		entries:   mocks.NewMockEntryRepository(ctrl),
		summaries: mocks.NewMockMonthlySummaryRepository(ctrl),
		cache:     cachemocks.NewMockReportCache(ctrl),
		metrics:   metrics.NewRegistry(),
	}
	f.svc = NewService(f.entries, f.summaries, f.cache, f.metrics)
	return f
}

func ledger() []domain.Entry {
	due := "2024-01-31"
	paid := "2024-01-20"
	return []domain.Entry{
		{ID: "1", CustomerName: "青木商店", OccurredOn: "2024-01-05", Kind: domain.EntryKindSales, Amount: decimal.NewFromInt(150000), DepositDueOn: &due},
		{ID: "2", CustomerName: "カトウ工業", OccurredOn: "2024-01-20", Kind: domain.EntryKindCost, Amount: decimal.NewFromInt(40000), PaymentDate: &paid},
	}
}

func TestNewReportRequestDefaults(t *testing.T) {
	req := NewReportRequest(domain.FilterConfig{}, "", "fortnight")

	assert.Equal(t, domain.ViewCustomer, req.View)
	assert.Equal(t, domain.GranularityMonth, req.Granularity)
}

func TestGetReport_CacheMissBuildsAndStores(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := NewReportRequest(domain.FilterConfig{}, "customer", "")

	f.cache.EXPECT().Version(ctx, 1).Return(int64(4), nil)
	f.cache.EXPECT().GetReport(ctx, 1, int64(4), req).Return(nil, false, nil)
	f.entries.EXPECT().ListByUser(ctx, 1, "", "").Return(ledger(), nil)
	f.cache.EXPECT().SetReport(ctx, 1, int64(4), req, gomock.Any()).Return(nil)

	report, err := f.svc.GetReport(ctx, 1, req)
	require.NoError(t, err)

	assert.Equal(t, 2, report.EntryCount)
	assert.True(t, decimal.NewFromInt(110000).Equal(report.Summary.Profit))
	assert.InDelta(t, 0.7333, report.Summary.Margin, 0.0001)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CacheLookups.WithLabelValues(metrics.CacheMiss)))
}

func TestGetReport_CacheHit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := NewReportRequest(domain.FilterConfig{}, "period", "week")

	cached := &domain.Report{EntryCount: 9}
	f.cache.EXPECT().Version(ctx, 1).Return(int64(4), nil)
	f.cache.EXPECT().GetReport(ctx, 1, int64(4), req).Return(cached, true, nil)

	report, err := f.svc.GetReport(ctx, 1, req)
	require.NoError(t, err)
	assert.Same(t, cached, report)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CacheLookups.WithLabelValues(metrics.CacheHit)))
}

func TestGetReport_CacheUnavailableStillComputes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := NewReportRequest(domain.FilterConfig{Kind: domain.EntryKindCost}, "amount-range", "")

	f.cache.EXPECT().Version(ctx, 1).Return(int64(0), errors.New("redis down"))
	f.entries.EXPECT().ListByUser(ctx, 1, "", "").Return(ledger(), nil)

	report, err := f.svc.GetReport(ctx, 1, req)
	require.NoError(t, err)
	assert.Equal(t, 1, report.EntryCount)
	assert.Equal(t, "金額レンジ", report.LabelTitle)
}

func TestGetReport_InvalidDateRange(t *testing.T) {
	f := newFixture(t)
	req := NewReportRequest(domain.FilterConfig{Start: "2024-02-01", End: "2024-01-01"}, "", "")

	_, err := f.svc.GetReport(context.Background(), 1, req)

	var reportErr *ReportError
	require.True(t, errors.As(err, &reportErr))
	assert.Equal(t, apiErrors.ErrInvalidDateRange, reportErr.Code)
	assert.Equal(t, "終了日は開始日以降を指定してください。", reportErr.Error())
}

func TestGetReport_RepositoryError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := NewReportRequest(domain.FilterConfig{}, "", "")

	f.cache.EXPECT().Version(ctx, 1).Return(int64(1), nil)
	f.cache.EXPECT().GetReport(ctx, 1, int64(1), req).Return(nil, false, nil)
	f.entries.EXPECT().ListByUser(ctx, 1, "", "").Return(nil, errors.New("timeout"))

	_, err := f.svc.GetReport(ctx, 1, req)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestSyncMonthlySummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.entries.EXPECT().ListByUser(ctx, 1, "2024-01-01", "2024-01-31").Return(ledger(), nil)
	f.summaries.EXPECT().SaveOrUpdate(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *domain.MonthlySummary) error {
		assert.Equal(t, "2024-01", s.Period)
		assert.Equal(t, 2, s.EntryCount)
		assert.True(t, decimal.NewFromInt(150000).Equal(s.Sales))
		return nil
	})

	snapshot, err := f.svc.SyncMonthlySummary(ctx, 1, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40000).Equal(snapshot.Cost))
}

func TestGetMonthlySummaries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.summaries.EXPECT().ListByUserAndYear(ctx, 1, 2024).Return([]domain.MonthlySummary{{Period: "2024-01"}}, nil)

	summaries, err := f.svc.GetMonthlySummaries(ctx, 1, 2024)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)

	_, err = f.svc.GetMonthlySummaries(ctx, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidYear)
}
