package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ledger-api/internal/config"
	"github.com/vfg2006/ledger-api/internal/domain"
	reportingmocks "github.com/vfg2006/ledger-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/ledger-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func newSyncService(t *testing.T, lookback int) (*MonthlySummarySyncService, *mocks.MockUserRepository, *reportingmocks.MockReporter, *metrics.Registry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	reporter := reportingmocks.NewMockReporter(ctrl)
	registry := metrics.NewRegistry()

	svc := NewMonthlySummarySyncService(users, reporter, registry, config.MonthlySummarySync{
		CronSchedule:      "0 2 * * *",
		MaxConcurrentJobs: 2,
		MonthLookBack:     lookback,
	})
	svc.now = func() time.Time { return time.Date(2024, 3, 31, 2, 0, 0, 0, time.UTC) }

	return svc, users, reporter, registry
}

func TestMonths(t *testing.T) {
	svc, _, _, _ := newSyncService(t, 2)

	months := svc.Months()
	require.Len(t, months, 3)
	assert.Equal(t, "2024-01-01", months[0].Format(time.DateOnly))
	assert.Equal(t, "2024-02-01", months[1].Format(time.DateOnly))
	assert.Equal(t, "2024-03-01", months[2].Format(time.DateOnly))
}

func TestRun_SyncsEveryUserAndMonth(t *testing.T) {
	ctx := context.Background()
	svc, users, reporter, registry := newSyncService(t, 1)

	users.EXPECT().ListActiveUserIDs(ctx).Return([]int{1, 2, 3}, nil)

	var mu sync.Mutex
	seen := map[int][]string{}
	reporter.EXPECT().SyncMonthlySummary(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, uid int, month time.Time) (*domain.MonthlySummary, error) {
			mu.Lock()
			seen[uid] = append(seen[uid], month.Format("2006-01"))
			mu.Unlock()
			return &domain.MonthlySummary{UserID: uid}, nil
		}).Times(6)

	result := svc.Run(ctx)

	assert.Equal(t, SyncStatusSuccess, result.Status)
	assert.Equal(t, 3, result.Users)
	assert.Equal(t, 6, result.Saved)
	assert.Equal(t, []string{"2024-02", "2024-03"}, result.Months)
	for uid := 1; uid <= 3; uid++ {
		assert.ElementsMatch(t, []string{"2024-02", "2024-03"}, seen[uid])
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.SummarySyncRuns.WithLabelValues(SyncStatusSuccess)))

	status := svc.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.NotNil(t, status["last_result"])
}

func TestRun_PartialFailure(t *testing.T) {
	ctx := context.Background()
	svc, users, reporter, _ := newSyncService(t, 0)

	users.EXPECT().ListActiveUserIDs(ctx).Return([]int{1, 2}, nil)
	reporter.EXPECT().SyncMonthlySummary(ctx, 1, gomock.Any()).Return(&domain.MonthlySummary{}, nil)
	reporter.EXPECT().SyncMonthlySummary(ctx, 2, gomock.Any()).Return(nil, errors.New("timeout"))

	result := svc.Run(ctx)

	assert.Equal(t, SyncStatusPartial, result.Status)
	assert.Equal(t, 1, result.Saved)
	assert.Equal(t, 1, result.Failed)
}

func TestRun_UserListingFails(t *testing.T) {
	ctx := context.Background()
	svc, users, _, _ := newSyncService(t, 1)

	users.EXPECT().ListActiveUserIDs(ctx).Return(nil, errors.New("connection refused"))

	result := svc.Run(ctx)
	assert.Equal(t, SyncStatusFailed, result.Status)
}

func TestRun_SkipsWhileRunning(t *testing.T) {
	svc, _, _, _ := newSyncService(t, 1)
	svc.syncRunning = true

	assert.Equal(t, SyncStatusSkipped, svc.Run(context.Background()).Status)
	assert.False(t, svc.TriggerManualSync())
}

func TestStart_DisabledIsNoop(t *testing.T) {
	svc, _, _, _ := newSyncService(t, 1)

	assert.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, false, svc.GetStatus()["sync_enabled"])
}
