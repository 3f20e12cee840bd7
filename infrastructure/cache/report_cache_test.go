package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-api/internal/domain"
)

type reportRequest struct {
	View string `json:"view"`
}

func TestReportKeyDependsOnVersionAndRequest(t *testing.T) {
	a, err := ReportKey(1, 3, reportRequest{View: "customer"})
	require.NoError(t, err)
	b, err := ReportKey(1, 4, reportRequest{View: "customer"})
	require.NoError(t, err)
	c, err := ReportKey(1, 3, reportRequest{View: "period"})
	require.NoError(t, err)
	again, err := ReportKey(1, 3, reportRequest{View: "customer"})
	require.NoError(t, err)

	assert.Contains(t, a, "report:1:3:")
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, again)
}

func TestRedisReportCache_Version(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewReportCache(db, time.Minute)
	ctx := context.Background()

	t.Run("versão inexistente é zero", func(t *testing.T) {
		mock.ExpectGet("ledger:version:1").RedisNil()

		version, err := c.Version(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), version)
	})

	t.Run("incremento", func(t *testing.T) {
		mock.ExpectIncr("ledger:version:1").SetVal(2)

		version, err := c.BumpVersion(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), version)
	})

	t.Run("erro do redis", func(t *testing.T) {
		mock.ExpectGet("ledger:version:1").SetErr(errors.New("connection refused"))

		_, err := c.Version(ctx, 1)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisReportCache_RoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewReportCache(db, time.Minute)
	ctx := context.Background()

	request := reportRequest{View: "customer"}
	key, err := ReportKey(1, 2, request)
	require.NoError(t, err)

	report := &domain.Report{
		EntryCount: 2,
		Summary: domain.Summary{
			Sales:  decimal.NewFromInt(150000),
			Cost:   decimal.NewFromInt(40000),
			Profit: decimal.NewFromInt(110000),
			Margin: 110000.0 / 150000.0,
		},
		View: domain.ViewCustomer,
	}
	payload, err := json.Marshal(report)
	require.NoError(t, err)

	mock.ExpectGet(key).RedisNil()
	_, found, err := c.GetReport(ctx, 1, 2, request)
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectSet(key, payload, time.Minute).SetVal("OK")
	require.NoError(t, c.SetReport(ctx, 1, 2, request, report))

	mock.ExpectGet(key).SetVal(string(payload))
	cached, found, err := c.GetReport(ctx, 1, 2, request)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, cached.EntryCount)
	assert.True(t, report.Summary.Profit.Equal(cached.Summary.Profit))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoopReportCache(t *testing.T) {
	c := NewNoopReportCache()
	ctx := context.Background()

	version, err := c.BumpVersion(ctx, 1)
	assert.NoError(t, err)
	assert.Zero(t, version)

	_, found, err := c.GetReport(ctx, 1, 0, nil)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.SetReport(ctx, 1, 0, nil, &domain.Report{}))
}
