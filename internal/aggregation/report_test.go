package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-api/internal/domain"
)

func TestBuildReport(t *testing.T) {
	entries := scenarioEntries()

	t.Run("Visão por cliente com todos os lançamentos", func(t *testing.T) {
		report := BuildReport(entries, domain.FilterConfig{}, domain.ViewCustomer, domain.GranularityMonth)

		assert.Equal(t, 3, report.EntryCount)
		assertDecimal(t, "110000", report.Summary.Profit)
		assert.Equal(t, "取引先ごと", report.ViewTitle)
		assert.Equal(t, "取引先名", report.LabelTitle)
		assert.Equal(t, []string{"A", "B"}, labels(report.Rows))
	})

	t.Run("Visão por mês filtrada", func(t *testing.T) {
		cfg := domain.FilterConfig{Start: "2024-02-01", End: "2024-02-29"}
		report := BuildReport(entries, cfg, domain.ViewPeriod, domain.GranularityMonth)

		assert.Equal(t, 1, report.EntryCount)
		assert.Equal(t, 1.0, report.Summary.Margin)
		assert.Equal(t, "月", report.LabelTitle)
		assert.Equal(t, []string{"2024-02"}, labels(report.Rows))
		assert.Equal(t, cfg, report.Filters)
	})

	t.Run("Visão por faixa de valor", func(t *testing.T) {
		report := BuildReport(entries, domain.FilterConfig{}, domain.ViewAmountRange, domain.GranularityMonth)

		assert.Equal(t, "金額レンジ", report.LabelTitle)
		assert.Equal(t, []string{"10万円以上 30万円未満", "10万円未満"}, labels(report.Rows))
	})
}

func TestCustomerOptions(t *testing.T) {
	entries := []domain.Entry{
		sale(" きむら ", "2024-01-01", 1),
		sale("カトウ", "2024-01-02", 1),
		sale("きむら", "2024-01-03", 1),
		sale("", "2024-01-04", 1),
		sale("   ", "2024-01-05", 1),
	}

	assert.Equal(t, []string{"カトウ", "きむら"}, CustomerOptions(entries))
	assert.Empty(t, CustomerOptions(nil))
}

func TestSortForListing(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	entries := []domain.Entry{
		{ID: "1", OccurredOn: "2024-01-10", CreatedAt: base},
		{ID: "2", OccurredOn: "2024-02-01", CreatedAt: base},
		{ID: "3", OccurredOn: "2024-01-10", CreatedAt: base.Add(time.Hour)},
		{ID: "4", OccurredOn: "2023-12-31", CreatedAt: base.Add(2 * time.Hour)},
	}

	sorted := SortForListing(entries)

	require.Len(t, sorted, 4)
	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids)
	assert.Equal(t, "1", entries[0].ID, "a lista original não deve ser alterada")
}
