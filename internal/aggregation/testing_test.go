package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ledger-api/internal/domain"
)

func sale(customer, date string, amount int64) domain.Entry {
	return domain.Entry{
		ID:           customer + date,
		CustomerName: customer,
		OccurredOn:   date,
		Kind:         domain.EntryKindSales,
		Amount:       decimal.NewFromInt(amount),
	}
}

func cost(customer, date string, amount int64) domain.Entry {
	e := sale(customer, date, amount)
	e.Kind = domain.EntryKindCost
	return e
}

// scenarioEntries é o conjunto usado nos cenários ponta a ponta
func scenarioEntries() []domain.Entry {
	return []domain.Entry{
		sale("A", "2024-01-10", 100000),
		cost("A", "2024-01-12", 40000),
		sale("B", "2024-02-01", 50000),
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "esperado %s, obtido %s", expected, actual.String())
}
