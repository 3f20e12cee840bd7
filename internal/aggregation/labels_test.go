package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ledger-api/internal/domain"
)

func TestCustomerLabel(t *testing.T) {
	tests := []struct {
		name     string
		customer string
		expected string
	}{
		{name: "Nome simples", customer: "山田商店", expected: "山田商店"},
		{name: "Espaços nas bordas são removidos", customer: "  山田商店 ", expected: "山田商店"},
		{name: "Vazio vira cliente não definido", customer: "", expected: UnassignedCustomerLabel},
		{name: "Somente espaços vira cliente não definido", customer: " \t ", expected: UnassignedCustomerLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CustomerLabel(domain.Entry{CustomerName: tt.customer}))
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{date: "2024-03-04", expected: "2024-03-04"}, // segunda
		{date: "2024-03-06", expected: "2024-03-04"}, // quarta
		{date: "2024-03-08", expected: "2024-03-04"}, // sexta
		{date: "2024-03-09", expected: "2024-03-04"}, // sábado
		{date: "2024-03-10", expected: "2024-03-04"}, // domingo
		{date: "2024-03-11", expected: "2024-03-11"},
		{date: "2024-01-01", expected: "2024-01-01"},
		{date: "2023-01-01", expected: "2022-12-26"}, // domingo na virada de ano
		{date: "2024-03-03", expected: "2024-02-26"}, // domingo em ano bissexto
		{date: "invalida", expected: "invalida"},
		{date: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekStart(tt.date))
		})
	}
}

func TestPeriodLabel(t *testing.T) {
	e := domain.Entry{OccurredOn: "2024-03-10"}

	assert.Equal(t, "2024-03-10", PeriodLabel(domain.GranularityDay)(e))
	assert.Equal(t, "2024-03-04 週", PeriodLabel(domain.GranularityWeek)(e))
	assert.Equal(t, "2024-03", PeriodLabel(domain.GranularityMonth)(e))
	assert.Equal(t, "2024-03", PeriodLabel(domain.PeriodGranularity("year"))(e))
	assert.Equal(t, "2024", PeriodLabel(domain.GranularityMonth)(domain.Entry{OccurredOn: "2024"}))
}

func TestAmountBracketLabel(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "0", expected: "10万円未満"},
		{amount: "99999", expected: "10万円未満"},
		{amount: "99999.5", expected: domain.UnclassifiedLabel},
		{amount: "100000", expected: "10万円以上 30万円未満"},
		{amount: "299999", expected: "10万円以上 30万円未満"},
		{amount: "300000", expected: "30万円以上 50万円未満"},
		{amount: "499999", expected: "30万円以上 50万円未満"},
		{amount: "500000", expected: "50万円以上"},
		{amount: "1000000000", expected: "50万円以上"},
		{amount: "-1", expected: domain.UnclassifiedLabel},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			e := domain.Entry{Amount: decimal.RequireFromString(tt.amount)}
			assert.Equal(t, tt.expected, AmountBracketLabel(e))
		})
	}
}

func TestAmountBracketLabel_EveryWholeYenAmountHasOneBracket(t *testing.T) {
	for _, raw := range []string{"0", "1", "50000", "99999", "100000", "250000", "299999", "300000", "499999", "500000", "7500000"} {
		amount := decimal.RequireFromString(raw)

		matches := 0
		for _, b := range domain.AmountBrackets() {
			if b.ID != domain.FilterAll && b.Contains(amount) {
				matches++
			}
		}

		assert.Equal(t, 1, matches, raw)
		assert.NotEqual(t, domain.UnclassifiedLabel, AmountBracketLabel(domain.Entry{Amount: amount}), raw)
	}
}

func TestLabelFor(t *testing.T) {
	e := domain.Entry{CustomerName: "A", OccurredOn: "2024-01-10", Amount: decimal.NewFromInt(150000)}

	assert.Equal(t, "A", LabelFor(domain.ViewCustomer, domain.GranularityMonth)(e))
	assert.Equal(t, "2024-01-10", LabelFor(domain.ViewPeriod, domain.GranularityDay)(e))
	assert.Equal(t, "10万円以上 30万円未満", LabelFor(domain.ViewAmountRange, domain.GranularityDay)(e))
}
