package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-api/internal/domain"
)

func TestFilter(t *testing.T) {
	entries := []domain.Entry{
		sale("A", "2024-01-10", 100000),
		cost("A", "2024-01-12", 40000),
		sale("B", "2024-02-01", 50000),
		sale("", "2024-02-15", 350000),
		cost("B", "2024-03-01", 500000),
	}

	tests := []struct {
		name     string
		cfg      domain.FilterConfig
		expected []string
	}{
		{
			name:     "Sem filtros - deve retornar todos os lançamentos na ordem original",
			cfg:      domain.FilterConfig{},
			expected: []string{"A2024-01-10", "A2024-01-12", "B2024-02-01", "2024-02-15", "B2024-03-01"},
		},
		{
			name:     "Intervalo de datas inclusivo",
			cfg:      domain.FilterConfig{Start: "2024-01-12", End: "2024-02-15"},
			expected: []string{"A2024-01-12", "B2024-02-01", "2024-02-15"},
		},
		{
			name:     "Apenas data inicial",
			cfg:      domain.FilterConfig{Start: "2024-02-02"},
			expected: []string{"2024-02-15", "B2024-03-01"},
		},
		{
			name:     "Cliente exato",
			cfg:      domain.FilterConfig{Customer: "A"},
			expected: []string{"A2024-01-10", "A2024-01-12"},
		},
		{
			name:     "Cliente all não filtra",
			cfg:      domain.FilterConfig{Customer: domain.FilterAll},
			expected: []string{"A2024-01-10", "A2024-01-12", "B2024-02-01", "2024-02-15", "B2024-03-01"},
		},
		{
			name:     "Tipo custo",
			cfg:      domain.FilterConfig{Kind: domain.EntryKindCost},
			expected: []string{"A2024-01-12", "B2024-03-01"},
		},
		{
			name:     "Faixa de valor 30万円以上 50万円未満",
			cfg:      domain.FilterConfig{AmountRange: "300k-500k"},
			expected: []string{"2024-02-15"},
		},
		{
			name:     "Faixa desconhecida não restringe o valor",
			cfg:      domain.FilterConfig{AmountRange: "unknown"},
			expected: []string{"A2024-01-10", "A2024-01-12", "B2024-02-01", "2024-02-15", "B2024-03-01"},
		},
		{
			name:     "Filtros combinados",
			cfg:      domain.FilterConfig{Start: "2024-01-01", End: "2024-02-29", Kind: domain.EntryKindSales, AmountRange: "under-100k"},
			expected: []string{"B2024-02-01"},
		},
		{
			name:     "Início depois do fim - retorna vazio sem erro",
			cfg:      domain.FilterConfig{Start: "2024-03-01", End: "2024-01-01"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(entries, tt.cfg)

			ids := make([]string, 0, len(result))
			for _, e := range result {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	result := Filter(nil, domain.FilterConfig{Customer: "A"})

	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	entries := scenarioEntries()
	before := make([]domain.Entry, len(entries))
	copy(before, entries)

	_ = Filter(entries, domain.FilterConfig{Customer: "B"})

	assert.Equal(t, before, entries)
}

func TestFilter_AdditionalPredicateNeverGrowsResult(t *testing.T) {
	entries := append(scenarioEntries(), sale("C", "2024-02-20", 600000), cost("", "2024-02-21", 1))

	base := domain.FilterConfig{Start: "2024-01-01"}
	baseCount := len(Filter(entries, base))

	narrowed := []domain.FilterConfig{
		{Start: "2024-01-01", End: "2024-02-20"},
		{Start: "2024-01-01", Customer: "A"},
		{Start: "2024-01-01", Kind: domain.EntryKindSales},
		{Start: "2024-01-01", AmountRange: "500k-plus"},
	}

	for _, cfg := range narrowed {
		assert.LessOrEqual(t, len(Filter(entries, cfg)), baseCount)
	}
}

func TestFilter_BracketBoundsAreInclusive(t *testing.T) {
	entries := []domain.Entry{
		{ID: "min", Kind: domain.EntryKindSales, Amount: decimal.NewFromInt(100000)},
		{ID: "max", Kind: domain.EntryKindSales, Amount: decimal.NewFromInt(299999)},
		{ID: "fora", Kind: domain.EntryKindSales, Amount: decimal.NewFromInt(300000)},
	}

	result := Filter(entries, domain.FilterConfig{AmountRange: "100k-300k"})

	require.Len(t, result, 2)
	assert.Equal(t, "min", result[0].ID)
	assert.Equal(t, "max", result[1].ID)
}
