package aggregation

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ledger-api/internal/domain"
)

// Summarize soma vendas e custos em uma única passada.
// A margem é zero quando não há vendas.
func Summarize(entries []domain.Entry) domain.Summary {
	sales, cost := decimal.Zero, decimal.Zero

	for _, e := range entries {
		switch e.Kind {
		case domain.EntryKindSales:
			sales = sales.Add(e.Amount)
		case domain.EntryKindCost:
			cost = cost.Add(e.Amount)
		}
	}

	profit := sales.Sub(cost)

	return domain.Summary{
		Sales:  sales,
		Cost:   cost,
		Profit: profit,
		Margin: margin(profit, sales),
	}
}

func margin(profit, sales decimal.Decimal) float64 {
	if !sales.IsPositive() {
		return 0
	}
	return profit.DivRound(sales, 16).InexactFloat64()
}
