package aggregation

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ledger-api/internal/domain"
)

// GroupBy agrupa os lançamentos pelo rótulo e ordena as linhas em japonês
func GroupBy(entries []domain.Entry, labelOf LabelFunc) []domain.GroupedRow {
	return GroupByWithCollation(entries, labelOf, JapaneseCollation())
}

// GroupByWithCollation agrupa os lançamentos e ordena as linhas com a collation informada
func GroupByWithCollation(entries []domain.Entry, labelOf LabelFunc, collation Collation) []domain.GroupedRow {
	index := make(map[string]int)
	rows := make([]domain.GroupedRow, 0)

	for _, e := range entries {
		label := labelOf(e)

		i, ok := index[label]
		if !ok {
			i = len(rows)
			index[label] = i
			rows = append(rows, domain.GroupedRow{
				Label: label,
				Sales: decimal.Zero,
				Cost:  decimal.Zero,
			})
		}

		row := &rows[i]
		row.Count++
		switch e.Kind {
		case domain.EntryKindSales:
			row.Sales = row.Sales.Add(e.Amount)
		case domain.EntryKindCost:
			row.Cost = row.Cost.Add(e.Amount)
		}
	}

	for i := range rows {
		rows[i].Profit = rows[i].Sales.Sub(rows[i].Cost)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return collation.Compare(rows[i].Label, rows[j].Label) < 0
	})

	return rows
}
