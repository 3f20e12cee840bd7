package aggregation

import (
	"sort"
	"strings"

	"github.com/vfg2006/ledger-api/internal/domain"
)

// BuildReport filtra os lançamentos e calcula o resumo e a tabela da visão ativa
func BuildReport(
	entries []domain.Entry,
	cfg domain.FilterConfig,
	view domain.AggregationView,
	granularity domain.PeriodGranularity,
) domain.Report {
	filtered := Filter(entries, cfg)

	return domain.Report{
		EntryCount:  len(filtered),
		Summary:     Summarize(filtered),
		View:        view,
		ViewTitle:   view.Title(),
		Granularity: granularity,
		LabelTitle:  domain.LabelTitle(view, granularity),
		Rows:        GroupBy(filtered, LabelFor(view, granularity)),
		Filters:     cfg,
	}
}

// CustomerOptions lista os nomes de clientes distintos, ordenados em japonês
func CustomerOptions(entries []domain.Entry) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)

	for _, e := range entries {
		name := strings.TrimSpace(e.CustomerName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	collation := JapaneseCollation()
	sort.Slice(names, func(i, j int) bool {
		return collation.Compare(names[i], names[j]) < 0
	})

	return names
}

// SortForListing ordena por data do lançamento e depois por criação, ambos decrescentes
func SortForListing(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OccurredOn != out[j].OccurredOn {
			return out[i].OccurredOn > out[j].OccurredOn
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
