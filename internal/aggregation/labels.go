package aggregation

import (
	"strings"
	"time"

	"github.com/vfg2006/ledger-api/internal/domain"
)

// LabelFunc deriva o rótulo de agrupamento de um lançamento
type LabelFunc func(domain.Entry) string

// UnassignedCustomerLabel é o rótulo de lançamentos sem cliente
const UnassignedCustomerLabel = "取引先未設定"

const weekSuffix = " 週"

// CustomerLabel agrupa pelo nome do cliente sem espaços nas bordas
func CustomerLabel(e domain.Entry) string {
	if name := strings.TrimSpace(e.CustomerName); name != "" {
		return name
	}
	return UnassignedCustomerLabel
}

// PeriodLabel agrupa por dia, semana (iniciando na segunda-feira) ou mês
func PeriodLabel(granularity domain.PeriodGranularity) LabelFunc {
	switch granularity {
	case domain.GranularityDay:
		return func(e domain.Entry) string {
			return e.OccurredOn
		}
	case domain.GranularityWeek:
		return func(e domain.Entry) string {
			return WeekStart(e.OccurredOn) + weekSuffix
		}
	}

	return func(e domain.Entry) string {
		if len(e.OccurredOn) < 7 {
			return e.OccurredOn
		}
		return e.OccurredOn[:7]
	}
}

// WeekStart retorna a segunda-feira da semana da data.
// Domingo pertence à semana iniciada na segunda anterior. Datas inválidas
// são devolvidas sem alteração.
func WeekStart(date string) string {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}

	shift := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		shift = 6
	}

	return d.AddDate(0, 0, -shift).Format(domain.DateLayout)
}

// AmountBracketLabel agrupa pela faixa de valor, ignorando a faixa "all"
func AmountBracketLabel(e domain.Entry) string {
	for _, b := range domain.AmountBrackets() {
		if b.ID == domain.FilterAll {
			continue
		}
		if b.Contains(e.Amount) {
			return b.Label
		}
	}
	return domain.UnclassifiedLabel
}

// LabelFor escolhe a estratégia de rótulo da visão
func LabelFor(view domain.AggregationView, granularity domain.PeriodGranularity) LabelFunc {
	switch view {
	case domain.ViewPeriod:
		return PeriodLabel(granularity)
	case domain.ViewAmountRange:
		return AmountBracketLabel
	}
	return CustomerLabel
}
