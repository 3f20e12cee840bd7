package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary contém os totais de um conjunto de lançamentos
type Summary struct {
	Sales  decimal.Decimal `json:"sales"`
	Cost   decimal.Decimal `json:"cost"`
	Profit decimal.Decimal `json:"profit"`
	Margin float64         `json:"margin"`
}

// GroupedRow é uma linha agregada da tabela de agrupamento
type GroupedRow struct {
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Sales  decimal.Decimal `json:"sales"`
	Cost   decimal.Decimal `json:"cost"`
	Profit decimal.Decimal `json:"profit"`
}

// AggregationView é a visão de agrupamento escolhida pelo usuário
type AggregationView string

const (
	ViewCustomer    AggregationView = "customer"
	ViewPeriod      AggregationView = "period"
	ViewAmountRange AggregationView = "amount-range"
)

// ParseAggregationView retorna a visão por cliente para valores desconhecidos
func ParseAggregationView(s string) AggregationView {
	switch AggregationView(s) {
	case ViewPeriod:
		return ViewPeriod
	case ViewAmountRange:
		return ViewAmountRange
	}
	return ViewCustomer
}

func (v AggregationView) Title() string {
	switch v {
	case ViewPeriod:
		return "期間ごと"
	case ViewAmountRange:
		return "金額レンジごと"
	}
	return "取引先ごと"
}

// PeriodGranularity define o tamanho do período no agrupamento por período
type PeriodGranularity string

const (
	GranularityDay   PeriodGranularity = "day"
	GranularityWeek  PeriodGranularity = "week"
	GranularityMonth PeriodGranularity = "month"
)

// ParsePeriodGranularity retorna mês para valores desconhecidos
func ParsePeriodGranularity(s string) PeriodGranularity {
	switch PeriodGranularity(s) {
	case GranularityDay:
		return GranularityDay
	case GranularityWeek:
		return GranularityWeek
	}
	return GranularityMonth
}

// LabelTitle retorna o cabeçalho da coluna de rótulos para a visão
func LabelTitle(view AggregationView, granularity PeriodGranularity) string {
	switch view {
	case ViewPeriod:
		switch granularity {
		case GranularityDay:
			return "日付"
		case GranularityWeek:
			return "週"
		}
		return "月"
	case ViewAmountRange:
		return "金額レンジ"
	}
	return "取引先名"
}

// Report é o resultado completo de uma agregação
type Report struct {
	EntryCount  int               `json:"entry_count"`
	Summary     Summary           `json:"summary"`
	View        AggregationView   `json:"view"`
	ViewTitle   string            `json:"view_title"`
	Granularity PeriodGranularity `json:"period_grouping"`
	LabelTitle  string            `json:"label_title"`
	Rows        []GroupedRow      `json:"rows"`
	Filters     FilterConfig      `json:"filters"`
}

// MonthlySummary é o snapshot persistido dos totais de um usuário em um mês
type MonthlySummary struct {
	ID         int             `json:"id"`
	UserID     int             `json:"user_id"`
	Period     string          `json:"period"`
	EntryCount int             `json:"entry_count"`
	Sales      decimal.Decimal `json:"sales"`
	Cost       decimal.Decimal `json:"cost"`
	Profit     decimal.Decimal `json:"profit"`
	Margin     float64         `json:"margin"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
