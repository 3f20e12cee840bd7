package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// FilterAll é o valor sentinela que desativa um filtro
const FilterAll = "all"

var (
	ErrInvalidDateRange   = errors.New("終了日は開始日以降を指定してください。")
	ErrInvalidFilterDate  = errors.New("data de filtro inválida")
	ErrUnknownAmountRange = errors.New("faixa de valor desconhecida")
)

// FilterConfig define os filtros aplicados aos lançamentos antes da agregação
type FilterConfig struct {
	Start       string    `json:"start,omitempty"`
	End         string    `json:"end,omitempty"`
	Customer    string    `json:"customer,omitempty"`
	Kind        EntryKind `json:"entry_type,omitempty"`
	AmountRange string    `json:"amount_range,omitempty"`
}

// HasCustomer indica se o filtro de cliente está ativo
func (f FilterConfig) HasCustomer() bool {
	return f.Customer != "" && f.Customer != FilterAll
}

// HasKind indica se o filtro de tipo está ativo
func (f FilterConfig) HasKind() bool {
	return f.Kind != "" && f.Kind != FilterAll
}

// HasAmountRange indica se o filtro de faixa de valor está ativo
func (f FilterConfig) HasAmountRange() bool {
	return f.AmountRange != "" && f.AmountRange != FilterAll
}

// Validate verifica os filtros vindos da borda (HTTP, CLI).
// A agregação em si tolera qualquer FilterConfig.
func (f FilterConfig) Validate() error {
	var start, end time.Time
	var err error

	if f.Start != "" {
		if start, err = time.Parse(DateLayout, f.Start); err != nil {
			return ErrInvalidFilterDate
		}
	}

	if f.End != "" {
		if end, err = time.Parse(DateLayout, f.End); err != nil {
			return ErrInvalidFilterDate
		}
	}

	if f.Start != "" && f.End != "" && start.After(end) {
		return ErrInvalidDateRange
	}

	if f.HasKind() && !f.Kind.IsValid() {
		return ErrInvalidEntryKind
	}

	if f.HasAmountRange() {
		if _, ok := FindAmountBracket(f.AmountRange); !ok {
			return ErrUnknownAmountRange
		}
	}

	return nil
}

// AmountBracket é uma faixa nomeada de valores, com limites inclusivos.
// Max nil significa faixa sem limite superior.
type AmountBracket struct {
	ID    string           `json:"id"`
	Label string           `json:"label"`
	Min   decimal.Decimal  `json:"min"`
	Max   *decimal.Decimal `json:"max"`
}

// UnclassifiedLabel é o rótulo de valores fora de todas as faixas
const UnclassifiedLabel = "未分類"

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

var amountBrackets = []AmountBracket{
	{ID: FilterAll, Label: "すべて", Min: decimal.Zero},
	{ID: "under-100k", Label: "10万円未満", Min: decimal.Zero, Max: bound(99999)},
	{ID: "100k-300k", Label: "10万円以上 30万円未満", Min: decimal.NewFromInt(100000), Max: bound(299999)},
	{ID: "300k-500k", Label: "30万円以上 50万円未満", Min: decimal.NewFromInt(300000), Max: bound(499999)},
	{ID: "500k-plus", Label: "50万円以上", Min: decimal.NewFromInt(500000)},
}

// AmountBrackets retorna a tabela fixa de faixas, na ordem de exibição
func AmountBrackets() []AmountBracket {
	out := make([]AmountBracket, len(amountBrackets))
	copy(out, amountBrackets)
	return out
}

// FindAmountBracket busca uma faixa pelo id
func FindAmountBracket(id string) (AmountBracket, bool) {
	for _, b := range amountBrackets {
		if b.ID == id {
			return b, true
		}
	}
	return AmountBracket{}, false
}

// Contains indica se o valor pertence à faixa [Min, Max], com limites inclusivos.
// Lançamentos só aceitam ienes inteiros, então as faixas cobrem todo valor válido.
func (b AmountBracket) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(b.Min) {
		return false
	}
	if b.Max == nil {
		return true
	}
	return !amount.GreaterThan(*b.Max)
}
