package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifica se um lançamento é de venda (売上) ou de custo (原価)
type EntryKind string

const (
	EntryKindSales EntryKind = "sales"
	EntryKindCost  EntryKind = "cost"
)

// DateLayout é o formato de data usado em todos os lançamentos (YYYY-MM-DD)
const DateLayout = time.DateOnly

// NoteMaxLength é o tamanho máximo da observação de um lançamento
const NoteMaxLength = 80

var ErrInvalidEntryKind = errors.New("tipo de lançamento inválido")

// ParseEntryKind converte a entrada externa para EntryKind
func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(strings.TrimSpace(s)) {
	case EntryKindSales:
		return EntryKindSales, nil
	case EntryKindCost:
		return EntryKindCost, nil
	}

	return "", ErrInvalidEntryKind
}

func (k EntryKind) IsValid() bool {
	return k == EntryKindSales || k == EntryKindCost
}

// Label retorna o rótulo exibido para o tipo
func (k EntryKind) Label() string {
	switch k {
	case EntryKindSales:
		return "売上"
	case EntryKindCost:
		return "原価"
	}
	return string(k)
}

// Entry representa um lançamento do livro-caixa
type Entry struct {
	ID               string          `json:"id"`
	UserID           int             `json:"user_id"`
	CustomerName     string          `json:"customer_name"`
	OccurredOn       string          `json:"occurred_on"`
	PaymentDate      *string         `json:"payment_date"`
	DepositDueOn     *string         `json:"deposit_due_on"`
	PaymentCompleted bool            `json:"payment_completed"`
	DepositCompleted bool            `json:"deposit_completed"`
	Kind             EntryKind       `json:"entry_type"`
	Amount           decimal.Decimal `json:"amount"`
	Note             string          `json:"note"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// SettlementCompleted retorna a flag de liquidação que se aplica ao tipo do lançamento
func (e Entry) SettlementCompleted() bool {
	if e.Kind == EntryKindCost {
		return e.PaymentCompleted
	}
	return e.DepositCompleted
}

// SettlementStatus é o estado de liquidação (入金/支払) de um lançamento
type SettlementStatus string

const (
	SettlementPending   SettlementStatus = "pending"
	SettlementCompleted SettlementStatus = "completed"
)

var ErrInvalidSettlementStatus = errors.New("status de liquidação inválido")

func ParseSettlementStatus(s string) (SettlementStatus, error) {
	switch SettlementStatus(strings.TrimSpace(s)) {
	case SettlementPending:
		return SettlementPending, nil
	case SettlementCompleted:
		return SettlementCompleted, nil
	}
	return "", ErrInvalidSettlementStatus
}

// SettlementLabel retorna o rótulo de liquidação exibido para o lançamento
func SettlementLabel(kind EntryKind, completed bool) string {
	if kind == EntryKindCost {
		if completed {
			return "支払済み"
		}
		return "未払い"
	}

	if completed {
		return "入金済み"
	}
	return "未入金"
}

// EntryInput contém os dados de criação ou edição de um lançamento
type EntryInput struct {
	CustomerName string           `json:"customer_name"`
	OccurredOn   string           `json:"occurred_on"`
	Kind         string           `json:"entry_type"`
	Amount       *decimal.Decimal `json:"amount"`
	PaymentDate  *string          `json:"payment_date"`
	DepositDueOn *string          `json:"deposit_due_on"`
	Note         string           `json:"note"`
}
