package bookkeeping

import (
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/pkg/utils"
)

// ValidateInput aplica as regras do formulário e devolve o lançamento normalizado.
// Apenas a data de liquidação do tipo é mantida; a outra fica nula.
func ValidateInput(input domain.EntryInput) (domain.Entry, error) {
	customer := strings.TrimSpace(input.CustomerName)
	kind, kindErr := domain.ParseEntryKind(input.Kind)

	if customer == "" ||
		!utils.IsValidDate(input.OccurredOn) ||
		kindErr != nil ||
		input.Amount == nil ||
		input.Amount.IsNegative() ||
		!input.Amount.Equal(input.Amount.Truncate(0)) {
		return domain.Entry{}, ErrInvalidEntry
	}

	entry := domain.Entry{
		CustomerName: customer,
		OccurredOn:   input.OccurredOn,
		Kind:         kind,
		Amount:       *input.Amount,
		Note:         strings.TrimSpace(input.Note),
	}

	switch kind {
	case domain.EntryKindSales:
		due := trimmed(input.DepositDueOn)
		if due == "" {
			return domain.Entry{}, ErrDepositDueRequired
		}
		if !utils.IsValidDate(due) {
			return domain.Entry{}, ErrInvalidSettlementDay
		}
		entry.DepositDueOn = &due
	case domain.EntryKindCost:
		paid := trimmed(input.PaymentDate)
		if paid == "" {
			return domain.Entry{}, ErrPaymentDateRequired
		}
		if !utils.IsValidDate(paid) {
			return domain.Entry{}, ErrInvalidSettlementDay
		}
		entry.PaymentDate = &paid
	}

	if utf8.RuneCountInString(entry.Note) > domain.NoteMaxLength {
		return domain.Entry{}, ErrNoteTooLong
	}

	return entry, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
