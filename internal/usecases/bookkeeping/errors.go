package bookkeeping

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ledger-api/pkg/apiErrors"
)

var (
	ErrInvalidEntry         = errors.New("取引先名・日付・区分・金額を正しく入力してください。")
	ErrDepositDueRequired   = errors.New("売上では入金予定日が必須です。")
	ErrPaymentDateRequired  = errors.New("原価では支払日付が必須です。")
	ErrInvalidSettlementDay = errors.New("入金予定日・支払日付は YYYY-MM-DD 形式で入力してください。")
	ErrNoteTooLong          = errors.New("メモは80文字以内で入力してください。")
	ErrEntryNotFound        = errors.New("lançamento não encontrado")
	ErrDatabaseOperation    = errors.New("erro ao realizar operação no banco de dados")
)

// EntryError carrega o código da API junto do erro de lançamento
type EntryError struct {
	Err     error
	Code    string
	EntryID string
	Details string
}

func (e *EntryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

func newValidationError(err error) *EntryError {
	return &EntryError{Err: err, Code: apiErrors.ErrInvalidEntry}
}

func newNotFoundError(id string) *EntryError {
	return &EntryError{Err: ErrEntryNotFound, Code: apiErrors.ErrEntryNotFound, EntryID: id}
}

func newDatabaseError(err error, id string) *EntryError {
	return &EntryError{Err: ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, EntryID: id, Details: err.Error()}
}

// IsValidationError indica erros causados pelos dados enviados
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEntry) ||
		errors.Is(err, ErrDepositDueRequired) ||
		errors.Is(err, ErrPaymentDateRequired) ||
		errors.Is(err, ErrInvalidSettlementDay) ||
		errors.Is(err, ErrNoteTooLong)
}
