package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/pkg/apiErrors"
)

var (
	ErrInvalidYear       = errors.New("ano inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ReportError carrega o código da API junto do erro de relatório
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// filterError traduz erros de validação dos filtros em códigos da API
func filterError(err error) *ReportError {
	code := apiErrors.ErrInvalidFormat
	if errors.Is(err, domain.ErrInvalidDateRange) {
		code = apiErrors.ErrInvalidDateRange
	}
	return &ReportError{Err: err, Code: code}
}

func databaseError(err error) *ReportError {
	return &ReportError{Err: ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, Details: err.Error()}
}
