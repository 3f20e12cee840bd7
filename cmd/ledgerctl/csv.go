package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/internal/usecases/bookkeeping"
)

// Colunas aceitas no arquivo; a ordem vem do cabeçalho
const (
	colCustomerName     = "customer_name"
	colOccurredOn       = "occurred_on"
	colType             = "type"
	colAmount           = "amount"
	colPaymentDate      = "payment_date"
	colDepositDueOn     = "deposit_due_on"
	colPaymentCompleted = "payment_completed"
	colDepositCompleted = "deposit_completed"
	colNote             = "note"
)

var requiredColumns = []string{colCustomerName, colOccurredOn, colType, colAmount}

// kindAliases aceita o rótulo japonês além do valor da API
var kindAliases = map[string]string{
	"売上": string(domain.EntryKindSales),
	"原価": string(domain.EntryKindCost),
}

// RowError identifica a linha do arquivo que falhou na validação
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("linha %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func readEntriesFile(path string) ([]domain.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir %s: %w", path, err)
	}
	defer f.Close()

	return readEntries(f)
}

// readEntries lê o CSV e valida cada linha com as mesmas regras do formulário
func readEntries(r io.Reader) ([]domain.Entry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []domain.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cabeçalho: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("coluna obrigatória ausente: %s", name)
		}
	}

	entries := make([]domain.Entry, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}

		entry, err := parseRecord(record, columns)
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func parseRecord(record []string, columns map[string]int) (domain.Entry, error) {
	get := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	kind := get(colType)
	if alias, ok := kindAliases[kind]; ok {
		kind = alias
	}

	input := domain.EntryInput{
		CustomerName: get(colCustomerName),
		OccurredOn:   get(colOccurredOn),
		Kind:         kind,
		PaymentDate:  optional(get(colPaymentDate)),
		DepositDueOn: optional(get(colDepositDueOn)),
		Note:         get(colNote),
	}

	if raw := get(colAmount); raw != "" {
		amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return domain.Entry{}, bookkeeping.ErrInvalidEntry
		}
		input.Amount = &amount
	}

	entry, err := bookkeeping.ValidateInput(input)
	if err != nil {
		return domain.Entry{}, err
	}

	if entry.PaymentCompleted, err = parseFlag(get(colPaymentCompleted)); err != nil {
		return domain.Entry{}, fmt.Errorf("%s: %w", colPaymentCompleted, err)
	}
	if entry.DepositCompleted, err = parseFlag(get(colDepositCompleted)); err != nil {
		return domain.Entry{}, fmt.Errorf("%s: %w", colDepositCompleted, err)
	}

	return entry, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
