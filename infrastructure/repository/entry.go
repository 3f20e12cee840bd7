package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/ledger-api/internal/domain"
)

const entriesTable = "entries"

var entryColumns = []string{
	"id",
	"user_id",
	"customer_name",
	"to_char(occurred_on, 'YYYY-MM-DD')",
	"to_char(payment_date, 'YYYY-MM-DD')",
	"to_char(deposit_due_on, 'YYYY-MM-DD')",
	"payment_completed",
	"deposit_completed",
	"entry_type",
	"amount",
	"note",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=entry.go -destination=mocks/entry_mock.go -package=mocks
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) error
	Update(ctx context.Context, entry *domain.Entry) error
	Delete(ctx context.Context, userID int, id string) error
	GetByID(ctx context.Context, userID int, id string) (*domain.Entry, error)
	ListByUser(ctx context.Context, userID int, start, end string) ([]domain.Entry, error)
}

type entryRepository struct {
	db postgres.Queryer
}

func NewEntryRepository(db postgres.Queryer) EntryRepository {
	return &entryRepository{
		db: db,
	}
}

func (r *entryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	query, args, err := squirrel.
		Insert(entriesTable).
		Columns(
			"id", "user_id", "customer_name", "occurred_on", "payment_date", "deposit_due_on",
			"payment_completed", "deposit_completed", "entry_type", "amount", "note",
		).
		Values(
			entry.ID, entry.UserID, entry.CustomerName, entry.OccurredOn, entry.PaymentDate, entry.DepositDueOn,
			entry.PaymentCompleted, entry.DepositCompleted, string(entry.Kind), entry.Amount, entry.Note,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir lançamento: %w", err)
	}

	return nil
}

func (r *entryRepository) Update(ctx context.Context, entry *domain.Entry) error {
	query, args, err := squirrel.
		Update(entriesTable).
		Set("customer_name", entry.CustomerName).
		Set("occurred_on", entry.OccurredOn).
		Set("payment_date", entry.PaymentDate).
		Set("deposit_due_on", entry.DepositDueOn).
		Set("payment_completed", entry.PaymentCompleted).
		Set("deposit_completed", entry.DepositCompleted).
		Set("entry_type", string(entry.Kind)).
		Set("amount", entry.Amount).
		Set("note", entry.Note).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entry.ID, "user_id": entry.UserID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("erro ao atualizar lançamento: %w", err)
	}

	return nil
}

func (r *entryRepository) Delete(ctx context.Context, userID int, id string) error {
	query, args, err := squirrel.
		Delete(entriesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir lançamento: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar exclusão: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *entryRepository) GetByID(ctx context.Context, userID int, id string) (*domain.Entry, error) {
	query, args, err := squirrel.
		Select(entryColumns...).
		From(entriesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
	}

	return entry, nil
}

// ListByUser retorna os lançamentos do usuário na ordem da listagem.
// start e end vazios deixam o intervalo aberto.
func (r *entryRepository) ListByUser(ctx context.Context, userID int, start, end string) ([]domain.Entry, error) {
	builder := squirrel.
		Select(entryColumns...).
		From(entriesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("occurred_on DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if start != "" {
		builder = builder.Where(squirrel.GtOrEq{"occurred_on": start})
	}
	if end != "" {
		builder = builder.Where(squirrel.LtOrEq{"occurred_on": end})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar lançamentos: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.Entry, error) {
	var (
		entry        domain.Entry
		kind         string
		paymentDate  sql.NullString
		depositDueOn sql.NullString
	)

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.CustomerName,
		&entry.OccurredOn,
		&paymentDate,
		&depositDueOn,
		&entry.PaymentCompleted,
		&entry.DepositCompleted,
		&kind,
		&entry.Amount,
		&entry.Note,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Kind = domain.EntryKind(kind)
	if paymentDate.Valid {
		entry.PaymentDate = &paymentDate.String
	}
	if depositDueOn.Valid {
		entry.DepositDueOn = &depositDueOn.String
	}

	return &entry, nil
}
