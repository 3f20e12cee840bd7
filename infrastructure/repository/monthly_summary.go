package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/ledger-api/internal/domain"
)

const monthlySummariesTable = "monthly_summaries"

//go:generate mockgen -source=monthly_summary.go -destination=mocks/monthly_summary_mock.go -package=mocks
type MonthlySummaryRepository interface {
	SaveOrUpdate(ctx context.Context, summary *domain.MonthlySummary) error
	ListByUserAndYear(ctx context.Context, userID, year int) ([]domain.MonthlySummary, error)
}

type monthlySummaryRepository struct {
	db postgres.Queryer
}

func NewMonthlySummaryRepository(db postgres.Queryer) MonthlySummaryRepository {
	return &monthlySummaryRepository{
		db: db,
	}
}

// SaveOrUpdate grava o snapshot do mês, substituindo o existente para (user_id, period)
func (r *monthlySummaryRepository) SaveOrUpdate(ctx context.Context, summary *domain.MonthlySummary) error {
	query, args, err := squirrel.
		Insert(monthlySummariesTable).
		Columns("user_id", "period", "entry_count", "sales", "cost", "profit", "margin").
		Values(summary.UserID, summary.Period, summary.EntryCount, summary.Sales, summary.Cost, summary.Profit, summary.Margin).
		Suffix(`ON CONFLICT (user_id, period) DO UPDATE SET
			entry_count = EXCLUDED.entry_count,
			sales = EXCLUDED.sales,
			cost = EXCLUDED.cost,
			profit = EXCLUDED.profit,
			margin = EXCLUDED.margin,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&summary.ID, &summary.CreatedAt, &summary.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao salvar resumo mensal: %w", err)
	}

	return nil
}

func (r *monthlySummaryRepository) ListByUserAndYear(ctx context.Context, userID, year int) ([]domain.MonthlySummary, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "period", "entry_count", "sales", "cost", "profit", "margin", "created_at", "updated_at").
		From(monthlySummariesTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Like{"period": fmt.Sprintf("%04d-%%", year)}).
		OrderBy("period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar resumos mensais: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.MonthlySummary, 0)
	for rows.Next() {
		var s domain.MonthlySummary
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Period,
			&s.EntryCount,
			&s.Sales,
			&s.Cost,
			&s.Profit,
			&s.Margin,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo mensal: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return summaries, nil
}
