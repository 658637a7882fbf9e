package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"prepay-engine/domain"
)

// CalculationRepositoryPostgres persists calculation records in PostgreSQL.
type CalculationRepositoryPostgres struct {
	pool *pgxpool.Pool
}

// NewCalculationRepositoryPostgres connects a pgx pool to the given DSN.
func NewCalculationRepositoryPostgres(ctx context.Context, dsn string) (*CalculationRepositoryPostgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &CalculationRepositoryPostgres{pool: pool}, nil
}

// Save inserts one calculation record.
func (r *CalculationRepositoryPostgres) Save(
	ctx context.Context,
	record domain.CalculationRecord,
) error {
	query := `
		INSERT INTO loan_calculations (
			id, principal, annual_rate, term_months,
			monthly_prepayment, quarterly_prepayment, quarterly_interval,
			emi, total_interest, tenure_months, interest_saved, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query,
		record.ID, record.Input.Principal, record.Input.AnnualRate, record.Input.TermMonths,
		record.Plan.Monthly, record.Plan.Quarterly, record.Plan.Interval(),
		record.EMI, record.TotalInterest, record.TenureMonths, record.InterestSaved,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save calculation %s: %w", record.ID, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *CalculationRepositoryPostgres) Close() {
	r.pool.Close()
}
