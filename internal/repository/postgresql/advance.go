package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rhpro/folha-backend-go/internal/domain/advance"
	"github.com/rhpro/folha-backend-go/internal/pkg/database"
	"github.com/rhpro/folha-backend-go/internal/pkg/money"
)

const advanceColumns = `id, "employeeId", "employeeName", period,
	COALESCE("baseSalary", 0), COALESCE("functionBonus", 0),
	COALESCE("standardAdvance", 0), COALESCE("otherAdvances", 0), COALESCE("totalAdvance", 0),
	COALESCE("createdAt"::text, '')`

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

func (r *advanceRepository) ListByPeriod(ctx context.Context, period string) ([]advance.Advance, error) {
	query := `SELECT ` + advanceColumns + ` FROM advances WHERE period = $1`

	rows, err := r.db.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances for period %s: %w", period, err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var a advance.Advance
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.EmployeeName, &a.Period,
			&a.BaseSalary, &a.FunctionBonus,
			&a.StandardAdvance, &a.OtherAdvances, &a.TotalAdvance,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}
	return advances, rows.Err()
}

func (r *advanceRepository) DeleteByPeriod(ctx context.Context, period string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM advances WHERE period = $1`, period)
	if err != nil {
		return fmt.Errorf("failed to delete advances for period %s: %w", period, err)
	}
	return nil
}

func (r *advanceRepository) CreateBatch(ctx context.Context, batch []advance.Advance) error {
	if len(batch) == 0 {
		return nil
	}

	query := `
		INSERT INTO advances (
			id, "employeeId", "employeeName", period,
			"baseSalary", "functionBonus",
			"standardAdvance", "otherAdvances", "totalAdvance",
			"createdAt"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`

	b := &pgx.Batch{}
	for _, a := range batch {
		b.Queue(query,
			uuid.NewString(), a.EmployeeID, a.EmployeeName, a.Period,
			money.Amount(a.BaseSalary), money.Amount(a.FunctionBonus),
			money.Amount(a.StandardAdvance), money.Amount(a.OtherAdvances), money.Amount(a.TotalAdvance),
		)
	}

	results := r.db.SendBatch(ctx, b)
	defer results.Close()
	for range batch {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert advance batch: %w", err)
		}
	}
	return nil
}
