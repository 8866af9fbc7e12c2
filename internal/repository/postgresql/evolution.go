package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rhpro/folha-backend-go/internal/domain/evolution"
	"github.com/rhpro/folha-backend-go/internal/pkg/database"
	"github.com/rhpro/folha-backend-go/internal/pkg/money"
)

const evolutionColumns = `id, "employeeId", COALESCE("employeeName", ''),
	COALESCE(date::text, ''), COALESCE(role, ''), COALESCE(reason, ''),
	COALESCE("baseSalary", 0), COALESCE("functionBonus", 0), COALESCE("otherEarnings", 0),
	COALESCE("createdAt"::text, '')`

type evolutionRepository struct {
	db *database.DB
}

func NewEvolutionRepository(db *database.DB) evolution.EvolutionRepository {
	return &evolutionRepository{db: db}
}

// mapEvolutionError turns an undefined-table error into ErrTableMissing so
// callers can tell "history feature not provisioned" apart from real failures.
func mapEvolutionError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "42P01" {
		return evolution.ErrTableMissing
	}
	return err
}

func (r *evolutionRepository) List(ctx context.Context) ([]evolution.SalaryEvolution, error) {
	query := `SELECT ` + evolutionColumns + ` FROM salary_evolution ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		if mapped := mapEvolutionError(err); mapped == evolution.ErrTableMissing {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to list salary evolution: %w", err)
	}
	defer rows.Close()

	var records []evolution.SalaryEvolution
	for rows.Next() {
		var e evolution.SalaryEvolution
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.EmployeeName,
			&e.Date, &e.Role, &e.Reason,
			&e.BaseSalary, &e.FunctionBonus, &e.OtherEarnings,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary evolution: %w", err)
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

func (r *evolutionRepository) Create(ctx context.Context, e evolution.SalaryEvolution) (evolution.SalaryEvolution, error) {
	query := `
		INSERT INTO salary_evolution (
			id, "employeeId", "employeeName", date, role, reason,
			"baseSalary", "functionBonus", "otherEarnings", "createdAt"
		) VALUES ($1, $2, $3, NULLIF($4, '')::date, $5, $6, $7, $8, $9, NOW())
		RETURNING ` + evolutionColumns

	var created evolution.SalaryEvolution
	err := r.db.QueryRow(ctx, query,
		uuid.NewString(), e.EmployeeID, e.EmployeeName, e.Date, e.Role, e.Reason,
		money.Amount(e.BaseSalary), money.Amount(e.FunctionBonus), money.Amount(e.OtherEarnings),
	).Scan(
		&created.ID, &created.EmployeeID, &created.EmployeeName,
		&created.Date, &created.Role, &created.Reason,
		&created.BaseSalary, &created.FunctionBonus, &created.OtherEarnings,
		&created.CreatedAt,
	)
	if err != nil {
		if mapped := mapEvolutionError(err); mapped == evolution.ErrTableMissing {
			return created, mapped
		}
		return created, fmt.Errorf("failed to create salary evolution: %w", err)
	}
	return created, nil
}

func (r *evolutionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM salary_evolution WHERE id = $1`, id)
	if err != nil {
		if mapped := mapEvolutionError(err); mapped == evolution.ErrTableMissing {
			return mapped
		}
		return fmt.Errorf("failed to delete salary evolution %s: %w", id, err)
	}
	return nil
}
