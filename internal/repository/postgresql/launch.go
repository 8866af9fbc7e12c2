package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rhpro/folha-backend-go/internal/domain/launch"
	"github.com/rhpro/folha-backend-go/internal/pkg/database"
	"github.com/rhpro/folha-backend-go/internal/pkg/money"
)

const launchColumns = `id, "employeeId", "employeeName", COALESCE("closingDate"::text, ''),
	COALESCE("baseSalary", 0), COALESCE("functionBonus", 0), COALESCE("otherEarnings", 0),
	COALESCE("premiumAmount", 0), COALESCE("basicBasket", 0),
	COALESCE("mealVoucher", 0), COALESCE("foodVoucher", 0),
	COALESCE("extraHours100", 0), COALESCE("extraHours70", 0), COALESCE("extraHours50", 0),
	COALESCE("hasTransportVoucher", false), COALESCE("transportVoucherValue", 0),
	COALESCE(advances, 0), COALESCE("medicalConvenio", 0), COALESCE("dentalConvenio", 0),
	COALESCE("pharmacyConvenio", 0), COALESCE("otherConvenios", 0),
	COALESCE(absences, 0), COALESCE(loans, 0),
	COALESCE("otherDiscounts", ''), COALESCE(notes, ''),
	COALESCE("totalEarnings", 0), COALESCE("totalDeductions", 0), COALESCE("netSalary", 0),
	COALESCE("createdAt"::text, '')`

type launchRepository struct {
	db *database.DB
}

func NewLaunchRepository(db *database.DB) launch.LaunchRepository {
	return &launchRepository{db: db}
}

func scanLaunch(row pgx.Row) (launch.MonthlyLaunch, error) {
	var l launch.MonthlyLaunch
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.EmployeeName, &l.ClosingDate,
		&l.BaseSalary, &l.FunctionBonus, &l.OtherEarnings,
		&l.PremiumAmount, &l.BasicBasket,
		&l.MealVoucher, &l.FoodVoucher,
		&l.ExtraHours100, &l.ExtraHours70, &l.ExtraHours50,
		&l.HasTransportVoucher, &l.TransportVoucherValue,
		&l.Advances, &l.MedicalConvenio, &l.DentalConvenio,
		&l.PharmacyConvenio, &l.OtherConvenios,
		&l.Absences, &l.Loans,
		&l.OtherDiscounts, &l.Notes,
		&l.TotalEarnings, &l.TotalDeductions, &l.NetSalary,
		&l.CreatedAt,
	)
	return l, err
}

func (r *launchRepository) List(ctx context.Context) ([]launch.MonthlyLaunch, error) {
	query := `SELECT ` + launchColumns + ` FROM launches ORDER BY "closingDate" DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list launches: %w", err)
	}
	defer rows.Close()

	var launches []launch.MonthlyLaunch
	for rows.Next() {
		l, err := scanLaunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan launch: %w", err)
		}
		launches = append(launches, l)
	}
	return launches, rows.Err()
}

func (r *launchRepository) GetByID(ctx context.Context, id string) (launch.MonthlyLaunch, error) {
	query := `SELECT ` + launchColumns + ` FROM launches WHERE id = $1`

	l, err := scanLaunch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return launch.MonthlyLaunch{}, launch.ErrLaunchNotFound
		}
		return launch.MonthlyLaunch{}, fmt.Errorf("failed to get launch: %w", err)
	}
	return l, nil
}

func (r *launchRepository) Create(ctx context.Context, l launch.MonthlyLaunch) (launch.MonthlyLaunch, error) {
	query := `
		INSERT INTO launches (
			id, "employeeId", "employeeName", "closingDate",
			"baseSalary", "functionBonus", "otherEarnings", "premiumAmount", "basicBasket",
			"mealVoucher", "foodVoucher",
			"extraHours100", "extraHours70", "extraHours50",
			"hasTransportVoucher", "transportVoucherValue",
			advances, "medicalConvenio", "dentalConvenio", "pharmacyConvenio", "otherConvenios",
			absences, loans, "otherDiscounts", notes,
			"totalEarnings", "totalDeductions", "netSalary", "createdAt"
		) VALUES (
			$1, $2, $3, NULLIF($4, '')::date,
			$5, $6, $7, $8, $9,
			$10, $11,
			$12, $13, $14,
			$15, $16,
			$17, $18, $19, $20, $21,
			$22, $23, NULLIF($24, ''), NULLIF($25, ''),
			$26, $27, $28, NOW()
		)
		RETURNING ` + launchColumns

	stored, err := scanLaunch(r.db.QueryRow(ctx, query,
		uuid.NewString(), l.EmployeeID, l.EmployeeName, l.ClosingDate,
		money.Amount(l.BaseSalary), money.Amount(l.FunctionBonus), money.Amount(l.OtherEarnings),
		money.Amount(l.PremiumAmount), money.Amount(l.BasicBasket),
		money.Amount(l.MealVoucher), money.Amount(l.FoodVoucher),
		money.Amount(l.ExtraHours100), money.Amount(l.ExtraHours70), money.Amount(l.ExtraHours50),
		l.HasTransportVoucher, money.Amount(l.TransportVoucherValue),
		money.Amount(l.Advances), money.Amount(l.MedicalConvenio), money.Amount(l.DentalConvenio),
		money.Amount(l.PharmacyConvenio), money.Amount(l.OtherConvenios),
		money.Amount(l.Absences), money.Amount(l.Loans),
		l.OtherDiscounts, l.Notes,
		money.Amount(l.TotalEarnings), money.Amount(l.TotalDeductions), money.Amount(l.NetSalary),
	))
	if err != nil {
		return launch.MonthlyLaunch{}, fmt.Errorf("failed to create launch: %w", err)
	}
	return stored, nil
}

func (r *launchRepository) Update(ctx context.Context, l launch.MonthlyLaunch) (launch.MonthlyLaunch, error) {
	// Full-record write: the service merged the patch and recomputed the
	// totals before calling here.
	query := `
		UPDATE launches SET
			"employeeId" = $2, "employeeName" = $3, "closingDate" = NULLIF($4, '')::date,
			"baseSalary" = $5, "functionBonus" = $6, "otherEarnings" = $7,
			"premiumAmount" = $8, "basicBasket" = $9,
			"mealVoucher" = $10, "foodVoucher" = $11,
			"extraHours100" = $12, "extraHours70" = $13, "extraHours50" = $14,
			"hasTransportVoucher" = $15, "transportVoucherValue" = $16,
			advances = $17, "medicalConvenio" = $18, "dentalConvenio" = $19,
			"pharmacyConvenio" = $20, "otherConvenios" = $21,
			absences = $22, loans = $23,
			"otherDiscounts" = NULLIF($24, ''), notes = NULLIF($25, ''),
			"totalEarnings" = $26, "totalDeductions" = $27, "netSalary" = $28
		WHERE id = $1
		RETURNING ` + launchColumns

	stored, err := scanLaunch(r.db.QueryRow(ctx, query,
		l.ID, l.EmployeeID, l.EmployeeName, l.ClosingDate,
		money.Amount(l.BaseSalary), money.Amount(l.FunctionBonus), money.Amount(l.OtherEarnings),
		money.Amount(l.PremiumAmount), money.Amount(l.BasicBasket),
		money.Amount(l.MealVoucher), money.Amount(l.FoodVoucher),
		money.Amount(l.ExtraHours100), money.Amount(l.ExtraHours70), money.Amount(l.ExtraHours50),
		l.HasTransportVoucher, money.Amount(l.TransportVoucherValue),
		money.Amount(l.Advances), money.Amount(l.MedicalConvenio), money.Amount(l.DentalConvenio),
		money.Amount(l.PharmacyConvenio), money.Amount(l.OtherConvenios),
		money.Amount(l.Absences), money.Amount(l.Loans),
		l.OtherDiscounts, l.Notes,
		money.Amount(l.TotalEarnings), money.Amount(l.TotalDeductions), money.Amount(l.NetSalary),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return launch.MonthlyLaunch{}, launch.ErrLaunchNotFound
		}
		return launch.MonthlyLaunch{}, fmt.Errorf("failed to update launch: %w", err)
	}
	return stored, nil
}

func (r *launchRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM launches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete launch: %w", err)
	}
	return nil
}
