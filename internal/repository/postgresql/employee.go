package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/rhpro/folha-backend-go/internal/domain/employee"
	"github.com/rhpro/folha-backend-go/internal/pkg/database"
	"github.com/rhpro/folha-backend-go/internal/pkg/money"
)

// Column names are camelCase and quoted: they are the wire contract with the
// store schema the dashboard client already runs against.
const employeeColumns = `id, name, COALESCE(email, ''), COALESCE(role, ''),
	COALESCE("hireDate"::text, ''), "exitDate"::text, COALESCE("birthDate"::text, ''), COALESCE(company, ''),
	COALESCE(address, ''), COALESCE(phone, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(cep, ''),
	COALESCE("fatherName", ''), COALESCE("motherName", ''),
	COALESCE(cpf, ''), COALESCE(rg, ''), COALESCE(ctps, ''), COALESCE(pis, ''), COALESCE("voterId", ''),
	COALESCE("baseSalary", 0), COALESCE("functionBonus", 0),
	COALESCE("defaultMealVoucher", 0), COALESCE("defaultFoodVoucher", 0),
	notes, COALESCE("createdAt"::text, '')`

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.Role,
		&e.HireDate, &e.ExitDate, &e.BirthDate, &e.Company,
		&e.Address, &e.Phone, &e.City, &e.State, &e.CEP,
		&e.FatherName, &e.MotherName,
		&e.CPF, &e.RG, &e.CTPS, &e.PIS, &e.VoterID,
		&e.BaseSalary, &e.FunctionBonus,
		&e.DefaultMealVoucher, &e.DefaultFoodVoucher,
		&e.Notes, &e.CreatedAt,
	)
	return e, err
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(email) = $1`

	normalized := strings.ToLower(strings.TrimSpace(email))
	e, err := scanEmployee(r.db.QueryRow(ctx, query, normalized))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		// An instance without the email column yet behaves like "no match"
		// so first-access setups are not locked out of the login screen.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "42703" {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}
	return &e, nil
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (
			id, name, email, role,
			"hireDate", "exitDate", "birthDate", company,
			address, phone, city, state, cep, "fatherName", "motherName",
			cpf, rg, ctps, pis, "voterId",
			"baseSalary", "functionBonus", "defaultMealVoucher", "defaultFoodVoucher",
			notes, "createdAt"
		) VALUES (
			$1, $2, $3, $4,
			NULLIF($5, '')::date, NULLIF($6, '')::date, NULLIF($7, '')::date, NULLIF($8, ''),
			NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''),
			NULLIF($14, ''), NULLIF($15, ''),
			NULLIF($16, ''), NULLIF($17, ''), NULLIF($18, ''), NULLIF($19, ''), NULLIF($20, ''),
			$21, $22, $23, $24,
			NULLIF($25, ''), NOW()
		)
		RETURNING ` + employeeColumns

	exitDate := ""
	if e.ExitDate != nil {
		exitDate = *e.ExitDate
	}
	notes := ""
	if e.Notes != nil {
		notes = *e.Notes
	}

	stored, err := scanEmployee(r.db.QueryRow(ctx, query,
		uuid.NewString(), e.Name, e.Email, e.Role,
		e.HireDate, exitDate, e.BirthDate, string(e.Company),
		e.Address, e.Phone, e.City, e.State, e.CEP, e.FatherName, e.MotherName,
		e.CPF, e.RG, e.CTPS, e.PIS, e.VoterID,
		money.Amount(e.BaseSalary), money.Amount(e.FunctionBonus),
		money.Amount(e.DefaultMealVoucher), money.Amount(e.DefaultFoodVoucher),
		notes,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return stored, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	sets := []string{}
	args := []interface{}{}
	idx := 1

	addText := func(column string, v *string) {
		if v == nil {
			return
		}
		sets = append(sets, fmt.Sprintf(`%s = NULLIF($%d, '')`, column, idx))
		args = append(args, *v)
		idx++
	}
	addDate := func(column string, v *string) {
		if v == nil {
			return
		}
		sets = append(sets, fmt.Sprintf(`%s = NULLIF($%d, '')::date`, column, idx))
		args = append(args, *v)
		idx++
	}
	addAmount := func(column string, v *money.Value) {
		if v == nil {
			return
		}
		sets = append(sets, fmt.Sprintf(`%s = $%d`, column, idx))
		args = append(args, v.Dec())
		idx++
	}

	addText("name", req.Name)
	if req.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*req.Email))
		addText("email", &normalized)
	}
	addText("role", req.Role)
	addDate(`"hireDate"`, req.HireDate)
	addDate(`"exitDate"`, req.ExitDate)
	addDate(`"birthDate"`, req.BirthDate)
	addText("company", req.Company)
	addText("address", req.Address)
	addText("phone", req.Phone)
	addText("city", req.City)
	addText("state", req.State)
	addText("cep", req.CEP)
	addText(`"fatherName"`, req.FatherName)
	addText(`"motherName"`, req.MotherName)
	addText("cpf", req.CPF)
	addText("rg", req.RG)
	addText("ctps", req.CTPS)
	addText("pis", req.PIS)
	addText(`"voterId"`, req.VoterID)
	addAmount(`"baseSalary"`, req.BaseSalary)
	addAmount(`"functionBonus"`, req.FunctionBonus)
	addAmount(`"defaultMealVoucher"`, req.DefaultMealVoucher)
	addAmount(`"defaultFoodVoucher"`, req.DefaultFoodVoucher)
	addText("notes", req.Notes)

	if len(sets) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id = $%d RETURNING `+employeeColumns,
		strings.Join(sets, ", "), idx)
	args = append(args, req.ID)

	stored, err := scanEmployee(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return stored, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	// Idempotent: a delete that matches no row is a no-op, not an error.
	_, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) BulkUpdateVouchers(ctx context.Context, meal, food decimal.Decimal) error {
	// Deliberately unscoped: every employee row gets the new defaults.
	query := `UPDATE employees SET "defaultMealVoucher" = $1, "defaultFoodVoucher" = $2`

	_, err := r.db.Exec(ctx, query, money.Amount(meal), money.Amount(food))
	if err != nil {
		return fmt.Errorf("failed to bulk update vouchers: %w", err)
	}
	return nil
}
