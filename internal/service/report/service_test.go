package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rhpro/folha-backend-go/internal/domain/advance"
	"github.com/rhpro/folha-backend-go/internal/domain/employee"
	"github.com/rhpro/folha-backend-go/internal/domain/evolution"
	"github.com/rhpro/folha-backend-go/internal/domain/launch"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) BulkUpdateVouchers(ctx context.Context, meal, food decimal.Decimal) error {
	return nil
}

type fakeLaunchRepo struct {
	launches []launch.MonthlyLaunch
}

func (f *fakeLaunchRepo) List(ctx context.Context) ([]launch.MonthlyLaunch, error) {
	return f.launches, nil
}

func (f *fakeLaunchRepo) GetByID(ctx context.Context, id string) (launch.MonthlyLaunch, error) {
	return launch.MonthlyLaunch{}, launch.ErrLaunchNotFound
}

func (f *fakeLaunchRepo) Create(ctx context.Context, l launch.MonthlyLaunch) (launch.MonthlyLaunch, error) {
	return l, nil
}

func (f *fakeLaunchRepo) Update(ctx context.Context, l launch.MonthlyLaunch) (launch.MonthlyLaunch, error) {
	return l, nil
}

func (f *fakeLaunchRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeAdvanceRepo struct {
	stored []advance.Advance
}

func (f *fakeAdvanceRepo) ListByPeriod(ctx context.Context, period string) ([]advance.Advance, error) {
	return f.stored, nil
}

func (f *fakeAdvanceRepo) DeleteByPeriod(ctx context.Context, period string) error { return nil }

func (f *fakeAdvanceRepo) CreateBatch(ctx context.Context, batch []advance.Advance) error { return nil }

type fakeEvolutionRepo struct {
	records []evolution.SalaryEvolution
	err     error
}

func (f *fakeEvolutionRepo) List(ctx context.Context) ([]evolution.SalaryEvolution, error) {
	return f.records, f.err
}

func (f *fakeEvolutionRepo) Create(ctx context.Context, s evolution.SalaryEvolution) (evolution.SalaryEvolution, error) {
	return s, nil
}

func (f *fakeEvolutionRepo) Delete(ctx context.Context, id string) error { return nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestService(emp *fakeEmployeeRepo, lau *fakeLaunchRepo, adv *fakeAdvanceRepo, evo *fakeEvolutionRepo) *ReportServiceImpl {
	if emp == nil {
		emp = &fakeEmployeeRepo{}
	}
	if lau == nil {
		lau = &fakeLaunchRepo{}
	}
	if adv == nil {
		adv = &fakeAdvanceRepo{}
	}
	if evo == nil {
		evo = &fakeEvolutionRepo{}
	}
	return NewReportService(emp, lau, adv, evo).(*ReportServiceImpl)
}

func TestReportService_Dashboard(t *testing.T) {
	svc := newTestService(
		&fakeEmployeeRepo{employees: []employee.Employee{
			{ID: "emp-1", BaseSalary: dec("2000")},
			{ID: "emp-2", BaseSalary: dec("3000")},
		}},
		&fakeLaunchRepo{launches: []launch.MonthlyLaunch{
			{NetSalary: dec("1800")},
			{NetSalary: dec("2700")},
		}},
		nil, nil,
	)

	kpis, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, kpis.EmployeeCount)
	assert.Equal(t, 2, kpis.LaunchCount)
	assert.True(t, kpis.TotalNetPayroll.Equal(dec("4500")))
	assert.True(t, kpis.AverageBaseSalary.Equal(dec("2500")))
}

func TestReportService_ExportAnnualReport(t *testing.T) {
	svc := newTestService(nil,
		&fakeLaunchRepo{launches: []launch.MonthlyLaunch{
			{EmployeeName: "Ana", ClosingDate: "2025-01-31", NetSalary: dec("1000")},
			{EmployeeName: "Ana", ClosingDate: "2025-03-31", NetSalary: dec("1100")},
			{EmployeeName: "Bruno", ClosingDate: "2024-06-30", NetSalary: dec("999")},
		}},
		nil, nil,
	)

	export, err := svc.ExportAnnualReport(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, "Relatorio_Anual_RH_2025.xlsx", export.Filename)
	require.Len(t, export.Sheet.Headers, 14)
	assert.Equal(t, "Funcionário", export.Sheet.Headers[0])
	assert.Equal(t, "Janeiro", export.Sheet.Headers[1])
	assert.Equal(t, "Dezembro", export.Sheet.Headers[12])
	assert.Equal(t, "Total Anual", export.Sheet.Headers[13])

	// Only Ana's 2025 launches make it into the sheet.
	require.Len(t, export.Sheet.Rows, 1)
	assert.Equal(t, "Ana", export.Sheet.Rows[0][0])
	assert.Equal(t, 2100.0, export.Sheet.Rows[0][13])

	var buf bytes.Buffer
	require.NoError(t, export.Sheet.Write(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Relatório 2025")
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestReportService_ExportAdvances(t *testing.T) {
	svc := newTestService(
		&fakeEmployeeRepo{employees: []employee.Employee{
			{ID: "emp-1", Name: "Ana", BaseSalary: dec("3000"), FunctionBonus: dec("500")},
		}},
		nil,
		&fakeAdvanceRepo{stored: []advance.Advance{
			{EmployeeID: "emp-1", Period: "2025-03", OtherAdvances: dec("100")},
		}},
		nil,
	)

	export, err := svc.ExportAdvances(context.Background(), "2025-03")
	require.NoError(t, err)

	assert.Equal(t, "adiantamentos_2025-03.xlsx", export.Filename)
	assert.Equal(t, "Adiantamento (40%)", export.Sheet.Headers[4])
	require.Len(t, export.Sheet.Rows, 1)
	assert.Equal(t, 1400.0, export.Sheet.Rows[0][4])
	assert.Equal(t, 1500.0, export.Sheet.Rows[0][6])
}

func TestReportService_ExportAdvances_BadPeriod(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil)

	_, err := svc.ExportAdvances(context.Background(), "março/2025")
	assert.ErrorIs(t, err, advance.ErrInvalidPeriod)
}

func TestReportService_ExportEvolution(t *testing.T) {
	svc := newTestService(nil, nil, nil,
		&fakeEvolutionRepo{records: []evolution.SalaryEvolution{{
			EmployeeName:  "Ana",
			Date:          "2025-02-01",
			Role:          "Analista",
			Reason:        "Promoção",
			BaseSalary:    dec("3200"),
			FunctionBonus: dec("400"),
		}}},
	)

	export, err := svc.ExportEvolution(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "evolucao_salarial.xlsx", export.Filename)
	assert.Equal(t, "Colaborador", export.Sheet.Headers[0])
	require.Len(t, export.Sheet.Rows, 1)
	assert.Equal(t, 3600.0, export.Sheet.Rows[0][7])
}

func TestReportService_ExportEvolution_TableMissing(t *testing.T) {
	svc := newTestService(nil, nil, nil, &fakeEvolutionRepo{err: evolution.ErrTableMissing})

	_, err := svc.ExportEvolution(context.Background())
	assert.ErrorIs(t, err, evolution.ErrTableMissing)
}
