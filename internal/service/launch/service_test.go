package launch

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhpro/folha-backend-go/internal/domain/employee"
	"github.com/rhpro/folha-backend-go/internal/domain/launch"
	"github.com/rhpro/folha-backend-go/internal/pkg/money"
)

type fakeLaunchRepo struct {
	records map[string]launch.MonthlyLaunch
	nextID  int
}

func newFakeLaunchRepo() *fakeLaunchRepo {
	return &fakeLaunchRepo{records: make(map[string]launch.MonthlyLaunch)}
}

func (f *fakeLaunchRepo) List(ctx context.Context) ([]launch.MonthlyLaunch, error) {
	out := make([]launch.MonthlyLaunch, 0, len(f.records))
	for _, l := range f.records {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLaunchRepo) GetByID(ctx context.Context, id string) (launch.MonthlyLaunch, error) {
	l, ok := f.records[id]
	if !ok {
		return launch.MonthlyLaunch{}, launch.ErrLaunchNotFound
	}
	return l, nil
}

func (f *fakeLaunchRepo) Create(ctx context.Context, l launch.MonthlyLaunch) (launch.MonthlyLaunch, error) {
	f.nextID++
	l.ID = string(rune('a' + f.nextID))
	f.records[l.ID] = l
	return l, nil
}

func (f *fakeLaunchRepo) Update(ctx context.Context, l launch.MonthlyLaunch) (launch.MonthlyLaunch, error) {
	if _, ok := f.records[l.ID]; !ok {
		return launch.MonthlyLaunch{}, launch.ErrLaunchNotFound
	}
	f.records[l.ID] = l
	return l, nil
}

func (f *fakeLaunchRepo) Delete(ctx context.Context, id string) error {
	delete(f.records, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	for i := range f.employees {
		if f.employees[i].Email == email {
			return &f.employees[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = "emp-created"
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == req.ID {
			if req.Name != nil {
				f.employees[i].Name = *req.Name
			}
			return f.employees[i], nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeEmployeeRepo) BulkUpdateVouchers(ctx context.Context, meal, food decimal.Decimal) error {
	for i := range f.employees {
		f.employees[i].DefaultMealVoucher = meal
		f.employees[i].DefaultFoodVoucher = food
	}
	return nil
}

func amt(s string) money.Value {
	return money.New(decimal.RequireFromString(s))
}

func TestLaunchService_Create_ComputesTotals(t *testing.T) {
	repo := newFakeLaunchRepo()
	svc := NewLaunchService(repo, &fakeEmployeeRepo{})

	resp, err := svc.Create(context.Background(), launch.CreateLaunchRequest{
		EmployeeID:   "emp-1",
		EmployeeName: "Maria Souza",
		ClosingDate:  "2025-03-31",
		BaseSalary:    amt("2000"),
		FunctionBonus: amt("200"),
		MealVoucher:   amt("300"),
		Advances:      amt("150"),
		Loans:         amt("50"),
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalEarnings.Equal(decimal.RequireFromString("2500")), "earnings %s", resp.TotalEarnings)
	assert.True(t, resp.TotalDeductions.Equal(decimal.RequireFromString("200")), "deductions %s", resp.TotalDeductions)
	assert.True(t, resp.NetSalary.Equal(decimal.RequireFromString("2300")), "net %s", resp.NetSalary)
}

func TestLaunchService_Create_RequiresCoreFields(t *testing.T) {
	svc := NewLaunchService(newFakeLaunchRepo(), &fakeEmployeeRepo{})

	_, err := svc.Create(context.Background(), launch.CreateLaunchRequest{
		EmployeeID:  "emp-1",
		ClosingDate: "not-a-date",
	})
	require.Error(t, err)
}

func TestLaunchService_Update_MergesBeforeRecomputing(t *testing.T) {
	repo := newFakeLaunchRepo()
	svc := NewLaunchService(repo, &fakeEmployeeRepo{})

	created, err := svc.Create(context.Background(), launch.CreateLaunchRequest{
		EmployeeID:   "emp-1",
		EmployeeName: "Maria Souza",
		ClosingDate:  "2025-03-31",
		BaseSalary:   amt("2000"),
		MealVoucher:  amt("300"),
		Advances:     amt("150"),
	})
	require.NoError(t, err)

	// Patch only the advances; every untouched field must survive and the
	// totals must reflect the merged record.
	patch := amt("400")
	updated, err := svc.Update(context.Background(), launch.UpdateLaunchRequest{
		ID:       created.ID,
		Advances: &patch,
	})
	require.NoError(t, err)

	assert.True(t, updated.BaseSalary.Equal(decimal.RequireFromString("2000")))
	assert.True(t, updated.MealVoucher.Equal(decimal.RequireFromString("300")))
	assert.True(t, updated.TotalEarnings.Equal(decimal.RequireFromString("2300")))
	assert.True(t, updated.TotalDeductions.Equal(decimal.RequireFromString("400")))
	assert.True(t, updated.NetSalary.Equal(decimal.RequireFromString("1900")))
}

func TestLaunchService_Update_NotFound(t *testing.T) {
	svc := NewLaunchService(newFakeLaunchRepo(), &fakeEmployeeRepo{})

	_, err := svc.Update(context.Background(), launch.UpdateLaunchRequest{ID: "missing"})
	assert.ErrorIs(t, err, launch.ErrLaunchNotFound)
}

func TestLaunchService_QuickCreate_SeedsFromEmployee(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{{
		ID:                 "emp-1",
		Name:               "João Lima",
		BaseSalary:         decimal.RequireFromString("3000"),
		FunctionBonus:      decimal.RequireFromString("500"),
		DefaultMealVoucher: decimal.RequireFromString("250"),
		DefaultFoodVoucher: decimal.RequireFromString("100"),
	}}}
	svc := NewLaunchService(newFakeLaunchRepo(), employees)

	resp, err := svc.QuickCreate(context.Background(), launch.QuickLaunchRequest{
		EmployeeID:    "emp-1",
		OtherEarnings: amt("120"),
		Absences:      amt("80"),
	})
	require.NoError(t, err)

	assert.Equal(t, "João Lima", resp.EmployeeName)
	assert.True(t, resp.BaseSalary.Equal(decimal.RequireFromString("3000")))
	assert.True(t, resp.MealVoucher.Equal(decimal.RequireFromString("250")))
	assert.True(t, resp.FoodVoucher.Equal(decimal.RequireFromString("100")))
	// 3000 + 500 + 120 + 250 + 100 earnings, 80 deductions
	assert.True(t, resp.TotalEarnings.Equal(decimal.RequireFromString("3970")))
	assert.True(t, resp.NetSalary.Equal(decimal.RequireFromString("3890")))
	assert.Equal(t, "Lançamento via Ação Rápida", resp.Notes)
	assert.NotEmpty(t, resp.ClosingDate)
}

func TestLaunchService_QuickCreate_UnknownEmployee(t *testing.T) {
	svc := NewLaunchService(newFakeLaunchRepo(), &fakeEmployeeRepo{})

	_, err := svc.QuickCreate(context.Background(), launch.QuickLaunchRequest{EmployeeID: "missing"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLaunchService_Delete_Idempotent(t *testing.T) {
	svc := NewLaunchService(newFakeLaunchRepo(), &fakeEmployeeRepo{})

	assert.NoError(t, svc.Delete(context.Background(), "never-existed"))
}
