package advance

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhpro/folha-backend-go/internal/domain/advance"
	"github.com/rhpro/folha-backend-go/internal/domain/employee"
	"github.com/rhpro/folha-backend-go/internal/pkg/money"
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
)

type fakeAdvanceRepo struct {
	byPeriod map[string][]advance.Advance
	nextID   int
}

func newFakeAdvanceRepo() *fakeAdvanceRepo {
	return &fakeAdvanceRepo{byPeriod: make(map[string][]advance.Advance)}
}

func (f *fakeAdvanceRepo) ListByPeriod(ctx context.Context, period string) ([]advance.Advance, error) {
	return f.byPeriod[period], nil
}

func (f *fakeAdvanceRepo) DeleteByPeriod(ctx context.Context, period string) error {
	delete(f.byPeriod, period)
	return nil
}

func (f *fakeAdvanceRepo) CreateBatch(ctx context.Context, batch []advance.Advance) error {
	for _, a := range batch {
		f.nextID++
		a.ID = fmt.Sprintf("adv-%d", f.nextID)
		f.byPeriod[a.Period] = append(f.byPeriod[a.Period], a)
	}
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

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-1", Name: "Ana Costa", BaseSalary: decimal.RequireFromString("3000"), FunctionBonus: decimal.RequireFromString("500")},
		{ID: "emp-2", Name: "Bruno Dias", BaseSalary: decimal.RequireFromString("2000")},
	}
}

func TestAdvanceService_Save_BuildsBatchForEveryEmployee(t *testing.T) {
	repo := newFakeAdvanceRepo()
	svc := NewAdvanceService(repo, &fakeEmployeeRepo{employees: testEmployees()})

	saved, err := svc.Save(context.Background(), advance.SaveAdvancesRequest{
		Period: "2025-03",
		OtherAdvances: map[string]money.Value{
			"emp-1": money.New(decimal.RequireFromString("100")),
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	byID := map[string]advance.AdvanceResponse{}
	for _, a := range saved {
		byID[a.EmployeeID] = a
	}

	// 40% of 3500 plus the manual 100.
	assert.True(t, byID["emp-1"].StandardAdvance.Equal(decimal.RequireFromString("1400")))
	assert.True(t, byID["emp-1"].TotalAdvance.Equal(decimal.RequireFromString("1500")))
	// 40% of 2000, no top-up.
	assert.True(t, byID["emp-2"].StandardAdvance.Equal(decimal.RequireFromString("800")))
	assert.True(t, byID["emp-2"].TotalAdvance.Equal(decimal.RequireFromString("800")))
}

func TestAdvanceService_Save_ReplacesWholePeriod(t *testing.T) {
	repo := newFakeAdvanceRepo()
	svc := NewAdvanceService(repo, &fakeEmployeeRepo{employees: testEmployees()})

	_, err := svc.Save(context.Background(), advance.SaveAdvancesRequest{
		Period: "2025-03",
		OtherAdvances: map[string]money.Value{
			"emp-1": money.New(decimal.RequireFromString("100")),
		},
	})
	require.NoError(t, err)

	// Saving again without top-ups must wipe the earlier batch, not stack
	// a second one on top of it.
	saved, err := svc.Save(context.Background(), advance.SaveAdvancesRequest{Period: "2025-03"})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	for _, a := range saved {
		assert.True(t, a.OtherAdvances.IsZero(), "top-up should be gone for %s", a.EmployeeID)
	}
}

func TestAdvanceService_Save_LeavesOtherPeriodsAlone(t *testing.T) {
	repo := newFakeAdvanceRepo()
	svc := NewAdvanceService(repo, &fakeEmployeeRepo{employees: testEmployees()})

	_, err := svc.Save(context.Background(), advance.SaveAdvancesRequest{Period: "2025-02"})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), advance.SaveAdvancesRequest{Period: "2025-03"})
	require.NoError(t, err)

	february, err := svc.GetByPeriod(context.Background(), "2025-02")
	require.NoError(t, err)
	assert.Len(t, february, 2)
}

func TestAdvanceService_Save_RejectsBadPeriod(t *testing.T) {
	svc := NewAdvanceService(newFakeAdvanceRepo(), &fakeEmployeeRepo{})

	_, err := svc.Save(context.Background(), advance.SaveAdvancesRequest{Period: "03/2025"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestAdvanceService_GetByPeriod_EmptyPeriod(t *testing.T) {
	svc := NewAdvanceService(newFakeAdvanceRepo(), &fakeEmployeeRepo{})

	got, err := svc.GetByPeriod(context.Background(), "2030-01")
	require.NoError(t, err)
	assert.Empty(t, got)
}
