package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeRepository is the gateway to the employees collection.
type EmployeeRepository interface {
	// List returns all employees ordered by name ascending.
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// FindByEmail resolves a trimmed, lowercased email to an employee.
	// An unmatched email returns (nil, nil), not an error.
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	// Delete is idempotent: removing an id that no longer exists is not an error.
	Delete(ctx context.Context, id string) error
	// BulkUpdateVouchers overwrites the default vouchers on EVERY employee
	// row, unconditionally. The caller is responsible for warning the
	// operator about the scope.
	BulkUpdateVouchers(ctx context.Context, meal, food decimal.Decimal) error
}

// EmployeeService drives the employee registry use cases.
type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	BulkUpdateVouchers(ctx context.Context, req BulkVoucherRequest) error
}
