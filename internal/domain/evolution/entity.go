package evolution

import (
	"github.com/shopspring/decimal"
)

// SalaryEvolution is one append-only history entry recording a compensation
// or role change. It is deliberately decoupled from the live employee row:
// registering an evolution never touches the employee record, and the
// employee name here is a snapshot.
type SalaryEvolution struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         string

	BaseSalary    decimal.Decimal
	FunctionBonus decimal.Decimal
	OtherEarnings decimal.Decimal

	Role   string
	Reason string

	CreatedAt string
}

// GrossTotal is the figure shown on exports: base + bonus + other.
func (s SalaryEvolution) GrossTotal() decimal.Decimal {
	return decimal.Sum(s.BaseSalary, s.FunctionBonus, s.OtherEarnings)
}
