package launch

import (
	"github.com/shopspring/decimal"
)

// MonthlyLaunch is one payroll run for one employee at one closing date.
// EmployeeName is a snapshot taken at launch time, not a live reference:
// renaming an employee never rewrites historical launches.
type MonthlyLaunch struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	ClosingDate  string

	// Earnings inputs
	BaseSalary    decimal.Decimal
	FunctionBonus decimal.Decimal
	OtherEarnings decimal.Decimal
	PremiumAmount decimal.Decimal
	BasicBasket   decimal.Decimal
	MealVoucher   decimal.Decimal
	FoodVoucher   decimal.Decimal

	// Hour counts, captured but not priced into totals.
	ExtraHours100 decimal.Decimal
	ExtraHours70  decimal.Decimal
	ExtraHours50  decimal.Decimal

	HasTransportVoucher   bool
	TransportVoucherValue decimal.Decimal

	// Deduction inputs
	Advances         decimal.Decimal
	MedicalConvenio  decimal.Decimal
	DentalConvenio   decimal.Decimal
	PharmacyConvenio decimal.Decimal
	OtherConvenios   decimal.Decimal
	Absences         decimal.Decimal
	Loans            decimal.Decimal

	// Free text; OtherDiscounts never enters the numeric total.
	OtherDiscounts string
	Notes          string

	// Derived fields, persisted at every write. Recomputed from the full
	// merged record by ComputeTotals; never trusted from a caller.
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	CreatedAt string
}
