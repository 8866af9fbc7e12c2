package advance

import (
	"github.com/shopspring/decimal"
)

// Advance is one fortnightly advance snapshot for one employee and one
// period ("YYYY-MM"). Salary figures are snapshots taken at save time.
type Advance struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Period       string

	BaseSalary      decimal.Decimal
	FunctionBonus   decimal.Decimal
	StandardAdvance decimal.Decimal
	OtherAdvances   decimal.Decimal
	TotalAdvance    decimal.Decimal

	CreatedAt string
}
