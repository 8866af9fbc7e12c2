package advance

import (
	"github.com/shopspring/decimal"

	"github.com/rhpro/folha-backend-go/internal/domain/employee"
)

// standardRate is the fixed fortnightly advance fraction of base + bonus.
var standardRate = decimal.RequireFromString("0.4")

// StandardAdvance returns 40% of baseSalary + functionBonus.
func StandardAdvance(baseSalary, functionBonus decimal.Decimal) decimal.Decimal {
	return baseSalary.Add(functionBonus).Mul(standardRate)
}

// TotalAdvance combines the standard portion with a manual top-up.
func TotalAdvance(standard, otherAdvances decimal.Decimal) decimal.Decimal {
	return standard.Add(otherAdvances)
}

// BuildBatch produces one advance per employee for the period, snapshotting
// each employee's current compensation. Manual top-ups are looked up by
// employee id; a missing entry means zero.
func BuildBatch(employees []employee.Employee, otherByEmployeeID map[string]decimal.Decimal, period string) []Advance {
	batch := make([]Advance, 0, len(employees))
	for _, emp := range employees {
		standard := StandardAdvance(emp.BaseSalary, emp.FunctionBonus)
		other := otherByEmployeeID[emp.ID]
		batch = append(batch, Advance{
			EmployeeID:      emp.ID,
			EmployeeName:    emp.Name,
			Period:          period,
			BaseSalary:      emp.BaseSalary,
			FunctionBonus:   emp.FunctionBonus,
			StandardAdvance: standard,
			OtherAdvances:   other,
			TotalAdvance:    TotalAdvance(standard, other),
		})
	}
	return batch
}
