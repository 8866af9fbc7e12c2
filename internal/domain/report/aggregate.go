// Package report derives dashboard KPIs and periodic summaries. Everything
// here is a pure reduction over collections already fetched from the store;
// no aggregation is pushed to the server.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rhpro/folha-backend-go/internal/domain/advance"
	"github.com/rhpro/folha-backend-go/internal/domain/employee"
	"github.com/rhpro/folha-backend-go/internal/domain/launch"
)

// ComputeKPIs reduces the fetched collections into the dashboard figures.
func ComputeKPIs(employees []employee.Employee, launches []launch.MonthlyLaunch) KPIs {
	totalNet := decimal.Zero
	for _, l := range launches {
		totalNet = totalNet.Add(l.NetSalary)
	}

	avgBase := decimal.Zero
	if len(employees) > 0 {
		totalBase := decimal.Zero
		for _, e := range employees {
			totalBase = totalBase.Add(e.BaseSalary)
		}
		avgBase = totalBase.DivRound(decimal.NewFromInt(int64(len(employees))), 2)
	}

	return KPIs{
		EmployeeCount:     len(employees),
		TotalNetPayroll:   totalNet,
		AverageBaseSalary: avgBase,
		LaunchCount:       len(launches),
	}
}

// BuildAnnualReport groups the year's launches into one row per employee
// name with twelve monthly net-salary slots plus an annual total. Rows are
// keyed by the snapshotted employee name, so two employees sharing a name
// merge into one row; rows come back sorted by name.
func BuildAnnualReport(launches []launch.MonthlyLaunch, year int) []AnnualRow {
	byName := make(map[string]*AnnualRow)
	for _, l := range launches {
		date, err := time.Parse("2006-01-02", closingDay(l.ClosingDate))
		if err != nil || date.Year() != year {
			continue
		}
		row, ok := byName[l.EmployeeName]
		if !ok {
			row = &AnnualRow{EmployeeName: l.EmployeeName}
			byName[l.EmployeeName] = row
		}
		month := int(date.Month()) - 1
		row.Months[month] = row.Months[month].Add(l.NetSalary)
		row.Total = row.Total.Add(l.NetSalary)
	}

	rows := make([]AnnualRow, 0, len(byName))
	for _, row := range byName {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].EmployeeName < rows[j].EmployeeName })
	return rows
}

// closingDay trims a timestamped closing date down to its date part.
func closingDay(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// BuildAdvanceReport recomputes the period view from the live employee list,
// joined by id against the stored batch to recover the manual top-ups. The
// display always reflects current compensation, independent of what was
// snapshotted at the last save.
func BuildAdvanceReport(employees []employee.Employee, stored []advance.Advance, period string) []AdvanceRow {
	otherByID := make(map[string]decimal.Decimal, len(stored))
	for _, a := range stored {
		otherByID[a.EmployeeID] = a.OtherAdvances
	}

	rows := make([]AdvanceRow, 0, len(employees))
	for _, emp := range employees {
		standard := advance.StandardAdvance(emp.BaseSalary, emp.FunctionBonus)
		other := otherByID[emp.ID]
		rows = append(rows, AdvanceRow{
			EmployeeID:      emp.ID,
			EmployeeName:    emp.Name,
			Period:          period,
			BaseSalary:      emp.BaseSalary,
			FunctionBonus:   emp.FunctionBonus,
			StandardAdvance: standard,
			OtherAdvances:   other,
			TotalAdvance:    advance.TotalAdvance(standard, other),
		})
	}
	return rows
}
