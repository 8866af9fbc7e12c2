package report

import (
	"github.com/shopspring/decimal"
)

// KPIs are the dashboard headline figures.
type KPIs struct {
	EmployeeCount     int             `json:"employeeCount"`
	TotalNetPayroll   decimal.Decimal `json:"totalNetPayroll"`
	AverageBaseSalary decimal.Decimal `json:"averageBaseSalary"`
	LaunchCount       int             `json:"launchCount"`
}

// AnnualRow is one employee's year: twelve monthly net-salary sums plus the
// annual total.
type AnnualRow struct {
	EmployeeName string              `json:"employeeName"`
	Months       [12]decimal.Decimal `json:"months"`
	Total        decimal.Decimal     `json:"total"`
}

// AdvanceRow is the period view of one employee's advance, recomputed from
// current compensation.
type AdvanceRow struct {
	EmployeeID      string          `json:"employeeId"`
	EmployeeName    string          `json:"employeeName"`
	Period          string          `json:"period"`
	BaseSalary      decimal.Decimal `json:"baseSalary"`
	FunctionBonus   decimal.Decimal `json:"functionBonus"`
	StandardAdvance decimal.Decimal `json:"standardAdvance"`
	OtherAdvances   decimal.Decimal `json:"otherAdvances"`
	TotalAdvance    decimal.Decimal `json:"totalAdvance"`
}

// AnnualReportResponse wraps the rows with the year they cover.
type AnnualReportResponse struct {
	Year int         `json:"year"`
	Rows []AnnualRow `json:"rows"`
}
