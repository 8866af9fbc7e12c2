package launch

import (
	"github.com/shopspring/decimal"
)

// Totals are the derived payroll figures stored on every launch.
type Totals struct {
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

// ComputeTotals derives the consolidated totals from one launch record.
//
// Earnings sum the contract values plus benefits paid in; deductions sum
// advances, convenios, transport, loans and absences. Extra-hour counts and
// the transport flag are carried on the record but are NOT priced into the
// totals; only the already-monetized transportVoucherValue is deducted.
// Absences arrive as a day count and are summed as a currency amount.
//
// Pure: must be called with the complete record (never a partial patch) at
// every create and update, so a stored total can never go stale.
func ComputeTotals(l MonthlyLaunch) Totals {
	earnings := decimal.Sum(
		l.BaseSalary,
		l.FunctionBonus,
		l.OtherEarnings,
		l.PremiumAmount,
		l.BasicBasket,
		l.MealVoucher,
		l.FoodVoucher,
	)

	deductions := decimal.Sum(
		l.Advances,
		l.MedicalConvenio,
		l.DentalConvenio,
		l.PharmacyConvenio,
		l.OtherConvenios,
		l.TransportVoucherValue,
		l.Loans,
		l.Absences,
	)

	return Totals{
		TotalEarnings:   earnings,
		TotalDeductions: deductions,
		NetSalary:       earnings.Sub(deductions),
	}
}

// ApplyTotals recomputes and stamps the derived fields on l.
func ApplyTotals(l *MonthlyLaunch) {
	t := ComputeTotals(*l)
	l.TotalEarnings = t.TotalEarnings
	l.TotalDeductions = t.TotalDeductions
	l.NetSalary = t.NetSalary
}
