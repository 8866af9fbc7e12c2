package launch

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	l := MonthlyLaunch{
		BaseSalary:    dec("2000"),
		FunctionBonus: dec("200"),
		MealVoucher:   dec("300"),
		Advances:      dec("150"),
		Loans:         dec("50"),
	}

	got := ComputeTotals(l)

	assert.True(t, got.TotalEarnings.Equal(dec("2500")), "earnings = %s", got.TotalEarnings)
	assert.True(t, got.TotalDeductions.Equal(dec("200")), "deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetSalary.Equal(dec("2300")), "net = %s", got.NetSalary)
}

func TestComputeTotalsAllFields(t *testing.T) {
	l := MonthlyLaunch{
		BaseSalary:            dec("3000"),
		FunctionBonus:         dec("500"),
		OtherEarnings:         dec("100"),
		PremiumAmount:         dec("250"),
		BasicBasket:           dec("180"),
		MealVoucher:           dec("400"),
		FoodVoucher:           dec("350"),
		Advances:              dec("1400"),
		MedicalConvenio:       dec("120"),
		DentalConvenio:        dec("45"),
		PharmacyConvenio:      dec("60"),
		OtherConvenios:        dec("30"),
		TransportVoucherValue: dec("180"),
		Loans:                 dec("200"),
		Absences:              dec("2"),
	}

	got := ComputeTotals(l)

	assert.True(t, got.TotalEarnings.Equal(dec("4780")), "earnings = %s", got.TotalEarnings)
	assert.True(t, got.TotalDeductions.Equal(dec("2037")), "deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetSalary.Equal(dec("2743")), "net = %s", got.NetSalary)
}

func TestComputeTotalsNetIsEarningsMinusDeductions(t *testing.T) {
	l := MonthlyLaunch{
		BaseSalary: dec("1234.56"),
		Advances:   dec("789.01"),
	}
	got := ComputeTotals(l)
	assert.True(t, got.NetSalary.Equal(got.TotalEarnings.Sub(got.TotalDeductions)))
}

func TestComputeTotalsDeterministic(t *testing.T) {
	l := MonthlyLaunch{
		BaseSalary:  dec("1999.99"),
		FoodVoucher: dec("310.10"),
		Loans:       dec("77.77"),
	}
	first := ComputeTotals(l)
	second := ComputeTotals(l)
	assert.True(t, first.TotalEarnings.Equal(second.TotalEarnings))
	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
}

func TestComputeTotalsIgnoresHourCountsAndTransportFlag(t *testing.T) {
	base := MonthlyLaunch{BaseSalary: dec("1500")}

	withHours := base
	withHours.ExtraHours100 = dec("10")
	withHours.ExtraHours70 = dec("5")
	withHours.ExtraHours50 = dec("3")
	withHours.HasTransportVoucher = true

	assert.True(t, ComputeTotals(base).NetSalary.Equal(ComputeTotals(withHours).NetSalary),
		"hour counts and the transport flag must not move the totals")
}

func TestComputeTotalsAbsencesDeductedAsAmount(t *testing.T) {
	l := MonthlyLaunch{
		BaseSalary: dec("1000"),
		Absences:   dec("3"),
	}
	got := ComputeTotals(l)
	assert.True(t, got.TotalDeductions.Equal(dec("3")))
	assert.True(t, got.NetSalary.Equal(dec("997")))
}

func TestComputeTotalsZeroRecord(t *testing.T) {
	got := ComputeTotals(MonthlyLaunch{})
	assert.True(t, got.TotalEarnings.IsZero())
	assert.True(t, got.TotalDeductions.IsZero())
	assert.True(t, got.NetSalary.IsZero())
}

func TestApplyTotals(t *testing.T) {
	l := MonthlyLaunch{
		BaseSalary: dec("2000"),
		Loans:      dec("100"),
		// Stale derived values must be overwritten, never trusted.
		TotalEarnings: dec("9999"),
		NetSalary:     dec("9999"),
	}

	ApplyTotals(&l)

	assert.True(t, l.TotalEarnings.Equal(dec("2000")))
	assert.True(t, l.TotalDeductions.Equal(dec("100")))
	assert.True(t, l.NetSalary.Equal(dec("1900")))
}
