package advance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhpro/folha-backend-go/internal/domain/employee"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStandardAdvance(t *testing.T) {
	cases := []struct {
		name  string
		base  string
		bonus string
		want  string
	}{
		{"base plus bonus", "3000", "500", "1400"},
		{"base only", "2000", "0", "800"},
		{"zero", "0", "0", "0"},
		{"cents", "1500.50", "100.50", "640.4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StandardAdvance(dec(tc.base), dec(tc.bonus))
			assert.True(t, got.Equal(dec(tc.want)), "StandardAdvance = %s, want %s", got, tc.want)
		})
	}
}

func TestTotalAdvance(t *testing.T) {
	got := TotalAdvance(dec("1400"), dec("250"))
	assert.True(t, got.Equal(dec("1650")))

	// A missing manual top-up means zero.
	got = TotalAdvance(dec("1400"), decimal.Zero)
	assert.True(t, got.Equal(dec("1400")))
}

func TestBuildBatch(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", Name: "Maria Souza", BaseSalary: dec("3000"), FunctionBonus: dec("500")},
		{ID: "e2", Name: "João Lima", BaseSalary: dec("2000"), FunctionBonus: dec("0")},
	}
	other := map[string]decimal.Decimal{
		"e1": dec("100"),
	}

	batch := BuildBatch(employees, other, "2024-06")
	require.Len(t, batch, 2)

	first := batch[0]
	assert.Equal(t, "e1", first.EmployeeID)
	assert.Equal(t, "Maria Souza", first.EmployeeName)
	assert.Equal(t, "2024-06", first.Period)
	assert.True(t, first.BaseSalary.Equal(dec("3000")))
	assert.True(t, first.StandardAdvance.Equal(dec("1400")))
	assert.True(t, first.OtherAdvances.Equal(dec("100")))
	assert.True(t, first.TotalAdvance.Equal(dec("1500")))

	second := batch[1]
	assert.True(t, second.StandardAdvance.Equal(dec("800")))
	assert.True(t, second.OtherAdvances.IsZero())
	assert.True(t, second.TotalAdvance.Equal(dec("800")))
}

func TestBuildBatchEmpty(t *testing.T) {
	batch := BuildBatch(nil, nil, "2024-06")
	assert.Empty(t, batch)
}
