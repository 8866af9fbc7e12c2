package advance

import (
	"github.com/rhpro/folha-backend-go/internal/pkg/money"
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SaveAdvancesRequest replaces the whole batch for a period. Only the manual
// top-ups are client input; everything else is snapshotted server-side from
// the current employee records.
type SaveAdvancesRequest struct {
	Period string `json:"period"`
	// OtherAdvances maps employee id to the manual top-up amount.
	OtherAdvances map[string]money.Value `json:"otherAdvances"`
}

func (r *SaveAdvancesRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be YYYY-MM"})
	}
	for id, v := range r.OtherAdvances {
		if v.Dec().IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "otherAdvances." + id, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employeeId"`
	EmployeeName    string          `json:"employeeName"`
	Period          string          `json:"period"`
	BaseSalary      decimal.Decimal `json:"baseSalary"`
	FunctionBonus   decimal.Decimal `json:"functionBonus"`
	StandardAdvance decimal.Decimal `json:"standardAdvance"`
	OtherAdvances   decimal.Decimal `json:"otherAdvances"`
	TotalAdvance    decimal.Decimal `json:"totalAdvance"`
	CreatedAt       string          `json:"createdAt,omitempty"`
}
