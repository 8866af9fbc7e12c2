package evolution

import (
	"github.com/rhpro/folha-backend-go/internal/pkg/money"
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEvolutionRequest struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`

	BaseSalary    money.Value `json:"baseSalary"`
	FunctionBonus money.Value `json:"functionBonus"`
	OtherEarnings money.Value `json:"otherEarnings"`

	Role   string `json:"role"`
	Reason string `json:"reason"`
}

func (r *CreateEvolutionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EvolutionResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`

	BaseSalary    decimal.Decimal `json:"baseSalary"`
	FunctionBonus decimal.Decimal `json:"functionBonus"`
	OtherEarnings decimal.Decimal `json:"otherEarnings"`

	Role   string `json:"role"`
	Reason string `json:"reason"`

	GrossTotal decimal.Decimal `json:"grossTotal"`
	CreatedAt  string          `json:"createdAt,omitempty"`
}
