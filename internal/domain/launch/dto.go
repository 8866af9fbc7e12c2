package launch

import (
	"github.com/rhpro/folha-backend-go/internal/pkg/money"
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLaunchRequest struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	ClosingDate  string `json:"closingDate"`

	BaseSalary    money.Value `json:"baseSalary"`
	FunctionBonus money.Value `json:"functionBonus"`
	OtherEarnings money.Value `json:"otherEarnings"`
	PremiumAmount money.Value `json:"premiumAmount"`
	BasicBasket   money.Value `json:"basicBasket"`
	MealVoucher   money.Value `json:"mealVoucher"`
	FoodVoucher   money.Value `json:"foodVoucher"`

	ExtraHours100 money.Value `json:"extraHours100"`
	ExtraHours70  money.Value `json:"extraHours70"`
	ExtraHours50  money.Value `json:"extraHours50"`

	HasTransportVoucher   bool        `json:"hasTransportVoucher"`
	TransportVoucherValue money.Value `json:"transportVoucherValue"`

	Advances         money.Value `json:"advances"`
	MedicalConvenio  money.Value `json:"medicalConvenio"`
	DentalConvenio   money.Value `json:"dentalConvenio"`
	PharmacyConvenio money.Value `json:"pharmacyConvenio"`
	OtherConvenios   money.Value `json:"otherConvenios"`
	Absences         money.Value `json:"absences"`
	Loans            money.Value `json:"loans"`

	OtherDiscounts string `json:"otherDiscounts"`
	Notes          string `json:"notes"`
}

func (r *CreateLaunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employeeName", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.ClosingDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "closingDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateLaunchRequest is a partial patch. The service merges it onto the
// stored record before recomputing totals; the patch alone is never summed.
type UpdateLaunchRequest struct {
	ID           string  `json:"-"`
	EmployeeID   *string `json:"employeeId,omitempty"`
	EmployeeName *string `json:"employeeName,omitempty"`
	ClosingDate  *string `json:"closingDate,omitempty"`

	BaseSalary    *money.Value `json:"baseSalary,omitempty"`
	FunctionBonus *money.Value `json:"functionBonus,omitempty"`
	OtherEarnings *money.Value `json:"otherEarnings,omitempty"`
	PremiumAmount *money.Value `json:"premiumAmount,omitempty"`
	BasicBasket   *money.Value `json:"basicBasket,omitempty"`
	MealVoucher   *money.Value `json:"mealVoucher,omitempty"`
	FoodVoucher   *money.Value `json:"foodVoucher,omitempty"`

	ExtraHours100 *money.Value `json:"extraHours100,omitempty"`
	ExtraHours70  *money.Value `json:"extraHours70,omitempty"`
	ExtraHours50  *money.Value `json:"extraHours50,omitempty"`

	HasTransportVoucher   *bool        `json:"hasTransportVoucher,omitempty"`
	TransportVoucherValue *money.Value `json:"transportVoucherValue,omitempty"`

	Advances         *money.Value `json:"advances,omitempty"`
	MedicalConvenio  *money.Value `json:"medicalConvenio,omitempty"`
	DentalConvenio   *money.Value `json:"dentalConvenio,omitempty"`
	PharmacyConvenio *money.Value `json:"pharmacyConvenio,omitempty"`
	OtherConvenios   *money.Value `json:"otherConvenios,omitempty"`
	Absences         *money.Value `json:"absences,omitempty"`
	Loans            *money.Value `json:"loans,omitempty"`

	OtherDiscounts *string `json:"otherDiscounts,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

func (r *UpdateLaunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClosingDate != nil {
		if _, ok := validator.IsValidDate(*r.ClosingDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "closingDate", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.EmployeeName != nil && validator.IsEmpty(*r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employeeName", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuickLaunchRequest creates a launch from the employee's current contract
// values, with only the handful of fields the quick form exposes.
type QuickLaunchRequest struct {
	EmployeeID    string      `json:"employeeId"`
	OtherEarnings money.Value `json:"otherEarnings"`
	PremiumAmount money.Value `json:"premiumAmount"`
	Absences      money.Value `json:"absences"`
}

func (r *QuickLaunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LaunchResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	ClosingDate  string `json:"closingDate"`

	BaseSalary    decimal.Decimal `json:"baseSalary"`
	FunctionBonus decimal.Decimal `json:"functionBonus"`
	OtherEarnings decimal.Decimal `json:"otherEarnings"`
	PremiumAmount decimal.Decimal `json:"premiumAmount"`
	BasicBasket   decimal.Decimal `json:"basicBasket"`
	MealVoucher   decimal.Decimal `json:"mealVoucher"`
	FoodVoucher   decimal.Decimal `json:"foodVoucher"`

	ExtraHours100 decimal.Decimal `json:"extraHours100"`
	ExtraHours70  decimal.Decimal `json:"extraHours70"`
	ExtraHours50  decimal.Decimal `json:"extraHours50"`

	HasTransportVoucher   bool            `json:"hasTransportVoucher"`
	TransportVoucherValue decimal.Decimal `json:"transportVoucherValue"`

	Advances         decimal.Decimal `json:"advances"`
	MedicalConvenio  decimal.Decimal `json:"medicalConvenio"`
	DentalConvenio   decimal.Decimal `json:"dentalConvenio"`
	PharmacyConvenio decimal.Decimal `json:"pharmacyConvenio"`
	OtherConvenios   decimal.Decimal `json:"otherConvenios"`
	Absences         decimal.Decimal `json:"absences"`
	Loans            decimal.Decimal `json:"loans"`

	OtherDiscounts string `json:"otherDiscounts"`
	Notes          string `json:"notes"`

	TotalEarnings   decimal.Decimal `json:"totalEarnings"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetSalary       decimal.Decimal `json:"netSalary"`

	CreatedAt string `json:"createdAt,omitempty"`
}
