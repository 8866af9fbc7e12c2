package employee

import (
	"strings"

	"github.com/rhpro/folha-backend-go/internal/pkg/money"
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// JSON field names are camelCase throughout: they are the wire contract with
// the existing store schema and the dashboard client.

type CreateEmployeeRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	HireDate  string `json:"hireDate"`
	ExitDate  string `json:"exitDate,omitempty"`
	BirthDate string `json:"birthDate"`
	Company   string `json:"company"`

	Address    string `json:"address"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	State      string `json:"state"`
	CEP        string `json:"cep"`
	FatherName string `json:"fatherName"`
	MotherName string `json:"motherName"`

	CPF     string `json:"cpf"`
	RG      string `json:"rg"`
	CTPS    string `json:"ctps"`
	PIS     string `json:"pis"`
	VoterID string `json:"voterId"`

	BaseSalary         money.Value `json:"baseSalary"`
	FunctionBonus      money.Value `json:"functionBonus"`
	DefaultMealVoucher money.Value `json:"defaultMealVoucher"`
	DefaultFoodVoucher money.Value `json:"defaultFoodVoucher"`

	Notes string `json:"notes,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsInSlice(r.Company, ValidCompanies()) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "must be CAMPLUVAS or LOCATEX"})
	}
	if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{Field: "cpf", Message: "is not a valid CPF"})
	}
	if r.BaseSalary.Dec().IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "must be non-negative"})
	}
	if r.FunctionBonus.Dec().IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "functionBonus", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity builds the entity to persist. Empty optional strings become nil
// so the store keeps NULL rather than "".
func (r *CreateEmployeeRequest) ToEntity() Employee {
	var exitDate *string
	if !validator.IsEmpty(r.ExitDate) {
		exitDate = &r.ExitDate
	}
	var notes *string
	if !validator.IsEmpty(r.Notes) {
		notes = &r.Notes
	}

	return Employee{
		Name:      strings.TrimSpace(r.Name),
		Email:     r.Email,
		Role:      r.Role,
		HireDate:  r.HireDate,
		ExitDate:  exitDate,
		BirthDate: r.BirthDate,
		Company:   Company(r.Company),

		Address:    r.Address,
		Phone:      r.Phone,
		City:       r.City,
		State:      r.State,
		CEP:        r.CEP,
		FatherName: r.FatherName,
		MotherName: r.MotherName,

		CPF:     r.CPF,
		RG:      r.RG,
		CTPS:    r.CTPS,
		PIS:     r.PIS,
		VoterID: r.VoterID,

		BaseSalary:         r.BaseSalary.Dec(),
		FunctionBonus:      r.FunctionBonus.Dec(),
		DefaultMealVoucher: r.DefaultMealVoucher.Dec(),
		DefaultFoodVoucher: r.DefaultFoodVoucher.Dec(),

		Notes: notes,
	}
}

type UpdateEmployeeRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Role      *string `json:"role,omitempty"`
	HireDate  *string `json:"hireDate,omitempty"`
	ExitDate  *string `json:"exitDate,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Company   *string `json:"company,omitempty"`

	Address    *string `json:"address,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	CEP        *string `json:"cep,omitempty"`
	FatherName *string `json:"fatherName,omitempty"`
	MotherName *string `json:"motherName,omitempty"`

	CPF     *string `json:"cpf,omitempty"`
	RG      *string `json:"rg,omitempty"`
	CTPS    *string `json:"ctps,omitempty"`
	PIS     *string `json:"pis,omitempty"`
	VoterID *string `json:"voterId,omitempty"`

	BaseSalary         *money.Value `json:"baseSalary,omitempty"`
	FunctionBonus      *money.Value `json:"functionBonus,omitempty"`
	DefaultMealVoucher *money.Value `json:"defaultMealVoucher,omitempty"`
	DefaultFoodVoucher *money.Value `json:"defaultFoodVoucher,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(strings.TrimSpace(*r.Email)) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if r.Company != nil && !validator.IsInSlice(*r.Company, ValidCompanies()) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "must be CAMPLUVAS or LOCATEX"})
	}
	if r.CPF != nil && !validator.IsValidCPF(*r.CPF) {
		errs = append(errs, validator.ValidationError{Field: "cpf", Message: "is not a valid CPF"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkVoucherRequest struct {
	Meal money.Value `json:"meal"`
	Food money.Value `json:"food"`
}

func (r *BulkVoucherRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Meal.Dec().IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "meal", Message: "must be non-negative"})
	}
	if r.Food.Dec().IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "food", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	HireDate  string  `json:"hireDate"`
	ExitDate  *string `json:"exitDate,omitempty"`
	BirthDate string  `json:"birthDate"`
	Company   string  `json:"company"`

	Address    string `json:"address"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	State      string `json:"state"`
	CEP        string `json:"cep"`
	FatherName string `json:"fatherName"`
	MotherName string `json:"motherName"`

	CPF          string `json:"cpf"`
	CPFFormatted string `json:"cpfFormatted,omitempty"`
	RG           string `json:"rg"`
	CTPS         string `json:"ctps"`
	PIS          string `json:"pis"`
	VoterID      string `json:"voterId"`

	BaseSalary         decimal.Decimal `json:"baseSalary"`
	FunctionBonus      decimal.Decimal `json:"functionBonus"`
	DefaultMealVoucher decimal.Decimal `json:"defaultMealVoucher"`
	DefaultFoodVoucher decimal.Decimal `json:"defaultFoodVoucher"`

	Notes     *string `json:"notes,omitempty"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"createdAt,omitempty"`
}
