package employee

import (
	"github.com/shopspring/decimal"
)

// Company is the contracting legal entity.
type Company string

const (
	CompanyCampluvas Company = "CAMPLUVAS"
	CompanyLocatex   Company = "LOCATEX"
)

func ValidCompanies() []string {
	return []string{string(CompanyCampluvas), string(CompanyLocatex)}
}

// Employee is a person under contract. Dates travel as ISO "YYYY-MM-DD"
// strings, matching the store's columns. An ExitDate implies the employee
// is inactive.
type Employee struct {
	ID        string
	Name      string
	Email     string
	Role      string
	HireDate  string
	ExitDate  *string
	BirthDate string
	Company   Company

	Address    string
	Phone      string
	City       string
	State      string
	CEP        string
	FatherName string
	MotherName string

	CPF     string
	RG      string
	CTPS    string
	PIS     string
	VoterID string

	BaseSalary         decimal.Decimal
	FunctionBonus      decimal.Decimal
	DefaultMealVoucher decimal.Decimal
	DefaultFoodVoucher decimal.Decimal

	Notes     *string
	CreatedAt string
}

// Active reports whether the employee has no exit date on record.
func (e Employee) Active() bool {
	return e.ExitDate == nil || *e.ExitDate == ""
}
