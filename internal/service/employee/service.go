package employee

import (
	"context"
	"strings"

	"github.com/rhpro/folha-backend-go/internal/domain/employee"
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func mapEmployeeToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                 e.ID,
		Name:               e.Name,
		Email:              e.Email,
		Role:               e.Role,
		HireDate:           e.HireDate,
		ExitDate:           e.ExitDate,
		BirthDate:          e.BirthDate,
		Company:            string(e.Company),
		Address:            e.Address,
		Phone:              e.Phone,
		City:               e.City,
		State:              e.State,
		CEP:                e.CEP,
		FatherName:         e.FatherName,
		MotherName:         e.MotherName,
		CPF:                e.CPF,
		CPFFormatted:       validator.FormatCPF(e.CPF),
		RG:                 e.RG,
		CTPS:               e.CTPS,
		PIS:                e.PIS,
		VoterID:            e.VoterID,
		BaseSalary:         e.BaseSalary,
		FunctionBonus:      e.FunctionBonus,
		DefaultMealVoucher: e.DefaultMealVoucher,
		DefaultFoodVoucher: e.DefaultFoodVoucher,
		Notes:              e.Notes,
		Active:             e.Active(),
		CreatedAt:          e.CreatedAt,
	}
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, mapEmployeeToResponse(e))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(e), nil
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e := req.ToEntity()
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	e.CPF = validator.SanitizeCPF(e.CPF)

	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(created), nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &normalized
	}
	if req.CPF != nil {
		digits := validator.SanitizeCPF(*req.CPF)
		req.CPF = &digits
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) BulkUpdateVouchers(ctx context.Context, req employee.BulkVoucherRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepo.BulkUpdateVouchers(ctx, req.Meal.Dec(), req.Food.Dec())
}
