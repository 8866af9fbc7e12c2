package advance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rhpro/folha-backend-go/internal/domain/advance"
	"github.com/rhpro/folha-backend-go/internal/domain/employee"
)

type AdvanceServiceImpl struct {
	advanceRepo  advance.AdvanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, employeeRepo employee.EmployeeRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{advanceRepo: advanceRepo, employeeRepo: employeeRepo}
}

func mapAdvanceToResponse(a advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		EmployeeName:    a.EmployeeName,
		Period:          a.Period,
		BaseSalary:      a.BaseSalary,
		FunctionBonus:   a.FunctionBonus,
		StandardAdvance: a.StandardAdvance,
		OtherAdvances:   a.OtherAdvances,
		TotalAdvance:    a.TotalAdvance,
		CreatedAt:       a.CreatedAt,
	}
}

func (s *AdvanceServiceImpl) GetByPeriod(ctx context.Context, period string) ([]advance.AdvanceResponse, error) {
	stored, err := s.advanceRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceResponse, 0, len(stored))
	for _, a := range stored {
		responses = append(responses, mapAdvanceToResponse(a))
	}
	return responses, nil
}

// Save replaces the period's batch. Delete then insert run as two separate
// statements; if the insert fails the period is left empty until the
// operator saves again.
func (s *AdvanceServiceImpl) Save(ctx context.Context, req advance.SaveAdvancesRequest) ([]advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	other := make(map[string]decimal.Decimal, len(req.OtherAdvances))
	for id, v := range req.OtherAdvances {
		other[id] = v.Dec()
	}

	batch := advance.BuildBatch(employees, other, req.Period)

	if err := s.advanceRepo.DeleteByPeriod(ctx, req.Period); err != nil {
		return nil, err
	}
	if len(batch) > 0 {
		if err := s.advanceRepo.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
	}

	saved, err := s.advanceRepo.ListByPeriod(ctx, req.Period)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceResponse, 0, len(saved))
	for _, a := range saved {
		responses = append(responses, mapAdvanceToResponse(a))
	}
	return responses, nil
}
