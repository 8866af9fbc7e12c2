package evolution

import (
	"context"

	"github.com/rhpro/folha-backend-go/internal/domain/evolution"
)

type EvolutionServiceImpl struct {
	evolutionRepo evolution.EvolutionRepository
}

func NewEvolutionService(evolutionRepo evolution.EvolutionRepository) evolution.EvolutionService {
	return &EvolutionServiceImpl{evolutionRepo: evolutionRepo}
}

func mapEvolutionToResponse(e evolution.SalaryEvolution) evolution.EvolutionResponse {
	return evolution.EvolutionResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		EmployeeName:  e.EmployeeName,
		Date:          e.Date,
		BaseSalary:    e.BaseSalary,
		FunctionBonus: e.FunctionBonus,
		OtherEarnings: e.OtherEarnings,
		Role:          e.Role,
		Reason:        e.Reason,
		GrossTotal:    e.GrossTotal(),
		CreatedAt:     e.CreatedAt,
	}
}

func (s *EvolutionServiceImpl) List(ctx context.Context) ([]evolution.EvolutionResponse, error) {
	records, err := s.evolutionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]evolution.EvolutionResponse, 0, len(records))
	for _, e := range records {
		responses = append(responses, mapEvolutionToResponse(e))
	}
	return responses, nil
}

// Create appends a history entry. The live employee record is deliberately
// left untouched.
func (s *EvolutionServiceImpl) Create(ctx context.Context, req evolution.CreateEvolutionRequest) (evolution.EvolutionResponse, error) {
	if err := req.Validate(); err != nil {
		return evolution.EvolutionResponse{}, err
	}

	entry := evolution.SalaryEvolution{
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		Date:          req.Date,
		BaseSalary:    req.BaseSalary.Dec(),
		FunctionBonus: req.FunctionBonus.Dec(),
		OtherEarnings: req.OtherEarnings.Dec(),
		Role:          req.Role,
		Reason:        req.Reason,
	}

	created, err := s.evolutionRepo.Create(ctx, entry)
	if err != nil {
		return evolution.EvolutionResponse{}, err
	}
	return mapEvolutionToResponse(created), nil
}

func (s *EvolutionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.evolutionRepo.Delete(ctx, id)
}
