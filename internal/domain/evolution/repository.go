package evolution

import "context"

// EvolutionRepository is the gateway to the optional salary_evolution
// collection. Every method may return ErrTableMissing when the relation has
// not been created in the store.
type EvolutionRepository interface {
	// List returns the full history, newest first. Filtering by employee
	// name is done client-side over this scan.
	List(ctx context.Context) ([]SalaryEvolution, error)
	Create(ctx context.Context, s SalaryEvolution) (SalaryEvolution, error)
	Delete(ctx context.Context, id string) error
}

// EvolutionService drives the salary history use cases.
type EvolutionService interface {
	List(ctx context.Context) ([]EvolutionResponse, error)
	Create(ctx context.Context, req CreateEvolutionRequest) (EvolutionResponse, error)
	Delete(ctx context.Context, id string) error
}
