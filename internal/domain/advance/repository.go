package advance

import "context"

// AdvanceRepository is the gateway to the advances collection.
type AdvanceRepository interface {
	// ListByPeriod returns the stored batch for an exact period match.
	ListByPeriod(ctx context.Context, period string) ([]Advance, error)
	// DeleteByPeriod removes every record for the period. Deleting a period
	// that has no records is not an error.
	DeleteByPeriod(ctx context.Context, period string) error
	// CreateBatch inserts the records as one statement.
	CreateBatch(ctx context.Context, batch []Advance) error
}

// AdvanceService drives the fortnightly advance use cases.
type AdvanceService interface {
	GetByPeriod(ctx context.Context, period string) ([]AdvanceResponse, error)
	// Save replaces the period's batch: delete everything for the period,
	// then insert one fresh record per current employee. The two steps are
	// sequential and non-atomic; a failure in between leaves the period
	// empty until the operator saves again.
	Save(ctx context.Context, req SaveAdvancesRequest) ([]AdvanceResponse, error)
}
