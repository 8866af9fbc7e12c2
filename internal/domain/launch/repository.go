package launch

import "context"

// LaunchRepository is the gateway to the launches collection.
type LaunchRepository interface {
	// List returns all launches ordered by closing date descending.
	List(ctx context.Context) ([]MonthlyLaunch, error)
	GetByID(ctx context.Context, id string) (MonthlyLaunch, error)
	Create(ctx context.Context, l MonthlyLaunch) (MonthlyLaunch, error)
	// Update replaces the stored row with the full record. The service has
	// already merged the patch and recomputed the derived totals.
	Update(ctx context.Context, l MonthlyLaunch) (MonthlyLaunch, error)
	// Delete is idempotent: removing an id that no longer exists is not an error.
	Delete(ctx context.Context, id string) error
}

// LaunchService drives the monthly payroll launch use cases.
type LaunchService interface {
	List(ctx context.Context) ([]LaunchResponse, error)
	Get(ctx context.Context, id string) (LaunchResponse, error)
	Create(ctx context.Context, req CreateLaunchRequest) (LaunchResponse, error)
	QuickCreate(ctx context.Context, req QuickLaunchRequest) (LaunchResponse, error)
	Update(ctx context.Context, req UpdateLaunchRequest) (LaunchResponse, error)
	Delete(ctx context.Context, id string) error
}
