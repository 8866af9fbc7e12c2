package evolution

import "errors"

var (
	ErrEvolutionNotFound = errors.New("salary evolution entry not found")

	// ErrTableMissing means the salary_evolution relation does not exist in
	// the store yet. The collection is optional infrastructure; callers
	// surface this as a "setup required" state, not a generic failure.
	ErrTableMissing = errors.New("salary_evolution table does not exist")
)
