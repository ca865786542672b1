package intake

import (
	"context"

	"github.com/ignite/caseflow/internal/domain"
)

// Repository defines the data access contract for intake cases.
type Repository interface {
	// Create persists a new case.
	Create(ctx context.Context, c *domain.Case) error

	// GetByID returns a case by its id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.Case, error)

	// List returns cases matching the filter plus the total count.
	List(ctx context.Context, filter ListFilter) ([]domain.Case, int, error)

	// UpdateStatus moves a case to a new status. Returns ErrNotFound
	// if the case doesn't exist.
	UpdateStatus(ctx context.Context, id string, status domain.CaseStatus) error
}

// ListFilter controls pagination and filtering for case lists.
type ListFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}
