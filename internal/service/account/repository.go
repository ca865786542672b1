package account

import (
	"context"

	"github.com/ignite/caseflow/internal/domain"
)

// Repository defines the data access contract for submitter accounts.
type Repository interface {
	// Create persists a new account. Returns ErrEmailTaken if the
	// email is already registered.
	Create(ctx context.Context, a *domain.Account) error

	// GetByID returns an account by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.Account, error)

	// GetByEmail returns an account by normalized email address.
	// Returns ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}
