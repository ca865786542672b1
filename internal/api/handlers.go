package api

import (
	"context"

	"github.com/ignite/caseflow/internal/domain"
	"github.com/ignite/caseflow/internal/emailcheck"
	"github.com/ignite/caseflow/internal/service/account"
	"github.com/ignite/caseflow/internal/service/intake"
)

// EmailValidator is the admissibility pipeline as consumed by the
// standalone validation endpoint.
type EmailValidator interface {
	Validate(ctx context.Context, raw string) emailcheck.Verdict
}

// Notifier sends post-submission confirmation emails. May be nil when
// notifications are disabled.
type Notifier interface {
	SendCaseReceived(ctx context.Context, c *domain.Case) error
}

// Handlers bundles the HTTP handlers and their service dependencies.
type Handlers struct {
	intake    *intake.Service
	accounts  *account.Service
	validator EmailValidator
	notifier  Notifier
}

// NewHandlers creates the handler set. notifier may be nil.
func NewHandlers(intakeSvc *intake.Service, accountSvc *account.Service, validator EmailValidator, notifier Notifier) *Handlers {
	return &Handlers{
		intake:    intakeSvc,
		accounts:  accountSvc,
		validator: validator,
		notifier:  notifier,
	}
}
