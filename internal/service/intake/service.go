package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/caseflow/internal/domain"
	"github.com/ignite/caseflow/internal/emailcheck"
)

// EmailValidator is the admissibility pipeline as seen by this service.
// Satisfied by *emailcheck.Validator; tests substitute a stub.
type EmailValidator interface {
	Validate(ctx context.Context, raw string) emailcheck.Verdict
}

// Service implements case intake business logic. It is safe for
// concurrent use; all state lives in the repository.
type Service struct {
	repo      Repository
	validator EmailValidator
}

// NewService creates an intake service backed by the given repository
// and email validator.
func NewService(repo Repository, validator EmailValidator) *Service {
	return &Service{repo: repo, validator: validator}
}

// SubmitRequest carries the fields of a new case submission.
type SubmitRequest struct {
	SubmitterName  string `json:"submitter_name"`
	SubmitterEmail string `json:"submitter_email"`
	Category       string `json:"category"`
	Summary        string `json:"summary"`
}

// Submit validates the submitter's email and persists the case. The
// returned verdict is always populated so the API layer can surface
// warnings and suggestions; when the verdict carries hard errors the
// case is not persisted and ErrEmailRejected is returned.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.Case, emailcheck.Verdict, error) {
	if strings.TrimSpace(req.SubmitterName) == "" {
		return nil, emailcheck.Verdict{}, fmt.Errorf("submitter name is required")
	}
	if strings.TrimSpace(req.Summary) == "" {
		return nil, emailcheck.Verdict{}, fmt.Errorf("case summary is required")
	}

	verdict := s.validator.Validate(ctx, req.SubmitterEmail)
	if !verdict.Valid {
		return nil, verdict, ErrEmailRejected
	}

	now := time.Now().UTC()
	c := &domain.Case{
		ID:               uuid.New().String(),
		Reference:        newReference(now),
		SubmitterName:    strings.TrimSpace(req.SubmitterName),
		SubmitterEmail:   strings.ToLower(strings.TrimSpace(req.SubmitterEmail)),
		Category:         strings.TrimSpace(req.Category),
		Summary:          strings.TrimSpace(req.Summary),
		Status:           domain.CaseReceived,
		EmailWarnings:    verdict.Warnings,
		EmailSuggestions: verdict.Suggestions,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, verdict, fmt.Errorf("create case: %w", err)
	}
	return c, verdict, nil
}

// Get returns a case by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Case, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns cases matching the given filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]domain.Case, int, error) {
	return s.repo.List(ctx, filter)
}

// UpdateStatus moves a case through its lifecycle, enforcing the legal
// transition graph. Returns ErrInvalidTransition for illegal moves.
func (s *Service) UpdateStatus(ctx context.Context, id string, target domain.CaseStatus) (*domain.Case, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, target)
	}
	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, fmt.Errorf("update case status: %w", err)
	}
	c.Status = target
	return c, nil
}

// newReference builds a human-quotable case reference like
// CF-20260830-4F2A1C. Uniqueness is guaranteed by the uuid suffix.
func newReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("CF-%s-%s", now.Format("20060102"), suffix)
}
