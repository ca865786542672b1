package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/caseflow/internal/domain"
	"github.com/ignite/caseflow/internal/emailcheck"
)

// EmailValidator is the admissibility pipeline as seen by this service.
type EmailValidator interface {
	Validate(ctx context.Context, raw string) emailcheck.Verdict
}

// Service implements registration business logic.
type Service struct {
	repo      Repository
	validator EmailValidator
}

// NewService creates an account service.
func NewService(repo Repository, validator EmailValidator) *Service {
	return &Service{repo: repo, validator: validator}
}

// Register validates the address, guards against duplicates, and
// persists the account. The verdict is always returned so the API can
// surface warnings and suggestions alongside either outcome.
func (s *Service) Register(ctx context.Context, email, name string) (*domain.Account, emailcheck.Verdict, error) {
	if strings.TrimSpace(name) == "" {
		return nil, emailcheck.Verdict{}, fmt.Errorf("name is required")
	}

	verdict := s.validator.Validate(ctx, email)
	if !verdict.Valid {
		return nil, verdict, ErrEmailRejected
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	if _, err := s.repo.GetByEmail(ctx, normalized); err == nil {
		return nil, verdict, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, verdict, fmt.Errorf("check existing account: %w", err)
	}

	now := time.Now().UTC()
	a := &domain.Account{
		ID:            uuid.New().String(),
		Email:         normalized,
		Name:          strings.TrimSpace(name),
		EmailWarnings: verdict.Warnings,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, verdict, fmt.Errorf("create account: %w", err)
	}
	return a, verdict, nil
}

// Get returns an account by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.GetByID(ctx, id)
}
