package account

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/ignite/caseflow/internal/domain"
	"github.com/ignite/caseflow/internal/emailcheck"
)

// mockRepo is an in-memory repository for testing.
type mockRepo struct {
	mu    sync.RWMutex
	store map[string]*domain.Account // keyed by email
}

func newMockRepo() *mockRepo {
	return &mockRepo{store: make(map[string]*domain.Account)}
}

func (m *mockRepo) Create(_ context.Context, a *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.store[a.Email]; exists {
		return ErrEmailTaken
	}
	m.store[a.Email] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.store {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.store[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *a
	return &clone, nil
}

type stubValidator struct {
	verdicts map[string]emailcheck.Verdict
}

func (s *stubValidator) Validate(_ context.Context, raw string) emailcheck.Verdict {
	if v, ok := s.verdicts[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return v
	}
	return emailcheck.Verdict{Valid: true}
}

func TestRegister_StoresNormalizedEmailAndWarnings(t *testing.T) {
	repo := newMockRepo()
	validator := &stubValidator{verdicts: map[string]emailcheck.Verdict{
		"admin@validcorp.com": {
			Valid:    true,
			Warnings: []string{`"admin" is a role-based mailbox; a personal address is preferred`},
		},
	}}
	svc := NewService(repo, validator)

	a, verdict, err := svc.Register(context.Background(), "  Admin@ValidCorp.com ", "Ops Team")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if a.Email != "admin@validcorp.com" {
		t.Errorf("email = %q, want normalized form", a.Email)
	}
	if len(a.EmailWarnings) != 1 {
		t.Errorf("warnings = %v, want the role warning carried onto the account", a.EmailWarnings)
	}
	if !verdict.Valid {
		t.Error("verdict should be valid")
	}
}

func TestRegister_RejectsInvalidEmail(t *testing.T) {
	validator := &stubValidator{verdicts: map[string]emailcheck.Verdict{
		"bad@nowhere.invalid": {
			Valid:  false,
			Errors: []string{"domain does not exist or cannot receive emails"},
		},
	}}
	svc := NewService(newMockRepo(), validator)

	a, verdict, err := svc.Register(context.Background(), "bad@nowhere.invalid", "Jane")
	if !errors.Is(err, ErrEmailRejected) {
		t.Fatalf("Register() error = %v, want ErrEmailRejected", err)
	}
	if a != nil {
		t.Error("no account should be created on rejection")
	}
	if len(verdict.Errors) == 0 {
		t.Error("verdict errors must be propagated for the caller to display")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newMockRepo(), &stubValidator{})
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "jane@validcorp.com", "Jane"); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}
	if _, _, err := svc.Register(ctx, "JANE@validcorp.com", "Jane Again"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestRegister_RequiresName(t *testing.T) {
	svc := NewService(newMockRepo(), &stubValidator{})
	if _, _, err := svc.Register(context.Background(), "jane@validcorp.com", "  "); err == nil {
		t.Error("expected error for missing name")
	}
}
