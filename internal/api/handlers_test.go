package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/caseflow/internal/config"
	"github.com/ignite/caseflow/internal/domain"
	"github.com/ignite/caseflow/internal/emailcheck"
	"github.com/ignite/caseflow/internal/service/account"
	"github.com/ignite/caseflow/internal/service/intake"
)

// staticResolver serves canned MX records so the full pipeline runs in
// tests without network I/O.
type staticResolver struct {
	mx map[string][]*net.MX
}

func (s *staticResolver) LookupMX(_ context.Context, domain string) ([]*net.MX, error) {
	if records, ok := s.mx[domain]; ok {
		return records, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: domain, IsNotFound: true}
}

func (s *staticResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

type memCaseRepo struct {
	mu    sync.RWMutex
	store map[string]*domain.Case
}

func (m *memCaseRepo) Create(_ context.Context, c *domain.Case) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[c.ID] = c
	return nil
}

func (m *memCaseRepo) GetByID(_ context.Context, id string) (*domain.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.store[id]
	if !ok {
		return nil, intake.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (m *memCaseRepo) List(_ context.Context, f intake.ListFilter) ([]domain.Case, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Case
	for _, c := range m.store {
		if f.Status != "" && string(c.Status) != f.Status {
			continue
		}
		out = append(out, *c)
	}
	return out, len(out), nil
}

func (m *memCaseRepo) UpdateStatus(_ context.Context, id string, status domain.CaseStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.store[id]
	if !ok {
		return intake.ErrNotFound
	}
	c.Status = status
	return nil
}

type memAccountRepo struct {
	mu    sync.RWMutex
	store map[string]*domain.Account
}

func (m *memAccountRepo) Create(_ context.Context, a *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.store[a.Email]; exists {
		return account.ErrEmailTaken
	}
	m.store[a.Email] = a
	return nil
}

func (m *memAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.store {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, account.ErrNotFound
}

func (m *memAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.store[email]
	if !ok {
		return nil, account.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

type recordingNotifier struct {
	sent chan *domain.Case
}

func (r *recordingNotifier) SendCaseReceived(_ context.Context, c *domain.Case) error {
	r.sent <- c
	return nil
}

func newTestRouter(t *testing.T, notifier Notifier) http.Handler {
	t.Helper()
	resolver := &staticResolver{mx: map[string][]*net.MX{
		"validcorp.com":  {{Host: "mx1.validcorp.com", Pref: 10}},
		"mailinator.com": {{Host: "mx1.mailinator.com", Pref: 10}},
	}}
	validator := emailcheck.New(emailcheck.Config{Resolver: resolver})

	intakeSvc := intake.NewService(&memCaseRepo{store: make(map[string]*domain.Case)}, validator)
	accountSvc := account.NewService(&memAccountRepo{store: make(map[string]*domain.Account)}, validator)

	h := NewHandlers(intakeSvc, accountSvc, validator, notifier)
	return SetupRoutes(h, NewHealthChecker(nil, nil))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleValidateEmail(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/email/validate", map[string]string{
		"email": "jane@validcorp.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var verdict emailcheck.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.True(t, verdict.Valid)
	assert.Empty(t, verdict.Errors)
}

func TestHandleValidateEmail_InvalidStaysHTTP200(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/email/validate", map[string]string{
		"email": "not-an-address",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var verdict emailcheck.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.False(t, verdict.Valid)
	assert.Len(t, verdict.Errors, 1)
}

func TestHandleSubmitCase(t *testing.T) {
	notifier := &recordingNotifier{sent: make(chan *domain.Case, 1)}
	router := newTestRouter(t, notifier)

	rec := doJSON(t, router, http.MethodPost, "/api/cases", intake.SubmitRequest{
		SubmitterName:  "Jane Doe",
		SubmitterEmail: "jane@validcorp.com",
		Category:       "billing",
		Summary:        "Charged twice",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp submitCaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.CaseReceived, resp.Case.Status)
	assert.NotEmpty(t, resp.Case.Reference)

	select {
	case sent := <-notifier.sent:
		assert.Equal(t, resp.Case.ID, sent.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation notifier was not invoked")
	}
}

func TestHandleSubmitCase_DisposableEmailRejected(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/cases", intake.SubmitRequest{
		SubmitterName:  "Jane Doe",
		SubmitterEmail: "jane@mailinator.com", // live MX, still blocked by policy
		Summary:        "Charged twice",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp emailRejectedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Verdict.Valid)
	assert.NotEmpty(t, resp.Verdict.Errors)
}

func TestHandleGetCase_NotFound(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/cases/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleUpdateCaseStatus_IllegalTransition(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/cases", intake.SubmitRequest{
		SubmitterName:  "Jane Doe",
		SubmitterEmail: "jane@validcorp.com",
		Summary:        "Charged twice",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp submitCaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = doJSON(t, router, http.MethodPatch, "/api/cases/"+resp.Case.ID+"/status", map[string]string{
		"status": "accepted", // received -> accepted skips review
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleRegisterAccount_Duplicate(t *testing.T) {
	router := newTestRouter(t, nil)
	body := map[string]string{"email": "jane@validcorp.com", "name": "Jane"}

	rec := doJSON(t, router, http.MethodPost, "/api/accounts", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/accounts", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleListCases_WindowAndFilter(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, summary := range []string{"Charged twice", "Refund missing", "Wrong invoice"} {
		rec := doJSON(t, router, http.MethodPost, "/api/cases", intake.SubmitRequest{
			SubmitterName:  "Jane Doe",
			SubmitterEmail: "jane@validcorp.com",
			Summary:        summary,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/cases?status=received&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listCasesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Limit)
	assert.Len(t, resp.Cases, 3) // in-memory repo ignores the window; meta still reflects it
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.True(t, resp.Meta.HasMore)

	rec = doJSON(t, router, http.MethodGet, "/api/cases?status=closed", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp = listCasesResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Meta.Total)
	assert.NotNil(t, resp.Cases)
	assert.Empty(t, resp.Cases)
}

func TestNewServer_AddrFromConfigAndRouting(t *testing.T) {
	h := NewHandlers(nil, nil, nil, nil)
	srv := NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 9090}, h, NewHealthChecker(nil, nil))

	assert.Equal(t, "127.0.0.1:9090", srv.Addr())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "not_configured", status.Checks["database"].Status)
}
