package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/caseflow/internal/domain"
	"github.com/ignite/caseflow/internal/service/account"
)

type registerAccountResponse struct {
	Account     *domain.Account `json:"account"`
	Warnings    []string        `json:"warnings,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// HandleRegisterAccount registers a submitter profile.
//
//	POST /api/accounts
func (h *Handlers) HandleRegisterAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	a, verdict, err := h.accounts.Register(r.Context(), req.Email, req.Name)
	switch {
	case errors.Is(err, account.ErrEmailRejected):
		respondJSON(w, http.StatusUnprocessableEntity, emailRejectedResponse{
			Error:   "email address is not admissible",
			Verdict: verdict,
		})
	case errors.Is(err, account.ErrEmailTaken):
		respondError(w, http.StatusConflict, "email address already registered")
	case err != nil:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to register account")
	default:
		respondJSON(w, http.StatusCreated, registerAccountResponse{
			Account:     a,
			Warnings:    verdict.Warnings,
			Suggestions: verdict.Suggestions,
		})
	}
}

// HandleGetAccount returns an account by id.
//
//	GET /api/accounts/{id}
func (h *Handlers) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	a, err := h.accounts.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, account.ErrNotFound) {
		respondError(w, http.StatusNotFound, "account not found")
		return
	}
	if err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to load account")
		return
	}
	respondJSON(w, http.StatusOK, a)
}
