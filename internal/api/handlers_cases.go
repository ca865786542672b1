package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/caseflow/internal/domain"
	"github.com/ignite/caseflow/internal/emailcheck"
	"github.com/ignite/caseflow/internal/service/intake"
)

// submitCaseResponse pairs the created case with the advisory verdict
// channels so the frontend can show non-blocking notices.
type submitCaseResponse struct {
	Case        *domain.Case `json:"case"`
	Warnings    []string     `json:"warnings,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

// emailRejectedResponse is returned with 422 when the submitter email
// fails admissibility. The verdict errors are user-facing.
type emailRejectedResponse struct {
	Error   string             `json:"error"`
	Verdict emailcheck.Verdict `json:"verdict"`
}

// HandleSubmitCase accepts a new intake case.
//
//	POST /api/cases
func (h *Handlers) HandleSubmitCase(w http.ResponseWriter, r *http.Request) {
	var req intake.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, verdict, err := h.intake.Submit(r.Context(), req)
	if errors.Is(err, intake.ErrEmailRejected) {
		respondJSON(w, http.StatusUnprocessableEntity, emailRejectedResponse{
			Error:   "submitter email is not admissible",
			Verdict: verdict,
		})
		return
	}
	if err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to submit case")
		return
	}

	if h.notifier != nil {
		// Confirmation delivery is best effort and must not delay or
		// fail the submission response.
		caseCopy := *c
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := h.notifier.SendCaseReceived(ctx, &caseCopy); err != nil {
				log.Printf("[api] confirmation email for %s not sent: %v", caseCopy.Reference, err)
			}
		}()
	}

	respondJSON(w, http.StatusCreated, submitCaseResponse{
		Case:        c,
		Warnings:    verdict.Warnings,
		Suggestions: verdict.Suggestions,
	})
}

// HandleGetCase returns a single case by id.
//
//	GET /api/cases/{id}
func (h *Handlers) HandleGetCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.intake.Get(r.Context(), id)
	if errors.Is(err, intake.ErrNotFound) {
		respondError(w, http.StatusNotFound, "case not found")
		return
	}
	if err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to load case")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

type listCasesResponse struct {
	Cases []domain.Case `json:"cases"`
	Meta  listMeta      `json:"meta"`
}

// HandleListCases returns a paginated case list, optionally filtered
// by status or a free-text search over submitter name and summary.
//
//	GET /api/cases?status=received&page=1&limit=25
func (h *Handlers) HandleListCases(w http.ResponseWriter, r *http.Request) {
	window := parsePageWindow(r, 25, 200)

	cases, total, err := h.intake.List(r.Context(), intake.ListFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
		Limit:  window.Limit,
		Offset: window.offset(),
	})
	if err != nil {
		respondSafeError(w, http.StatusInternalServerError, err, "failed to list cases")
		return
	}
	if cases == nil {
		cases = []domain.Case{}
	}
	respondJSON(w, http.StatusOK, listCasesResponse{
		Cases: cases,
		Meta:  newListMeta(window, total),
	})
}

// HandleUpdateCaseStatus moves a case through its lifecycle.
//
//	PATCH /api/cases/{id}/status
func (h *Handlers) HandleUpdateCaseStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status domain.CaseStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		respondError(w, http.StatusBadRequest, "status is required")
		return
	}

	c, err := h.intake.UpdateStatus(r.Context(), id, req.Status)
	switch {
	case errors.Is(err, intake.ErrNotFound):
		respondError(w, http.StatusNotFound, "case not found")
	case errors.Is(err, intake.ErrInvalidTransition):
		respondError(w, http.StatusConflict, err.Error())
	case err != nil:
		respondSafeError(w, http.StatusInternalServerError, err, "failed to update case status")
	default:
		respondJSON(w, http.StatusOK, c)
	}
}
