package api

import (
	"encoding/json"
	"net/http"
)

// HandleValidateEmail runs the admissibility pipeline on one address
// and returns the full verdict. Always 200: an inadmissible address is
// a successful validation with Valid=false, not an HTTP error.
//
//	POST /api/email/validate
func (h *Handlers) HandleValidateEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	respondJSON(w, http.StatusOK, h.validator.Validate(r.Context(), req.Email))
}
