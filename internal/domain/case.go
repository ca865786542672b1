package domain

import "time"

// CaseStatus enumerates the lifecycle states of an intake case.
type CaseStatus string

const (
	CaseReceived    CaseStatus = "received"
	CaseUnderReview CaseStatus = "under_review"
	CaseAccepted    CaseStatus = "accepted"
	CaseRejected    CaseStatus = "rejected"
	CaseClosed      CaseStatus = "closed"
)

// caseTransitions lists the legal forward moves for each status.
var caseTransitions = map[CaseStatus][]CaseStatus{
	CaseReceived:    {CaseUnderReview, CaseRejected, CaseClosed},
	CaseUnderReview: {CaseAccepted, CaseRejected, CaseClosed},
	CaseAccepted:    {CaseClosed},
	CaseRejected:    {CaseClosed},
}

// CanTransitionTo reports whether a case may move from its current
// status to the target status.
func (s CaseStatus) CanTransitionTo(target CaseStatus) bool {
	for _, next := range caseTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the case is in a final state.
func (s CaseStatus) IsTerminal() bool {
	return s == CaseClosed
}

// Case represents one submitted intake case. EmailWarnings and
// EmailSuggestions capture the advisory channels of the admissibility
// verdict at submission time; an address with a hard validation error
// is never persisted at all.
type Case struct {
	ID               string     `json:"id" db:"id"`
	Reference        string     `json:"reference" db:"reference"`
	SubmitterName    string     `json:"submitter_name" db:"submitter_name"`
	SubmitterEmail   string     `json:"submitter_email" db:"submitter_email"`
	Category         string     `json:"category" db:"category"`
	Summary          string     `json:"summary" db:"summary"`
	Status           CaseStatus `json:"status" db:"status"`
	EmailWarnings    []string   `json:"email_warnings,omitempty" db:"email_warnings"`
	EmailSuggestions []string   `json:"email_suggestions,omitempty" db:"email_suggestions"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}
