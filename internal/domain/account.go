package domain

import "time"

// Account represents a registered submitter profile. The email address
// stored here always passed the admissibility pipeline; warnings raised
// at registration (role mailbox, missing MX) are kept as advisory
// metadata for the operator.
type Account struct {
	ID            string    `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	Name          string    `json:"name" db:"name"`
	EmailWarnings []string  `json:"email_warnings,omitempty" db:"email_warnings"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
