package emailcheck

import (
	"context"
	"time"
)

// Verdict-channel messages. Exact strings are part of the API contract:
// callers propagate them to end users and tests assert on them.
const (
	msgBadSyntax      = "invalid email address format"
	msgLocalEmpty     = "local part is empty"
	msgLocalTooLong   = "local part exceeds 64 characters"
	msgLocalDotEdge   = "local part must not start or end with a dot"
	msgLocalDoubleDot = "local part must not contain consecutive dots"
	msgDomainEmpty    = "domain is empty"
	msgDomainTooLong  = "domain exceeds 253 characters"
	msgDomainNoTLD    = "domain must contain a top-level domain and not end with a dot"
	msgDomainLiteral  = "domain must be a DNS name, not localhost or an IP address"
	msgDomainDead     = "domain does not exist or cannot receive emails"
	msgNoMXWarning    = "domain exists but has no MX record for email delivery"
	msgDisposable     = "disposable email domains are not accepted"
	msgRoleWarningFmt = "%q is a role-based mailbox; a personal address is preferred"
	msgSuggestionFmt  = "did you mean: %s@%s?"
)

const defaultLookupTimeout = 5 * time.Second

// Verdict is the complete, immutable result of one validation call.
// Valid is true exactly when Errors is empty; Warnings and Suggestions
// are advisory and never affect Valid. Message order within each
// channel follows stage execution order (syntax, local part, liveness,
// policy) so verdicts are deterministic and directly comparable.
type Verdict struct {
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Config wires a Validator's collaborators. The zero value is usable:
// it means the system DNS resolver, the built-in policy tables, a 5s
// per-lookup timeout and no liveness cache.
type Config struct {
	Resolver      Resolver
	Tables        *Tables
	LookupTimeout time.Duration
	Cache         *LivenessCache
}

// Validator runs the admissibility pipeline. It holds no per-call
// state; a single Validator serves arbitrarily many concurrent calls.
type Validator struct {
	resolver Resolver
	tables   *Tables
	timeout  time.Duration
	cache    *LivenessCache
}

// New creates a Validator from the given configuration.
func New(cfg Config) *Validator {
	v := &Validator{
		resolver: cfg.Resolver,
		tables:   cfg.Tables,
		timeout:  cfg.LookupTimeout,
		cache:    cfg.Cache,
	}
	if v.resolver == nil {
		v.resolver = systemResolver()
	}
	if v.tables == nil {
		v.tables = DefaultTables()
	}
	if v.timeout <= 0 {
		v.timeout = defaultLookupTimeout
	}
	return v
}

// Validate runs every stage against the raw address and returns the
// merged verdict. It never panics on malformed input and never
// propagates a network error: all failure modes become entries in the
// verdict's error channel.
//
// Stage order: syntax (terminal on failure), then local-part and domain
// liveness (both always run, errors accumulate), then policy, then
// assembly. Only the liveness stage touches the network.
func (v *Validator) Validate(ctx context.Context, raw string) Verdict {
	email := normalize(raw)

	if !checkSyntax(email) {
		// Terminal: one structural error, no DNS round trip.
		return Verdict{Valid: false, Errors: []string{msgBadSyntax}}
	}
	parts := splitAddress(email)

	var verdict Verdict
	verdict.Errors = append(verdict.Errors, checkLocalPart(parts.Local)...)

	livenessErrs, livenessWarnings := v.checkDomain(ctx, parts.Domain)
	verdict.Errors = append(verdict.Errors, livenessErrs...)
	verdict.Warnings = append(verdict.Warnings, livenessWarnings...)

	policyErrs, policyWarnings, suggestions := v.checkPolicy(parts)
	verdict.Errors = append(verdict.Errors, policyErrs...)
	verdict.Warnings = append(verdict.Warnings, policyWarnings...)
	verdict.Suggestions = append(verdict.Suggestions, suggestions...)

	verdict.Valid = len(verdict.Errors) == 0
	return verdict
}
