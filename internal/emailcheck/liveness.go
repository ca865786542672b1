package emailcheck

import (
	"context"
	"errors"
	"net"
	"strings"
)

const maxDomainLength = 253 // RFC 1035 name limit

// Liveness is the deliverability state of a domain as observed via DNS.
type Liveness string

const (
	// LivenessMX means the domain publishes at least one MX record.
	LivenessMX Liveness = "mx_ok"
	// LivenessAOnly means the domain has no MX records but resolves to
	// an address, so mail may still be routed via the implicit MX-to-A
	// fallback of RFC 5321.
	LivenessAOnly Liveness = "a_only"
	// LivenessNone means neither MX nor A resolution succeeded.
	LivenessNone Liveness = "unreachable"
)

// checkDomain runs the domain liveness stage. Structural impossibility
// (no TLD, IP literal) is terminal for this stage only; the over-length
// check accumulates so every problem surfaces at once.
func (v *Validator) checkDomain(ctx context.Context, domain string) (errs, warnings []string) {
	if domain == "" {
		return []string{msgDomainEmpty}, nil
	}
	if len(domain) > maxDomainLength {
		errs = append(errs, msgDomainTooLong)
	}
	// No DNS query against a domain with no TLD.
	if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return append(errs, msgDomainNoTLD), nil
	}
	// Mail domains must be DNS names, not addresses.
	if domain == "localhost" || net.ParseIP(domain) != nil {
		return append(errs, msgDomainLiteral), nil
	}

	switch v.resolveLiveness(ctx, domain) {
	case LivenessMX:
		// Deliverable, nothing to report.
	case LivenessAOnly:
		warnings = append(warnings, msgNoMXWarning)
	case LivenessNone:
		errs = append(errs, msgDomainDead)
	}
	return errs, warnings
}

// resolveLiveness consults the cache first, then DNS. Cache failures
// degrade to a live lookup and never surface to the caller.
func (v *Validator) resolveLiveness(ctx context.Context, domain string) Liveness {
	if v.cache != nil {
		if state, ok := v.cache.Get(ctx, domain); ok {
			return state
		}
	}

	state, timedOut := v.lookupLiveness(ctx, domain)

	// Only definitive DNS answers are cached. A canceled caller or a
	// lookup deadline makes every resolution fail; writing that state
	// would reject a healthy domain for the full TTL.
	if v.cache != nil && ctx.Err() == nil && !timedOut {
		v.cache.Put(ctx, domain, state)
	}
	return state
}

// lookupLiveness performs the MX-then-A resolution with a bounded
// per-lookup timeout. A timeout or resolver error is treated identically
// to an empty record set: the stage always produces a state, never an
// unbounded wait or a propagated network error. timedOut is true when an
// unreachable outcome was caused by a deadline rather than a real answer.
func (v *Validator) lookupLiveness(ctx context.Context, domain string) (state Liveness, timedOut bool) {
	mxCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()
	records, mxErr := v.resolver.LookupMX(mxCtx, domain)
	if mxErr == nil && len(records) > 0 {
		return LivenessMX, false
	}

	aCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()
	addrs, aErr := v.resolver.LookupIPAddr(aCtx, domain)
	if aErr == nil && len(addrs) > 0 {
		return LivenessAOnly, false
	}
	return LivenessNone, isLookupTimeout(mxErr) || isLookupTimeout(aErr)
}

func isLookupTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsTimeout
}
