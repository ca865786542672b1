package emailcheck

import (
	"context"
	"net"
)

// Resolver is the DNS capability the liveness stage depends on. It is
// satisfied by *net.Resolver; tests substitute a deterministic fake so
// no real network I/O happens.
type Resolver interface {
	// LookupMX returns the MX records for a domain, sorted by preference.
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)

	// LookupIPAddr resolves a domain's address records. Used only as a
	// liveness fallback when the domain has no MX records.
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// systemResolver returns the process-wide resolver used when no
// explicit Resolver is injected.
func systemResolver() Resolver {
	return net.DefaultResolver
}
