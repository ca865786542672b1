package emailcheck

import "strings"

const maxLocalPartLength = 64 // RFC 5321 mailbox limit

// checkLocalPart applies the local-part format rules. The checks are
// independent: multiple violations accumulate so the caller gets the
// complete problem set in one report.
func checkLocalPart(local string) []string {
	var errs []string
	if local == "" {
		// The syntax stage already guarantees a non-empty local part;
		// kept as defense in depth for direct callers.
		return append(errs, msgLocalEmpty)
	}
	if len(local) > maxLocalPartLength {
		errs = append(errs, msgLocalTooLong)
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		errs = append(errs, msgLocalDotEdge)
	}
	if strings.Contains(local, "..") {
		errs = append(errs, msgLocalDoubleDot)
	}
	return errs
}
