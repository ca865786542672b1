package emailcheck

import (
	"regexp"
	"strings"
)

// addressPattern is the structural grammar for a full address: exactly
// one @, a local part from the RFC 5322 atom character set, and a
// domain of dot-separated labels (1-63 chars, alphanumeric with
// internal hyphens only) with at least one dot. Input is normalized to
// lower case before matching, so the pattern only needs [a-z].
var addressPattern = regexp.MustCompile(
	`^[a-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+` +
		`@[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?` +
		`(?:\.[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)+$`)

// AddressParts is the local-part/domain split of an address that
// already passed the syntax stage. Both fields are always non-empty.
type AddressParts struct {
	Local  string
	Domain string
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// checkSyntax validates the normalized address against the structural
// pattern. A failure is terminal for the whole pipeline: no later stage
// runs and no DNS query is issued for garbage input.
func checkSyntax(email string) bool {
	return addressPattern.MatchString(email)
}

// splitAddress splits a syntax-valid address at the @. The local-part
// character class excludes @, so the address contains exactly one.
func splitAddress(email string) AddressParts {
	at := strings.LastIndex(email, "@")
	return AddressParts{Local: email[:at], Domain: email[at+1:]}
}
