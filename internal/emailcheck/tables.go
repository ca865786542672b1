package emailcheck

// Tables holds the static policy data consulted by the policy stage:
// disposable mail domains, generic role mailboxes, and known domain
// misspellings mapped to their canonical form.
//
// Tables are seeded once (at process start) and must not be mutated
// after being handed to a Validator. Read-only tables are safe for
// arbitrarily many concurrent validations without synchronization.
type Tables struct {
	disposable map[string]bool
	roles      map[string]bool
	typoFixes  map[string]string
}

// DefaultTables returns tables seeded with the built-in policy data.
// Callers may extend the result with the Add* methods before wiring it
// into a Validator.
func DefaultTables() *Tables {
	t := &Tables{
		disposable: make(map[string]bool),
		roles:      make(map[string]bool),
		typoFixes:  make(map[string]string),
	}
	t.seed()
	return t
}

func (t *Tables) seed() {
	disposable := []string{
		"mailinator.com", "guerrillamail.com", "10minutemail.com",
		"tempmail.com", "temp-mail.org", "throwawaymail.com",
		"yopmail.com", "trashmail.com", "getnada.com", "maildrop.cc",
		"sharklasers.com", "dispostable.com", "fakeinbox.com",
		"mailnesia.com", "discard.email", "mintemail.com",
		// Reserved/testing domains are never deliverable addresses.
		"example.com", "example.org", "example.net", "test.com",
		"localhost",
	}
	roles := []string{
		"admin", "administrator", "support", "info", "contact",
		"sales", "billing", "help", "noreply", "no-reply", "donotreply",
		"postmaster", "webmaster", "hostmaster", "abuse", "marketing",
		"office", "hr", "jobs", "security", "root", "hello", "team",
		"mail", "newsletter",
	}
	typos := map[string]string{
		"gmial.com":      "gmail.com",
		"gmal.com":       "gmail.com",
		"gamil.com":      "gmail.com",
		"gnail.com":      "gmail.com",
		"gmai.com":       "gmail.com",
		"gmaill.com":     "gmail.com",
		"gmail.co":       "gmail.com",
		"hotmial.com":    "hotmail.com",
		"hotmal.com":     "hotmail.com",
		"hotmai.com":     "hotmail.com",
		"hotmail.co":     "hotmail.com",
		"yaho.com":       "yahoo.com",
		"yahooo.com":     "yahoo.com",
		"yhaoo.com":      "yahoo.com",
		"yahoo.co":       "yahoo.com",
		"outlok.com":     "outlook.com",
		"outloo.com":     "outlook.com",
		"outlook.co":     "outlook.com",
		"iclod.com":      "icloud.com",
		"icluod.com":     "icloud.com",
		"protonmial.com": "protonmail.com",
	}

	for _, d := range disposable {
		t.disposable[d] = true
	}
	for _, r := range roles {
		t.roles[r] = true
	}
	for mistyped, canonical := range typos {
		t.typoFixes[mistyped] = canonical
	}
}

// AddDisposableDomains marks additional domains as disposable. Only
// valid before the tables are wired into a Validator.
func (t *Tables) AddDisposableDomains(domains ...string) {
	for _, d := range domains {
		t.disposable[normalize(d)] = true
	}
}

// AddRoleAccounts marks additional local parts as role mailboxes.
func (t *Tables) AddRoleAccounts(locals ...string) {
	for _, l := range locals {
		t.roles[normalize(l)] = true
	}
}

// AddTypoFix maps a mistyped domain to its canonical form.
func (t *Tables) AddTypoFix(mistyped, canonical string) {
	t.typoFixes[normalize(mistyped)] = normalize(canonical)
}

// IsDisposable reports whether a domain is on the disposable blocklist.
func (t *Tables) IsDisposable(domain string) bool { return t.disposable[domain] }

// IsRoleAccount reports whether a local part is a generic role mailbox.
func (t *Tables) IsRoleAccount(local string) bool { return t.roles[local] }

// TypoFix returns the canonical domain for a known misspelling.
func (t *Tables) TypoFix(domain string) (string, bool) {
	canonical, ok := t.typoFixes[domain]
	return canonical, ok
}
