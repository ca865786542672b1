package emailcheck

import "fmt"

// checkPolicy applies the three policy lookups. The checks are
// order-insensitive and independent: a disposable match is a hard error
// even when liveness succeeded, a role match only warns, and a typo
// suggestion is emitted regardless of the validity outcome.
func (v *Validator) checkPolicy(parts AddressParts) (errs, warnings, suggestions []string) {
	if v.tables.IsDisposable(parts.Domain) {
		errs = append(errs, msgDisposable)
	}
	if v.tables.IsRoleAccount(parts.Local) {
		warnings = append(warnings, fmt.Sprintf(msgRoleWarningFmt, parts.Local))
	}
	if canonical, ok := v.tables.TypoFix(parts.Domain); ok {
		suggestions = append(suggestions, fmt.Sprintf(msgSuggestionFmt, parts.Local, canonical))
	}
	return errs, warnings, suggestions
}
