// Package emailcheck implements the email admissibility pipeline.
//
// This is the single source of truth for whether a submitted email
// address is acceptable for case intake. An address passes through a
// fixed sequence of stages: syntax, local-part rules, domain liveness
// (live MX lookup with A-record fallback) and policy (disposable
// domains, role mailboxes, typo correction). The outcome is a single
// Verdict with independent error, warning and suggestion channels.
//
// The pipeline never performs SMTP verification; it only confirms the
// domain is structurally and operationally capable of receiving mail
// per DNS records.
//
// The Validator contains pure decision logic plus one external side
// effect (DNS queries) behind the Resolver interface defined in
// resolver.go. It never imports net/http or database/sql.
package emailcheck
