// Package account implements submitter registration.
//
// Registration follows the same consumer contract as case intake: an
// address that fails the admissibility pipeline is a hard rejection,
// warnings are stored as advisory metadata, and suggestions are passed
// back to the caller as a UX hint.
package account
