// Package intake implements the case submission workflow.
//
// Every submission runs the contact address through the email
// admissibility pipeline before anything is persisted: a verdict with
// hard errors rejects the case outright, while warnings and suggestions
// are carried onto the stored case as advisory metadata.
//
// The service layer contains pure business logic and depends on the
// Repository interface defined in repository.go. It never imports
// net/http or database/sql directly.
package intake
