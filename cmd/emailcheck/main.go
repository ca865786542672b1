// Command emailcheck runs the admissibility pipeline against addresses
// given on the command line, using live DNS. Exit code 1 if any
// address is inadmissible.
//
//	go run ./cmd/emailcheck jane@validcorp.com admin@gmial.com
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ignite/caseflow/internal/emailcheck"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Second, "per-lookup DNS timeout")
	flag.Parse()

	addresses := flag.Args()
	if len(addresses) == 0 {
		fmt.Fprintln(os.Stderr, "usage: emailcheck [-timeout 5s] address [address ...]")
		os.Exit(2)
	}

	validator := emailcheck.New(emailcheck.Config{LookupTimeout: *timeout})
	ctx := context.Background()

	anyInvalid := false
	for _, addr := range addresses {
		verdict := validator.Validate(ctx, addr)
		if verdict.Valid {
			fmt.Printf("PASS  %s\n", addr)
		} else {
			anyInvalid = true
			fmt.Printf("FAIL  %s\n", addr)
		}
		for _, e := range verdict.Errors {
			fmt.Printf("      error: %s\n", e)
		}
		for _, w := range verdict.Warnings {
			fmt.Printf("      warning: %s\n", w)
		}
		for _, s := range verdict.Suggestions {
			fmt.Printf("      suggestion: %s\n", s)
		}
	}

	if anyInvalid {
		os.Exit(1)
	}
}
