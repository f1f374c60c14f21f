// Package assert terminates the process on invariant violations.
//
// It is reserved for runtime failures the documented contracts say
// cannot happen under correct use, such as a native call failing on a
// handle this library constructed and validated. Continuing past one of
// these would mean operating on a corrupted buffer, so the process
// stops with a diagnostic instead of returning an error the caller
// could not act on.
package assert

import (
	"log"
)

func That(truth bool, format string, a ...any) {
	if !truth {
		log.Fatalf(format, a...)
	}
}

// Never marks a branch the contracts rule out.
func Never(format string, a ...any) {
	log.Fatalf(format, a...)
}
