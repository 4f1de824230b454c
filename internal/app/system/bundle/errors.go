// Package bundle parses and validates producer output into a ContentBundle.
//
// Error taxonomy for the content pipeline:
//   - ErrProducerUnavailable: the generative call failed after retries.
//     Recoverable by retrying the whole producer call.
//   - ErrMalformedProducerOutput: producer text did not parse into a bundle.
//     Never retried automatically; the raw detail is surfaced so the caller
//     can diagnose and re-prompt.
//   - ErrValidation: a parsed bundle violates a hard invariant. Aborts before
//     any store writes; nothing is staged.
//   - ErrStagedBundleNotFound: activation requested for a chat with no staged
//     bundle.
//   - StoreWriteError: a singleton or collection write failed mid-activation;
//     it names the sub-step that failed so the caller knows what state the
//     live store was left in.
package bundle

import (
	"errors"
	"fmt"
)

var (
	// ErrProducerUnavailable indicates a transient producer failure that
	// survived the retry budget. User-facing: "service is busy, try again."
	ErrProducerUnavailable = errors.New("content producer unavailable")

	// ErrMalformedProducerOutput indicates producer text that violated the
	// bundle contract.
	ErrMalformedProducerOutput = errors.New("malformed producer output")

	// ErrValidation indicates a hard bundle invariant violation.
	ErrValidation = errors.New("bundle validation failed")

	// ErrStagedBundleNotFound indicates a stale or unknown chat reference.
	ErrStagedBundleNotFound = errors.New("staged bundle not found")
)

// StoreWriteError reports a live-store write failure during activation,
// naming the sub-step that failed. Activation stops at the first
// unrecoverable write error and leaves the store in its current state;
// re-running activation is the recovery path (each step is idempotent).
type StoreWriteError struct {
	Step string // e.g. "singletons", "navigation", "testimonials", "sections"
	Err  error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("activation write failed at %s: %v", e.Step, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }
