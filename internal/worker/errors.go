package worker

import "fmt"

// ErrPermanent signifies an error that cannot be resolved by a retry,
// such as a payload that does not decode against the schema.
type ErrPermanent struct{ Err error }

func (e *ErrPermanent) Error() string { return fmt.Sprintf("permanent error: %v", e.Err) }
func (e *ErrPermanent) Unwrap() error { return e.Err }

// ErrTransient signifies a temporary error that may be resolved by a
// retry, such as a downstream service being unavailable.
type ErrTransient struct{ Err error }

func (e *ErrTransient) Error() string { return fmt.Sprintf("transient error: %v", e.Err) }
func (e *ErrTransient) Unwrap() error { return e.Err }
