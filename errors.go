package githubtypes

import "fmt"

// MalformedInputError is returned when a wire value cannot be decoded
// into its typed representation: a hex string of the wrong length, a
// buffer of the wrong size, or a timestamp outside the representable
// range. Callers should treat it as a schema mismatch and abort the
// parse of the enclosing payload rather than substitute a default.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}

func malformedf(format string, args ...any) *MalformedInputError {
	return &MalformedInputError{Reason: fmt.Sprintf(format, args...)}
}
