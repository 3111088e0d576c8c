package normalizers

import (
	"errors"
	"fmt"
)

var ErrMalformedDuration = errors.New("malformed duration")

const (
	reasonEmpty         = "empty value"
	reasonMissingUnits  = "missing units"
	reasonInvalidNumber = "invalid number"
	reasonNegative      = "negative value"
)

// MalformedDurationError reports a Duration value that does not match <number><unit>.
type MalformedDurationError struct {
	Raw    string
	Reason string
}

func (e *MalformedDurationError) Error() string {
	return fmt.Sprintf("malformed duration %q: %s", e.Raw, e.Reason)
}

func (e *MalformedDurationError) Unwrap() error {
	return ErrMalformedDuration
}

func errMalformed(raw, reason string) *MalformedDurationError {
	return &MalformedDurationError{Raw: raw, Reason: reason}
}
