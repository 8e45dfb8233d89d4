package placeholder

import "errors"

// Sentinel errors for render operations.
var (
	// ErrMissingName is returned when a placeholder references a name
	// absent from the value mapping.
	ErrMissingName = errors.New("missing placeholder value")

	// ErrValues is returned when a values document cannot be decoded.
	ErrValues = errors.New("invalid values document")
)

// MissingNameError reports the first placeholder name, scanning left to
// right, that has no entry in the value mapping. Name is the exact text
// between the token's braces.
type MissingNameError struct {
	Name string
}

func (e *MissingNameError) Error() string {
	return "missing placeholder value: " + e.Name
}

// Unwrap makes errors.Is(err, ErrMissingName) hold for render failures.
func (e *MissingNameError) Unwrap() error {
	return ErrMissingName
}
