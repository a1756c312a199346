package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidInput    = errors.New("invalid input")
)

// FieldErrors maps JSON field names to a human-readable reason.
// It unwraps to ErrInvalidInput.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+f[name])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (f FieldErrors) Unwrap() error {
	return ErrInvalidInput
}
