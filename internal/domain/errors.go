package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVariant marks a variant name outside the supported set or
	// a source/target pair that cannot be relocated. Caller error, not data.
	ErrUnsupportedVariant = errors.New("unsupported membership variant")

	// ErrNotFound is returned when the source member row does not exist.
	// Retrying a committed relocation lands here, since the source is gone.
	ErrNotFound = errors.New("member not found")

	// ErrConflict is returned when the target variant already holds a member
	// with the same tax id. Never merged silently.
	ErrConflict = errors.New("tax id already registered in target variant")

	// ErrCatalog marks a failed table introspection.
	ErrCatalog = errors.New("schema catalog read failed")

	// ErrUnknownColumn marks an insert rejected for a missing column. The
	// child copier treats this class as a skippable schema mismatch; every
	// other error class aborts the relocation.
	ErrUnknownColumn = errors.New("unknown column")
)

// ValidationError reports bad caller input. It is surfaced verbatim and never
// reaches storage.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a caller-input failure, including an
// unsupported variant pair.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrUnsupportedVariant)
}
