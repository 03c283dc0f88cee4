package injectable

import (
	"fmt"

	"github.com/xraph/go-utils/errs"
)

// =============================================================================
// ERROR CODES
// =============================================================================

const (
	// CodeInvalidFactory indicates a factory function is nil
	CodeInvalidFactory = "INVALID_FACTORY"

	// CodeTypeMismatch indicates an override produced a value that is not of the declared type
	CodeTypeMismatch = "TYPE_MISMATCH"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

// ErrInvalidFactory is raised when a nil factory is registered.
var ErrInvalidFactory = errs.NewError(CodeInvalidFactory, "factory cannot be nil", nil)

// ErrTypeMismatchSentinel is a sentinel error for override type mismatches (for error checking).
var ErrTypeMismatchSentinel = errs.NewError(CodeTypeMismatch, "type mismatch", nil)

// =============================================================================
// ERROR CONSTRUCTORS
// =============================================================================

// ErrTypeMismatch creates an error for an override whose value cannot be viewed
// as the declared type. Resolution never returns it; it is logged and handed to
// middleware before falling back to the default path.
func ErrTypeMismatch(key Key, actual any) *errs.Error {
	return errs.NewError(
		CodeTypeMismatch,
		fmt.Sprintf("override for '%s' type mismatch: got %T", key, actual),
		nil,
	)
}
