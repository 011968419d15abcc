package model

import "errors"

// Error taxonomy for the engine. Validation and state-transition errors are
// recoverable and surfaced to the caller; an invariant violation means the
// calculators produced impossible state and the whole operation must abort
// with no partial write.
var (
	// ErrValidation marks bad input shape or range, rejected before any mutation.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup for an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOverpaymentRejected marks an early payment greater than or equal to
	// the remaining balance. Oversized payoffs go through an explicit status
	// change instead.
	ErrOverpaymentRejected = errors.New("overpayment rejected")

	// ErrIllegalStateTransition marks confirm on an already-confirmed
	// distribution, cancel on a planned one, closing a closed deposit, and
	// similar.
	ErrIllegalStateTransition = errors.New("illegal state transition")

	// ErrInvariantViolation marks internally inconsistent derived state, such
	// as a negative remaining balance. Reaching it is a bug in the
	// calculators, not in caller input.
	ErrInvariantViolation = errors.New("invariant violation")
)
