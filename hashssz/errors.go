// Package hashssz defines the external-collaborator contracts and error
// kinds shared by merkletree and hashable. It has no dependencies of its
// own.
package hashssz

import "fmt"

// ErrInvalidElementSize is returned when an element size is zero or not a
// divisor of the chunk size.
type ErrInvalidElementSize struct {
	ElementSize int
}

func NewErrInvalidElementSize(size int) *ErrInvalidElementSize {
	return &ErrInvalidElementSize{ElementSize: size}
}

func (e *ErrInvalidElementSize) Error() string {
	return fmt.Sprintf("invalid element size %d: must be nonzero and a divisor of the chunk size", e.ElementSize)
}

// ErrIndexOutOfRange is returned when a chunk-internal index, element
// index, or leaf position is outside its domain.
type ErrIndexOutOfRange struct {
	Index int
	Bound int
}

func NewErrIndexOutOfRange(index, bound int) *ErrIndexOutOfRange {
	return &ErrIndexOutOfRange{Index: index, Bound: bound}
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Bound)
}

// ErrLengthMismatch is returned when a vector is constructed with an
// element count different from its sedes's fixed length.
type ErrLengthMismatch struct {
	Expected int
	Got      int
}

func NewErrLengthMismatch(expected, got int) *ErrLengthMismatch {
	return &ErrLengthMismatch{Expected: expected, Got: got}
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: vector expects %d elements, got %d", e.Expected, e.Got)
}

// ErrArgumentError is returned for malformed call arguments: an odd count
// of mset arguments, or a non-positive repeat factor.
type ErrArgumentError struct {
	Message string
}

func NewErrArgumentError(format string, args ...any) *ErrArgumentError {
	return &ErrArgumentError{Message: fmt.Sprintf(format, args...)}
}

func (e *ErrArgumentError) Error() string {
	return e.Message
}

// ErrCapacityExceeded is returned when appending chunks or elements would
// exceed the tree's or sedes's reserved capacity.
type ErrCapacityExceeded struct {
	Requested int
	Capacity  int
}

func NewErrCapacityExceeded(requested, capacity int) *ErrCapacityExceeded {
	return &ErrCapacityExceeded{Requested: requested, Capacity: capacity}
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("capacity exceeded: requested %d, capacity is %d", e.Requested, e.Capacity)
}

// ErrInvariantViolation indicates an internal consistency check failed. It
// is never expected to surface under correct use and signals a bug in this
// library rather than caller misuse.
type ErrInvariantViolation struct {
	Message string
}

func NewErrInvariantViolation(format string, args ...any) *ErrInvariantViolation {
	return &ErrInvariantViolation{Message: fmt.Sprintf(format, args...)}
}

func (e *ErrInvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Message)
}
