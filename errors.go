package arena

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrAllocation reports that the backing buffer could not be obtained.
	ErrAllocation = errors.New("arena: cannot allocate backing buffer")

	// ErrExhausted reports that a request does not fit in the remaining capacity.
	// The arena stays usable for smaller requests.
	ErrExhausted = errors.New("arena: exhausted")

	// ErrReleased is returned by every operation on a released arena.
	ErrReleased = errors.New("arena: use after Release()")

	// ErrStale is returned when a block is read after its arena was Reset.
	ErrStale = errors.New("arena: stale block")

	// ErrInvalidSize is returned for negative sizes.
	ErrInvalidSize = errors.New("arena: invalid size")
)

// ExhaustionError describes a refused allocation.
// It matches ErrExhausted with errors.Is.
type ExhaustionError struct {
	Requested int // bytes asked for
	Remaining int // bytes left when the request was refused
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("arena: exhausted: requested %d bytes, %d remaining", e.Requested, e.Remaining)
}

// Is reports whether target is ErrExhausted.
func (e *ExhaustionError) Is(target error) bool {
	return target == ErrExhausted
}

// allocationError tags the failure to reserve capacity bytes with ErrAllocation.
func allocationError(capacity int, cause any) error {
	return errors.Wrapf(ErrAllocation, "reserve %d bytes: %v", capacity, cause)
}

// invalidSize tags a negative size with ErrInvalidSize.
func invalidSize(op string, n int) error {
	return errors.Wrapf(ErrInvalidSize, "%s(%d)", op, n)
}
