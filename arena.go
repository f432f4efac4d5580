// Package arena implements a fixed-capacity bump allocator (memory arena).
// Typical usage: create one arena per request, carve many short-lived byte
// blocks out of it, then Reset() or Release() it once at the end.
package arena

// Arena is a fixed-capacity bump allocator. Not goroutine-safe.
// Use SafeArena for concurrent access.
type Arena struct {
	buf  []byte // backing memory; nil once released
	used int    // allocation offset within buf
	gen  uint64 // bumped by Reset and Release to invalidate issued blocks

	allocs      uint64
	exhaustions uint64
	peak        int
}

// New creates an Arena backed by exactly capacity bytes.
// A capacity of zero is legal and yields an arena that only serves
// zero-length requests. The returned error matches ErrAllocation when the
// backing buffer cannot be obtained.
func New(capacity int) (*Arena, error) {
	if capacity < 0 {
		return nil, allocationError(capacity, "negative capacity")
	}
	buf, err := makeBuffer(capacity)
	if err != nil {
		return nil, err
	}
	return &Arena{buf: buf}, nil
}

// makeBuffer turns the runtime's makeslice panic into an error.
func makeBuffer(capacity int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, allocationError(capacity, r)
		}
	}()
	return make([]byte, capacity), nil
}

// Alloc reserves n contiguous bytes starting at the current offset.
// The block's contents are unspecified; write before reading.
// When n does not fit, Alloc returns an *ExhaustionError and the arena is
// left untouched. A zero-size request always succeeds, even on a full arena.
// No padding is inserted between blocks.
func (a *Arena) Alloc(n int) (Block, error) {
	if a == nil || a.buf == nil {
		return Block{}, ErrReleased
	}
	if n < 0 {
		return Block{}, invalidSize("Alloc", n)
	}

	// Compare against the remainder so used+n cannot overflow.
	if rem := len(a.buf) - a.used; n > rem {
		a.exhaustions++
		return Block{}, &ExhaustionError{Requested: n, Remaining: rem}
	}

	off := a.used
	a.used += n
	a.allocs++
	if a.used > a.peak {
		a.peak = a.used
	}
	return Block{a: a, gen: a.gen, off: off, n: n}, nil
}

// Reset rewinds the allocation offset to zero but keeps the backing buffer.
// Every block issued before the call becomes stale.
func (a *Arena) Reset() error {
	if a == nil || a.buf == nil {
		return ErrReleased
	}
	a.used = 0
	a.gen++
	return nil
}

// Release drops the backing buffer and invalidates every issued block.
// Release on a nil or already released arena is a no-op; any other
// operation afterwards returns ErrReleased.
func (a *Arena) Release() {
	if a == nil {
		return
	}
	a.buf = nil
	a.used = 0
	a.gen++
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a == nil || a.buf == nil
}
