// Package arena implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena owns one contiguous byte buffer whose size is fixed when the arena
// is created. Blocks are carved out of it sequentially by advancing a single
// offset; there is no per-block bookkeeping and no individual free. All
// blocks are released together. This is particularly useful for:
//
//   - Request-scoped byte payloads with a single cleanup point
//   - Packing many small strings or serialized records next to each other
//   - Keeping allocation out of the garbage collector's hot path
//
// # Basic Usage
//
//	a, err := arena.New(1024)
//	if err != nil {
//		return err
//	}
//	defer a.Release() // Clean up when done
//
//	b, err := a.Alloc(6)
//	if errors.Is(err, arena.ErrExhausted) {
//		// fall back, grow elsewhere or give up
//	}
//	copy(b.Bytes(), "hello\x00")
//
//	// Reuse the buffer (O(1) operation)
//	a.Reset()
//
// arena.With creates an arena, hands it to a function and releases it on
// every exit path.
//
// # Blocks
//
// Alloc returns a Block, a view made of the owning arena, an offset and a
// length. Block.Bytes returns the memory only while the arena is alive and
// has not been Reset since the block was issued; otherwise Block.View
// reports ErrReleased or ErrStale.
//
// # Memory Layout
//
// Blocks are packed byte for byte with no alignment padding. Callers that
// reinterpret block memory as typed values must request pre-padded sizes.
// Block contents are not zeroed unless AllocZeroed is used.
//
// # Errors
//
//   - ErrAllocation: the backing buffer could not be obtained by New
//   - ErrExhausted: a request does not fit (concrete type *ExhaustionError);
//     the arena is unchanged and still usable
//   - ErrInvalidSize: negative request size
//   - ErrReleased: the arena was released
//   - ErrStale: the block predates the last Reset
//
// # Thread Safety
//
// Arena is not thread-safe. For concurrent access use SafeArena, or give
// each goroutine its own arena, for example from a Pool.
//
// # Performance Characteristics
//
//   - Alloc: O(1)
//   - Reset: O(1)
//   - Release: O(1)
//   - Memory overhead: none per block
package arena
