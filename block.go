package arena

import "fmt"

// Block is a non-owning view into an arena: the owner, the generation it was
// issued in, and a byte range. The arena keeps ownership of the memory.
// The zero Block belongs to no arena.
type Block struct {
	a   *Arena
	gen uint64
	off int
	n   int
}

// Offset returns the start of the block within the arena.
func (b Block) Offset() int { return b.off }

// Len returns the block length in bytes.
func (b Block) Len() int { return b.n }

// End returns the offset one past the last byte of the block.
func (b Block) End() int { return b.off + b.n }

// View returns the block's bytes. The slice capacity is clipped to the
// block so appending to it never writes into a neighbouring block.
// It returns ErrReleased once the owner was released and ErrStale once the
// owner was Reset after the block was issued.
func (b Block) View() ([]byte, error) {
	switch {
	case b.a == nil || b.a.buf == nil:
		return nil, ErrReleased
	case b.gen != b.a.gen:
		return nil, ErrStale
	}
	return b.a.buf[b.off : b.off+b.n : b.off+b.n], nil
}

// Bytes is View without the error; it returns nil for an invalid block.
func (b Block) Bytes() []byte {
	p, _ := b.View()
	return p
}

// Valid reports whether the block can still be read.
func (b Block) Valid() bool {
	_, err := b.View()
	return err == nil
}

// Overlaps reports whether b and o share at least one byte of the same arena.
// Zero-length blocks never overlap anything.
func (b Block) Overlaps(o Block) bool {
	if b.a != o.a || b.n == 0 || o.n == 0 {
		return false
	}
	return b.off < o.End() && o.off < b.End()
}

func (b Block) String() string {
	return fmt.Sprintf("[%d,%d)", b.off, b.End())
}
