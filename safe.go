package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
// Blocks handed out by a SafeArena are read without the lock, so callers
// must not Reset or Release it while other goroutines still use their blocks.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena backed by capacity bytes.
func NewSafeArena(capacity int) (*SafeArena, error) {
	a, err := New(capacity)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// Alloc thread-safely reserves n bytes.
func (s *SafeArena) Alloc(n int) (Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(n)
}

// AllocZeroed thread-safely reserves n zeroed bytes.
func (s *SafeArena) AllocZeroed(n int) (Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocZeroed(n)
}

// Copy thread-safely allocates len(p) bytes and copies p into them.
func (s *SafeArena) Copy(p []byte) (Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Copy(p)
}

// CopyString thread-safely allocates len(str) bytes and copies str into them.
func (s *SafeArena) CopyString(str string) (Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.CopyString(str)
}

// Reset thread-safely rewinds the arena for reuse.
func (s *SafeArena) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reset()
}

// Release thread-safely drops the backing buffer and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
