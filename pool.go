package arena

import "sync"

// Pool caches arenas of one capacity for reuse, e.g. one arena per request.
// Get and Put are safe for concurrent use; the arenas themselves are not.
type Pool struct {
	capacity int
	arenas   sync.Pool
}

// NewPool creates a pool of arenas backed by capacity bytes each.
func NewPool(capacity int) (*Pool, error) {
	if capacity < 0 {
		return nil, allocationError(capacity, "negative capacity")
	}
	return &Pool{capacity: capacity}, nil
}

// Capacity returns the capacity of the arenas handed out by the pool.
func (p *Pool) Capacity() int {
	return p.capacity
}

// Get returns an empty arena, creating one if the pool has none cached.
func (p *Pool) Get() (*Arena, error) {
	if a, ok := p.arenas.Get().(*Arena); ok {
		return a, nil
	}
	return New(p.capacity)
}

// Put resets a and returns it to the pool. Blocks issued from a become stale.
// Released arenas and arenas of another capacity are dropped.
func (p *Pool) Put(a *Arena) {
	if a.Released() || len(a.buf) != p.capacity {
		return
	}
	if err := a.Reset(); err != nil {
		return
	}
	p.arenas.Put(a)
}
