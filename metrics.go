package arena

// Used returns the number of bytes handed out since creation or the last Reset.
func (a *Arena) Used() int {
	if a.Released() {
		return 0
	}
	return a.used
}

// Capacity returns the size of the backing buffer, or 0 once released.
func (a *Arena) Capacity() int {
	if a.Released() {
		return 0
	}
	return len(a.buf)
}

// Remaining returns the number of bytes still available.
func (a *Arena) Remaining() int {
	return a.Capacity() - a.Used()
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.Used()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	if a.Released() {
		return ArenaMetrics{}
	}
	return ArenaMetrics{
		Used:        a.used,
		Capacity:    len(a.buf),
		Remaining:   len(a.buf) - a.used,
		Allocations: a.allocs,
		Exhaustions: a.exhaustions,
		Peak:        a.peak,
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Used        int     // Bytes currently allocated
	Capacity    int     // Size of the backing buffer
	Remaining   int     // Bytes still available
	Allocations uint64  // Successful Alloc calls, including zero-size ones
	Exhaustions uint64  // Alloc calls refused for lack of space
	Peak        int     // High-water mark of Used across resets
	Utilization float64 // Ratio of used to capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// Used thread-safely returns the number of bytes handed out.
func (s *SafeArena) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Used()
}

// Capacity thread-safely returns the size of the backing buffer.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Remaining thread-safely returns the number of bytes still available.
func (s *SafeArena) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remaining()
}

// Utilization thread-safely returns the ratio of bytes in use to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
