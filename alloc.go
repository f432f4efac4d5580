package arena

// AllocZeroed is Alloc followed by zeroing the block.
// This is slower than Alloc but ensures clean initialization.
func (a *Arena) AllocZeroed(n int) (Block, error) {
	b, err := a.Alloc(n)
	if err != nil {
		return Block{}, err
	}
	clear(a.buf[b.off:b.End()])
	return b, nil
}

// Copy allocates len(p) bytes and copies p into them.
func (a *Arena) Copy(p []byte) (Block, error) {
	b, err := a.Alloc(len(p))
	if err != nil {
		return Block{}, err
	}
	copy(a.buf[b.off:b.End()], p)
	return b, nil
}

// CopyString allocates len(s) bytes and copies s into them.
// No terminator is appended; include one in s if the caller needs it.
func (a *Arena) CopyString(s string) (Block, error) {
	b, err := a.Alloc(len(s))
	if err != nil {
		return Block{}, err
	}
	copy(a.buf[b.off:b.End()], s)
	return b, nil
}

// With creates an arena of the given capacity, passes it to fn and releases
// it on every exit path, including a panic in fn.
func With(capacity int, fn func(a *Arena) error) error {
	a, err := New(capacity)
	if err != nil {
		return err
	}
	defer a.Release()
	return fn(a)
}
