package arena

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{"zero capacity", 0},
		{"small capacity", 4},
		{"custom capacity", 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.capacity)
			if err != nil {
				t.Fatalf("New(%d) error = %v", tt.capacity, err)
			}
			if a.Capacity() != tt.capacity {
				t.Errorf("New(%d) capacity = %d, want %d", tt.capacity, a.Capacity(), tt.capacity)
			}
			if a.Used() != 0 {
				t.Errorf("New(%d) used = %d, want 0", tt.capacity, a.Used())
			}
		})
	}
}

func TestNewAllocationError(t *testing.T) {
	for _, capacity := range []int{-1, math.MaxInt} {
		a, err := New(capacity)
		if !errors.Is(err, ErrAllocation) {
			t.Errorf("New(%d) error = %v, want ErrAllocation", capacity, err)
		}
		if errors.Is(err, ErrExhausted) {
			t.Errorf("New(%d) error = %v, must not match ErrExhausted", capacity, err)
		}
		if a != nil {
			t.Errorf("New(%d) returned non-nil arena on error", capacity)
		}
	}
}

func TestArenaAlloc(t *testing.T) {
	a, err := New(1024)
	if err != nil {
		t.Fatal(err)
	}

	b, err := a.Alloc(6)
	if err != nil {
		t.Fatalf("Alloc(6) error = %v", err)
	}
	if b.Offset() != 0 || b.Len() != 6 {
		t.Errorf("Alloc(6) = %v, want [0,6)", b)
	}

	want := []byte("hello\x00")
	copy(b.Bytes(), want)
	if diff := cmp.Diff(want, b.Bytes()); diff != "" {
		t.Errorf("read back mismatch (-want +got):\n%s", diff)
	}

	a.Release()
	if a.Used() != 0 {
		t.Errorf("Used after Release = %d, want 0", a.Used())
	}
}

func TestArenaAllocSequence(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		sizes    []int
	}{
		{"exact fit", 10, []int{4, 4, 2}},
		{"with zeros", 16, []int{0, 3, 0, 5, 8, 0}},
		{"single byte steps", 5, []int{1, 1, 1, 1, 1}},
		{"empty arena", 0, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.capacity)
			if err != nil {
				t.Fatal(err)
			}
			defer a.Release()

			var blocks []Block
			sum := 0
			for _, n := range tt.sizes {
				b, err := a.Alloc(n)
				if err != nil {
					t.Fatalf("Alloc(%d) error = %v", n, err)
				}
				if b.Offset() != sum {
					t.Errorf("Alloc(%d) offset = %d, want %d", n, b.Offset(), sum)
				}
				for _, o := range blocks {
					if b.Overlaps(o) {
						t.Errorf("block %v overlaps %v", b, o)
					}
				}
				if b.End() > a.Used() {
					t.Errorf("block %v ends past used %d", b, a.Used())
				}
				blocks = append(blocks, b)
				sum += n
			}
			if a.Used() != sum {
				t.Errorf("Used = %d, want %d", a.Used(), sum)
			}
		})
	}
}

func TestArenaExhaustion(t *testing.T) {
	a, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	b1, err := a.Alloc(4)
	if err != nil {
		t.Fatalf("first Alloc(4) error = %v", err)
	}
	b2, err := a.Alloc(4)
	if err != nil {
		t.Fatalf("second Alloc(4) error = %v", err)
	}
	if b1.String() != "[0,4)" || b2.String() != "[4,8)" {
		t.Errorf("blocks = %v %v, want [0,4) [4,8)", b1, b2)
	}

	_, err = a.Alloc(4)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("third Alloc(4) error = %v, want ErrExhausted", err)
	}
	var ee *ExhaustionError
	if !errors.As(err, &ee) {
		t.Fatalf("third Alloc(4) error type = %T, want *ExhaustionError", err)
	}
	if ee.Requested != 4 || ee.Remaining != 2 {
		t.Errorf("ExhaustionError = %+v, want Requested 4 Remaining 2", *ee)
	}
	if a.Used() != 8 {
		t.Errorf("Used after refused Alloc = %d, want 8", a.Used())
	}

	// The arena stays usable for requests that still fit.
	if _, err := a.Alloc(2); err != nil {
		t.Errorf("Alloc(2) after exhaustion error = %v", err)
	}
}

func TestArenaExhaustionFromEmpty(t *testing.T) {
	a, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	if _, err := a.Alloc(6); !errors.Is(err, ErrExhausted) {
		t.Errorf("Alloc(6) error = %v, want ErrExhausted", err)
	}
	if a.Used() != 0 {
		t.Errorf("Used = %d, want 0", a.Used())
	}
}

func TestArenaAllocOverflow(t *testing.T) {
	a, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	if _, err := a.Alloc(8); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Alloc(math.MaxInt); !errors.Is(err, ErrExhausted) {
		t.Errorf("Alloc(MaxInt) error = %v, want ErrExhausted", err)
	}
	if a.Used() != 8 {
		t.Errorf("Used = %d, want 8", a.Used())
	}
}

func TestArenaZeroSize(t *testing.T) {
	a, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	if _, err := a.Alloc(3); err != nil {
		t.Fatal(err)
	}
	b, err := a.Alloc(0)
	if err != nil {
		t.Fatalf("Alloc(0) on full arena error = %v", err)
	}
	if b.Len() != 0 || b.Offset() != 3 {
		t.Errorf("Alloc(0) = %v, want [3,3)", b)
	}
	if p := b.Bytes(); p == nil || len(p) != 0 {
		t.Errorf("Alloc(0).Bytes() = %v, want empty non-nil slice", p)
	}
	if a.Used() != 3 {
		t.Errorf("Used after Alloc(0) = %d, want 3", a.Used())
	}
}

func TestArenaNegativeSize(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	if _, err := a.Alloc(-1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Alloc(-1) error = %v, want ErrInvalidSize", err)
	}
	if a.Used() != 0 {
		t.Errorf("Used = %d, want 0", a.Used())
	}
}

func TestArenaReset(t *testing.T) {
	a, err := New(1024)
	if err != nil {
		t.Fatal(err)
	}

	b, _ := a.Alloc(100)
	a.Alloc(200)

	if a.Used() != 300 {
		t.Errorf("Used = %d, want 300", a.Used())
	}

	if err := a.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if a.Used() != 0 {
		t.Errorf("Used after Reset() = %d, want 0", a.Used())
	}
	if a.Capacity() != 1024 {
		t.Errorf("Capacity after Reset() = %d, want 1024", a.Capacity())
	}
	if _, err := b.View(); !errors.Is(err, ErrStale) {
		t.Errorf("View() after Reset error = %v, want ErrStale", err)
	}

	nb, err := a.Alloc(100)
	if err != nil {
		t.Fatal(err)
	}
	if nb.Offset() != 0 {
		t.Errorf("Alloc after Reset offset = %d, want 0", nb.Offset())
	}
}

func TestArenaRelease(t *testing.T) {
	a, err := New(1024)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := a.Alloc(100)

	a.Release()

	if !a.Released() {
		t.Error("Released() = false after Release()")
	}
	if _, err := b.View(); !errors.Is(err, ErrReleased) {
		t.Errorf("View() after Release error = %v, want ErrReleased", err)
	}
	if b.Bytes() != nil {
		t.Error("Bytes() after Release should be nil")
	}

	ops := map[string]func() error{
		"Alloc":       func() error { _, err := a.Alloc(1); return err },
		"Alloc(0)":    func() error { _, err := a.Alloc(0); return err },
		"AllocZeroed": func() error { _, err := a.AllocZeroed(1); return err },
		"Copy":        func() error { _, err := a.Copy([]byte("x")); return err },
		"Reset":       a.Reset,
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrReleased) {
			t.Errorf("%s after Release error = %v, want ErrReleased", name, err)
		}
	}

	// Releasing twice and releasing nil are no-ops.
	a.Release()
	var nilArena *Arena
	nilArena.Release()
}

func TestBlockViewIsClipped(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	b1, _ := a.Alloc(4)
	b2, _ := a.Alloc(4)
	copy(b2.Bytes(), "wxyz")

	p := b1.Bytes()
	if cap(p) != 4 {
		t.Fatalf("cap(Bytes()) = %d, want 4", cap(p))
	}
	_ = append(p, 'a', 'b')
	if got := string(b2.Bytes()); got != "wxyz" {
		t.Errorf("neighbour block = %q after append, want %q", got, "wxyz")
	}
}

func TestZeroBlock(t *testing.T) {
	var b Block
	if b.Valid() {
		t.Error("zero Block should not be valid")
	}
	if _, err := b.View(); !errors.Is(err, ErrReleased) {
		t.Errorf("zero Block View() error = %v, want ErrReleased", err)
	}
}

func BenchmarkArenaAlloc(b *testing.B) {
	a, err := New(1024 * 1024) // 1MB
	if err != nil {
		b.Fatal(err)
	}
	sizes := []int{8, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := a.Alloc(size); err != nil {
					a.Reset()
				}
			}
		})
	}
}

func BenchmarkArenaVsBuiltin(b *testing.B) {
	b.Run("arena", func(b *testing.B) {
		a, _ := New(1024 * 1024)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Alloc(64)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = make([]byte, 64)
		}
	})
}
