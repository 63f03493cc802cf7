package bitpack

import "testing"

func TestField32GetSet(t *testing.T) {
	cases := []struct {
		name          string
		offset, width uint
		value         uint32
	}{
		{"low byte", 0, 8, 0xAB},
		{"high bit", 31, 1, 1},
		{"mid field", 4, 3, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewField32(c.offset, c.width)
			packed := f.Set(0, c.value)
			if got := f.Get(packed); got != c.value {
				t.Fatalf("Get() = %d, want %d", got, c.value)
			}
		})
	}
}

func TestField32SetMasksOverflow(t *testing.T) {
	f := NewField32(0, 2)
	packed := f.Set(0, 0xFF)
	if got := f.Get(packed); got != 0x3 {
		t.Fatalf("Get() = %d, want 3 (masked)", got)
	}
}

func TestField32SetLeavesOtherBits(t *testing.T) {
	low := NewField32(0, 4)
	high := NewField32(4, 4)

	v := low.Set(0, 0xF)
	v = high.Set(v, 0x3)

	if got := low.Get(v); got != 0xF {
		t.Fatalf("low field clobbered: got %d", got)
	}
	if got := high.Get(v); got != 0x3 {
		t.Fatalf("high field wrong: got %d", got)
	}
}

func TestNewField32PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for field exceeding 32 bits")
		}
	}()
	NewField32(30, 4)
}

func TestNewField32PanicsOnZeroWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero-width field")
		}
	}()
	NewField32(0, 0)
}

func TestField64FullWidthMask(t *testing.T) {
	f := NewField64(0, 64)
	if got := f.Get(f.Set(0, ^uint64(0))); got != ^uint64(0) {
		t.Fatalf("Get() = %#x, want all bits set", got)
	}
}

func TestField64GetSet(t *testing.T) {
	f := NewField64(63, 1)
	packed := f.Set(0, 1)
	if got := f.Get(packed); got != 1 {
		t.Fatalf("Get() = %d, want 1", got)
	}
}

func TestNewField64PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for field exceeding 64 bits")
		}
	}()
	NewField64(60, 8)
}
