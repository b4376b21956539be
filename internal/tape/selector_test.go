package tape

import (
	"errors"
	"math"
	"testing"
)

func mustSelector(t *testing.T, min, max, value int) Selector {
	t.Helper()
	s, err := NewSelector(min, max, value, DefaultItemHeight)
	if err != nil {
		t.Fatalf("NewSelector: %v", err)
	}
	return s
}

func TestNewSelectorRejectsBadInput(t *testing.T) {
	if _, err := NewSelector(5, 1, 1, 100); !errors.Is(err, ErrBounds) {
		t.Fatalf("expected ErrBounds, got %v", err)
	}
	if _, err := NewSelector(1, 5, 1, 0); !errors.Is(err, ErrItemHeight) {
		t.Fatalf("expected ErrItemHeight, got %v", err)
	}
}

func TestNewSelectorRejectsWideSpan(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"overflowing", -5_000_000_000_000_000_000, 5_000_000_000_000_000_000},
		{"full int range", math.MinInt, math.MaxInt},
		{"one past limit", 0, MaxSpan + 1},
	}
	for _, tt := range tests {
		if _, err := NewSelector(tt.min, tt.max, 0, 100); !errors.Is(err, ErrSpan) {
			t.Errorf("%s: expected ErrSpan, got %v", tt.name, err)
		}
	}
}

func TestWidestSelectorKeepsBoundsOrdered(t *testing.T) {
	s := mustSelector(t, -MaxSpan/2, MaxSpan/2, 0)
	if s.Len() != MaxSpan+1 {
		t.Fatalf("expected %d values, got %d", MaxSpan+1, s.Len())
	}
	top, bottom := s.OffsetBounds()
	if top != -float64(MaxSpan)*DefaultItemHeight || bottom != 0 {
		t.Fatalf("unexpected bounds top=%v bottom=%v", top, bottom)
	}
	if got := s.Snap(0); got != s.Min() {
		t.Fatalf("expected offset 0 to snap to min %d, got %d", s.Min(), got)
	}
	if got := s.Snap(top); got != s.Max() {
		t.Fatalf("expected top offset to snap to max %d, got %d", s.Max(), got)
	}
}

func TestNewSelectorClampsInitialValue(t *testing.T) {
	if got := mustSelector(t, 1, 10, 42).Value(); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := mustSelector(t, 1, 10, -3).Value(); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	s := mustSelector(t, 1, 10, 1)
	for v := 1; v <= 10; v++ {
		s.SetValue(v)
		want := -float64(v-1) * DefaultItemHeight
		if got := s.Offset(); got != want {
			t.Fatalf("value %d: expected offset %v, got %v", v, want, got)
		}
		if got := s.Snap(s.Offset()); got != v {
			t.Fatalf("value %d: snap of own offset gave %d", v, got)
		}
	}
}

func TestSnap(t *testing.T) {
	s := mustSelector(t, 1, 10, 1)
	tests := []struct {
		offset float64
		want   int
	}{
		{0, 1},
		{-250, 4}, // half-way rounds up
		{-249.9, 3},
		{-150, 3},
		{-49, 1},
		{-50, 2},
		{80, 1},
		{-899, 10},
		{-5000, 10},
	}
	for _, tt := range tests {
		if got := s.Snap(tt.offset); got != tt.want {
			t.Errorf("Snap(%v) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestSnapAlwaysInRange(t *testing.T) {
	s := mustSelector(t, -3, 4, 0)
	for off := -3000.0; off <= 3000; off += 7.3 {
		v := s.Snap(off)
		if v < s.Min() || v > s.Max() {
			t.Fatalf("Snap(%v) = %d outside [%d, %d]", off, v, s.Min(), s.Max())
		}
	}
}

func TestIncrementDecrementStopAtBounds(t *testing.T) {
	s := mustSelector(t, 1, 3, 3)
	if s.Increment() {
		t.Fatal("expected increment at max to be a no-op")
	}
	if s.Value() != 3 {
		t.Fatalf("expected 3, got %d", s.Value())
	}
	s.SetValue(1)
	if s.Decrement() {
		t.Fatal("expected decrement at min to be a no-op")
	}
	if !s.Increment() || s.Value() != 2 {
		t.Fatalf("expected increment to 2, got %d", s.Value())
	}
}

func TestSingleValueSelector(t *testing.T) {
	s := mustSelector(t, 7, 7, 7)
	if s.CanIncrement() || s.CanDecrement() {
		t.Fatal("expected both directions disabled")
	}
	if got := s.Snap(-1234); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}
