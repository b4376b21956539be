// Package tape models the drag-and-snap quantity tape: a bounded integer
// value, the pixel offset that displays it, and the spring that settles the
// offset after a drag or a button press.
package tape

import (
	"errors"
	"math"
)

const (
	// DefaultItemHeight is the logical pixel height of one tape item.
	DefaultItemHeight = 100
	// MaxSpan is the widest max-min a selector accepts.
	MaxSpan = 1_000_000
)

var (
	ErrBounds     = errors.New("tape: min must not exceed max")
	ErrSpan       = errors.New("tape: max-min exceeds MaxSpan")
	ErrItemHeight = errors.New("tape: item height must be positive")
)

// Selector owns the current value and its inclusive bounds.
type Selector struct {
	min, max   int
	value      int
	itemHeight float64
}

// NewSelector returns a selector for [min, max]. value is clamped into range.
func NewSelector(min, max, value int, itemHeight float64) (Selector, error) {
	if min > max {
		return Selector{}, ErrBounds
	}
	if !SpanOK(min, max) {
		return Selector{}, ErrSpan
	}
	if itemHeight <= 0 || math.IsNaN(itemHeight) || math.IsInf(itemHeight, 0) {
		return Selector{}, ErrItemHeight
	}
	s := Selector{min: min, max: max, itemHeight: itemHeight}
	s.value = s.clamp(value)
	return s, nil
}

// SpanOK reports whether min <= max and max-min fits within MaxSpan without
// overflowing int.
func SpanOK(min, max int) bool {
	return min <= max && uint64(max)-uint64(min) <= MaxSpan
}

func (s Selector) Value() int          { return s.value }
func (s Selector) Min() int            { return s.min }
func (s Selector) Max() int            { return s.max }
func (s Selector) ItemHeight() float64 { return s.itemHeight }

// Len is the number of selectable values.
func (s Selector) Len() int { return s.max - s.min + 1 }

// SetValue stores v clamped to the bounds and reports whether the value changed.
func (s *Selector) SetValue(v int) bool {
	v = s.clamp(v)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// Offset is the resting offset of the current value.
func (s Selector) Offset() float64 { return s.OffsetOf(s.value) }

// OffsetOf returns the resting offset for v, clamped to the bounds.
func (s Selector) OffsetOf(v int) float64 {
	return -float64(s.clamp(v)-s.min) * s.itemHeight
}

// OffsetBounds returns the range of resting offsets. top is the most negative.
func (s Selector) OffsetBounds() (top, bottom float64) {
	return -float64(s.max-s.min) * s.itemHeight, 0
}

// Snap resolves a release offset to the nearest value. Half-way offsets round
// up to the higher index; anything outside the tape clamps to a bound.
func (s Selector) Snap(offset float64) int {
	return s.SnapIndex(offset) + s.min
}

// SnapIndex is Snap without the min shift, in [0, max-min].
func (s Selector) SnapIndex(offset float64) int {
	if math.IsNaN(offset) {
		return s.value - s.min
	}
	raw := -offset / s.itemHeight
	last := s.max - s.min
	if raw >= float64(last) {
		return last
	}
	if raw <= 0 {
		return 0
	}
	idx := int(math.Floor(raw + 0.5))
	if idx > last {
		return last
	}
	return idx
}

// CanIncrement reports whether Increment would change the value.
func (s Selector) CanIncrement() bool { return s.value < s.max }

// CanDecrement reports whether Decrement would change the value.
func (s Selector) CanDecrement() bool { return s.value > s.min }

// Increment bumps the value by one. It is a no-op at max.
func (s *Selector) Increment() bool {
	if !s.CanIncrement() {
		return false
	}
	s.value++
	return true
}

// Decrement lowers the value by one. It is a no-op at min.
func (s *Selector) Decrement() bool {
	if !s.CanDecrement() {
		return false
	}
	s.value--
	return true
}

func (s Selector) clamp(v int) int {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}
