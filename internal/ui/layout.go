package ui

import (
	"math"

	"github.com/olivier-w/tapecart/internal/tape"
	"github.com/olivier-w/tapecart/internal/util"
)

const (
	marginLeft  = 2
	widgetTop   = 3 // blank line, header, blank line
	columnGap   = 2
	buttonInner = 5
	buttonOuter = buttonInner + 2
	buttonTall  = 3
	plateInner  = 16
	minRows     = 7
	// items fade out this many item heights from center
	visibleItems = 1.5
)

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout holds screen positions of every interactive part of the widget.
// The renderer and the mouse handler both read from it.
type layout struct {
	rows     int // tape window interior rows
	center   int
	numWidth int
	inner    int // tape window interior width

	tape  rect
	up    rect
	down  rect
	plate rect
}

func newLayout(sel tape.Selector, rowsPerItem int) layout {
	if rowsPerItem < 1 {
		rowsPerItem = 1
	}
	rows := 2*int(math.Ceil(visibleItems*float64(rowsPerItem))) + 1
	if rows < minRows {
		rows = minRows
	}
	numW := util.QuantityWidth(sel.Min(), sel.Max())
	inner := numW + 8

	l := layout{rows: rows, center: rows / 2, numWidth: numW, inner: inner}
	l.tape = rect{x: marginLeft, y: widgetTop, w: inner + 2, h: rows + 2}

	bx := l.tape.x + l.tape.w + columnGap
	l.up = rect{x: bx, y: widgetTop + 1, w: buttonOuter, h: buttonTall}
	l.down = rect{x: bx, y: widgetTop + l.tape.h - 1 - buttonTall, w: buttonOuter, h: buttonTall}

	l.plate = rect{x: bx + buttonOuter + columnGap, y: widgetTop, w: plateInner + 2, h: l.tape.h}
	return l
}

// width is the full widget width from the left margin.
func (l layout) width() int {
	return l.plate.x + l.plate.w - marginLeft
}

// inWindow reports whether (x, y) is inside the tape window interior and
// returns the interior row.
func (l layout) inWindow(x, y int) (int, bool) {
	in := rect{x: l.tape.x + 1, y: l.tape.y + 1, w: l.inner, h: l.rows}
	if !in.contains(x, y) {
		return 0, false
	}
	return y - in.y, true
}
