package tape

import "math"

const (
	// RollerRatio is how far the side roller texture travels per pixel of offset.
	RollerRatio = 0.6
	// emphasisBand is the distance from center within which an item reads as selected.
	emphasisBand = 20
	// projectReach is how many items either side of center Project lays out.
	// Scale, the widest curve, is flat beyond two items.
	projectReach = 2
)

// Item is one tape entry positioned relative to the viewing window.
type Item struct {
	Value      int
	Index      int
	Relative   float64 // pixels from the window center; negative is above
	Opacity    float64
	Scale      float64
	Brightness float64
	Emphasis   bool
}

// Visible reports whether the item would be drawn at all.
func (it Item) Visible() bool { return it.Opacity > 0 }

// Project lays out the tape items within reach of the window center for the
// given offset, in index order. Opacity fades to zero one and a half items
// from center, scale and brightness fall off with distance in the manner of a
// cylinder viewed edge-on.
func Project(sel Selector, offset float64) []Item {
	h := sel.ItemHeight()
	if math.IsNaN(offset) {
		offset = sel.Offset()
	}
	last := sel.Len() - 1
	center := -offset / h
	lo := clampIndex(math.Floor(center-projectReach), last)
	hi := clampIndex(math.Ceil(center+projectReach), last)

	items := make([]Item, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		rel := offset + float64(i)*h
		items = append(items, Item{
			Value:      sel.Min() + i,
			Index:      i,
			Relative:   rel,
			Opacity:    interpolate(rel, -1.5*h, 0, 1.5*h, 0, 1, 0),
			Scale:      interpolate(rel, -2*h, 0, 2*h, 0.85, 1, 0.85),
			Brightness: interpolate(rel, -h, 0, h, 0.5, 1, 0.5),
			Emphasis:   math.Abs(rel) < emphasisBand,
		})
	}
	return items
}

func clampIndex(x float64, last int) int {
	if x <= 0 {
		return 0
	}
	if x >= float64(last) {
		return last
	}
	return int(x)
}

// RollerPhase is the scroll position of the side roller texture.
func RollerPhase(offset float64) float64 { return offset * RollerRatio }

// GearAngle is the rotation in degrees of a gear driven at ratio degrees per pixel.
func GearAngle(offset, ratio float64) float64 {
	a := math.Mod(offset*ratio, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// interpolate maps x through the three-point piecewise-linear curve
// (x0,y0) (x1,y1) (x2,y2), clamping outside [x0, x2].
func interpolate(x, x0, x1, x2, y0, y1, y2 float64) float64 {
	switch {
	case x <= x0:
		return y0
	case x >= x2:
		return y2
	case x <= x1:
		return y0 + (y1-y0)*(x-x0)/(x1-x0)
	default:
		return y1 + (y2-y1)*(x-x1)/(x2-x1)
	}
}
