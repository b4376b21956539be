package tape

// DefaultElastic is the share of pointer movement applied past a tape edge.
const DefaultElastic = 0.15

// DragSession tracks one pointer drag. It is discarded when the drag ends.
type DragSession struct {
	start   float64
	delta   float64
	top     float64
	bottom  float64
	elastic float64
}

// BeginDrag opens a session at startOffset, constrained to [top, bottom].
func BeginDrag(startOffset, top, bottom, elastic float64) *DragSession {
	if elastic < 0 {
		elastic = 0
	}
	if elastic > 1 {
		elastic = 1
	}
	return &DragSession{start: startOffset, top: top, bottom: bottom, elastic: elastic}
}

// Move accumulates pointer movement in pixels. Positive moves the tape down.
func (d *DragSession) Move(delta float64) {
	d.delta += delta
}

// Start is the offset the drag began from.
func (d *DragSession) Start() float64 { return d.start }

// Delta is the accumulated raw pointer movement.
func (d *DragSession) Delta() float64 { return d.delta }

// Offset is the current continuous offset. Movement past either constraint
// is damped by the elastic factor.
func (d *DragSession) Offset() float64 {
	raw := d.start + d.delta
	switch {
	case raw > d.bottom:
		return d.bottom + (raw-d.bottom)*d.elastic
	case raw < d.top:
		return d.top + (raw-d.top)*d.elastic
	}
	return raw
}
