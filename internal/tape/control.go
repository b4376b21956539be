package tape

// Control ties a Selector to its drag tracker and spring. OnChange is called
// with the resolved value whenever a drag is released or a bump succeeds.
type Control struct {
	sel      Selector
	anim     *Animator
	drag     *DragSession
	elastic  float64
	onChange func(int)
}

// NewControl returns a control resting on sel's current value.
func NewControl(sel Selector, spring SpringConfig, elastic float64) *Control {
	return &Control{
		sel:     sel,
		anim:    NewAnimator(spring, sel.Offset()),
		elastic: elastic,
	}
}

// OnChange registers fn as the value callback, replacing any previous one.
func (c *Control) OnChange(fn func(int)) { c.onChange = fn }

func (c *Control) Selector() Selector { return c.sel }
func (c *Control) Value() int         { return c.sel.Value() }
func (c *Control) Dragging() bool     { return c.drag != nil }
func (c *Control) Animating() bool    { return !c.anim.Settled() }
func (c *Control) FPS() int           { return c.anim.FPS() }

// Offset is the displayed offset: the drag position while dragging,
// otherwise the spring position.
func (c *Control) Offset() float64 {
	if c.drag != nil {
		return c.drag.Offset()
	}
	return c.anim.Position()
}

// BeginDrag stops any running spring and starts tracking from the displayed
// offset. Calling it during a drag restarts the session in place.
func (c *Control) BeginDrag() {
	off := c.Offset()
	c.anim.Hold(off)
	top, bottom := c.sel.OffsetBounds()
	c.drag = BeginDrag(off, top, bottom, c.elastic)
}

// DragBy moves the active drag by delta pixels. It does nothing without a drag.
func (c *Control) DragBy(delta float64) {
	if c.drag == nil {
		return
	}
	c.drag.Move(delta)
}

// EndDrag snaps the release offset to a value, springs toward it and reports
// it through OnChange. Without an active drag it returns the current value.
func (c *Control) EndDrag() int {
	if c.drag == nil {
		return c.sel.Value()
	}
	off := c.drag.Offset()
	c.drag = nil
	c.sel.SetValue(c.sel.Snap(off))
	c.anim.Hold(off)
	c.anim.Retarget(c.sel.Offset())
	c.notify()
	return c.sel.Value()
}

// CancelDrag abandons a drag and springs back to the current value.
func (c *Control) CancelDrag() {
	if c.drag == nil {
		return
	}
	off := c.drag.Offset()
	c.drag = nil
	c.anim.Hold(off)
	c.anim.Retarget(c.sel.Offset())
}

// Increment bumps the value by one. It is a no-op at max.
func (c *Control) Increment() bool {
	if !c.sel.Increment() {
		return false
	}
	c.settle()
	c.notify()
	return true
}

// Decrement lowers the value by one. It is a no-op at min.
func (c *Control) Decrement() bool {
	if !c.sel.Decrement() {
		return false
	}
	c.settle()
	c.notify()
	return true
}

// Select jumps to v (clamped) as a user action and reports it through OnChange.
func (c *Control) Select(v int) bool {
	if !c.sel.SetValue(v) {
		return false
	}
	c.settle()
	c.notify()
	return true
}

// SetValue applies an external value change. It animates toward the new
// offset but does not call OnChange.
func (c *Control) SetValue(v int) bool {
	if !c.sel.SetValue(v) {
		return false
	}
	c.settle()
	return true
}

// Tick advances the spring by one frame and reports whether it is still moving.
func (c *Control) Tick() bool {
	if c.drag != nil {
		return false
	}
	c.anim.Step()
	return !c.anim.Settled()
}

// settle retargets the spring unless a drag owns the offset; the release
// will snap and retarget instead.
func (c *Control) settle() {
	if c.drag != nil {
		return
	}
	c.anim.Retarget(c.sel.Offset())
}

func (c *Control) notify() {
	if c.onChange != nil {
		c.onChange(c.sel.Value())
	}
}
