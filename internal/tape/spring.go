package tape

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultFPS       = 60
	DefaultStiffness = 350
	DefaultDamping   = 35
	DefaultMass      = 0.8

	restDelta = 0.01
	restSpeed = 0.1
)

// SpringConfig describes a mass-spring-damper in physical terms.
type SpringConfig struct {
	FPS       int
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DefaultSpring matches the settle feel of the tape: slightly over-damped.
func DefaultSpring() SpringConfig {
	return SpringConfig{FPS: DefaultFPS, Stiffness: DefaultStiffness, Damping: DefaultDamping, Mass: DefaultMass}
}

// AngularFrequency is sqrt(k/m).
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)). 1 is critical damping.
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

func (c SpringConfig) normalized() SpringConfig {
	d := DefaultSpring()
	if c.FPS <= 0 {
		c.FPS = d.FPS
	}
	if c.Mass <= 0 {
		c.Mass = d.Mass
	}
	if c.Stiffness <= 0 {
		c.Stiffness = d.Stiffness
	}
	if c.Damping <= 0 {
		c.Damping = d.Damping
	}
	return c
}

// Animator steps an offset toward a target at a fixed frame rate.
type Animator struct {
	spring  harmonica.Spring
	fps     int
	pos     float64
	vel     float64
	target  float64
	running bool
}

// NewAnimator returns an animator resting at pos.
func NewAnimator(cfg SpringConfig, pos float64) *Animator {
	cfg = cfg.normalized()
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.AngularFrequency(), cfg.DampingRatio()),
		fps:    cfg.FPS,
		pos:    pos,
		target: pos,
	}
}

func (a *Animator) FPS() int          { return a.fps }
func (a *Animator) Position() float64 { return a.pos }
func (a *Animator) Velocity() float64 { return a.vel }
func (a *Animator) Target() float64   { return a.target }
func (a *Animator) Running() bool     { return a.running }

// Retarget starts or redirects the spring toward target, keeping velocity.
func (a *Animator) Retarget(target float64) {
	a.target = target
	a.running = !a.atRest()
	if !a.running {
		a.pos, a.vel = target, 0
	}
}

// Hold stops the spring at pos. A drag calls this to take over the offset.
func (a *Animator) Hold(pos float64) {
	a.pos = pos
	a.vel = 0
	a.target = pos
	a.running = false
}

// Step advances one frame and returns the new position. Once within rest
// tolerances the position lands exactly on the target.
func (a *Animator) Step() float64 {
	if !a.running {
		return a.pos
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if a.atRest() {
		a.pos, a.vel = a.target, 0
		a.running = false
	}
	return a.pos
}

// Settled reports whether the animator is at rest on its target.
func (a *Animator) Settled() bool { return !a.running }

func (a *Animator) atRest() bool {
	return math.Abs(a.target-a.pos) < restDelta && math.Abs(a.vel) < restSpeed
}

// Trajectory returns the per-frame offsets from `from` to `to`, ending on
// `to` unless maxFrames is reached first. Frame i is at time i/FPS.
func Trajectory(cfg SpringConfig, from, to float64, maxFrames int) []float64 {
	a := NewAnimator(cfg, from)
	a.Retarget(to)
	out := []float64{from}
	for i := 0; i < maxFrames && a.running; i++ {
		out = append(out, a.Step())
	}
	return out
}
