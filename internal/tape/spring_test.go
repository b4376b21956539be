package tape

import (
	"math"
	"testing"
)

func TestDefaultSpringIsNearCritical(t *testing.T) {
	z := DefaultSpring().DampingRatio()
	if z < 1 || z > 1.1 {
		t.Fatalf("expected damping ratio just above 1, got %v", z)
	}
}

func TestTrajectoryConvergesWithoutOvershoot(t *testing.T) {
	path := Trajectory(DefaultSpring(), 0, -300, 600)
	if len(path) < 3 {
		t.Fatalf("expected several frames, got %d", len(path))
	}
	if path[0] != 0 {
		t.Fatalf("expected first frame at start, got %v", path[0])
	}
	if last := path[len(path)-1]; last != -300 {
		t.Fatalf("expected exact landing on -300, got %v", last)
	}
	for i, p := range path {
		if p < -300-1e-9 {
			t.Fatalf("frame %d overshot target: %v", i, p)
		}
	}
}

func TestTrajectoryRespectsFrameCap(t *testing.T) {
	path := Trajectory(DefaultSpring(), 0, -900, 3)
	if len(path) != 4 {
		t.Fatalf("expected start plus 3 frames, got %d", len(path))
	}
}

func TestAnimatorHoldStopsMotion(t *testing.T) {
	a := NewAnimator(DefaultSpring(), 0)
	a.Retarget(-500)
	a.Step()
	a.Step()
	mid := a.Position()
	a.Hold(mid)
	if !a.Settled() {
		t.Fatal("expected hold to stop the spring")
	}
	if got := a.Step(); got != mid {
		t.Fatalf("expected position to stay at %v, got %v", mid, got)
	}
	if a.Velocity() != 0 {
		t.Fatalf("expected zero velocity, got %v", a.Velocity())
	}
}

func TestRetargetToCurrentPositionIsImmediatelySettled(t *testing.T) {
	a := NewAnimator(DefaultSpring(), -100)
	a.Retarget(-100)
	if !a.Settled() {
		t.Fatal("expected no motion for same target")
	}
}

func TestSpringConfigNormalizesInvalidValues(t *testing.T) {
	a := NewAnimator(SpringConfig{}, 0)
	if a.FPS() != DefaultFPS {
		t.Fatalf("expected default fps, got %d", a.FPS())
	}
	a.Retarget(-100)
	for i := 0; i < 600 && !a.Settled(); i++ {
		a.Step()
	}
	if math.Abs(a.Position()+100) > 0 {
		t.Fatalf("expected to settle on -100, got %v", a.Position())
	}
}
