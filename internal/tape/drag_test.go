package tape

import (
	"math"
	"testing"
)

func TestDragSessionFollowsPointerInsideBounds(t *testing.T) {
	d := BeginDrag(-200, -900, 0, DefaultElastic)
	d.Move(-120)
	d.Move(20)
	if got := d.Offset(); got != -300 {
		t.Fatalf("expected -300, got %v", got)
	}
	if d.Start() != -200 || d.Delta() != -100 {
		t.Fatalf("unexpected session state start=%v delta=%v", d.Start(), d.Delta())
	}
}

func TestDragSessionElasticOvershoot(t *testing.T) {
	d := BeginDrag(0, -900, 0, DefaultElastic)
	d.Move(100)
	if got := d.Offset(); math.Abs(got-15) > 1e-9 {
		t.Fatalf("expected 15 past bottom, got %v", got)
	}

	d = BeginDrag(-900, -900, 0, DefaultElastic)
	d.Move(-200)
	if got := d.Offset(); math.Abs(got-(-930)) > 1e-9 {
		t.Fatalf("expected -930 past top, got %v", got)
	}
}

func TestDragSessionClampsElasticFactor(t *testing.T) {
	d := BeginDrag(0, -100, 0, 3)
	d.Move(50)
	if got := d.Offset(); got != 50 {
		t.Fatalf("expected elastic clamped to 1, got %v", got)
	}
	d = BeginDrag(0, -100, 0, -1)
	d.Move(50)
	if got := d.Offset(); got != 0 {
		t.Fatalf("expected rigid edge, got %v", got)
	}
}
