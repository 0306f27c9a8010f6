package rowan

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPointLinear(t *testing.T) {
	tw := TweenPoint(Pt(0, 100), Pt(100, 0), 1.0, ease.Linear)

	p, done := tw.Update(0.5)
	if done {
		t.Fatal("tween finished at the halfway mark")
	}
	if p != Pt(50, 50) {
		t.Errorf("halfway point = %v, want (50,50)", p)
	}

	p, done = tw.Update(0.5)
	if !done {
		t.Fatal("tween not finished after its full duration")
	}
	if p != Pt(100, 0) {
		t.Errorf("final point = %v, want (100,0)", p)
	}
}

func TestTweenPointOvershoot(t *testing.T) {
	tw := TweenPoint(Pt(0, 0), Pt(10, 20), 1.0, ease.Linear)
	p, done := tw.Update(5.0)
	if !done || p != Pt(10, 20) {
		t.Errorf("overshoot = (%v, %v), want ((10,20), true)", p, done)
	}
	// Further updates keep reporting the final point.
	p, done = tw.Update(1.0)
	if !done || p != Pt(10, 20) {
		t.Errorf("post-completion = (%v, %v), want ((10,20), true)", p, done)
	}
}
