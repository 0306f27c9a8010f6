package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PointTween animates a [Point] between two values over time, for
// sliding or resizing blit rectangles frame by frame. Create one with
// [TweenPoint] and call Update with the frame's dt; the returned Point
// is typically fed straight into a [BlitOptions] position or size.
//
// There is no global animation manager — callers drive Update themselves.
type PointTween struct {
	x, y *gween.Tween
	last Point
	Done bool
}

// TweenPoint creates a PointTween from from to to over duration seconds
// using the given easing function (see the gween/ease package).
func TweenPoint(from, to Point, duration float32, fn ease.TweenFunc) *PointTween {
	return &PointTween{
		x:    gween.New(float32(from.X), float32(to.X), duration, fn),
		y:    gween.New(float32(from.Y), float32(to.Y), duration, fn),
		last: from,
	}
}

// Update advances the tween by dt seconds and returns the current point
// and whether the tween has finished. After completion it keeps
// returning the final point.
func (t *PointTween) Update(dt float32) (Point, bool) {
	if t.Done {
		return t.last, true
	}
	xv, xDone := t.x.Update(dt)
	yv, yDone := t.y.Update(dt)
	t.last = Pt(int(xv), int(yv))
	t.Done = xDone && yDone
	return t.last, t.Done
}
