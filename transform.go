package lightbox

import "math"

// Scale bounds and wheel step factors for the viewport transform.
const (
	// MinScale is the smallest magnification; 1.0 shows the image at its
	// fitted size.
	MinScale = 1.0
	// MaxScale is the largest magnification.
	MaxScale = 5.0

	wheelZoomIn  = 1.08
	wheelZoomOut = 0.92
)

// Transform is the viewport transform applied to the displayed image: a
// magnification factor and a screen-space pixel offset from the centered
// position. Mutate it only through the functions in this file so the scale
// bound holds after every step.
type Transform struct {
	Scale     float64
	Translate Vec2
}

// Identity is the resting transform: 1x scale, no offset.
var Identity = Transform{Scale: 1}

// clampScale restricts a scale factor to [MinScale, MaxScale].
func clampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(s, MaxScale))
}

// ZoomAtPoint applies one wheel zoom step anchored at the given cursor
// offset from the image's rendered center. The translate adjustment keeps
// the content under the cursor visually stationary across the step.
// wheelDir > 0 zooms in, anything else zooms out.
func ZoomAtPoint(t Transform, offset Vec2, wheelDir float64) Transform {
	factor := wheelZoomOut
	if wheelDir > 0 {
		factor = wheelZoomIn
	}

	scale := clampScale(t.Scale)
	newScale := clampScale(scale * factor)
	ratio := newScale / scale

	return Transform{
		Scale: newScale,
		Translate: Vec2{
			X: t.Translate.X - offset.X*(ratio-1),
			Y: t.Translate.Y - offset.Y*(ratio-1),
		},
	}
}

// PanBy offsets the translate by a raw screen-pixel delta. The delta is
// intentionally not divided by the current scale: panning tracks the
// pointer 1:1 at every zoom level.
func PanBy(t Transform, delta Vec2) Transform {
	t.Translate.X += delta.X
	t.Translate.Y += delta.Y
	return t
}

// PinchScale multiplies the scale by a pinch distance ratio, clamped to the
// scale bounds. The translate is left untouched: pinch drives magnitude
// only, not the anchor.
func PinchScale(t Transform, ratio float64) Transform {
	t.Scale = clampScale(clampScale(t.Scale) * ratio)
	return t
}

// PinchRatio computes the scale ratio for one pinch step from the current
// and previous inter-contact distances. Zero or negative distances (a lost
// baseline, or two contacts reported at the same position) yield 1.0 so a
// degenerate frame is a no-op instead of a division by zero.
func PinchRatio(dist, lastDist float64) float64 {
	if lastDist <= 0 || dist <= 0 {
		return 1.0
	}
	return dist / lastDist
}
