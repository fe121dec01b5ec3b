package lightbox

import "math"

// defaultSnapEpsilon tolerates floating-point accumulation from repeated
// wheel/pinch steps when deciding whether a released gesture is back at 1x.
const defaultSnapEpsilon = 0.001

// SnapPolicy decides what happens to the transform when a gesture completes
// (pointer released or all touches lifted). It runs exactly once per
// completed gesture, never continuously.
type SnapPolicy struct {
	// Epsilon is the scale tolerance above MinScale within which the
	// transform snaps back to Identity. Zero means the default.
	Epsilon float64

	// ClampTranslation, when true, clamps the translate on release so the
	// scaled image edge never pulls past the viewport edge. The default
	// (false) leaves zoomed panning unclamped, matching the relaxed feel
	// of dragging a photo freely while magnified.
	ClampTranslation bool
}

// Apply returns the post-release transform. image and view are the image's
// fitted size and the viewport size in screen pixels, used only when
// ClampTranslation is set.
func (p SnapPolicy) Apply(t Transform, image, view Vec2) Transform {
	eps := p.Epsilon
	if eps == 0 {
		eps = defaultSnapEpsilon
	}

	if t.Scale <= MinScale+eps {
		return Identity
	}

	if p.ClampTranslation {
		t.Translate.X = clampOffset(t.Translate.X, image.X*t.Scale, view.X)
		t.Translate.Y = clampOffset(t.Translate.Y, image.Y*t.Scale, view.Y)
	}
	return t
}

// clampOffset restricts a centered offset so a span of scaled size stays
// over the viewport span. If the scaled span fits entirely, the offset
// collapses to 0 (centered).
func clampOffset(offset, scaled, view float64) float64 {
	limit := (scaled - view) / 2
	if limit <= 0 {
		return 0
	}
	return math.Max(-limit, math.Min(offset, limit))
}
