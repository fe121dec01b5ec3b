package lightbox

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestZoomAtPointConcrete(t *testing.T) {
	// Wheel-in at cursor offset (50, 30) from a resting view.
	got := ZoomAtPoint(Identity, Vec2{X: 50, Y: 30}, 1)

	if !approxEqual(got.Scale, 1.08, epsilon) {
		t.Errorf("Scale = %f, want 1.08", got.Scale)
	}
	if !approxEqual(got.Translate.X, -4, epsilon) || !approxEqual(got.Translate.Y, -2.4, epsilon) {
		t.Errorf("Translate = (%f, %f), want (-4, -2.4)", got.Translate.X, got.Translate.Y)
	}
}

func TestZoomOutFromIdentityStaysAtMin(t *testing.T) {
	got := ZoomAtPoint(Identity, Vec2{X: 100, Y: 100}, -1)
	if got.Scale != MinScale {
		t.Errorf("Scale = %f, want %f", got.Scale, float64(MinScale))
	}
	// Clamped step: ratio is 1, so the anchor adjustment must vanish.
	if got.Translate.X != 0 || got.Translate.Y != 0 {
		t.Errorf("Translate = %v, want (0, 0)", got.Translate)
	}
}

func TestZoomScaleBoundsUnderWheelSequences(t *testing.T) {
	// Deterministic pseudo-random wheel directions; scale must stay in
	// [MinScale, MaxScale] after every single step.
	state := Identity
	seed := uint64(42)
	for i := 0; i < 500; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		dir := 1.0
		if seed&1 == 0 {
			dir = -1.0
		}
		off := Vec2{X: float64(int(seed>>8)%200) - 100, Y: float64(int(seed>>16)%200) - 100}
		state = ZoomAtPoint(state, off, dir)
		if state.Scale < MinScale || state.Scale > MaxScale {
			t.Fatalf("step %d: scale %f out of [%f, %f]", i, state.Scale, float64(MinScale), float64(MaxScale))
		}
	}
}

func TestZoomClampAtMax(t *testing.T) {
	state := Identity
	for i := 0; i < 100; i++ {
		state = ZoomAtPoint(state, Vec2{X: 10, Y: -5}, 1)
	}
	if state.Scale != MaxScale {
		t.Errorf("Scale after 100 zoom-ins = %f, want %f", state.Scale, float64(MaxScale))
	}
	// Further steps at max must not drift the translate (ratio 1).
	before := state.Translate
	state = ZoomAtPoint(state, Vec2{X: 10, Y: -5}, 1)
	if state.Translate != before {
		t.Errorf("Translate drifted at max scale: %v -> %v", before, state.Translate)
	}
}

func TestZoomAnchorInvariance(t *testing.T) {
	// The content point under the cursor must stay at the same screen
	// position across a zoom step, at any scale within the open range.
	scales := []float64{1.1, 1.5, 2.3, 3.7, 4.6}
	offsets := []Vec2{{X: 50, Y: 30}, {X: -120, Y: 80}, {X: 0, Y: -200}, {X: 33.3, Y: 0}}

	for _, scale := range scales {
		for _, off := range offsets {
			for _, dir := range []float64{1, -1} {
				state := Transform{Scale: scale, Translate: Vec2{X: 17, Y: -42}}

				// Content point under the cursor, in fitted image units.
				px := off.X / state.Scale
				py := off.Y / state.Scale
				// Its screen offset from the viewport center.
				beforeX := state.Translate.X + state.Scale*px
				beforeY := state.Translate.Y + state.Scale*py

				next := ZoomAtPoint(state, off, dir)
				afterX := next.Translate.X + next.Scale*px
				afterY := next.Translate.Y + next.Scale*py

				if !approxEqual(afterX, beforeX, 1e-6) || !approxEqual(afterY, beforeY, 1e-6) {
					t.Errorf("scale %v offset %v dir %v: anchor moved (%f, %f) -> (%f, %f)",
						scale, off, dir, beforeX, beforeY, afterX, afterY)
				}
			}
		}
	}
}

func TestPanByIsScaleIndependent(t *testing.T) {
	// Pointer drag from (100,100) to (120,80) at 2x: translate moves by
	// the raw pixel delta, exactly.
	state := Transform{Scale: 2}
	got := PanBy(state, Vec2{X: 20, Y: -20})
	if got.Translate.X != 20 || got.Translate.Y != -20 {
		t.Errorf("Translate = %v, want (20, -20)", got.Translate)
	}
	if got.Scale != 2 {
		t.Errorf("Scale = %f, want 2 (pan must not touch scale)", got.Scale)
	}
}

func TestPanByAccumulates(t *testing.T) {
	state := Identity
	state = PanBy(state, Vec2{X: 5, Y: 7})
	state = PanBy(state, Vec2{X: -2, Y: 3})
	if state.Translate.X != 3 || state.Translate.Y != 10 {
		t.Errorf("Translate = %v, want (3, 10)", state.Translate)
	}
}

func TestPinchScaleProportional(t *testing.T) {
	// Pinch from distance 100 to 150 starting at 1x yields exactly 1.5x.
	got := PinchScale(Identity, PinchRatio(150, 100))
	if !approxEqual(got.Scale, 1.5, epsilon) {
		t.Errorf("Scale = %f, want 1.5", got.Scale)
	}
}

func TestPinchScaleClamped(t *testing.T) {
	got := PinchScale(Transform{Scale: 4}, 2.0)
	if got.Scale != MaxScale {
		t.Errorf("Scale = %f, want %f", got.Scale, float64(MaxScale))
	}
	got = PinchScale(Transform{Scale: 1.2}, 0.1)
	if got.Scale != MinScale {
		t.Errorf("Scale = %f, want %f", got.Scale, float64(MinScale))
	}
}

func TestPinchScaleLeavesTranslate(t *testing.T) {
	state := Transform{Scale: 1.5, Translate: Vec2{X: 40, Y: -25}}
	got := PinchScale(state, 1.2)
	if got.Translate != state.Translate {
		t.Errorf("Translate = %v, want %v (pinch must not move the anchor)", got.Translate, state.Translate)
	}
}

func TestPinchRatioDegenerate(t *testing.T) {
	tests := []struct {
		name           string
		dist, lastDist float64
		want           float64
	}{
		{"normal", 150, 100, 1.5},
		{"zero baseline", 150, 0, 1.0},
		{"zero distance", 0, 100, 1.0},
		{"both zero", 0, 0, 1.0},
		{"negative baseline", 150, -1, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PinchRatio(tt.dist, tt.lastDist)
			if !approxEqual(got, tt.want, epsilon) {
				t.Errorf("PinchRatio(%v, %v) = %v, want %v", tt.dist, tt.lastDist, got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("PinchRatio(%v, %v) is not finite", tt.dist, tt.lastDist)
			}
		})
	}
}

func TestClampScaleRecoversFromCorruptState(t *testing.T) {
	// A transform mutated from outside (scale 0) must not propagate NaN
	// through a zoom step.
	got := ZoomAtPoint(Transform{Scale: 0}, Vec2{X: 10, Y: 10}, 1)
	if math.IsNaN(got.Scale) || math.IsNaN(got.Translate.X) {
		t.Fatal("zoom from corrupt state produced NaN")
	}
	if got.Scale < MinScale || got.Scale > MaxScale {
		t.Errorf("Scale = %f, want within bounds", got.Scale)
	}
}

func BenchmarkZoomAtPoint(b *testing.B) {
	state := Transform{Scale: 2.5, Translate: Vec2{X: 31, Y: -12}}
	off := Vec2{X: 50, Y: 30}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		state = ZoomAtPoint(state, off, float64(1-2*(i&1)))
	}
}
