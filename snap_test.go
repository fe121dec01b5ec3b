package lightbox

import "testing"

func TestSnapNearIdentity(t *testing.T) {
	// Releasing at scale 1.0005 with a leftover offset must snap exactly
	// back to identity.
	state := Transform{Scale: 1.0005, Translate: Vec2{X: 10, Y: -5}}
	got := SnapPolicy{}.Apply(state, Vec2{X: 400, Y: 300}, Vec2{X: 800, Y: 600})
	if got != Identity {
		t.Errorf("Apply(%v) = %v, want identity", state, got)
	}
}

func TestSnapExactIdentityStaysIdentity(t *testing.T) {
	got := SnapPolicy{}.Apply(Identity, Vec2{X: 400, Y: 300}, Vec2{X: 800, Y: 600})
	if got != Identity {
		t.Errorf("Apply(identity) = %v, want identity", got)
	}
}

func TestSnapAboveEpsilonUntouched(t *testing.T) {
	state := Transform{Scale: 1.2, Translate: Vec2{X: 300, Y: -400}}
	got := SnapPolicy{}.Apply(state, Vec2{X: 400, Y: 300}, Vec2{X: 800, Y: 600})
	if got != state {
		t.Errorf("Apply(%v) = %v, want unchanged (translation unclamped by default)", state, got)
	}
}

func TestSnapCustomEpsilon(t *testing.T) {
	state := Transform{Scale: 1.05, Translate: Vec2{X: 1, Y: 1}}

	got := SnapPolicy{Epsilon: 0.1}.Apply(state, Vec2{}, Vec2{})
	if got != Identity {
		t.Errorf("wide epsilon: Apply(%v) = %v, want identity", state, got)
	}

	got = SnapPolicy{Epsilon: 0.01}.Apply(state, Vec2{}, Vec2{})
	if got != state {
		t.Errorf("narrow epsilon: Apply(%v) = %v, want unchanged", state, got)
	}
}

func TestSnapClampTranslation(t *testing.T) {
	policy := SnapPolicy{ClampTranslation: true}
	image := Vec2{X: 400, Y: 300}
	view := Vec2{X: 800, Y: 600}

	// At 3x the scaled image is 1200x900; the X offset may reach
	// (1200-800)/2 = 200 and the Y offset (900-600)/2 = 150.
	state := Transform{Scale: 3, Translate: Vec2{X: 500, Y: -50}}
	got := policy.Apply(state, image, view)
	if got.Translate.X != 200 {
		t.Errorf("Translate.X = %f, want 200", got.Translate.X)
	}
	if got.Translate.Y != -50 {
		t.Errorf("Translate.Y = %f, want -50 (within limit)", got.Translate.Y)
	}

	// When the scaled image still fits the viewport, the offset collapses
	// to centered.
	state = Transform{Scale: 1.5, Translate: Vec2{X: 80, Y: 60}}
	got = policy.Apply(state, image, view)
	if got.Translate.X != 0 || got.Translate.Y != 0 {
		t.Errorf("Translate = %v, want (0, 0) when the image fits", got.Translate)
	}
}

func TestSnapClampKeepsScale(t *testing.T) {
	policy := SnapPolicy{ClampTranslation: true}
	state := Transform{Scale: 2.5, Translate: Vec2{X: 9999, Y: 9999}}
	got := policy.Apply(state, Vec2{X: 400, Y: 300}, Vec2{X: 800, Y: 600})
	if got.Scale != 2.5 {
		t.Errorf("Scale = %f, want 2.5", got.Scale)
	}
}
