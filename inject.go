package lightbox

import "github.com/hajimehoshi/ebiten/v2"

// syntheticEvent is one injected frame of input. Each queued event replaces
// the live input snapshot for exactly one Update, so injected gestures run
// through the same state machine as real mouse and touch input.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	wheelY  float64
	touches []touchPoint
}

// frameInput converts the synthetic event to a frame input snapshot.
func (ev syntheticEvent) frameInput() frameInput {
	return frameInput{
		wheelY:       ev.wheelY,
		mouseX:       ev.x,
		mouseY:       ev.y,
		mousePressed: ev.pressed,
		touches:      ev.touches,
	}
}

// Synthetic touch contacts use IDs well above anything a real device
// reports, so a stray live contact can't alias an injected one.
const syntheticTouchBase ebiten.TouchID = 1 << 16

// InjectWheel queues one wheel step at the given cursor position.
// dir > 0 zooms in, dir < 0 zooms out. Consumed on the next Update.
func (v *Viewer) InjectWheel(x, y, dir float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{x: x, y: y, wheelY: dir})
}

// InjectPress queues a primary-button press at the given screen coordinates.
func (v *Viewer) InjectPress(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (v *Viewer) InjectMove(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (v *Viewer) InjectRelease(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (v *Viewer) InjectClick(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// frames frames; the minimum is 2 (press + release).
func (v *Viewer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		v.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	v.InjectRelease(toX, toY)
}

// InjectPinch queues a two-contact pinch centered at (cx, cy), spreading
// the contacts from fromDist to toDist apart over frames frames, then
// lifting both. The contacts move symmetrically along the horizontal axis.
func (v *Viewer) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		half := (fromDist + (toDist-fromDist)*t) / 2
		v.injectQueue = append(v.injectQueue, syntheticEvent{
			x: cx, y: cy,
			touches: []touchPoint{
				{id: syntheticTouchBase, x: cx - half, y: cy},
				{id: syntheticTouchBase + 1, x: cx + half, y: cy},
			},
		})
	}
	// Lift both contacts.
	v.injectQueue = append(v.injectQueue, syntheticEvent{x: cx, y: cy})
}

// InjectTouches queues one frame with an arbitrary set of touch contacts,
// for gestures the convenience helpers don't cover.
func (v *Viewer) InjectTouches(contacts ...Vec2) {
	touches := make([]touchPoint, len(contacts))
	for i, c := range contacts {
		touches[i] = touchPoint{id: syntheticTouchBase + ebiten.TouchID(i), x: c.X, y: c.Y}
	}
	v.injectQueue = append(v.injectQueue, syntheticEvent{touches: touches})
}

// PendingInjections reports how many queued synthetic events have not been
// consumed yet. The test runner waits for the queue to drain between steps.
func (v *Viewer) PendingInjections() int {
	return len(v.injectQueue)
}
