package lightbox

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers  = 10  // pointer 0 = mouse, 1-9 = touch contacts
	clickSlopPx  = 4.0 // max total movement for a press+release to count as a click
	closeCtlSize = 40.0
	closeCtlPad  = 8.0
)

// pointerState tracks one pointer (mouse or touch contact) across frames.
type pointerState struct {
	down    bool
	startX  float64
	startY  float64
	lastX   float64
	lastY   float64
	onImage bool // pressed inside the image; drives panning and capture
	moved   bool // exceeded the click slop since press
	pinched bool // took part in a pinch; the eventual release is not a tap
}

// pinchState is the baseline for the two-contact pinch gesture. Valid only
// while exactly two touch contacts are down; a third contact or a drop
// below two clears it.
type pinchState struct {
	active   bool
	prevDist float64
}

// touchPoint is one touch contact's position for a single frame.
type touchPoint struct {
	id ebiten.TouchID
	x  float64
	y  float64
}

// frameInput is the polled input snapshot for one frame. Polling is
// separated from handling so synthetic events and scripted tests drive the
// exact same state machine as live input.
type frameInput struct {
	wheelY       float64
	mouseX       float64
	mouseY       float64
	mousePressed bool // primary button only; other buttons are ignored
	touches      []touchPoint
}

// processInput consumes one frame of input: the next queued synthetic event
// if any, otherwise the live Ebitengine state.
func (v *Viewer) processInput() {
	if len(v.injectQueue) > 0 {
		ev := v.injectQueue[0]
		v.injectQueue = v.injectQueue[1:]
		v.applyInput(ev.frameInput())
		return
	}
	v.applyInput(v.pollInput())
}

// pollInput reads the current mouse, wheel, and touch state from Ebitengine.
func (v *Viewer) pollInput() frameInput {
	var in frameInput

	mx, my := ebiten.CursorPosition()
	in.mouseX, in.mouseY = float64(mx), float64(my)
	_, in.wheelY = ebiten.Wheel()
	in.mousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	v.touchIDBuf = ebiten.AppendTouchIDs(v.touchIDBuf[:0])
	v.touchBuf = v.touchBuf[:0]
	for _, tid := range v.touchIDBuf {
		tx, ty := ebiten.TouchPosition(tid)
		v.touchBuf = append(v.touchBuf, touchPoint{id: tid, x: float64(tx), y: float64(ty)})
	}
	in.touches = v.touchBuf

	return in
}

// applyInput runs the gesture state machine over one frame of input and
// applies the resulting transform updates. When the frame ends the last
// live session, the snap policy runs exactly once.
func (v *Viewer) applyInput(in frameInput) {
	wasLive := v.sessionLive()

	// Contact count for the whole frame, taken from the snapshot so a
	// contact arriving later in the frame still suppresses panning.
	v.contactsDown = len(in.touches)
	if in.mousePressed {
		v.contactsDown++
	}

	if in.wheelY != 0 {
		v.handleWheel(in.mouseX, in.mouseY, in.wheelY)
	}

	v.processPointer(0, in.mouseX, in.mouseY, in.mousePressed)
	v.processTouches(in.touches)
	v.detectPinch()

	if wasLive && !v.sessionLive() {
		v.transform = v.cfg.Snap.Apply(v.transform, v.imageSize(), Vec2{X: v.viewW, Y: v.viewH})
	}
}

// handleWheel applies one anchor-preserving zoom step at the cursor. The
// anchor offset is measured from the image's rendered center (viewport
// center plus the current translate), which keeps the content under the
// cursor fixed exactly.
func (v *Viewer) handleWheel(cx, cy, dir float64) {
	offset := Vec2{
		X: cx - (v.viewW/2 + v.transform.Translate.X),
		Y: cy - (v.viewH/2 + v.transform.Translate.Y),
	}
	v.transform = ZoomAtPoint(v.transform, offset, dir)
}

// processPointer runs the per-pointer state machine for a single pointer.
// Pointer 0 is the mouse; touch contacts occupy slots 1-9 and feed through
// here so a single touch behaves exactly like a mouse drag.
func (v *Viewer) processPointer(id int, x, y float64, pressed bool) {
	ps := &v.pointers[id]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.moved = false
		ps.pinched = false
		ps.onImage = v.imageRect().Contains(x, y)
		if ps.onImage {
			// Exclusive capture: moves for this pointer pan the image
			// until release, even if it leaves the image rect.
			v.captured[id] = true
		}

	case !pressed && ps.down:
		v.captured[id] = false
		ps.down = false
		if !ps.moved && !ps.pinched {
			v.handleTap(x, y)
		}

	case pressed && ps.down:
		dx, dy := x-ps.lastX, y-ps.lastY
		if dx != 0 || dy != 0 {
			if !ps.moved {
				tx, ty := x-ps.startX, y-ps.startY
				if math.Sqrt(tx*tx+ty*ty) > clickSlopPx {
					ps.moved = true
				}
			}
			// Panning requires sole ownership: with two or more contacts
			// down this frame (pinching or not), no single pointer pans.
			if v.captured[id] && v.contactsDown == 1 {
				v.transform = PanBy(v.transform, Vec2{X: dx, Y: dy})
			}
		}
		ps.lastX, ps.lastY = x, y
	}
}

// handleTap handles a press+release without movement: the close control and
// the backdrop both request a close, taps on the image do nothing.
func (v *Viewer) handleTap(x, y float64) {
	if v.closeRect().Contains(x, y) {
		v.RequestClose()
		return
	}
	if !v.imageRect().Contains(x, y) {
		v.RequestClose()
	}
}

// processTouches updates touch slots from this frame's contact list and
// releases slots whose contact lifted.
func (v *Viewer) processTouches(touches []touchPoint) {
	var activeSlots [maxPointers]bool
	for _, tp := range touches {
		slot := v.touchSlot(tp.id)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		v.processPointer(slot, tp.x, tp.y, true)
	}

	for i := 1; i < maxPointers; i++ {
		if v.touchUsed[i] && !activeSlots[i] {
			ps := &v.pointers[i]
			if ps.down {
				v.processPointer(i, ps.lastX, ps.lastY, false)
			}
			v.touchUsed[i] = false
			v.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9). Returns the
// existing slot or allocates a new one. Returns -1 if all slots are taken.
func (v *Viewer) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if v.touchUsed[i] && v.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !v.touchUsed[i] {
			v.touchUsed[i] = true
			v.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// detectPinch maintains the two-contact pinch baseline and applies the
// per-frame distance ratio to the scale. Any contact count other than two
// drops the baseline; returning to two starts a fresh one. Contacts that
// take part in a pinch are marked so their eventual release is not a tap.
func (v *Viewer) detectPinch() {
	var p0, p1 *pointerState
	count := 0
	for i := 1; i < maxPointers; i++ {
		if v.pointers[i].down {
			count++
			if p0 == nil {
				p0 = &v.pointers[i]
			} else if p1 == nil {
				p1 = &v.pointers[i]
			}
		}
	}

	if count != 2 {
		v.pinch.active = false
		v.pinch.prevDist = 0
		return
	}

	dist := math.Hypot(p1.lastX-p0.lastX, p1.lastY-p0.lastY)
	p0.pinched = true
	p1.pinched = true
	if !v.pinch.active {
		v.pinch.active = true
		v.pinch.prevDist = dist
		return
	}

	v.transform = PinchScale(v.transform, PinchRatio(dist, v.pinch.prevDist))
	v.pinch.prevDist = dist
}

// sessionLive reports whether any pointer or pinch session is in progress.
func (v *Viewer) sessionLive() bool {
	for i := range v.pointers {
		if v.pointers[i].down {
			return true
		}
	}
	return v.pinch.active
}

// dragSessionLive reports whether a pan session on the image is in
// progress, for the presentational cursor hint.
func (v *Viewer) dragSessionLive() bool {
	for i := range v.captured {
		if v.captured[i] {
			return true
		}
	}
	return false
}

// releaseCaptures drops all pointer captures and session state. Called on
// teardown so an unmount mid-drag doesn't leak a capture.
func (v *Viewer) releaseCaptures() {
	for i := 0; i < maxPointers; i++ {
		v.captured[i] = false
		v.pointers[i] = pointerState{}
		v.touchUsed[i] = false
		v.touchMap[i] = 0
	}
	v.pinch = pinchState{}
	v.contactsDown = 0
}

// updateCursorHint toggles the system cursor between the default shape and
// a move hint while a pan session is live. Purely presentational.
func (v *Viewer) updateCursorHint() {
	live := v.dragSessionLive()
	if live == v.cursorHinted {
		return
	}
	v.cursorHinted = live
	if live {
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// imageRect returns the image's current screen rectangle: centered in the
// viewport, scaled, and offset by the translate.
func (v *Viewer) imageRect() Rect {
	size := v.imageSize()
	w := size.X * v.transform.Scale
	h := size.Y * v.transform.Scale
	cx := v.viewW/2 + v.transform.Translate.X
	cy := v.viewH/2 + v.transform.Translate.Y
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// closeRect returns the close control's screen rectangle (top-right corner).
func (v *Viewer) closeRect() Rect {
	return Rect{
		X:      v.viewW - closeCtlSize - closeCtlPad,
		Y:      closeCtlPad,
		Width:  closeCtlSize,
		Height: closeCtlSize,
	}
}
