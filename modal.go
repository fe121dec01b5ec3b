package lightbox

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionDuration is the length of the enter and exit animations in
// seconds. A close request fires Config.OnCloseRequested only after the
// exit animation has run to completion.
const TransitionDuration = 0.22

// Mount opens the viewer over the given image. The lifecycle enters
// Opening; the first Update after Mount flips it to Visible and starts the
// entrance animation. The host's scroll-lock flag is captured and forced
// locked for the duration of the mount. Mounting an already-mounted viewer
// is a no-op.
func (v *Viewer) Mount(img *ebiten.Image) {
	if v.state != StateClosed {
		return
	}
	v.img = img
	v.transform = Identity
	v.alpha = 0
	v.closeNotified = false
	v.state = StateOpening

	if v.cfg.ScrollLock != nil {
		v.prevScrollLock = v.cfg.ScrollLock.Locked()
		v.cfg.ScrollLock.SetLocked(true)
	}
}

// Unmount tears the viewer down immediately from any state: the pending
// close countdown is cancelled, pointer captures are released, and the
// scroll-lock flag is restored to its captured value. OnCloseRequested is
// not fired.
func (v *Viewer) Unmount() {
	if v.state == StateClosed {
		return
	}
	v.fade = nil
	v.teardown()
}

// RequestClose begins the exit animation. Valid while the viewer is
// Opening or Visible; a request while already Closing is a no-op, so at
// most one OnCloseRequested fires per lifecycle.
func (v *Viewer) RequestClose() {
	if v.state != StateOpening && v.state != StateVisible {
		return
	}
	v.state = StateClosing
	v.fade = gween.New(float32(v.alpha), 0, TransitionDuration, ease.InQuad)
}

// State returns the current lifecycle state.
func (v *Viewer) State() LifecycleState {
	return v.state
}

// stepLifecycle advances the lifecycle and its animation by dt seconds.
// The close countdown is this tween: frame-driven and owned by the viewer,
// so cancellation on teardown is synchronous.
func (v *Viewer) stepLifecycle(dt float32) {
	switch v.state {
	case StateOpening:
		// First frame after mount: trigger the visual entrance.
		v.state = StateVisible
		v.fade = gween.New(0, 1, TransitionDuration, ease.OutQuad)

	case StateVisible:
		if v.fade == nil {
			return
		}
		val, done := v.fade.Update(dt)
		v.alpha = float64(val)
		if done {
			v.fade = nil
		}

	case StateClosing:
		if v.fade == nil {
			return
		}
		val, done := v.fade.Update(dt)
		v.alpha = float64(val)
		if done {
			v.fade = nil
			v.teardown()
			v.notifyClose()
		}
	}
}

// teardown releases everything the mount acquired. Safe to call once per
// mount; both Unmount and the exit animation funnel through here.
func (v *Viewer) teardown() {
	v.releaseCaptures()
	if v.cursorHinted {
		v.cursorHinted = false
	}
	if v.cfg.ScrollLock != nil {
		v.cfg.ScrollLock.SetLocked(v.prevScrollLock)
	}
	v.state = StateClosed
	v.alpha = 0
	v.img = nil
}

// notifyClose fires OnCloseRequested at most once per lifecycle.
func (v *Viewer) notifyClose() {
	if v.closeNotified {
		return
	}
	v.closeNotified = true
	if v.cfg.OnCloseRequested != nil {
		v.cfg.OnCloseRequested()
	}
}
