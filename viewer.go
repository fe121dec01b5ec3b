package lightbox

import (
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
)

const (
	backdropAlpha = 0.85 // backdrop darkness at full visibility
	entrancePop   = 0.92 // image scale at alpha 0; eases up to 1.0
)

// Config configures a Viewer. The zero value is usable; the viewer then has
// no close callback, no scroll locking, and the default snap policy.
type Config struct {
	// Source is the opaque reference of the displayed image (a URL or
	// asset path). The viewer never fetches it; it exists for host
	// bookkeeping and the debug overlay.
	Source string

	// AltText, when set, is drawn as a caption under the image.
	AltText string

	// OnCloseRequested is invoked exactly once per mount, after the exit
	// animation completes. Not invoked on Unmount.
	OnCloseRequested func()

	// ScrollLock is the host's background scroll-suppression flag. May be
	// nil.
	ScrollLock ScrollLocker

	// Snap is the gesture-release policy. The zero value snaps near-1x
	// transforms to identity and leaves zoomed panning unclamped.
	Snap SnapPolicy

	// Debug enables the on-screen transform readout and per-frame gesture
	// logging to stderr.
	Debug bool
}

// Viewer is a modal image viewport: it owns the transform and lifecycle
// state, polls input while mounted, and draws the overlay. All methods must
// be called from the game loop goroutine; the viewer is single-threaded by
// design.
type Viewer struct {
	cfg Config

	img    *ebiten.Image
	source string

	viewW, viewH float64

	transform Transform

	// Lifecycle (modal.go)
	state          LifecycleState
	alpha          float64 // overlay visibility, 0..1, driven by the fade tween
	fade           *gween.Tween
	prevScrollLock bool
	closeNotified  bool

	// Input (input.go)
	pointers     [maxPointers]pointerState
	captured     [maxPointers]bool
	pinch        pinchState
	contactsDown int
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchIDBuf   []ebiten.TouchID
	touchBuf     []touchPoint
	cursorHinted bool

	// Injection and scripting (inject.go, testrunner.go)
	injectQueue []syntheticEvent
	runner      *TestRunner

	// Screenshots (screenshot.go)
	screenshotQueue []string

	// ScreenshotDir is where labeled screenshots are written.
	// Defaults to "screenshots".
	ScreenshotDir string
}

// New creates a Viewer in the Closed state. Call Mount to open it.
func New(cfg Config) *Viewer {
	return &Viewer{
		cfg:           cfg,
		source:        cfg.Source,
		transform:     Identity,
		state:         StateClosed,
		ScreenshotDir: "screenshots",
	}
}

// Transform returns the current viewport transform.
func (v *Viewer) Transform() Transform {
	return v.transform
}

// Source returns the reference of the currently displayed image.
func (v *Viewer) Source() string {
	return v.source
}

// SetImage swaps the displayed image while mounted and resets the viewport
// transform to identity. The lifecycle state is unchanged; any in-progress
// gesture is dropped because its session refers to the previous image.
func (v *Viewer) SetImage(img *ebiten.Image, source string) {
	v.img = img
	v.source = source
	v.transform = Identity
	v.releaseCaptures()
}

// ResetView snaps the transform back to identity without touching the
// lifecycle. Equivalent to what the snap policy does after a near-1x
// release.
func (v *Viewer) ResetView() {
	v.transform = Identity
}

// Layout stores the viewport size and returns it unchanged, matching the
// ebiten.Game Layout shape so a Viewer can be embedded directly in a game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.viewW, v.viewH = float64(outsideWidth), float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// Update advances the lifecycle animation and processes one frame of
// input. Call it every frame while the viewer is mounted; it is a no-op
// when Closed.
func (v *Viewer) Update() {
	if v.state == StateClosed {
		return
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	v.stepLifecycle(dt)

	if v.runner != nil {
		v.runner.step(v)
	}

	// Input is armed only while interactive; a closing viewer ignores
	// gestures so the exit animation can't be interrupted.
	if v.state == StateVisible {
		before := v.transform
		v.processInput()
		if v.cfg.Debug && v.transform != before {
			fmt.Fprintf(os.Stderr, "[lightbox] %s scale %.3f translate (%.1f, %.1f)\n",
				v.state, v.transform.Scale, v.transform.Translate.X, v.transform.Translate.Y)
		}
	}
	v.updateCursorHint()
}

// Draw renders the overlay: dimmed backdrop, the transformed image, the
// close control, and the optional caption and debug readout. A Closed
// viewer draws nothing.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.state == StateClosed {
		return
	}

	b := screen.Bounds()
	v.viewW, v.viewH = float64(b.Dx()), float64(b.Dy())

	v.drawBackdrop(screen)
	v.drawImage(screen)
	v.drawCloseControl(screen)

	if v.cfg.AltText != "" {
		ebitenutil.DebugPrintAt(screen, v.cfg.AltText, 8, int(v.viewH)-16)
	}
	if v.cfg.Debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s | scale %.2f | translate (%.0f, %.0f) | fps %.0f | %s",
				v.state, v.transform.Scale,
				v.transform.Translate.X, v.transform.Translate.Y,
				ebiten.ActualFPS(), v.source),
			8, 8)
	}

	v.flushScreenshots(screen)
}

func (v *Viewer) drawBackdrop(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.viewW, v.viewH)
	op.ColorScale.Scale(0, 0, 0, float32(v.alpha*backdropAlpha))
	screen.DrawImage(whitePixel, op)
}

func (v *Viewer) drawImage(screen *ebiten.Image) {
	if v.img == nil {
		return
	}
	// Unclamped panning can push the image fully off screen.
	view := Rect{Width: v.viewW, Height: v.viewH}
	if !v.imageRect().Intersects(view) {
		return
	}

	ib := v.img.Bounds()
	fitted := v.imageSize()
	fit := fitted.X / float64(ib.Dx())

	// Entrance/exit pop: the image scales up from entrancePop as the
	// overlay fades in, and back down as it fades out.
	pop := entrancePop + (1-entrancePop)*v.alpha
	s := v.transform.Scale * fit * pop

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(ib.Dx())/2, -float64(ib.Dy())/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(v.viewW/2+v.transform.Translate.X, v.viewH/2+v.transform.Translate.Y)
	op.Filter = ebiten.FilterLinear
	op.ColorScale.ScaleAlpha(float32(v.alpha))
	screen.DrawImage(v.img, op)
}

func (v *Viewer) drawCloseControl(screen *ebiten.Image) {
	r := v.closeRect()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.Scale(1, 1, 1, float32(v.alpha*0.25))
	screen.DrawImage(whitePixel, op)
	ebitenutil.DebugPrintAt(screen, "x", int(r.X+r.Width/2)-3, int(r.Y+r.Height/2)-8)
}

// imageSize returns the image's fitted size at scale 1: the native size
// shrunk (never grown) to fit the viewport, preserving aspect ratio. Zero
// when no image is mounted.
func (v *Viewer) imageSize() Vec2 {
	if v.img == nil {
		return Vec2{}
	}
	ib := v.img.Bounds()
	w, h := float64(ib.Dx()), float64(ib.Dy())
	if w <= 0 || h <= 0 {
		return Vec2{}
	}
	fit := 1.0
	if v.viewW > 0 && v.viewH > 0 {
		fit = math.Min(1, math.Min(v.viewW/w, v.viewH/h))
	}
	return Vec2{X: w * fit, Y: h * fit}
}
