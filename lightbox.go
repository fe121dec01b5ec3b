package lightbox

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout
// the API. All coordinates are screen pixels with the origin at the
// top-left, Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// LifecycleState identifies where a Viewer is in its modal lifecycle.
type LifecycleState uint8

const (
	StateClosed  LifecycleState = iota // not mounted; eligible for teardown
	StateOpening                       // mounted, waiting for the first frame
	StateVisible                       // interactive; entrance animation may still run
	StateClosing                       // exit animation running; input disarmed
)

// String returns the state name for debug output.
func (s LifecycleState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateVisible:
		return "visible"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// ScrollLocker is the host-side background scroll-suppression flag. The
// viewer captures the flag's value on mount, forces it locked, and restores
// the captured value on every exit path. The flag is process-wide; the
// viewer assumes modals are not nested.
type ScrollLocker interface {
	Locked() bool
	SetLocked(locked bool)
}

// ScrollFlag is a plain boolean ScrollLocker for hosts that track scroll
// suppression in-process.
type ScrollFlag struct {
	locked bool
}

// Locked reports whether background scrolling is currently suppressed.
func (f *ScrollFlag) Locked() bool { return f.locked }

// SetLocked sets the scroll-suppression flag.
func (f *ScrollFlag) SetLocked(locked bool) { f.locked = locked }

// whitePixel is a 1x1 white image used to draw the backdrop and the close
// control as tinted solid rectangles.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}
