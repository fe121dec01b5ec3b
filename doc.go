// Package lightbox is a modal image viewport widget for [Ebitengine].
//
// Lightbox displays a single image inside a dimmed full-screen overlay and
// lets the user magnify and reposition it with the mouse wheel, pointer
// drag, or a two-finger pinch. The overlay animates in and out and
// suppresses background scrolling on the host for the duration of the
// mount.
//
// # Quick start
//
// Create a [Viewer], mount an image, and drive it from your game loop:
//
//	viewer := lightbox.New(lightbox.Config{
//		Source:           "plants/kalanchoe.jpg",
//		AltText:          "Kalanchoe blossfeldiana",
//		OnCloseRequested: func() { /* remove from your scene */ },
//	})
//	viewer.Mount(img)
//
//	func (g *Game) Update() error        { g.viewer.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.viewer.Draw(s) }
//
// The viewer polls Ebitengine input itself each frame. Scale is bounded to
// [MinScale, MaxScale]; wheel zoom keeps the point under the cursor fixed;
// panning is always 1:1 with pointer movement regardless of zoom level.
// Releasing a gesture near 1x snaps the view back to identity (see
// [SnapPolicy]).
//
// # Lifecycle
//
// A viewer moves through Closed → Opening → Visible → Closing → Closed.
// Clicking the backdrop or the close control begins a [TransitionDuration]
// exit animation, after which Config.OnCloseRequested fires exactly once.
// [Viewer.Unmount] at any point cancels the pending transition and restores
// the host's scroll-lock flag to its prior value without firing the
// callback.
//
// # Testing
//
// Synthetic input can be injected with [Viewer.InjectWheel],
// [Viewer.InjectDrag], and friends, or replayed from a JSON gesture script
// via [LoadTestScript]. Injected events flow through the same state machine
// as real input.
//
// [Ebitengine]: https://ebitengine.org
package lightbox
