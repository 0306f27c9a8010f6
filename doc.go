// Package rowan is a software-rasterized 2D surface-compositing library.
//
// Rowan maintains rectangular pixel buffers ("surfaces") and copies or
// scales rectangular regions between them with alpha-keyed transparency.
// All compositing happens on the CPU, pixel by pixel; the GPU is touched
// only once per frame, when a window buffer is presented.
//
// # Quick start
//
// The simplest program clears a window buffer and blits an image into it
// every frame:
//
//	type game struct{ sprite *rowan.Image }
//
//	func (g *game) Render(w *rowan.Window, dt float64) {
//		buf := w.Buffer()
//		rowan.Clear(buf, rowan.LightGray)
//		rowan.Blit(buf, g.sprite, nil)
//		buf.Present()
//	}
//
//	func main() {
//		sprite, _ := rowan.LoadImage("sprite.png")
//		rowan.Run(rowan.Config{Title: "Hello"}, func(*rowan.Window) rowan.State {
//			return &game{sprite: sprite}
//		})
//	}
//
// # Surfaces
//
// Every pixel store implements [Surface]: read a pixel, write a pixel,
// report a size. The derived operations [Clear] and [Blit] are built only
// on those primitives, so any two surfaces can composite into each other
// regardless of what backs them. Rowan ships two concrete surfaces:
// [Image] (an in-memory pixel array, loadable from PNG/JPEG/BMP) and
// [Buffer] (a window's frame buffer, presented via [Ebitengine]).
//
// # Blitting
//
// [Blit] copies a source rectangle into a destination rectangle, clipped
// against both surfaces, skipping source pixels whose alpha is exactly
// zero (alpha-key transparency: any nonzero alpha is copied opaquely).
// When source and destination rectangles differ in size the copy is
// resampled with floor-based nearest-neighbor scaling. The underlying
// engines [BlitRegion] and [BlitScaled] are exported for callers that
// want explicit region arguments.
//
// Rotation, arbitrary transforms, alpha blending, and filtered sampling
// are deliberately out of scope.
//
// # Concurrency
//
// Rowan is single-threaded by design. A blit reads one surface and
// writes another for the duration of the call; surfaces must not be
// mutated concurrently.
//
// [Ebitengine]: https://ebitengine.org
package rowan
