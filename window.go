package rowan

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Key identifies a keyboard key. It is an alias of ebiten.Key, so the
// ebiten key constants (ebiten.KeyArrowLeft, ebiten.KeySpace, ...) are
// used directly with [Window.IsKeyPressed].
type Key = ebiten.Key

// Config describes the window to create for [Run]. The zero value of
// each field means "use the default".
type Config struct {
	Title     string // default "Rowan Window"
	Width     int    // default 640
	Height    int    // default 480
	TargetFPS int    // update rate; default 60, negative = uncapped
	ShowFPS   bool   // draw an FPS/TPS overlay in the top-left corner
}

// withDefaults resolves zero-valued Config fields.
func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "Rowan Window"
	}
	if c.Width == 0 {
		c.Width = 640
	}
	if c.Height == 0 {
		c.Height = 480
	}
	if c.TargetFPS == 0 {
		c.TargetFPS = 60
	}
	return c
}

// State is the per-frame callback implemented by the application.
// Render is called once per frame with the elapsed time since the
// previous frame in seconds; it typically takes the window's [Buffer],
// clears it, blits into it, and presents it.
type State interface {
	Render(w *Window, dt float64)
}

// Resizer is an optional interface a [State] may implement to be
// notified when the window is resized. The window's buffer already has
// the new size by the time Resize is called.
type Resizer interface {
	Resize(w *Window, size Point)
}

// Window is the handle passed to [State.Render] each frame. It owns the
// software frame buffer and exposes the current window size and key
// state.
type Window struct {
	size      Point
	buf       *Buffer
	screen    *ebiten.Image // valid only during Render
	presented bool
}

// Size returns the current window size in pixels.
func (w *Window) Size() Point {
	return w.size
}

// IsKeyPressed reports whether the given key is currently held down.
func (w *Window) IsKeyPressed(key Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Buffer returns the window's software frame buffer, sized to the
// current window. The buffer's contents persist between frames until
// the window is resized; callers normally [Clear] it anyway.
func (w *Window) Buffer() *Buffer {
	if w.buf == nil || w.buf.size != w.size {
		w.buf = newBuffer(w.size)
		w.buf.win = w
	}
	return w.buf
}

// Buffer is a window-backed pixel surface: packed ARGB pixels written by
// the CPU and presented to the screen once per frame. It implements
// [Surface] and the bulk-fill upgrade used by [Clear].
//
// The alpha channel is carried through blits as usual but ignored on
// present; the window itself is always opaque.
type Buffer struct {
	pix     []uint32
	size    Point
	scratch []byte // RGBA staging for WritePixels
	win     *Window
}

func newBuffer(size Point) *Buffer {
	return &Buffer{
		pix:  make([]uint32, size.X*size.Y),
		size: size,
	}
}

// At returns the pixel at pos. Out-of-bounds access panics.
func (b *Buffer) At(pos Point) Color {
	return Color(b.pix[Index(pos, b.size.X)])
}

// Set writes the pixel at pos. Out-of-bounds access panics.
func (b *Buffer) Set(pos Point, c Color) {
	b.pix[Index(pos, b.size.X)] = uint32(c)
}

// Size returns the buffer dimensions in pixels.
func (b *Buffer) Size() Point {
	return b.size
}

// Fill sets every pixel to c in one pass over the backing array.
func (b *Buffer) Fill(c Color) {
	for i := range b.pix {
		b.pix[i] = uint32(c)
	}
}

// Present pushes the buffer's pixels to the screen. Must be called from
// within [State.Render]; calling it at any other time is a no-op with a
// debug warning.
func (b *Buffer) Present() {
	if b.win == nil || b.win.screen == nil {
		debugf("Buffer.Present called outside Render, ignored")
		return
	}
	if b.size != b.win.size {
		debugf("Buffer.Present with stale %dx%d buffer on %dx%d window, ignored",
			b.size.X, b.size.Y, b.win.size.X, b.win.size.Y)
		return
	}
	if len(b.scratch) != 4*len(b.pix) {
		b.scratch = make([]byte, 4*len(b.pix))
	}
	packARGBToRGBA(b.pix, b.scratch)
	b.win.screen.WritePixels(b.scratch)
	b.win.presented = true
}

// packARGBToRGBA converts packed ARGB words to the RGBA byte order the
// screen expects. The alpha byte is forced to 0xFF: the window is
// opaque, and an opaque pixel is identical in straight and premultiplied
// form.
func packARGBToRGBA(pix []uint32, dst []byte) {
	for i, p := range pix {
		dst[4*i] = byte(p >> 16)
		dst[4*i+1] = byte(p >> 8)
		dst[4*i+2] = byte(p)
		dst[4*i+3] = 0xFF
	}
}

// app adapts a State to the ebiten game loop.
type app struct {
	cfg   Config
	win   *Window
	state State

	last          time.Time
	pendingResize bool
}

func (a *app) Update() error {
	if a.pendingResize {
		a.pendingResize = false
		if r, ok := a.state.(Resizer); ok {
			r.Resize(a.win, a.win.size)
		}
	}
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	now := time.Now()
	var dt float64
	if !a.last.IsZero() {
		dt = now.Sub(a.last).Seconds()
	}
	a.last = now

	a.win.screen = screen
	a.win.presented = false
	a.state.Render(a.win, dt)
	if !a.win.presented {
		debugf("Render returned without presenting a buffer")
	}
	a.win.screen = nil

	if a.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	size := Pt(outsideWidth, outsideHeight)
	if size != a.win.size {
		a.win.size = size
		a.pendingResize = true
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window described by cfg and drives the frame
// loop until the window is closed. newState is called once with the
// window before the first frame; the returned State's Render is then
// called every frame.
func Run(cfg Config, newState func(*Window) State) error {
	cfg = cfg.withDefaults()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TargetFPS > 0 {
		ebiten.SetTPS(cfg.TargetFPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	win := &Window{size: Pt(cfg.Width, cfg.Height)}
	a := &app{cfg: cfg, win: win}
	a.state = newState(win)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("rowan: run: %w", err)
	}
	return nil
}
