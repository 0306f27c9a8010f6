package rowan

// Surface is the capability every pixel store exposes to participate in
// compositing: read a pixel, write a pixel, report a size. The derived
// operations [Clear] and [Blit] are built only on these primitives, so
// they work uniformly across all concrete surfaces.
//
// The blit engine never calls At or Set out of bounds. Behavior of
// out-of-bounds primitive access is implementation-defined; the concrete
// surfaces in this package index their backing array directly and panic.
type Surface interface {
	// At returns the color at an in-bounds position.
	At(pos Point) Color
	// Set writes the color at an in-bounds position.
	Set(pos Point, c Color)
	// Size returns the surface dimensions in pixels.
	Size() Point
}

// Index is the canonical linear-storage mapping for surfaces backed by a
// flat row-major array: pos.Y*width + pos.X.
func Index(pos Point, width int) int {
	return pos.Y*width + pos.X
}

// filler is the optional bulk-fill upgrade. Surfaces backed by a flat
// array implement it so Clear can skip the per-pixel loop.
type filler interface {
	Fill(c Color)
}

// Clear sets every pixel of dst to c. Surfaces that implement
// Fill(Color) are filled in bulk; otherwise pixels are written one at a
// time in row-major order (the order is not observable, all writes are
// independent).
func Clear(dst Surface, c Color) {
	if f, ok := dst.(filler); ok {
		f.Fill(c)
		return
	}
	size := dst.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			dst.Set(Pt(x, y), c)
		}
	}
}

// BlitOptions selects the source and destination rectangles for a [Blit]
// call. The zero value of every field means "use the default":
//
//   - SrcPos:  origin of the source surface
//   - SrcSize: the source surface's full size
//   - DstPos:  origin of the destination surface
//   - DstSize: same as SrcSize (unscaled copy)
//
// To blit an explicitly empty region, call [BlitRegion] or [BlitScaled]
// directly; there a non-positive size is a no-op rather than a default.
type BlitOptions struct {
	SrcPos  Point
	SrcSize Point
	DstPos  Point
	DstSize Point
}

// Blit copies a rectangle of src into dst. A nil opts blits the whole of
// src to dst's origin. See [BlitOptions] for the field defaults.
//
// When the destination rectangle matches the source rectangle in size
// (or DstSize is left zero) the copy is a pure translation through
// [BlitRegion]; otherwise it is resampled through [BlitScaled] with
// floor-based nearest-neighbor sampling. Either way the copy is clipped
// to both surfaces and source pixels with alpha exactly 0 are skipped.
func Blit(dst, src Surface, opts *BlitOptions) {
	var o BlitOptions
	if opts != nil {
		o = *opts
	}
	srcSize := o.SrcSize
	if srcSize == (Point{}) {
		srcSize = src.Size()
	}
	if o.DstSize == (Point{}) || o.DstSize == srcSize {
		BlitRegion(dst, src, o.SrcPos, o.DstPos, srcSize)
		return
	}
	BlitScaled(dst, src, o.SrcPos, srcSize, o.DstPos, o.DstSize)
}
