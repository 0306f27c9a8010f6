package rowan

// BlitRegion copies a size-sized rectangle of src at srcPos to dst at
// dstPos with a 1:1 pixel mapping. The copy is clipped independently
// against both surfaces: rows falling outside either surface are skipped
// whole, columns are clipped per pixel. Source pixels with alpha exactly
// 0 are skipped; all other pixels overwrite the destination verbatim
// (RGB and alpha, no blending).
//
// Negative positions are legal; clipping discards the out-of-range
// portion. A non-positive size writes nothing.
func BlitRegion(dst, src Surface, srcPos, dstPos, size Point) {
	dstSize := dst.Size()
	srcSize := src.Size()
	for y := 0; y < size.Y; y++ {
		dstY := dstPos.Y + y
		if dstY < 0 || dstY >= dstSize.Y {
			continue
		}
		srcY := srcPos.Y + y
		if srcY < 0 || srcY >= srcSize.Y {
			continue
		}
		for x := 0; x < size.X; x++ {
			dstX := dstPos.X + x
			if dstX < 0 || dstX >= dstSize.X {
				continue
			}
			srcX := srcPos.X + x
			if srcX < 0 || srcX >= srcSize.X {
				continue
			}
			c := src.At(Pt(srcX, srcY))
			if c.A() != 0 {
				dst.Set(Pt(dstX, dstY), c)
			}
		}
	}
}

// BlitScaled copies the srcSize-sized rectangle of src at srcPos into a
// dstSize-sized rectangle of dst at dstPos, resampling with floor-based
// nearest-neighbor sampling: destination pixel (x, y) samples source
// pixel (srcPos.X + floor(x*srcSize.X/dstSize.X), srcPos.Y +
// floor(y*srcSize.Y/dstSize.Y)). The truncation is load-bearing:
// rounding to nearest instead would shift the sampling grid by up to
// half a source pixel.
//
// Destination pixels are clipped against dst's bounds exactly as in
// [BlitRegion]. Sampled source coordinates that fall outside src (which
// can only happen when srcPos/srcSize reach beyond the source surface)
// are skipped, not clamped, so a too-large source region behaves as if
// clipped rather than smearing edge pixels. The alpha-key skip rule is
// the same as [BlitRegion]'s.
//
// A non-positive dstSize dimension writes nothing.
func BlitScaled(dst, src Surface, srcPos, srcSize, dstPos, dstSize Point) {
	if dstSize.X <= 0 || dstSize.Y <= 0 {
		return
	}
	dstBounds := dst.Size()
	srcBounds := src.Size()
	stepX := float64(srcSize.X) / float64(dstSize.X)
	stepY := float64(srcSize.Y) / float64(dstSize.Y)
	for y := 0; y < dstSize.Y; y++ {
		dstY := dstPos.Y + y
		if dstY < 0 || dstY >= dstBounds.Y {
			continue
		}
		srcY := srcPos.Y + int(float64(y)*stepY)
		if srcY < 0 || srcY >= srcBounds.Y {
			continue
		}
		for x := 0; x < dstSize.X; x++ {
			dstX := dstPos.X + x
			if dstX < 0 || dstX >= dstBounds.X {
				continue
			}
			srcX := srcPos.X + int(float64(x)*stepX)
			if srcX < 0 || srcX >= srcBounds.X {
				continue
			}
			c := src.At(Pt(srcX, srcY))
			if c.A() != 0 {
				dst.Set(Pt(dstX, dstY), c)
			}
		}
	}
}
