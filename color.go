package rowan

// Color is a 32-bit packed ARGB color: A<<24 | R<<16 | G<<8 | B.
// Channels are 8-bit, straight (non-premultiplied) alpha.
//
// The blit engine reads only the alpha channel, and only as an opacity
// gate: a pixel with alpha exactly 0 is skipped, any other alpha (partial
// included) is copied opaquely. This is alpha-key transparency, not alpha
// blending.
type Color uint32

// RGB returns a fully opaque color (alpha 255).
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ColorFromUint32 reinterprets a packed ARGB word as a Color.
// Exact inverse of [Color.Uint32].
func ColorFromUint32(v uint32) Color {
	return Color(v)
}

// Uint32 returns the packed ARGB representation.
func (c Color) Uint32() uint32 {
	return uint32(c)
}

// A returns the alpha channel.
func (c Color) A() uint8 {
	return uint8(c >> 24)
}

// R returns the red channel.
func (c Color) R() uint8 {
	return uint8(c >> 16)
}

// G returns the green channel.
func (c Color) G() uint8 {
	return uint8(c >> 8)
}

// B returns the blue channel.
func (c Color) B() uint8 {
	return uint8(c)
}

// Named palette colors. All fully opaque.
const (
	Black Color = 0xFF000000
	White Color = 0xFFFFFFFF
	Red   Color = 0xFFFF0000
	Green Color = 0xFF00FF00
	Blue  Color = 0xFF0000FF

	Yellow  Color = 0xFFFFFF00
	Cyan    Color = 0xFF00FFFF
	Magenta Color = 0xFFFF00FF

	Gray      Color = 0xFF808080
	LightGray Color = 0xFFC0C0C0
	DarkGray  Color = 0xFF404040

	Orange Color = 0xFFFFA500
	Brown  Color = 0xFFA52A2A
	Pink   Color = 0xFFFFC0CB
	Purple Color = 0xFF800080
)

// Transparent is the zero color: all channels 0, alpha-keyed away by the
// blit engine. Useful for clearing an [Image] used as a sprite sheet.
const Transparent Color = 0x00000000
