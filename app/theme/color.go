package theme

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed RGBA value with red in the low byte and alpha in
// the high byte, the layout every registry entry and every persisted
// override uses.
type Color uint32

const (
	shiftR = 0
	shiftG = 8
	shiftB = 16
	shiftA = 24

	alphaMask Color = 0xff << shiftA
)

// Pack builds a Color from 8-bit channels.
func Pack(r, g, b, a uint8) Color {
	return Color(r)<<shiftR | Color(g)<<shiftG | Color(b)<<shiftB | Color(a)<<shiftA
}

func (c Color) R() uint8 { return uint8(c >> shiftR) }
func (c Color) G() uint8 { return uint8(c >> shiftG) }
func (c Color) B() uint8 { return uint8(c >> shiftB) }
func (c Color) A() uint8 { return uint8(c >> shiftA) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return (c &^ alphaMask) | Color(a)<<shiftA
}

// AlphaFraction returns the alpha channel as a 0.0-1.0 float.
func (c Color) AlphaFraction() float32 {
	return float32(c.A()) / 255.0
}

// Vec4 returns the color as normalized RGBA floats for rendering
// pipelines that expect floating-point channels.
func (c Color) Vec4() [4]float32 {
	return [4]float32{
		float32(c.R()) / 255.0,
		float32(c.G()) / 255.0,
		float32(c.B()) / 255.0,
		float32(c.A()) / 255.0,
	}
}

// Hex renders the color as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// Tcell converts the color to a tcell RGB color for terminal rendering.
// Terminal cells have no alpha; the channel is simply dropped.
func (c Color) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

// MarkupTag renders the color as a tview dynamic-colors foreground tag
// ("[#rrggbb]") for tagging substrings of rendered text.
func (c Color) MarkupTag() string {
	return fmt.Sprintf("[#%02x%02x%02x]", c.R(), c.G(), c.B())
}

// ParseHex parses "#rrggbb" or "#rrggbbaa". A missing alpha component
// means fully opaque.
func ParseHex(s string) (Color, error) {
	var r, g, b, a uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		a = 0xff
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
	default:
		return 0, fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", s)
	}
	return Pack(r, g, b, a), nil
}

// FromHSV builds a color from hue/saturation/value, all in [0.0, 1.0],
// plus an alpha fraction. A hue of exactly 1.0 wraps to 0.0.
func FromHSV(h, s, v, a float32) Color {
	deg := float64(h) * 360.0
	if deg >= 360.0 {
		deg -= 360.0
	}
	c := colorful.Hsv(deg, float64(s), float64(v)).Clamped()
	return Pack(
		uint8(c.R*255.0+0.5),
		uint8(c.G*255.0+0.5),
		uint8(c.B*255.0+0.5),
		uint8(a*255.0+0.5),
	)
}

// Complement rotates the hue of c by 180 degrees and returns the result
// at full opacity. Used to derive a readable contrasting color from a
// base color, e.g. for highlighted text.
func Complement(c Color) Color {
	col := colorful.Color{
		R: float64(c.R()) / 255.0,
		G: float64(c.G()) / 255.0,
		B: float64(c.B()) / 255.0,
	}
	h, s, v := col.Hsv()

	h += 180.0
	if h >= 360.0 {
		h -= 360.0
	}
	return FromHSV(float32(h)/360.0, float32(s), float32(v), 1.0)
}

// FromHash derives a stable pseudo-color from an arbitrary 32-bit hash:
// the low 24 bits select the hue and the high 8 bits select a value in
// [0.5, 1.0). Identical hashes always yield identical colors, which
// gives dynamically-named categories distinct, stable colors without a
// lookup table.
func FromHash(hash uint32, sat, alpha float32) Color {
	h := float32(hash&0xffffff) / 16777215.0
	v := float32(hash>>24)/510.0 + 0.5

	return FromHSV(h, sat, v, alpha)
}
