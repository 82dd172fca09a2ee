package render

import "github.com/gdamore/tcell/v2"

// RGB is an 8-bit per channel color used for blending before conversion to tcell
type RGB struct {
	R, G, B uint8
}

func toRGB(c tcell.Color) RGB {
	r, g, b := c.RGB()
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}

// trailColor fades trail points from the background (oldest) to the trail color (newest)
func trailColor(i, n int) tcell.Color {
	if n <= 1 {
		return RgbTrail
	}
	t := float64(i+1) / float64(n)
	return Lerp(toRGB(RgbBackground), toRGB(RgbTrail), t).Color()
}
