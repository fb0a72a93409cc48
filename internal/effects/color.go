package effects

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// Unset colors are treated as black.
func toColorful(c core.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.RGB(r, g, b)
}

// Fade composites fg over bg with the given opacity, the way a translucent
// shape is painted on a canvas.
func Fade(fg, bg core.Color, alpha float64) core.Color {
	alpha = core.ClampF(alpha, 0, 1)
	return fromColorful(toColorful(bg).BlendRgb(toColorful(fg), alpha))
}

// Gradient returns the color at position t in [0, 1] between from and to.
// Blending happens in CIE-L*a*b* so midpoints do not turn muddy.
func Gradient(from, to core.Color, t float64) core.Color {
	t = core.ClampF(t, 0, 1)
	return fromColorful(toColorful(from).BlendLab(toColorful(to), t))
}
