package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Colorful converts c to a go-colorful value for colour-space conversions.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(clampInt(c.R)) / 255,
		G: float64(clampInt(c.G)) / 255,
		B: float64(clampInt(c.B)) / 255,
	}
}

// HSL formats c as a CSS hsl() value with whole-number components.
func (c RGB) HSL() string {
	h, s, l := c.Colorful().Hsl()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
}
