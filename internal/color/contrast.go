package color

import "math"

// Minimum contrast ratios from WCAG 2.x.
const (
	ContrastAA      = 4.5
	ContrastAALarge = 3.0
	ContrastAAA     = 7.0
)

// Mix linearly interpolates from a to b. amount is nominally in [0,1]; values outside
// that range extrapolate and the result is clamped per channel.
func Mix(a, b RGB, amount float64) RGB {
	return RGB{
		R: clampChannel(float64(a.R)*(1-amount) + float64(b.R)*amount),
		G: clampChannel(float64(a.G)*(1-amount) + float64(b.G)*amount),
		B: clampChannel(float64(a.B)*(1-amount) + float64(b.B)*amount),
	}
}

func toLinear(v int) float64 {
	s := float64(v) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// RelLuminance returns the WCAG relative luminance of c in [0,1].
func RelLuminance(c RGB) float64 {
	return 0.2126*toLinear(c.R) + 0.7152*toLinear(c.G) + 0.0722*toLinear(c.B)
}

// Contrast returns the WCAG contrast ratio between a and b, from 1 to 21.
// The result does not depend on argument order.
func Contrast(a, b RGB) float64 {
	l1 := RelLuminance(a)
	l2 := RelLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// BestTextOn picks black or white, whichever reads better on bg. Ties go to black.
func BestTextOn(bg RGB) RGB {
	if Contrast(bg, Black) >= Contrast(bg, White) {
		return Black
	}
	return White
}

// BestTextHexOn is BestTextOn rendered as "#000000" or "#ffffff".
func BestTextHexOn(bg RGB) string {
	return BestTextOn(bg).Hex()
}

// Level names the highest WCAG level a ratio satisfies for normal-size text.
func Level(ratio float64) string {
	switch {
	case ratio >= ContrastAAA:
		return "AAA"
	case ratio >= ContrastAA:
		return "AA"
	case ratio >= ContrastAALarge:
		return "AA large"
	default:
		return "fail"
	}
}
