package tokens

import (
	"github.com/alexisbeaulieu97/layoutkit/internal/color"
)

// DarkBase is the near-black that dark-mode backgrounds and light-mode borders mix toward.
var DarkBase = color.RGB{R: 10, G: 10, B: 12}

// Box colours chosen from the derived text colour.
const (
	boxLightOnBlackText = "#ffffff"
	boxDarkOnBlackText  = "#0f172a"
	boxLightOnWhiteText = "#f8fafc"
	boxDarkOnWhiteText  = "#020617"
)

// Derive computes the colour tokens implied by seed. It reports false, and returns nil,
// when seed is not a hex colour.
func Derive(seed string, mode Mode) (*Set, bool) {
	c, ok := color.LookupHex(seed)
	if !ok {
		return nil, false
	}
	return DeriveRGB(c, mode), true
}

// DeriveRGB is Derive for an already-parsed seed.
func DeriveRGB(seed color.RGB, mode Mode) *Set {
	var page, surface, border color.RGB
	if mode == Dark {
		page = color.Mix(seed, DarkBase, 0.84)
		surface = color.Mix(seed, DarkBase, 0.74)
		border = color.Mix(seed, color.White, 0.35)
	} else {
		page = color.Mix(seed, color.White, 0.9)
		surface = color.Mix(seed, color.White, 0.82)
		border = color.Mix(seed, DarkBase, 0.35)
	}

	text := color.BestTextHexOn(surface)
	boxLight, boxDark := boxLightOnWhiteText, boxDarkOnWhiteText
	if text == color.Black.Hex() {
		boxLight, boxDark = boxLightOnBlackText, boxDarkOnBlackText
	}

	out := NewSet()
	out.Put(ThemeRGB, seed.Triplet())
	out.Put(BgPage, page.Hex())
	out.Put(BgSurface, surface.Hex())
	out.Put(TextDefault, text)
	out.Put(BoxColorLight, boxLight)
	out.Put(BoxColorDark, boxDark)
	out.Put(BorderDefault, border.Hex())
	return out
}
