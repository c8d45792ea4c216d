package tokens

import (
	"github.com/alexisbeaulieu97/layoutkit/internal/color"
)

// Contrast thresholds enforced by AutoCorrect.
const (
	MinTextContrast   = color.ContrastAA
	MinFocusContrast  = color.ContrastAALarge
	MinBorderContrast = color.ContrastAALarge
)

// Focus colours substituted when the configured focus ring is too faint.
const (
	DefaultFocus    = "#0b5fff"
	DarkFocusOnDark = "#93c5fd"
)

// Correction records one token replaced by AutoCorrect.
type Correction struct {
	Token   string
	From    string
	To      string
	Ratio   float64
	Minimum float64
}

// AutoCorrect repairs low-contrast tokens in place and reports what it changed.
// The checks run in a fixed order, each seeing the result of the previous one:
// text on surface, focus on page, border on surface. A check is skipped when a colour
// it needs does not parse.
func AutoCorrect(s *Set, mode Mode) []Correction {
	var changes []Correction

	surface, surfaceOK := color.LookupHex(s.Value(BgSurface))
	if text, ok := color.LookupHex(s.Value(TextDefault)); surfaceOK && ok {
		if ratio := color.Contrast(surface, text); ratio < MinTextContrast {
			changes = append(changes, replace(s, TextDefault, color.BestTextHexOn(surface), ratio, MinTextContrast))
		}
	}

	if page, ok := color.LookupHex(s.Value(BgPage)); ok {
		focus, ok := color.LookupHex(s.Value(FocusColor))
		if !ok {
			focus = color.MustParseHex(DefaultFocus)
		}
		if ratio := color.Contrast(page, focus); ratio < MinFocusContrast {
			next := DarkFocusOnDark
			if color.BestTextOn(page) == color.Black {
				next = DefaultFocus
			}
			changes = append(changes, replace(s, FocusColor, next, ratio, MinFocusContrast))
		}
	}

	if border, ok := color.LookupHex(s.Value(BorderDefault)); surfaceOK && ok {
		if ratio := color.Contrast(surface, border); ratio < MinBorderContrast {
			ref, ok := color.LookupHex(s.Value(TextDefault))
			if !ok {
				ref = color.BestTextOn(surface)
			}
			amount := 0.6
			if mode == Dark {
				amount = 0.45
			}
			changes = append(changes, replace(s, BorderDefault, color.Mix(ref, surface, amount).Hex(), ratio, MinBorderContrast))
		}
	}

	return changes
}

func replace(s *Set, token, value string, ratio, minimum float64) Correction {
	c := Correction{Token: token, From: s.Value(token), To: value, Ratio: ratio, Minimum: minimum}
	s.Put(token, value)
	return c
}
