// Package color implements the small amount of colour arithmetic the theme tokens need:
// hex parsing, linear mixing and WCAG relative luminance and contrast.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	lkerrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

// RGB is an sRGB colour with 8-bit channels. Values produced by this package always
// have channels in [0,255].
type RGB struct {
	R int
	G int
	B int
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

var errHexLength = errors.New("expected 3 or 6 hex digits")

// ParseHex decodes a 3- or 6-digit hex colour, with or without a leading '#'.
// Surrounding whitespace is ignored. Any other input yields a *errors.ParseError.
func ParseHex(input string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(input), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return RGB{}, lkerrors.NewParseError(input, 0, errHexLength)
	}

	if len(hex) == 3 {
		var b strings.Builder
		b.Grow(6)
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	}

	num, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, lkerrors.NewParseError(input, 0, fmt.Errorf("invalid hex digits: %w", err))
	}

	return RGB{
		R: int(num>>16) & 255,
		G: int(num>>8) & 255,
		B: int(num) & 255,
	}, nil
}

// LookupHex is ParseHex for callers that only care whether the input parsed.
func LookupHex(input string) (RGB, bool) {
	c, err := ParseHex(input)
	return c, err == nil
}

// MustParseHex is like ParseHex but panics on malformed input. Use it for literals.
func MustParseHex(input string) RGB {
	c, err := ParseHex(input)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the colour as a canonical lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return ToHex(c)
}

// ToHex clamps each channel and formats it as two lowercase hex digits behind a '#'.
func ToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clampInt(c.R), clampInt(c.G), clampInt(c.B))
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Triplet renders the channels as "r, g, b", the form used inside rgb() and rgba().
func (c RGB) Triplet() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// clampChannel rounds half up and limits the result to a valid channel value.
func clampChannel(v float64) int {
	return clampInt(int(math.Floor(v + 0.5)))
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
