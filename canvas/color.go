package canvas

import "encoding/hex"
import "image/color"
import "strings"

import "github.com/pkg/errors"
import "golang.org/x/image/colornames"

// ParseColor parses a CSS color given as #rgb, #rgba, #rrggbb, #rrggbbaa or
// by its name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
		}
		return color.NRGBA{}, errors.Errorf("unknown color %q", s)
	}
	digits := s[1:]
	if len(digits) == 3 || len(digits) == 4 {
		var expanded strings.Builder
		for _, d := range digits {
			expanded.WriteRune(d)
			expanded.WriteRune(d)
		}
		digits = expanded.String()
	}
	if len(digits) != 6 && len(digits) != 8 {
		return color.NRGBA{}, errors.Errorf("invalid color %q", s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "invalid color %q", s)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// MustParseColor is like ParseColor but panics on invalid input.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
