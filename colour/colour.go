package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// Colour is an 8-bit-per-channel RGBA colour. Absence of a fill/stroke
// altogether (fill="none" / stroke="none") is represented separately by
// the caller (drawing.Style's HasFill/HasStroke); A instead carries the
// "fill-opacity"/"stroke-opacity" style properties (spec §2 step 8:
// grey-restore blanks a stroke's visibility by zeroing A while keeping
// its RGB, rather than discarding the colour). A colour parsed from a
// plain hex string is fully opaque (A == 255); Equal and palette
// membership are RGB-only, since a palette's colour identity does not
// depend on how transparent a particular element currently is.
type Colour struct {
	R, G, B, A uint8
}

// ParseHex parses a "#rgb" or "#rrggbb" string (case-insensitive, the
// leading '#' optional).
func ParseHex(s string) (Colour, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		r, err := strconv.ParseUint(s[0:1], 16, 8)
		if err != nil {
			return Colour{}, ErrInvalidHex
		}
		g, err := strconv.ParseUint(s[1:2], 16, 8)
		if err != nil {
			return Colour{}, ErrInvalidHex
		}
		b, err := strconv.ParseUint(s[2:3], 16, 8)
		if err != nil {
			return Colour{}, ErrInvalidHex
		}
		return Colour{R: uint8(r * 17), G: uint8(g * 17), B: uint8(b * 17), A: 255}, nil
	case 6:
		r, err := strconv.ParseUint(s[0:2], 16, 8)
		if err != nil {
			return Colour{}, ErrInvalidHex
		}
		g, err := strconv.ParseUint(s[2:4], 16, 8)
		if err != nil {
			return Colour{}, ErrInvalidHex
		}
		b, err := strconv.ParseUint(s[4:6], 16, 8)
		if err != nil {
			return Colour{}, ErrInvalidHex
		}
		return Colour{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
	default:
		return Colour{}, ErrInvalidHex
	}
}

// Hex renders c as a lowercase "#rrggbb" string.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsGrey reports whether R==G==B (spec §2 step 1: grey engraving
// targets, R=G=B).
func (c Colour) IsGrey() bool {
	return c.R == c.G && c.G == c.B
}

// Equal compares two colours by RGB, ignoring alpha: a colour's
// identity (and palette membership) is independent of its current
// opacity.
func (c Colour) Equal(o Colour) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}
