package geom

import (
	"math"
	"strconv"
	"strings"
)

// ParseTransform parses an SVG "transform" attribute value (a
// whitespace/comma-separated list of translate/scale/rotate/skewX/
// skewY/matrix functions) into the single composed Matrix, applied in
// listed order (SVG 1.1 §7.6: "transform1 transform2" means apply
// transform2 first, then transform1 — the same left-to-right
// accumulation flatten.Ungroup already uses for parent/child
// composition).
func ParseTransform(s string) (Matrix, error) {
	s = strings.TrimSpace(s)
	total := Identity
	for len(s) > 0 {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			return Identity, ErrMalformedTransform
		}
		name := strings.TrimSpace(s[:open])
		close := strings.IndexByte(s[open:], ')')
		if close < 0 {
			return Identity, ErrMalformedTransform
		}
		close += open
		args, err := parseFloatList(s[open+1 : close])
		if err != nil {
			return Identity, ErrMalformedTransform
		}

		m, err := transformFunc(name, args)
		if err != nil {
			return Identity, err
		}
		total = total.Mul(m)

		s = strings.TrimSpace(s[close+1:])
	}
	if !total.IsFinite() {
		return Identity, ErrMalformedTransform
	}
	return total, nil
}

func transformFunc(name string, args []float64) (Matrix, error) {
	switch name {
	case "translate":
		switch len(args) {
		case 1:
			return Translate(args[0], 0), nil
		case 2:
			return Translate(args[0], args[1]), nil
		}
	case "scale":
		switch len(args) {
		case 1:
			return Scale(args[0], args[0]), nil
		case 2:
			return Scale(args[0], args[1]), nil
		}
	case "rotate":
		switch len(args) {
		case 1:
			return Rotate(args[0] * math.Pi / 180), nil
		case 3:
			cx, cy := args[1], args[2]
			return Translate(cx, cy).Mul(Rotate(args[0] * math.Pi / 180)).Mul(Translate(-cx, -cy)), nil
		}
	case "skewX":
		if len(args) == 1 {
			return Matrix{A: 1, D: 1, C: math.Tan(args[0] * math.Pi / 180)}, nil
		}
	case "skewY":
		if len(args) == 1 {
			return Matrix{A: 1, D: 1, B: math.Tan(args[0] * math.Pi / 180)}, nil
		}
	case "matrix":
		if len(args) == 6 {
			return Matrix{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}, nil
		}
	}
	return Identity, ErrMalformedTransform
}

func parseFloatList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
