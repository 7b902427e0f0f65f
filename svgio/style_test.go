package svgio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStyleOpacityOverridesDefaultAlpha(t *testing.T) {
	st, _ := parseStyle("fill:#ff0000;fill-opacity:0;stroke:#0000ff", "", "")
	assert.Equal(t, uint8(0), st.Fill.A)
	assert.Equal(t, uint8(255), st.Stroke.A, "stroke has no explicit opacity, defaults to opaque")
}

func TestParseStyleClampsOutOfRangeOpacity(t *testing.T) {
	st, _ := parseStyle("fill:#ff0000;fill-opacity:2", "", "")
	assert.Equal(t, uint8(255), st.Fill.A)
}

func TestEncodeStyleOmitsOpacityWhenOpaque(t *testing.T) {
	st, _ := parseStyle("fill:#ff0000;stroke:#0000ff", "", "")
	out := encodeStyle(st)
	assert.NotContains(t, out, "opacity")
}

func TestEncodeStyleEmitsOpacityWhenBlanked(t *testing.T) {
	st, _ := parseStyle("fill:#ff0000;stroke:#0000ff;stroke-opacity:0", "", "")
	out := encodeStyle(st)
	assert.Contains(t, out, "stroke-opacity:0")
	assert.NotContains(t, out, "fill-opacity")
}

func TestParseStyleEncodeStyleRoundTripsOpacity(t *testing.T) {
	st, _ := parseStyle("fill:none;stroke:#112233;stroke-opacity:0", "", "")
	encoded := encodeStyle(st)
	reparsed, _ := parseStyle(encoded, "", "")
	assert.Equal(t, st.Stroke, reparsed.Stroke)
}
