package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexSixDigit(t *testing.T) {
	c, err := ParseHex("#ff0080")
	require.NoError(t, err)
	assert.Equal(t, Colour{R: 0xff, G: 0x00, B: 0x80, A: 0xff}, c)
}

func TestParseHexThreeDigit(t *testing.T) {
	c, err := ParseHex("f08")
	require.NoError(t, err)
	assert.Equal(t, Colour{R: 0xff, G: 0x00, B: 0x88, A: 0xff}, c)
}

func TestParseHexInvalid(t *testing.T) {
	_, err := ParseHex("not-a-colour")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestHexRoundTrip(t *testing.T) {
	c, err := ParseHex("#123456")
	require.NoError(t, err)
	assert.Equal(t, "#123456", c.Hex())
}

func TestIsGrey(t *testing.T) {
	assert.True(t, Colour{R: 128, G: 128, B: 128}.IsGrey())
	assert.False(t, Colour{R: 128, G: 0, B: 128}.IsGrey())
	assert.True(t, Colour{}.IsGrey(), "black is grey too")
}

func TestEqualIgnoresAlpha(t *testing.T) {
	opaque := Colour{R: 255, A: 255}
	transparent := Colour{R: 255, A: 0}
	assert.True(t, opaque.Equal(transparent))
}

func TestPaletteIndex(t *testing.T) {
	p := Palette{{R: 0, G: 0, B: 0}, {R: 255, G: 0, B: 0}}
	idx, ok := p.Index(Colour{R: 255, G: 0, B: 0})
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = p.Index(Colour{R: 1, G: 2, B: 3})
	assert.False(t, ok)
}
