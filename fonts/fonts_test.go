package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Bold, Title, Small} {
		face := name.Get()
		require.NotNil(t, face, name)
		_, ok := face.GlyphAdvance('A')
		assert.True(t, ok, "%s has glyph A", name)
	}

	small := font.MeasureString(Small.Get(), "Party")
	title := font.MeasureString(Title.Get(), "Party")
	assert.Greater(t, title, small)
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
