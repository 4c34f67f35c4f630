package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesDecodablePNG(t *testing.T) {
	raw, err := NewRenderer().Render("a quiet harbor at dusk", "Demo Ink Sketch")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 768, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}

func TestRenderHandlesEmptyPrompt(t *testing.T) {
	raw, err := NewRenderer().Render("", "Style")
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four five six seven eight nine ten", 12)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 12)
	}
	assert.Equal(t, "one two", lines[0])

	assert.Nil(t, wrap("   ", 10))

	long := wrap("supercalifragilisticexpialidocious", 10)
	require.Len(t, long, 1, "an unbreakable word stays on one line")
}
