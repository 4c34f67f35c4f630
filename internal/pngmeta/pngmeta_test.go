package pngmeta

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	original := encodeTestPNG(t)
	payload := `{"spec":"fairstyle-manifest@0.1","hash":"sha256:abc"}`

	embedded, err := EmbedText(original, "fairstyle_manifest", payload)
	require.NoError(t, err)

	got, err := ExtractText(embedded, "fairstyle_manifest")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestEmbedDoesNotMutateInput(t *testing.T) {
	original := encodeTestPNG(t)
	snapshot := append([]byte(nil), original...)

	_, err := EmbedText(original, "k", "v")
	require.NoError(t, err)
	assert.Equal(t, snapshot, original)
}

func TestEmbeddedImageStillDecodes(t *testing.T) {
	embedded, err := EmbedText(encodeTestPNG(t), "fairstyle_manifest", "payload")
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(embedded))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), decoded.Bounds())
}

func TestExtractMissingKey(t *testing.T) {
	embedded, err := EmbedText(encodeTestPNG(t), "present", "v")
	require.NoError(t, err)

	_, err = ExtractText(embedded, "absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRejectsNonPNG(t *testing.T) {
	_, err := EmbedText([]byte("GIF89a"), "k", "v")
	assert.ErrorIs(t, err, ErrNotPNG)

	_, err = ExtractText([]byte("GIF89a"), "k")
	assert.ErrorIs(t, err, ErrNotPNG)
}

func TestRejectsBadKeys(t *testing.T) {
	img := encodeTestPNG(t)

	_, err := EmbedText(img, "", "v")
	assert.ErrorIs(t, err, ErrInvalidKey)

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	_, err = EmbedText(img, string(long), "v")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestExtractDetectsCorruptCRC(t *testing.T) {
	embedded, err := EmbedText(encodeTestPNG(t), "k", "value")
	require.NoError(t, err)

	// Flip a byte inside the tEXt payload; the chunk sits right after
	// IHDR (8 sig + 8 hdr + 13 data + 4 crc = offset 33).
	corrupted := append([]byte(nil), embedded...)
	corrupted[33+8+2] ^= 0xff

	_, err = ExtractText(corrupted, "k")
	assert.ErrorIs(t, err, ErrCorruptChunk)
}
