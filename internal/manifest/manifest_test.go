package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/smallbiznis/fairstyle/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hashPattern = regexp.MustCompile(`^sha256:[0-9a-f]{64}$`)

func TestBuild(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	b := NewBuilder(fc)

	img := []byte("png-bytes-before-embedding")
	m := b.Build("style_demo_001", "artist_demo", "personal", "txn-1", img)

	assert.Equal(t, SpecVersion, m.Spec)
	assert.Equal(t, "txn-1", m.TxnID)
	assert.Equal(t, "style_demo_001", m.StyleID)
	assert.Equal(t, "artist_demo", m.ArtistID)
	assert.Equal(t, "personal", m.LicenseTier)
	assert.Equal(t, "2026-03-14T09:26:53+00:00", m.Timestamp)
	require.Regexp(t, hashPattern, m.Hash)

	sum := sha256.Sum256(img)
	assert.Equal(t, "sha256:"+hex.EncodeToString(sum[:]), m.Hash)
}

func TestBuildDeterministicExceptTimestamp(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	b := NewBuilder(fc)
	img := []byte{0x89, 0x50, 0x4e, 0x47}

	first := b.Build("s", "a", "personal", "txn", img)
	fc.Advance(time.Minute)
	second := b.Build("s", "a", "personal", "txn", img)

	assert.Equal(t, first.Hash, second.Hash)
	assert.NotEqual(t, first.Timestamp, second.Timestamp)
}

func TestVerify(t *testing.T) {
	b := NewBuilder(clock.NewFakeClock(time.Now()))
	img := []byte("artifact")
	m := b.Build("s", "a", "personal", "txn", img)

	require.NoError(t, Verify(m, img))
	require.Error(t, Verify(m, []byte("tampered")))
}

func TestJSONKeys(t *testing.T) {
	b := NewBuilder(clock.NewFakeClock(time.Now()))
	raw, err := json.Marshal(b.Build("s", "a", "personal", "txn", []byte("x")))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"spec", "txnId", "styleId", "artistId", "licenseTier", "timestamp", "hash"} {
		assert.Contains(t, decoded, key)
	}
}
