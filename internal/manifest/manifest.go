// Package manifest builds the provenance record bound to one
// generation: transaction, style, artist, license, and a content hash
// of the artifact as it existed before the manifest was embedded.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/smallbiznis/fairstyle/internal/clock"
)

// SpecVersion tags the manifest schema.
const SpecVersion = "fairstyle-manifest@0.1"

// EmbedKey is the metadata key the manifest is stored under inside the
// output PNG.
const EmbedKey = "fairstyle_manifest"

// timestampLayout matches ISO-8601 with an explicit UTC offset.
const timestampLayout = "2006-01-02T15:04:05.999999-07:00"

// Manifest is the receipt embedded into every generated artifact and
// stored verbatim on the inference log.
type Manifest struct {
	Spec        string `json:"spec"`
	TxnID       string `json:"txnId"`
	StyleID     string `json:"styleId"`
	ArtistID    string `json:"artistId"`
	LicenseTier string `json:"licenseTier"`
	Timestamp   string `json:"timestamp"`
	Hash        string `json:"hash"`
}

// JSON serializes the manifest for embedding and storage.
func (m Manifest) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// Builder stamps manifests with an injected clock.
type Builder struct {
	clock clock.Clock
}

func NewBuilder(c clock.Clock) *Builder {
	return &Builder{clock: c}
}

// Build hashes imageBytes exactly as given. Callers must pass the
// encoded image from before embedding; hashing the embedded form would
// make the receipt self-invalidating.
func (b *Builder) Build(styleID, artistID, licenseTier, txnID string, imageBytes []byte) Manifest {
	sum := sha256.Sum256(imageBytes)
	return Manifest{
		Spec:        SpecVersion,
		TxnID:       txnID,
		StyleID:     styleID,
		ArtistID:    artistID,
		LicenseTier: licenseTier,
		Timestamp:   b.clock.Now().UTC().Format(timestampLayout),
		Hash:        "sha256:" + hex.EncodeToString(sum[:]),
	}
}

// Verify recomputes the content hash over imageBytes and compares it to
// the manifest's hash field.
func Verify(m Manifest, imageBytes []byte) error {
	sum := sha256.Sum256(imageBytes)
	want := "sha256:" + hex.EncodeToString(sum[:])
	if !strings.EqualFold(m.Hash, want) {
		return fmt.Errorf("manifest hash mismatch: recorded %s, recomputed %s", m.Hash, want)
	}
	return nil
}
