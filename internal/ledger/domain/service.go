package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/fairstyle/internal/manifest"
	"github.com/smallbiznis/fairstyle/internal/pricing"
)

// RecordGenerationRequest carries everything the ledger persists for
// one generation. ArtifactBytes is the final embedded PNG; Manifest
// still hashes the pre-embedding form.
type RecordGenerationRequest struct {
	TxnID          string
	StyleID        string
	ArtistSharePct float64
	Prompt         string
	UserHint       *string
	ArtifactBytes  []byte
	Manifest       manifest.Manifest
}

// GenerationRecord is the persisted outcome of a generation.
type GenerationRecord struct {
	Inference InferenceLog      `json:"inference"`
	Usage     UsageEvent        `json:"usage"`
	Breakdown pricing.Breakdown `json:"breakdown"`
	OutputURL string            `json:"output_url"`
}

// ArtistSummary aggregates payouts across an artist's styles.
type ArtistSummary struct {
	ArtistID        string   `json:"artist_id"`
	Styles          []string `json:"styles"`
	InferenceCount  int64    `json:"inference_count"`
	EstimatedPayout float64  `json:"estimated_payout"`
}

type Service interface {
	// RecordGeneration persists the artifact and writes the inference
	// log and usage event in a single transaction. A failure on either
	// insert rolls back both.
	RecordGeneration(ctx context.Context, req RecordGenerationRequest) (*GenerationRecord, error)
	SummarizeArtist(ctx context.Context, artistID string) (ArtistSummary, error)
}

var (
	ErrInvalidTxnID  = errors.New("invalid_txn_id")
	ErrInvalidStyle  = errors.New("invalid_style")
	ErrEmptyArtifact = errors.New("empty_artifact")
	ErrDuplicateTxn  = errors.New("duplicate_txn_id")
	ErrPersistence   = errors.New("persistence_failed")
)
