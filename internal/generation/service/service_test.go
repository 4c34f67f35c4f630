package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smallbiznis/fairstyle/internal/blocklist"
	catalogdomain "github.com/smallbiznis/fairstyle/internal/catalog/domain"
	"github.com/smallbiznis/fairstyle/internal/clock"
	"github.com/smallbiznis/fairstyle/internal/generation/domain"
	ledgerdomain "github.com/smallbiznis/fairstyle/internal/ledger/domain"
	"github.com/smallbiznis/fairstyle/internal/manifest"
	"github.com/smallbiznis/fairstyle/internal/pngmeta"
	"github.com/smallbiznis/fairstyle/internal/pricing"
	"github.com/smallbiznis/fairstyle/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCatalog struct {
	style  *catalogdomain.StyleCard
	artist *catalogdomain.Artist
}

func (s *stubCatalog) ListActiveStyles(ctx context.Context) ([]catalogdomain.StyleListing, error) {
	return nil, nil
}

func (s *stubCatalog) GetStyle(ctx context.Context, id string) (*catalogdomain.StyleCard, error) {
	if s.style == nil || s.style.ID != id {
		return nil, catalogdomain.ErrStyleNotFound
	}
	return s.style, nil
}

func (s *stubCatalog) GetArtist(ctx context.Context, id string) (*catalogdomain.Artist, error) {
	if s.artist == nil || s.artist.ID != id {
		return nil, catalogdomain.ErrArtistNotFound
	}
	return s.artist, nil
}

type stubLedger struct {
	calls    int
	lastReq  ledgerdomain.RecordGenerationRequest
	recorded *ledgerdomain.GenerationRecord
	err      error
}

func (s *stubLedger) RecordGeneration(ctx context.Context, req ledgerdomain.RecordGenerationRequest) (*ledgerdomain.GenerationRecord, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	record := *s.recorded
	record.OutputURL = "http://127.0.0.1:8080/outputs/" + req.TxnID + ".png"
	return &record, nil
}

func (s *stubLedger) SummarizeArtist(ctx context.Context, artistID string) (ledgerdomain.ArtistSummary, error) {
	return ledgerdomain.ArtistSummary{}, nil
}

func newTestGeneration(t *testing.T, terms []string) (domain.Service, *stubLedger, *stubCatalog) {
	t.Helper()

	holder := &blocklist.Holder{}
	holder.Swap(blocklist.NewFilter(terms))

	catalog := &stubCatalog{
		style: &catalogdomain.StyleCard{
			ID:          "style_demo_001",
			ArtistID:    "artist_demo",
			Name:        "Demo Ink Sketch",
			LicenseTier: catalogdomain.LicenseTierPersonal,
			Status:      catalogdomain.StyleStatusActive,
		},
		artist: &catalogdomain.Artist{
			ID:          "artist_demo",
			DisplayName: "Demo Artist",
			SharePct:    0.5,
		},
	}
	ledger := &stubLedger{
		recorded: &ledgerdomain.GenerationRecord{
			Breakdown: pricing.Breakdown{
				Gross:           0.20,
				InfraCost:       0.05,
				Fee:             0.0060,
				Net:             0.1440,
				ArtistSharePct:  0.5,
				ArtistPayoutEst: 0.0720,
			},
		},
	}

	fc := clock.NewFakeClock(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	svc := New(Params{
		Log:       zap.NewNop(),
		Blocklist: holder,
		Catalog:   catalog,
		Renderer:  render.NewRenderer(),
		Builder:   manifest.NewBuilder(fc),
		Ledger:    ledger,
	})
	return svc, ledger, catalog
}

func TestGenerate(t *testing.T) {
	svc, ledger, _ := newTestGeneration(t, []string{"linda"})

	resp, err := svc.Generate(context.Background(), domain.GenerateRequest{
		Prompt:  "a quiet harbor at dusk",
		StyleID: "style_demo_001",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Equal(t, 1, ledger.calls)
	_, err = uuid.Parse(resp.Receipt.TxnID)
	assert.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/outputs/"+resp.Receipt.TxnID+".png", resp.OutputURL)
	assert.Equal(t, manifest.SpecVersion, resp.Receipt.Spec)
	assert.Equal(t, "style_demo_001", resp.Receipt.StyleID)
	assert.Equal(t, "artist_demo", resp.Receipt.ArtistID)
	assert.Equal(t, "personal", resp.Receipt.LicenseTier)
	assert.Equal(t, 0.0720, resp.Usage.ArtistPayoutEst)

	// The persisted artifact must carry the same receipt it reports.
	payload, err := pngmeta.ExtractText(ledger.lastReq.ArtifactBytes, manifest.EmbedKey)
	require.NoError(t, err)
	var embedded manifest.Manifest
	require.NoError(t, json.Unmarshal([]byte(payload), &embedded))
	assert.Equal(t, resp.Receipt, embedded)
}

func TestGenerateEmptyPrompt(t *testing.T) {
	svc, ledger, _ := newTestGeneration(t, nil)

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := svc.Generate(context.Background(), domain.GenerateRequest{
			Prompt:  prompt,
			StyleID: "style_demo_001",
		})
		assert.ErrorIs(t, err, domain.ErrEmptyPrompt)
	}
	assert.Zero(t, ledger.calls)
}

func TestGenerateBlockedPrompt(t *testing.T) {
	svc, ledger, _ := newTestGeneration(t, []string{"linda"})

	_, err := svc.Generate(context.Background(), domain.GenerateRequest{
		Prompt:  "portrait in the style of Linda",
		StyleID: "style_demo_001",
	})
	assert.ErrorIs(t, err, blocklist.ErrPromptBlocked)
	assert.Zero(t, ledger.calls, "blocked prompts must never reach the ledger")
}

func TestGeneratePausedStyle(t *testing.T) {
	svc, ledger, catalog := newTestGeneration(t, nil)
	catalog.style.Status = catalogdomain.StyleStatusPaused

	_, err := svc.Generate(context.Background(), domain.GenerateRequest{
		Prompt:  "a quiet harbor at dusk",
		StyleID: "style_demo_001",
	})
	assert.ErrorIs(t, err, catalogdomain.ErrStylePaused)
	assert.Zero(t, ledger.calls)
}

func TestGenerateUnknownStyle(t *testing.T) {
	svc, ledger, _ := newTestGeneration(t, nil)

	_, err := svc.Generate(context.Background(), domain.GenerateRequest{
		Prompt:  "a quiet harbor at dusk",
		StyleID: "style_missing",
	})
	assert.ErrorIs(t, err, catalogdomain.ErrStyleNotFound)
	assert.Zero(t, ledger.calls)
}

func TestGenerateLedgerFailure(t *testing.T) {
	svc, ledger, _ := newTestGeneration(t, nil)
	ledger.err = ledgerdomain.ErrPersistence

	_, err := svc.Generate(context.Background(), domain.GenerateRequest{
		Prompt:  "a quiet harbor at dusk",
		StyleID: "style_demo_001",
	})
	assert.ErrorIs(t, err, ledgerdomain.ErrPersistence)
}

func TestGenerateDistinctTxnIDsAndArtifacts(t *testing.T) {
	svc, ledger, _ := newTestGeneration(t, nil)

	first, err := svc.Generate(context.Background(), domain.GenerateRequest{
		Prompt:  "a quiet harbor at dusk",
		StyleID: "style_demo_001",
	})
	require.NoError(t, err)
	firstArtifact := append([]byte(nil), ledger.lastReq.ArtifactBytes...)

	second, err := svc.Generate(context.Background(), domain.GenerateRequest{
		Prompt:  "a quiet harbor at dusk",
		StyleID: "style_demo_001",
	})
	require.NoError(t, err)
	secondArtifact := ledger.lastReq.ArtifactBytes

	assert.NotEqual(t, first.Receipt.TxnID, second.Receipt.TxnID)

	// The embedded receipt carries the txn id, so even an identical
	// prompt yields distinct final bytes.
	assert.NotEqual(t, sha256.Sum256(firstArtifact), sha256.Sum256(secondArtifact))
}
