package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/smallbiznis/fairstyle/internal/blocklist"
	catalogdomain "github.com/smallbiznis/fairstyle/internal/catalog/domain"
	"github.com/smallbiznis/fairstyle/internal/generation/domain"
	ledgerdomain "github.com/smallbiznis/fairstyle/internal/ledger/domain"
	"github.com/smallbiznis/fairstyle/internal/manifest"
	"github.com/smallbiznis/fairstyle/internal/observability/metrics"
	"github.com/smallbiznis/fairstyle/internal/pngmeta"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Blocklist *blocklist.Holder
	Catalog   catalogdomain.Service
	Renderer  domain.Renderer
	Builder   *manifest.Builder
	Ledger    ledgerdomain.Service
	Metrics   *metrics.Metrics `optional:"true"`
}

type Service struct {
	log       *zap.Logger
	blocklist *blocklist.Holder
	catalog   catalogdomain.Service
	renderer  domain.Renderer
	builder   *manifest.Builder
	ledger    ledgerdomain.Service
	metrics   *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("generation.service"),
		blocklist: p.Blocklist,
		catalog:   p.Catalog,
		renderer:  p.Renderer,
		builder:   p.Builder,
		ledger:    p.Ledger,
		metrics:   p.Metrics,
	}
}

// Generate runs the full flow. Validation happens before any rendering,
// hashing, or persistence, so a rejected prompt has zero side effects.
func (s *Service) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerateResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, domain.ErrEmptyPrompt
	}
	if err := s.blocklist.Get().Check(prompt); err != nil {
		s.observe(req.StyleID, "blocked", 0)
		return nil, err
	}

	style, err := s.catalog.GetStyle(ctx, req.StyleID)
	if err != nil {
		return nil, err
	}
	if style.Status != catalogdomain.StyleStatusActive {
		return nil, catalogdomain.ErrStylePaused
	}
	artist, err := s.catalog.GetArtist(ctx, style.ArtistID)
	if err != nil {
		return nil, err
	}

	rawPNG, err := s.renderer.Render(prompt, style.Name)
	if err != nil {
		return nil, err
	}

	txnID := uuid.NewString()
	receipt := s.builder.Build(style.ID, artist.ID, string(style.LicenseTier), txnID, rawPNG)

	embedded, err := embedReceipt(rawPNG, receipt)
	if err != nil {
		return nil, err
	}

	record, err := s.ledger.RecordGeneration(ctx, ledgerdomain.RecordGenerationRequest{
		TxnID:          txnID,
		StyleID:        style.ID,
		ArtistSharePct: artist.SharePct,
		Prompt:         prompt,
		UserHint:       req.UserHint,
		ArtifactBytes:  embedded,
		Manifest:       receipt,
	})
	if err != nil {
		s.observe(style.ID, "failed", 0)
		return nil, err
	}

	s.observe(style.ID, "ok", record.Breakdown.ArtistPayoutEst)
	s.log.Info("generation complete",
		zap.String("txn_id", txnID),
		zap.String("style_id", style.ID),
		zap.String("artist_id", artist.ID),
	)

	return &domain.GenerateResponse{
		OutputURL: record.OutputURL,
		Receipt:   receipt,
		Usage:     record.Breakdown,
	}, nil
}

func embedReceipt(rawPNG []byte, receipt manifest.Manifest) ([]byte, error) {
	payload, err := receipt.JSON()
	if err != nil {
		return nil, err
	}
	return pngmeta.EmbedText(rawPNG, manifest.EmbedKey, string(payload))
}

func (s *Service) observe(styleID, status string, payout float64) {
	if s.metrics != nil {
		s.metrics.ObserveGeneration(styleID, status, payout)
	}
}
