package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/smallbiznis/fairstyle/internal/artifact"
	catalogdomain "github.com/smallbiznis/fairstyle/internal/catalog/domain"
	"github.com/smallbiznis/fairstyle/internal/clock"
	"github.com/smallbiznis/fairstyle/internal/config"
	ledgerdomain "github.com/smallbiznis/fairstyle/internal/ledger/domain"
	"github.com/smallbiznis/fairstyle/internal/pricing"
	"github.com/smallbiznis/fairstyle/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Cfg         config.Config
	GenID       *snowflake.Node
	Clock       clock.Clock
	Store       artifact.Store
	CatalogRepo catalogdomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	cfg         config.Config
	genID       *snowflake.Node
	clock       clock.Clock
	store       artifact.Store
	catalogRepo catalogdomain.Repository
}

func New(p Params) ledgerdomain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("ledger.service"),
		cfg:         p.Cfg,
		genID:       p.GenID,
		clock:       p.Clock,
		store:       p.Store,
		catalogRepo: p.CatalogRepo,
	}
}

func (s *Service) RecordGeneration(ctx context.Context, req ledgerdomain.RecordGenerationRequest) (*ledgerdomain.GenerationRecord, error) {
	txnID := strings.TrimSpace(req.TxnID)
	if _, err := uuid.Parse(txnID); err != nil {
		return nil, ledgerdomain.ErrInvalidTxnID
	}
	if strings.TrimSpace(req.StyleID) == "" {
		return nil, ledgerdomain.ErrInvalidStyle
	}
	if len(req.ArtifactBytes) == 0 {
		return nil, ledgerdomain.ErrEmptyArtifact
	}

	location, err := s.store.Put(ctx, txnID, req.ArtifactBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledgerdomain.ErrPersistence, err)
	}

	manifestJSON, err := json.Marshal(req.Manifest)
	if err != nil {
		return nil, err
	}

	promptSum := sha256.Sum256([]byte(req.Prompt))
	now := s.clock.Now()

	inference := ledgerdomain.InferenceLog{
		ID:           txnID,
		UserHint:     req.UserHint,
		StyleID:      req.StyleID,
		PromptHash:   hex.EncodeToString(promptSum[:]),
		OutputPath:   location,
		ManifestJSON: string(manifestJSON),
		CreatedAt:    now,
	}

	breakdown := pricing.ComputeForShare(s.cfg.Pricing, req.ArtistSharePct)
	usage := ledgerdomain.UsageEvent{
		ID:              s.genID.Generate(),
		InferenceID:     txnID,
		Gross:           breakdown.Gross,
		InfraCost:       breakdown.InfraCost,
		Fee:             breakdown.Fee,
		Net:             breakdown.Net,
		ArtistSharePct:  breakdown.ArtistSharePct,
		ArtistPayoutEst: breakdown.ArtistPayoutEst,
		CreatedAt:       now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inference).Error; err != nil {
			return err
		}
		return tx.Create(&usage).Error
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, ledgerdomain.ErrDuplicateTxn
		}
		return nil, fmt.Errorf("%w: %v", ledgerdomain.ErrPersistence, err)
	}

	s.log.Info("generation recorded",
		zap.String("txn_id", txnID),
		zap.String("style_id", req.StyleID),
		zap.Float64("artist_payout_est", breakdown.ArtistPayoutEst),
	)

	return &ledgerdomain.GenerationRecord{
		Inference: inference,
		Usage:     usage,
		Breakdown: breakdown,
		OutputURL: s.store.PublicURL(txnID),
	}, nil
}

func (s *Service) SummarizeArtist(ctx context.Context, artistID string) (ledgerdomain.ArtistSummary, error) {
	artistID = strings.TrimSpace(artistID)
	if artistID == "" {
		return ledgerdomain.ArtistSummary{}, catalogdomain.ErrArtistNotFound
	}

	artist, err := s.catalogRepo.FindArtist(ctx, s.db, artistID)
	if err != nil {
		return ledgerdomain.ArtistSummary{}, err
	}
	if artist == nil {
		return ledgerdomain.ArtistSummary{}, catalogdomain.ErrArtistNotFound
	}

	styles, err := s.catalogRepo.FindStylesByArtist(ctx, s.db, artistID)
	if err != nil {
		return ledgerdomain.ArtistSummary{}, err
	}

	summary := ledgerdomain.ArtistSummary{
		ArtistID: artistID,
		Styles:   make([]string, 0, len(styles)),
	}
	for _, style := range styles {
		summary.Styles = append(summary.Styles, style.ID)
	}
	if len(summary.Styles) == 0 {
		return summary, nil
	}

	err = s.db.WithContext(ctx).
		Model(&ledgerdomain.InferenceLog{}).
		Where("style_id IN ?", summary.Styles).
		Count(&summary.InferenceCount).Error
	if err != nil {
		return ledgerdomain.ArtistSummary{}, err
	}

	var payout float64
	err = s.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(u.artist_payout_est), 0)
		 FROM usage_events u
		 JOIN inference_logs i ON i.id = u.inference_id
		 WHERE i.style_id IN ?`,
		summary.Styles,
	).Scan(&payout).Error
	if err != nil {
		return ledgerdomain.ArtistSummary{}, err
	}

	summary.EstimatedPayout = pricing.Round4(payout)
	return summary, nil
}
