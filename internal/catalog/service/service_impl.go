package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/fairstyle/internal/catalog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
	}
}

func (s *Service) ListActiveStyles(ctx context.Context) ([]domain.StyleListing, error) {
	styles, err := s.repo.FindActiveStyles(ctx, s.db)
	if err != nil {
		return nil, err
	}

	out := make([]domain.StyleListing, 0, len(styles))
	for _, style := range styles {
		listing := domain.StyleListing{
			ID:                style.ID,
			ArtistID:          style.ArtistID,
			Name:              style.Name,
			Desc:              style.Desc,
			LicenseTier:       style.LicenseTier,
			ArtistDisplayName: "Unknown",
		}
		artist, err := s.repo.FindArtist(ctx, s.db, style.ArtistID)
		if err != nil {
			return nil, err
		}
		if artist != nil {
			listing.ArtistDisplayName = artist.DisplayName
			listing.ArtistSharePct = artist.SharePct
		}
		out = append(out, listing)
	}
	return out, nil
}

func (s *Service) GetStyle(ctx context.Context, id string) (*domain.StyleCard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrStyleNotFound
	}
	style, err := s.repo.FindStyle(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if style == nil {
		return nil, domain.ErrStyleNotFound
	}
	return style, nil
}

func (s *Service) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrArtistNotFound
	}
	artist, err := s.repo.FindArtist(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, domain.ErrArtistNotFound
	}
	return artist, nil
}
