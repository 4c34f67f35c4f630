package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Service reads the style catalog. Generation consults it read-only.
type Service interface {
	ListActiveStyles(ctx context.Context) ([]StyleListing, error)
	GetStyle(ctx context.Context, id string) (*StyleCard, error)
	GetArtist(ctx context.Context, id string) (*Artist, error)
}

// Repository is the persistence boundary for catalog reads.
type Repository interface {
	FindActiveStyles(ctx context.Context, db *gorm.DB) ([]StyleCard, error)
	FindStyle(ctx context.Context, db *gorm.DB, id string) (*StyleCard, error)
	FindArtist(ctx context.Context, db *gorm.DB, id string) (*Artist, error)
	FindStylesByArtist(ctx context.Context, db *gorm.DB, artistID string) ([]StyleCard, error)
}

var (
	ErrStyleNotFound  = errors.New("style_not_found")
	ErrArtistNotFound = errors.New("artist_not_found")
	ErrStylePaused    = errors.New("style_paused")
)
