package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/fairstyle/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindActiveStyles(ctx context.Context, db *gorm.DB) ([]domain.StyleCard, error) {
	var styles []domain.StyleCard
	err := db.WithContext(ctx).
		Where("status = ?", domain.StyleStatusActive).
		Order("id ASC").
		Find(&styles).Error
	return styles, err
}

func (r *repo) FindStyle(ctx context.Context, db *gorm.DB, id string) (*domain.StyleCard, error) {
	var style domain.StyleCard
	err := db.WithContext(ctx).Where("id = ?", id).First(&style).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &style, nil
}

func (r *repo) FindArtist(ctx context.Context, db *gorm.DB, id string) (*domain.Artist, error) {
	var artist domain.Artist
	err := db.WithContext(ctx).Where("id = ?", id).First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

func (r *repo) FindStylesByArtist(ctx context.Context, db *gorm.DB, artistID string) ([]domain.StyleCard, error) {
	var styles []domain.StyleCard
	err := db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("id ASC").
		Find(&styles).Error
	return styles, err
}
