// Package seed bootstraps the demo catalog so the service is usable
// out of the box.
package seed

import (
	"context"
	"errors"
	"time"

	catalogdomain "github.com/smallbiznis/fairstyle/internal/catalog/domain"
	"gorm.io/gorm"
)

const (
	demoArtistID   = "artist_demo"
	demoArtistName = "Demo Artist"
	demoStyleID    = "style_demo_001"
	demoStyleName  = "Demo Ink Sketch"
	demoStyleDesc  = "High-contrast ink sketch style. (Demo only)"
)

// EnsureDemoCatalog seeds the demo artist and style if they are absent.
func EnsureDemoCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		var artist catalogdomain.Artist
		err := tx.Where("id = ?", demoArtistID).First(&artist).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			artist = catalogdomain.Artist{
				ID:          demoArtistID,
				DisplayName: demoArtistName,
				SharePct:    0.5,
				CreatedAt:   now,
			}
			if err := tx.Create(&artist).Error; err != nil {
				return err
			}
		}

		var style catalogdomain.StyleCard
		err = tx.Where("id = ?", demoStyleID).First(&style).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			style = catalogdomain.StyleCard{
				ID:          demoStyleID,
				ArtistID:    demoArtistID,
				Name:        demoStyleName,
				Desc:        demoStyleDesc,
				LicenseTier: catalogdomain.LicenseTierPersonal,
				Status:      catalogdomain.StyleStatusActive,
				CreatedAt:   now,
			}
			if err := tx.Create(&style).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
