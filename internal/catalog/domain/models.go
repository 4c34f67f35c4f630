// Package domain contains the licensed style catalog: artists and the
// style cards they have consented to offer.
package domain

import "time"

// LicenseTier labels the usage rights attached to a style.
type LicenseTier string

const (
	LicenseTierPersonal   LicenseTier = "personal"
	LicenseTierCommercial LicenseTier = "commercial"
)

// StyleStatus gates whether a style is offered for generation.
type StyleStatus string

const (
	StyleStatusActive StyleStatus = "active"
	StyleStatusPaused StyleStatus = "paused"
)

// Artist is reference data; its lifecycle is external to generation.
type Artist struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	DisplayName string    `gorm:"type:text;not null" json:"display_name"`
	SharePct    float64   `gorm:"not null;default:0.5" json:"share_pct"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// TableName sets the database table name.
func (Artist) TableName() string { return "artists" }

// StyleCard is a licensed, artist-attributed generation style.
type StyleCard struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	ArtistID    string      `gorm:"not null;index" json:"artist_id"`
	Name        string      `gorm:"type:text;not null" json:"name"`
	Desc        string      `gorm:"type:text" json:"desc"`
	LicenseTier LicenseTier `gorm:"type:text;not null;default:personal" json:"license_tier"`
	Status      StyleStatus `gorm:"type:text;not null;default:active;index" json:"status"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
}

// TableName sets the database table name.
func (StyleCard) TableName() string { return "style_cards" }

// StyleListing is a style joined with its artist's display name, the
// shape the listing endpoint returns.
type StyleListing struct {
	ID                string      `json:"id"`
	ArtistID          string      `json:"artist_id"`
	Name              string      `json:"name"`
	Desc              string      `json:"desc"`
	LicenseTier       LicenseTier `json:"license_tier"`
	ArtistDisplayName string      `json:"artist_display_name"`
	ArtistSharePct    float64     `json:"artist_share_pct"`
}
