// Package domain contains the generation ledger: one inference log and
// one usage event per successful generation.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// InferenceLog records a single generation. The raw prompt is never
// persisted, only its SHA-256. Rows are immutable once written.
type InferenceLog struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserHint     *string   `gorm:"type:text" json:"user_hint,omitempty"`
	StyleID      string    `gorm:"not null;index" json:"style_id"`
	PromptHash   string    `gorm:"type:text;not null" json:"prompt_hash"`
	OutputPath   string    `gorm:"type:text;not null" json:"output_path"`
	ManifestJSON string    `gorm:"type:text;not null" json:"manifest_json"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// TableName sets the database table name.
func (InferenceLog) TableName() string { return "inference_logs" }

// UsageEvent is the financial split for one inference. The unique index
// on InferenceID makes the 1:1 relationship a schema guarantee rather
// than an application-level convention.
type UsageEvent struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	InferenceID     string       `gorm:"not null;uniqueIndex" json:"inference_id"`
	Gross           float64      `gorm:"not null" json:"gross"`
	InfraCost       float64      `gorm:"not null" json:"infra_cost"`
	Fee             float64      `gorm:"not null" json:"fee"`
	Net             float64      `gorm:"not null" json:"net"`
	ArtistSharePct  float64      `gorm:"not null" json:"artist_share_pct"`
	ArtistPayoutEst float64      `gorm:"not null" json:"artist_payout_est"`
	CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
}

// TableName sets the database table name.
func (UsageEvent) TableName() string { return "usage_events" }
