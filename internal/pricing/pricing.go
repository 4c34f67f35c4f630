// Package pricing turns the per-generation price configuration into a
// deterministic revenue breakdown.
//
// Rounding is half-even to 4 decimal places and applied at every
// derivation step: fee is rounded before net is derived from it, and
// net is rounded before the payout is derived from it. Later steps see
// the rounded values, not full-precision intermediates.
package pricing

import (
	"math"

	"github.com/smallbiznis/fairstyle/internal/config"
)

// Breakdown is the financial split for a single generation.
type Breakdown struct {
	Gross           float64 `json:"gross"`
	InfraCost       float64 `json:"infra_cost"`
	Fee             float64 `json:"fee"`
	Net             float64 `json:"net"`
	ArtistSharePct  float64 `json:"artist_share_pct"`
	ArtistPayoutEst float64 `json:"artist_payout_est"`
}

// Compute derives the breakdown using the configured default artist share.
func Compute(cfg config.PricingConfig) Breakdown {
	return ComputeForShare(cfg, cfg.ArtistSharePctDefault)
}

// ComputeForShare derives the breakdown for a specific artist share.
// Shares outside (0, 1] fall back to the configured default.
func ComputeForShare(cfg config.PricingConfig, sharePct float64) Breakdown {
	if !(sharePct > 0 && sharePct <= 1) {
		sharePct = cfg.ArtistSharePctDefault
	}

	gross := cfg.PricePerImage
	infra := cfg.InfraCostPerImage
	fee := Round4(gross * cfg.FeeRate)
	net := Round4(gross - infra - fee)
	payout := Round4(net * sharePct)

	return Breakdown{
		Gross:           gross,
		InfraCost:       infra,
		Fee:             fee,
		Net:             net,
		ArtistSharePct:  sharePct,
		ArtistPayoutEst: payout,
	}
}

// Round4 rounds half-even to 4 decimal places.
func Round4(v float64) float64 {
	return math.RoundToEven(v*10000) / 10000
}
