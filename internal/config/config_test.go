package config

import "testing"

func TestPricingFallsBackOnMalformedValues(t *testing.T) {
	t.Setenv("PRICE_PER_IMAGE", "not-a-number")
	t.Setenv("INFRA_COST_PER_IMAGE", "-1")
	t.Setenv("FEE_RATE", "")
	t.Setenv("ARTIST_SHARE_PCT_DEFAULT", "0.7")

	cfg := Load()

	if cfg.Pricing.PricePerImage != DefaultPricePerImage {
		t.Fatalf("expected default price, got %v", cfg.Pricing.PricePerImage)
	}
	if cfg.Pricing.InfraCostPerImage != DefaultInfraCostPerImage {
		t.Fatalf("expected default infra cost, got %v", cfg.Pricing.InfraCostPerImage)
	}
	if cfg.Pricing.FeeRate != DefaultFeeRate {
		t.Fatalf("expected default fee rate, got %v", cfg.Pricing.FeeRate)
	}
	if cfg.Pricing.ArtistSharePctDefault != 0.7 {
		t.Fatalf("expected overridden share, got %v", cfg.Pricing.ArtistSharePctDefault)
	}
}

func TestArtifactStoreNormalization(t *testing.T) {
	t.Setenv("ARTIFACT_STORE", " MinIO ")
	if got := Load().ArtifactStore; got != ArtifactStoreMinio {
		t.Fatalf("expected minio store, got %q", got)
	}

	t.Setenv("ARTIFACT_STORE", "something-else")
	if got := Load().ArtifactStore; got != ArtifactStoreFS {
		t.Fatalf("expected fs fallback, got %q", got)
	}
}
