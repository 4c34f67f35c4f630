package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	PublicBaseURL string
	OutputDir     string
	BlocklistPath string

	Pricing PricingConfig

	ArtifactStore string
	Minio         MinioConfig

	RateLimit RateLimitConfig

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
	DBPath     string
}

// PricingConfig carries the per-generation revenue split parameters.
// Values are fractions of one currency unit; malformed environment
// values fall back to the documented defaults rather than failing.
type PricingConfig struct {
	PricePerImage         float64
	InfraCostPerImage     float64
	FeeRate               float64
	ArtistSharePctDefault float64
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Secure    bool
}

type RateLimitConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GenerateRate  float64
	GenerateBurst int
}

const (
	ArtifactStoreFS    = "fs"
	ArtifactStoreMinio = "minio"
)

const (
	DefaultPricePerImage         = 0.20
	DefaultInfraCostPerImage     = 0.05
	DefaultFeeRate               = 0.03
	DefaultArtistSharePctDefault = 0.5
)

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "fairstyle"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),

		PublicBaseURL: strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://127.0.0.1:8080"), "/"),
		OutputDir:     getenv("OUTPUT_DIR", "data/outputs"),
		BlocklistPath: getenv("BLOCKLIST_PATH", "infra/blocklist.yml"),

		Pricing: PricingConfig{
			PricePerImage:         getenvFloat("PRICE_PER_IMAGE", DefaultPricePerImage),
			InfraCostPerImage:     getenvFloat("INFRA_COST_PER_IMAGE", DefaultInfraCostPerImage),
			FeeRate:               getenvFloat("FEE_RATE", DefaultFeeRate),
			ArtistSharePctDefault: getenvFloat("ARTIST_SHARE_PCT_DEFAULT", DefaultArtistSharePctDefault),
		},

		ArtifactStore: normalizeStore(getenv("ARTIFACT_STORE", ArtifactStoreFS)),
		Minio: MinioConfig{
			Endpoint:  strings.TrimSpace(getenv("MINIO_ENDPOINT", "")),
			AccessKey: strings.TrimSpace(getenv("MINIO_ACCESS_KEY", "")),
			SecretKey: strings.TrimSpace(getenv("MINIO_SECRET_KEY", "")),
			Bucket:    getenv("MINIO_BUCKET", "fairstyle-outputs"),
			Secure:    getenvBool("MINIO_SECURE", false),
		},

		RateLimit: RateLimitConfig{
			Enabled:       getenvBool("RATE_LIMIT_ENABLED", false),
			RedisAddr:     strings.TrimSpace(getenv("RATE_LIMIT_REDIS_ADDR", "")),
			RedisPassword: getenv("RATE_LIMIT_REDIS_PASSWORD", ""),
			RedisDB:       int(getenvInt64("RATE_LIMIT_REDIS_DB", 0)),
			GenerateRate:  getenvFloat("RATE_LIMIT_GENERATE_RATE", 5),
			GenerateBurst: int(getenvInt64("RATE_LIMIT_GENERATE_BURST", 10)),
		},

		DBType:     getenv("DATABASE_TYPE", "sqlite"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "fairstyle"),
		DBUser:     getenv("DATABASE_USER", "fairstyle"),
		DBPassword: getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),
		DBPath:     getenv("DATABASE_PATH", "data/fairstyle.db"),
	}
}

func normalizeStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ArtifactStoreMinio:
		return ArtifactStoreMinio
	default:
		return ArtifactStoreFS
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt64(key string, def int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}
