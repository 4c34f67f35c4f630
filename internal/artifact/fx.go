package artifact

import (
	"github.com/smallbiznis/fairstyle/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("artifact",
	fx.Provide(NewStore),
)

// NewStore selects the configured store implementation.
func NewStore(cfg config.Config, log *zap.Logger) (Store, error) {
	switch cfg.ArtifactStore {
	case config.ArtifactStoreMinio:
		store, err := NewMinioStore(cfg.Minio)
		if err != nil {
			return nil, err
		}
		log.Info("artifact store ready", zap.String("kind", "minio"), zap.String("bucket", cfg.Minio.Bucket))
		return store, nil
	default:
		store, err := NewFSStore(cfg.OutputDir, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		log.Info("artifact store ready", zap.String("kind", "fs"), zap.String("dir", cfg.OutputDir))
		return store, nil
	}
}
