package blocklist

import (
	"github.com/smallbiznis/fairstyle/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("blocklist",
	fx.Provide(func(cfg config.Config) (*Holder, error) {
		return NewHolder(cfg.BlocklistPath)
	}),
)
