package generation

import (
	"github.com/smallbiznis/fairstyle/internal/generation/domain"
	"github.com/smallbiznis/fairstyle/internal/generation/service"
	"github.com/smallbiznis/fairstyle/internal/manifest"
	"github.com/smallbiznis/fairstyle/internal/render"
	"go.uber.org/fx"
)

var Module = fx.Module("generation.service",
	fx.Provide(
		manifest.NewBuilder,
		func() domain.Renderer { return render.NewRenderer() },
		service.New,
	),
)
