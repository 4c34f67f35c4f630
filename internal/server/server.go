package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/fairstyle/internal/artifact"
	catalogdomain "github.com/smallbiznis/fairstyle/internal/catalog/domain"
	"github.com/smallbiznis/fairstyle/internal/config"
	generationdomain "github.com/smallbiznis/fairstyle/internal/generation/domain"
	ledgerdomain "github.com/smallbiznis/fairstyle/internal/ledger/domain"
	"github.com/smallbiznis/fairstyle/internal/observability"
	obslogger "github.com/smallbiznis/fairstyle/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/fairstyle/internal/observability/metrics"
	obstracing "github.com/smallbiznis/fairstyle/internal/observability/tracing"
	"github.com/smallbiznis/fairstyle/internal/ratelimit"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterRoutes()
	}),
	fx.Invoke(RunHTTP),
)

func NewEngine(obsCfg observability.Config, m *obsmetrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(m))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	catalogSvc      catalogdomain.Service
	generationSvc   generationdomain.Service
	ledgerSvc       ledgerdomain.Service
	store           artifact.Store
	generateLimiter *ratelimit.GenerateLimiter
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	CatalogSvc      catalogdomain.Service
	GenerationSvc   generationdomain.Service
	LedgerSvc       ledgerdomain.Service
	Store           artifact.Store
	GenerateLimiter *ratelimit.GenerateLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		catalogSvc:      p.CatalogSvc,
		generationSvc:   p.GenerationSvc,
		ledgerSvc:       p.LedgerSvc,
		store:           p.Store,
		generateLimiter: p.GenerateLimiter,
	}
}

func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api/v1")
	api.GET("/styles", s.ListStyles)
	api.POST("/generate", s.Generate)
	api.GET("/artists/:id/summary", s.ArtistSummary)

	// Artifacts are only servable locally with the filesystem store.
	if fs, ok := s.store.(*artifact.FSStore); ok {
		s.engine.Static("/outputs", fs.Dir())
	}
}

func RunHTTP(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
