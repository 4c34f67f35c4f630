package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/fairstyle/internal/artifact"
	"github.com/smallbiznis/fairstyle/internal/blocklist"
	"github.com/smallbiznis/fairstyle/internal/catalog"
	"github.com/smallbiznis/fairstyle/internal/clock"
	"github.com/smallbiznis/fairstyle/internal/config"
	"github.com/smallbiznis/fairstyle/internal/generation"
	"github.com/smallbiznis/fairstyle/internal/ledger"
	"github.com/smallbiznis/fairstyle/internal/migration"
	"github.com/smallbiznis/fairstyle/internal/observability"
	"github.com/smallbiznis/fairstyle/internal/ratelimit"
	"github.com/smallbiznis/fairstyle/internal/server"
	"github.com/smallbiznis/fairstyle/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		blocklist.Module,
		artifact.Module,
		ratelimit.Module,

		// Functional domains
		catalog.Module,
		ledger.Module,
		generation.Module,
		migration.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
