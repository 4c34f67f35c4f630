// Package migration keeps the schema in sync with the domain models on
// startup, so local and self-hosted deployments work out of the box.
package migration

import (
	catalogdomain "github.com/smallbiznis/fairstyle/internal/catalog/domain"
	ledgerdomain "github.com/smallbiznis/fairstyle/internal/ledger/domain"
	"gorm.io/gorm"
)

func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogdomain.Artist{},
		&catalogdomain.StyleCard{},
		&ledgerdomain.InferenceLog{},
		&ledgerdomain.UsageEvent{},
	)
}
