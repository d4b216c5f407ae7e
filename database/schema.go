package database

import (
	"fmt"

	"github.com/lshigami/questionbank/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AutoMigrate creates any of the four tables that are missing. The models
// declare no associations, so no foreign keys are created: a Setup can be
// deleted while sql questions still point at it, and question children are
// removed by the question service rather than by the store.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ResetSchema drops and recreates every table, discarding all data. It is
// meant for initialisation and tests only.
func ResetSchema(db *gorm.DB) error {
	tables := model.All()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("failed to drop %T: %w", tables[i], err)
		}
	}
	if err := AutoMigrate(db); err != nil {
		return err
	}
	log.Info().Int("tables", len(tables)).Msg("Schema reset")
	return nil
}
