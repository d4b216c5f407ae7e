package main

import (
	"github.com/lshigami/questionbank/config"
	"github.com/lshigami/questionbank/database"
	"github.com/lshigami/questionbank/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runResetDB(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.File)

	db, err := database.NewDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	if err := database.ResetSchema(db); err != nil {
		log.Error().Err(err).Msg("Failed to reset schema")
		return err
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Database reset")
	return nil
}
