package main

import (
	"context"
	"fmt"
	"os"

	"github.com/smitusov/pgnsplit/internal/config"
	apperrors "github.com/smitusov/pgnsplit/internal/errors"
	"github.com/smitusov/pgnsplit/internal/logger"
	"github.com/smitusov/pgnsplit/internal/manifest"
	"github.com/smitusov/pgnsplit/internal/splitter"
)

func main() {
	cfg := config.Load()

	// Positional arguments override the configured alias list.
	if args := os.Args[1:]; len(args) > 0 {
		cfg.Aliases = args
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("%v", apperrors.NewConfigError(err.Error()))
		os.Exit(1)
	}
	log.Debug("input_path=%s", cfg.InputPath)
	log.Debug("output_dir=%s", cfg.OutputDir)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("aliases=%v", cfg.Aliases)

	var store *manifest.Store
	if cfg.DBPath != "" {
		var err error
		store, err = manifest.Open(cfg.DBPath)
		if err != nil {
			log.Error("failed to open manifest: %v", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	ctx := logger.NewContext(context.Background(), log)
	summary, err := splitter.New(cfg, store).Run(ctx)
	if err != nil {
		log.Error("run failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d games to %s\n", summary.Exported, summary.OutputDir)
}
