package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/config"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/host"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/metrics"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/naming"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/patch"
)

func main() {
	printSchema := flag.Bool("print-schema", false, "Print the item fragment JSON schema and exit")
	dryRun := flag.Bool("dry-run", false, "Patch in memory without writing the database")
	flag.Parse()

	if *printSchema {
		data, err := item.FragmentSchemaJSON()
		if err != nil {
			log.Fatalf("Failed to build schema: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	logger.InitLogger(logger.DefaultConfig())
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	ctx := logger.WithRunID(context.Background(), logger.GenerateRunID())
	if err := run(ctx, cfg, *dryRun); err != nil {
		logger.FromContext(ctx).Error("Patch run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, dryRun bool) error {
	log := logger.FromContext(ctx)
	start := time.Now()

	for _, w := range config.Warnings(cfg) {
		log.Warn("Configuration warning", "warning", w)
	}

	names, err := naming.LoadOverlay(naming.Default(), cfg.ShorthandOverlay)
	if err != nil {
		return fmt.Errorf("load shorthand overlay: %w", err)
	}

	db, err := host.LoadDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}

	items, err := item.NewLoader(item.Options{
		ExcludePattern: cfg.ExcludePattern,
		SchemaCheck:    cfg.SchemaCheck,
	}).Load(ctx, cfg.ItemsDir)
	if err != nil {
		return err
	}

	result := patch.NewApplier(db, host.NewItemFactory(db), names, cfg.ModName).Apply(ctx, items)
	for _, f := range result.Failed {
		log.Warn("Item skipped", "item_id", f.ID, "error", f.Err)
	}

	if cfg.OutputPath != "" && !dryRun {
		if err := host.SaveDatabase(ctx, cfg.OutputPath, db); err != nil {
			return err
		}
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(ctx, cfg.MetricsFile); err != nil {
			return err
		}
	}

	log.Info("Patch run complete",
		"added", len(result.Added),
		"failed", len(result.Failed),
		"quests_patched", result.QuestsPatched,
		"duration", time.Since(start))
	return nil
}
