package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/CGAmico/Invictus-Fitness/internal/config"
	"github.com/CGAmico/Invictus-Fitness/internal/logging"
	"github.com/CGAmico/Invictus-Fitness/internal/sheets"
	"github.com/CGAmico/Invictus-Fitness/internal/storage"
	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	outDir := flag.String("out", "", "directory to write sheets into (required)")
	programID := flag.String("program", "", "export a single program by ID (default: all)")
	stateDir := flag.String("state-dir", "", "directory for the export state DB (default: <out>/.state)")
	dryRun := flag.Bool("dry-run", false, "report which sheets would be written without writing")
	flag.Parse()

	if *outDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: invictus-sheets -config config.yaml -out ./sheets [-program ID] [-state-dir DIR] [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var ids []uuid.UUID
	if *programID != "" {
		id, err := uuid.Parse(*programID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -program %q: %v\n", *programID, err)
			os.Exit(1)
		}
		ids = []uuid.UUID{id}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log, logCloser := logging.New(cfg.Logging)
	defer logCloser.Close()

	if *stateDir == "" {
		*stateDir = filepath.Join(*outDir, ".state")
	}
	state, err := sheets.OpenStateDB(*stateDir)
	if err != nil {
		log.Error("failed to open state db", "dir", *stateDir, "error", err)
		os.Exit(1)
	}
	defer state.Close()

	if *dryRun {
		log.Info("DRY RUN mode: no sheets will be written")
	}

	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.DSN(), storage.Options{})
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	exp := sheets.NewExporter(db, state, *outDir, *dryRun, log)
	stats, err := exp.Run(ctx, ids)
	printStats(log, stats)
	if err != nil {
		log.Error("export finished with errors", "error", err)
		os.Exit(1)
	}
	log.Info("export complete", "out", *outDir)
}

func printStats(log *slog.Logger, stats *sheets.Stats) {
	log.Info("export stats",
		"programs", stats.Total,
		"written", stats.Written,
		"skipped", stats.Skipped,
		"errored", stats.Errored,
	)
}
