package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/CGAmico/Invictus-Fitness/internal/config"
	"github.com/CGAmico/Invictus-Fitness/internal/logging"
	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/programs"
	"github.com/CGAmico/Invictus-Fitness/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// stats tracks repair progress.
type stats struct {
	Programs           int
	Repaired           int
	Errored            int
	DaysRewritten      int
	ExercisesRewritten int
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	programID := flag.String("program", "", "repair a single program by ID (default: all)")
	dryRun := flag.Bool("dry-run", false, "report what would change without writing")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log, logCloser := logging.New(cfg.Logging)
	defer logCloser.Close()

	var ids []uuid.UUID
	if *programID != "" {
		id, err := uuid.Parse(*programID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Usage: invictus-repair -config config.yaml [-program ID] [-dry-run]\n")
			flag.PrintDefaults()
			os.Exit(1)
		}
		ids = []uuid.UUID{id}
	}

	if *dryRun {
		log.Info("DRY RUN mode: no positions will be rewritten")
	}

	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.DSN(), storage.Options{})
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	if len(ids) == 0 {
		ids, err = db.ListProgramIDs(ctx)
		if err != nil {
			log.Error("listing programs failed", "error", err)
			os.Exit(1)
		}
	}

	svc := programs.NewService(db, nil, log)
	st, err := repairAll(ctx, svc, ids, *dryRun, log)
	printStats(log, st)
	if err != nil {
		log.Error("repair finished with errors", "error", err)
		os.Exit(1)
	}
	log.Info("repair complete")
}

// repairer is the repair side of *programs.Service.
type repairer interface {
	Repair(ctx context.Context, actor models.Actor, id uuid.UUID, dryRun bool) (*programs.RepairReport, error)
}

// repairAll repairs every program as the system owner. A failing program
// does not stop the others; their errors are combined.
func repairAll(ctx context.Context, svc repairer, ids []uuid.UUID, dryRun bool, log *slog.Logger) (stats, error) {
	system := models.Actor{ID: uuid.Nil, Role: models.RoleOwner}

	var (
		st   stats
		errs error
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return st, multierr.Append(errs, err)
		}
		st.Programs++
		report, err := svc.Repair(ctx, system, id, dryRun)
		if err != nil {
			st.Errored++
			log.Warn("repair failed", "program_id", id, "error", err)
			errs = multierr.Append(errs, fmt.Errorf("program %s: %w", id, err))
			continue
		}
		if report.Total() > 0 {
			st.Repaired++
			log.Info("program repaired", "program_id", id, "days", report.DaysRewritten, "exercises", report.ExercisesRewritten, "dry_run", dryRun)
		}
		st.DaysRewritten += report.DaysRewritten
		st.ExercisesRewritten += report.ExercisesRewritten
	}
	return st, errs
}

func printStats(log *slog.Logger, st stats) {
	log.Info("repair stats",
		"programs", st.Programs,
		"repaired", st.Repaired,
		"errored", st.Errored,
		"days_rewritten", st.DaysRewritten,
		"exercises_rewritten", st.ExercisesRewritten,
	)
}
