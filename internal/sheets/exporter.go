package sheets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Source provides the programs to export. *storage.DB implements it.
type Source interface {
	ListProgramIDs(ctx context.Context) ([]uuid.UUID, error)
	GetProgramTree(ctx context.Context, id uuid.UUID) (*models.ProgramTree, error)
}

// Stats tracks export progress.
type Stats struct {
	Total   int
	Written int
	Skipped int
	Errored int
}

// Exporter writes one sheet file per program into a directory.
type Exporter struct {
	source Source
	state  *StateDB
	outDir string
	dryRun bool
	log    *slog.Logger
	stats  Stats
}

// NewExporter creates an exporter. With dryRun set no file or state is
// written.
func NewExporter(source Source, state *StateDB, outDir string, dryRun bool, log *slog.Logger) *Exporter {
	return &Exporter{source: source, state: state, outDir: outDir, dryRun: dryRun, log: log}
}

// Run exports the given programs, or every program when ids is empty. A
// failing program does not stop the others; their errors are combined.
func (e *Exporter) Run(ctx context.Context, ids []uuid.UUID) (*Stats, error) {
	if len(ids) == 0 {
		var err error
		ids, err = e.source.ListProgramIDs(ctx)
		if err != nil {
			return &e.stats, fmt.Errorf("listing programs: %w", err)
		}
	}
	if !e.dryRun {
		if err := os.MkdirAll(e.outDir, 0o755); err != nil {
			return &e.stats, fmt.Errorf("creating output dir %s: %w", e.outDir, err)
		}
	}

	var errs error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return &e.stats, multierr.Append(errs, err)
		}
		e.stats.Total++
		if err := e.exportOne(ctx, id); err != nil {
			e.stats.Errored++
			e.log.Warn("sheet export failed", "program_id", id, "error", err)
			errs = multierr.Append(errs, fmt.Errorf("program %s: %w", id, err))
		}
	}
	return &e.stats, errs
}

func (e *Exporter) exportOne(ctx context.Context, id uuid.UUID) error {
	tree, err := e.source.GetProgramTree(ctx, id)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Render(&buf, *tree); err != nil {
		return err
	}
	hash := Hash(buf.Bytes())
	file := FileName(tree.Program)
	path := filepath.Join(e.outDir, file)

	current, err := e.state.IsCurrent(id, file, hash)
	if err != nil {
		return fmt.Errorf("checking state: %w", err)
	}
	if current && fileExists(path) {
		e.stats.Skipped++
		return nil
	}

	if e.dryRun {
		e.log.Info("would write sheet", "program", tree.Name, "file", path)
		e.stats.Written++
		return nil
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := e.state.MarkExported(id, file, hash); err != nil {
		return fmt.Errorf("recording export: %w", err)
	}
	e.stats.Written++
	e.log.Debug("sheet written", "program", tree.Name, "file", path)
	return nil
}

// FileName returns the sheet file name of a program: a slug of its name
// followed by the first block of its id.
func FileName(p models.Program) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(p.Name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "program"
	}
	return slug + "-" + strings.SplitN(p.ID.String(), "-", 2)[0] + ".txt"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
