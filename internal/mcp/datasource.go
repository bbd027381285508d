package mcp

import (
	"context"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
)

// DataSource abstracts the data layer for MCP tools. Local (in-process
// services) and HTTPClient (remote via REST API) satisfy this interface.
// Every call is scoped to the actor the transport put in ctx.
type DataSource interface {
	ListPrograms(ctx context.Context) ([]models.ProgramSummary, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*models.ProgramView, error)
	ProgressExercises(ctx context.Context) ([]models.Exercise, error)
	Progress(ctx context.Context, exerciseID uuid.UUID) ([]models.ProgressPoint, error)
}

// ProgramReader is the read side of *programs.Service.
type ProgramReader interface {
	List(ctx context.Context, actor models.Actor) ([]models.ProgramSummary, error)
	Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.ProgramView, error)
}

// ProgressReader is the progress side of *training.Service.
type ProgressReader interface {
	Progress(ctx context.Context, actor models.Actor, exerciseID uuid.UUID) ([]models.ProgressPoint, error)
	ProgressExercises(ctx context.Context, actor models.Actor) ([]models.Exercise, error)
}

// Local serves tools from the in-process services.
type Local struct {
	programs ProgramReader
	progress ProgressReader
}

// Compile-time check: Local satisfies DataSource.
var _ DataSource = (*Local)(nil)

// NewLocal creates a DataSource over the services.
func NewLocal(programs ProgramReader, progress ProgressReader) *Local {
	return &Local{programs: programs, progress: progress}
}

func actorOf(ctx context.Context) (models.Actor, error) {
	a, ok := models.ActorFromContext(ctx)
	if !ok {
		return models.Actor{}, models.ErrForbidden
	}
	return a, nil
}

func (l *Local) ListPrograms(ctx context.Context) ([]models.ProgramSummary, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	return l.programs.List(ctx, actor)
}

func (l *Local) GetProgram(ctx context.Context, id uuid.UUID) (*models.ProgramView, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	return l.programs.Get(ctx, actor, id)
}

func (l *Local) ProgressExercises(ctx context.Context) ([]models.Exercise, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	return l.progress.ProgressExercises(ctx, actor)
}

func (l *Local) Progress(ctx context.Context, exerciseID uuid.UUID) ([]models.ProgressPoint, error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	return l.progress.Progress(ctx, actor, exerciseID)
}
