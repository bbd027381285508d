package programs

import (
	"context"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/ordering"
	"github.com/google/uuid"
)

//go:generate mockgen -source=store.go -destination=store_mock_test.go -package=programs_test

// Store is the persistence the program service needs. *storage.DB
// implements it.
type Store interface {
	ListPrograms(ctx context.Context, f models.ProgramFilter) ([]models.ProgramSummary, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*models.Program, error)
	GetProgramTree(ctx context.Context, id uuid.UUID) (*models.ProgramTree, error)
	InsertProgram(ctx context.Context, p models.Program) (*models.Program, error)
	UpdateProgram(ctx context.Context, p models.Program) error
	DeleteProgram(ctx context.Context, id uuid.UUID) error

	GetDay(ctx context.Context, id uuid.UUID) (*models.ProgramDay, error)
	AppendDay(ctx context.Context, programID uuid.UUID, name *string) (*models.ProgramDay, error)
	RenameDay(ctx context.Context, id uuid.UUID, name *string) error
	DeleteDay(ctx context.Context, id uuid.UUID) error

	GetProgramExercise(ctx context.Context, id uuid.UUID) (*models.ProgramExercise, error)
	AppendProgramExercise(ctx context.Context, pe models.ProgramExercise) (*models.ProgramExercise, error)
	UpdateProgramExercise(ctx context.Context, pe models.ProgramExercise) error
	DeleteProgramExercise(ctx context.Context, id uuid.UUID) error

	NormalizeScope(ctx context.Context, s ordering.Scope, parentID uuid.UUID) (int, error)
	MoveInScope(ctx context.Context, s ordering.Scope, id uuid.UUID, dir ordering.Direction) (bool, error)
	CloneTemplate(ctx context.Context, templateID uuid.UUID, req models.CloneRequest) (uuid.UUID, error)

	GetExercise(ctx context.Context, id uuid.UUID) (*models.Exercise, error)
	FindOrCreateExercise(ctx context.Context, name string) (*models.Exercise, error)
	GetMachine(ctx context.Context, id uuid.UUID) (*models.Machine, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	IsTrainerOf(ctx context.Context, trainerID, memberID uuid.UUID) (bool, error)
}
