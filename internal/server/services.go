package server

import (
	"context"

	"github.com/CGAmico/Invictus-Fitness/internal/accounts"
	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/ordering"
	"github.com/CGAmico/Invictus-Fitness/internal/programs"
	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=services_mock_test.go -package=server

// ProgramService is implemented by *programs.Service.
type ProgramService interface {
	List(ctx context.Context, actor models.Actor) ([]models.ProgramSummary, error)
	Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.ProgramView, error)
	Create(ctx context.Context, actor models.Actor, in programs.ProgramInput) (*models.Program, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, in programs.ProgramInput) (*models.Program, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	AddDay(ctx context.Context, actor models.Actor, programID uuid.UUID, name *string) (*models.ProgramDay, error)
	RenameDay(ctx context.Context, actor models.Actor, dayID uuid.UUID, name *string) error
	DeleteDay(ctx context.Context, actor models.Actor, dayID uuid.UUID) error
	MoveDay(ctx context.Context, actor models.Actor, dayID uuid.UUID, dir ordering.Direction) (bool, error)
	AddExercise(ctx context.Context, actor models.Actor, dayID uuid.UUID, in programs.ExerciseInput) (*models.ProgramExercise, error)
	UpdateExercise(ctx context.Context, actor models.Actor, id uuid.UUID, in programs.ExerciseInput) (*models.ProgramExercise, error)
	DeleteExercise(ctx context.Context, actor models.Actor, id uuid.UUID) error
	MoveExercise(ctx context.Context, actor models.Actor, id uuid.UUID, dir ordering.Direction) (bool, error)
	CloneTemplate(ctx context.Context, actor models.Actor, templateID uuid.UUID, req models.CloneRequest) (uuid.UUID, error)
	Repair(ctx context.Context, actor models.Actor, id uuid.UUID, dryRun bool) (*programs.RepairReport, error)
}

// CatalogService is implemented by *catalog.Service.
type CatalogService interface {
	Exercises(ctx context.Context) ([]models.Exercise, error)
	Machines(ctx context.Context) ([]models.Machine, error)
	CreateExercise(ctx context.Context, actor models.Actor, in models.ExerciseInput) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, actor models.Actor, id uuid.UUID, in models.ExerciseInput) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, actor models.Actor, id uuid.UUID) error
	CreateMachine(ctx context.Context, actor models.Actor, in models.MachineInput) (*models.Machine, error)
	DeleteMachine(ctx context.Context, actor models.Actor, id uuid.UUID) error
}

// TrainingService is implemented by *training.Service.
type TrainingService interface {
	StartSession(ctx context.Context, actor models.Actor, programID uuid.UUID) (*models.WorkoutSession, error)
	LogSet(ctx context.Context, actor models.Actor, sessionID, programExerciseID uuid.UUID, entry models.SetEntry) (*models.WorkoutSet, error)
	EndSession(ctx context.Context, actor models.Actor, sessionID uuid.UUID) error
	ListSessions(ctx context.Context, actor models.Actor) ([]models.SessionSummary, error)
	SessionDetail(ctx context.Context, actor models.Actor, sessionID uuid.UUID) (*models.SessionDetail, error)
	LastEntries(ctx context.Context, actor models.Actor, exerciseIDs []uuid.UUID) (map[uuid.UUID]models.LastEntry, error)
	Progress(ctx context.Context, actor models.Actor, exerciseID uuid.UUID) ([]models.ProgressPoint, error)
	ProgressExercises(ctx context.Context, actor models.Actor) ([]models.Exercise, error)
}

// AccountService is implemented by *accounts.Service.
type AccountService interface {
	Resolve(ctx context.Context, login, displayName string) (*models.Profile, error)
	Me(ctx context.Context, actor models.Actor) (*models.Profile, error)
	UpdateMe(ctx context.Context, actor models.Actor, u models.ProfileUpdate) (*models.Profile, error)
	ListProfiles(ctx context.Context, actor models.Actor, role *models.Role) ([]models.Profile, error)
	SetRole(ctx context.Context, actor models.Actor, id uuid.UUID, role models.Role) error
	Links(ctx context.Context, actor models.Actor) ([]models.TrainerMember, error)
	Link(ctx context.Context, actor models.Actor, req accounts.LinkRequest) error
	Unlink(ctx context.Context, actor models.Actor, req accounts.LinkRequest) error
}
