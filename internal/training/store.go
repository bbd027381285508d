package training

import (
	"context"
	"time"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=store.go -destination=store_mock_test.go -package=training_test

// Store is the persistence live tracking needs. *storage.DB implements it.
type Store interface {
	GetProgram(ctx context.Context, id uuid.UUID) (*models.Program, error)
	GetDay(ctx context.Context, id uuid.UUID) (*models.ProgramDay, error)
	GetProgramExercise(ctx context.Context, id uuid.UUID) (*models.ProgramExercise, error)
	IsTrainerOf(ctx context.Context, trainerID, memberID uuid.UUID) (bool, error)

	OpenSession(ctx context.Context, userID, programID uuid.UUID) (*models.WorkoutSession, error)
	GetSession(ctx context.Context, id uuid.UUID) (*models.WorkoutSession, error)
	EndSession(ctx context.Context, id uuid.UUID, at time.Time) error
	ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]models.SessionSummary, error)
	SessionSets(ctx context.Context, sessionID uuid.UUID) ([]models.WorkoutSet, error)
	InsertSet(ctx context.Context, s models.WorkoutSet) (*models.WorkoutSet, error)

	LastEntries(ctx context.Context, userID uuid.UUID, exerciseIDs []uuid.UUID) (map[uuid.UUID]models.LastEntry, error)
	ProgressHistory(ctx context.Context, userID, exerciseID uuid.UUID) ([]models.ProgressPoint, error)
	ProgressExercises(ctx context.Context, userID uuid.UUID) ([]models.Exercise, error)
}
