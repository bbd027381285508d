package catalog

import (
	"context"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=store.go -destination=store_mock_test.go -package=catalog_test

// Store is the persistence the catalog needs. *storage.DB implements it.
type Store interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	InsertExercise(ctx context.Context, in models.ExerciseInput) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, id uuid.UUID, in models.ExerciseInput) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, id uuid.UUID) error

	ListMachines(ctx context.Context) ([]models.Machine, error)
	InsertMachine(ctx context.Context, in models.MachineInput) (*models.Machine, error)
	DeleteMachine(ctx context.Context, id uuid.UUID) error
}
