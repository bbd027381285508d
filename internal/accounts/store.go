package accounts

import (
	"context"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=store.go -destination=store_mock_test.go -package=accounts_test

// Store is the persistence accounts need. *storage.DB implements it.
type Store interface {
	GetOrCreateProfile(ctx context.Context, login, displayName string, role models.Role) (*models.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, u models.ProfileUpdate) (*models.Profile, error)
	SetRole(ctx context.Context, id uuid.UUID, role models.Role) error
	ListProfiles(ctx context.Context, role *models.Role) ([]models.Profile, error)

	LinkTrainer(ctx context.Context, trainerID, memberID uuid.UUID) error
	UnlinkTrainer(ctx context.Context, trainerID, memberID uuid.UUID) error
	ListTrainerLinks(ctx context.Context, trainerID *uuid.UUID) ([]models.TrainerMember, error)
}
