package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is the account role of a profile.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleTrainer Role = "trainer"
	RoleMember  Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleTrainer, RoleMember:
		return true
	}
	return false
}

// Actor is the authorization context of the user performing an operation.
// Every service operation takes one explicitly.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}

// IsOwner reports whether the actor is a gym owner.
func (a Actor) IsOwner() bool { return a.Role == RoleOwner }

// IsStaff reports whether the actor is an owner or a trainer.
func (a Actor) IsStaff() bool { return a.Role == RoleOwner || a.Role == RoleTrainer }

// CanEditProgram reports whether the actor may change a program's structure.
// Owners may edit everything, trainers only what they authored.
func (a Actor) CanEditProgram(p Program) bool {
	switch a.Role {
	case RoleOwner:
		return true
	case RoleTrainer:
		return p.OwnerID != nil && *p.OwnerID == a.ID
	}
	return false
}

type actorKey struct{}

// WithActor returns a context carrying the given actor.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext extracts the actor stored by WithActor.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}

// Profile is a person known to the gym.
type Profile struct {
	ID        uuid.UUID  `json:"id"`
	Login     string     `json:"login"`
	Email     *string    `json:"email,omitempty"`
	FullName  *string    `json:"full_name,omitempty"`
	Role      Role       `json:"role"`
	Gender    *string    `json:"gender,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	HeightCm  *float64   `json:"height_cm,omitempty"`
	WeightKg  *float64   `json:"weight_kg,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	LastSeen  time.Time  `json:"last_seen"`
}

// Actor returns the authorization context for this profile.
func (p Profile) Actor() Actor {
	return Actor{ID: p.ID, Role: p.Role}
}

// DisplayName returns the full name, falling back to the login.
func (p Profile) DisplayName() string {
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return p.Login
}

// ProfileUpdate holds the self-editable fields of a profile.
type ProfileUpdate struct {
	FullName  *string    `json:"full_name" validate:"omitempty,max=120"`
	Email     *string    `json:"email" validate:"omitempty,email"`
	Gender    *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	BirthDate *time.Time `json:"birth_date"`
	HeightCm  *float64   `json:"height_cm" validate:"omitempty,gt=0,lte=300"`
	WeightKg  *float64   `json:"weight_kg" validate:"omitempty,gt=0,lte=500"`
}

// TrainerMember links a trainer to one of their members.
type TrainerMember struct {
	TrainerID   uuid.UUID `json:"trainer_id"`
	TrainerName string    `json:"trainer_name"`
	MemberID    uuid.UUID `json:"member_id"`
	MemberName  string    `json:"member_name"`
	CreatedAt   time.Time `json:"created_at"`
}
