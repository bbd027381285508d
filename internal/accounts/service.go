// Package accounts resolves signed-in users to profiles and manages
// profile data, roles and the trainer roster.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/validation"
	"github.com/google/uuid"
)

type Service struct {
	store   Store
	isOwner func(login string) bool
	log     *slog.Logger
}

// NewService creates an accounts service. isOwner reports whether a login
// belongs to a gym owner; such logins are promoted on sign-in.
func NewService(store Store, isOwner func(login string) bool, log *slog.Logger) *Service {
	return &Service{store: store, isOwner: isOwner, log: log}
}

// LinkRequest links a member to a trainer. TrainerID defaults to the actor.
type LinkRequest struct {
	TrainerID *uuid.UUID `json:"trainer_id"`
	MemberID  uuid.UUID  `json:"member_id" validate:"required"`
}

// Resolve returns the profile of a signed-in login, creating a member
// profile on first sight.
func (s *Service) Resolve(ctx context.Context, login, displayName string) (*models.Profile, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, fmt.Errorf("resolving profile: empty login")
	}
	role := models.RoleMember
	if s.isOwner(login) {
		role = models.RoleOwner
	}
	p, err := s.store.GetOrCreateProfile(ctx, login, displayName, role)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Me returns the actor's profile.
func (s *Service) Me(ctx context.Context, actor models.Actor) (*models.Profile, error) {
	return s.store.GetProfile(ctx, actor.ID)
}

// UpdateMe merges u into the actor's profile. Omitted fields are kept; a
// blank string clears a text field.
func (s *Service) UpdateMe(ctx context.Context, actor models.Actor, u models.ProfileUpdate) (*models.Profile, error) {
	if err := validation.Struct(blankToNil(u)); err != nil {
		return nil, err
	}
	cur, err := s.store.GetProfile(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	merged := models.ProfileUpdate{
		FullName:  mergeText(cur.FullName, u.FullName),
		Email:     mergeText(cur.Email, u.Email),
		Gender:    mergeText(cur.Gender, u.Gender),
		BirthDate: cur.BirthDate,
		HeightCm:  cur.HeightCm,
		WeightKg:  cur.WeightKg,
	}
	if u.BirthDate != nil {
		merged.BirthDate = u.BirthDate
	}
	if u.HeightCm != nil {
		merged.HeightCm = u.HeightCm
	}
	if u.WeightKg != nil {
		merged.WeightKg = u.WeightKg
	}
	return s.store.UpdateProfile(ctx, actor.ID, merged)
}

// ListProfiles lists profiles, optionally of one role. Staff only.
func (s *Service) ListProfiles(ctx context.Context, actor models.Actor, role *models.Role) ([]models.Profile, error) {
	if !actor.IsStaff() {
		return nil, models.ErrForbidden
	}
	if role != nil && !role.Valid() {
		return nil, validation.Field("role", "unknown role")
	}
	return s.store.ListProfiles(ctx, role)
}

// SetRole changes a profile's role. Owners only, and not on themselves.
func (s *Service) SetRole(ctx context.Context, actor models.Actor, id uuid.UUID, role models.Role) error {
	if !actor.IsOwner() {
		return models.ErrForbidden
	}
	if !role.Valid() {
		return validation.Field("role", "unknown role")
	}
	if id == actor.ID {
		return validation.Errorf("owners cannot change their own role")
	}
	if err := s.store.SetRole(ctx, id, role); err != nil {
		return err
	}
	s.log.Info("role changed", "profile_id", id, "role", role, "actor", actor.ID)
	return nil
}

// Links returns the trainer roster: every link for owners, the trainer's
// own members for trainers.
func (s *Service) Links(ctx context.Context, actor models.Actor) ([]models.TrainerMember, error) {
	switch actor.Role {
	case models.RoleOwner:
		return s.store.ListTrainerLinks(ctx, nil)
	case models.RoleTrainer:
		return s.store.ListTrainerLinks(ctx, &actor.ID)
	}
	return nil, models.ErrForbidden
}

// Link adds a member to a trainer's roster. Trainers link members to
// themselves; owners may link any trainer.
func (s *Service) Link(ctx context.Context, actor models.Actor, req LinkRequest) error {
	trainerID, err := s.linkTarget(actor, req)
	if err != nil {
		return err
	}
	if err := s.expectRole(ctx, trainerID, "trainer_id", models.RoleTrainer, models.RoleOwner); err != nil {
		return err
	}
	if err := s.expectRole(ctx, req.MemberID, "member_id", models.RoleMember); err != nil {
		return err
	}
	return s.store.LinkTrainer(ctx, trainerID, req.MemberID)
}

// Unlink removes a member from a trainer's roster.
func (s *Service) Unlink(ctx context.Context, actor models.Actor, req LinkRequest) error {
	trainerID, err := s.linkTarget(actor, req)
	if err != nil {
		return err
	}
	return s.store.UnlinkTrainer(ctx, trainerID, req.MemberID)
}

func (s *Service) linkTarget(actor models.Actor, req LinkRequest) (uuid.UUID, error) {
	if !actor.IsStaff() {
		return uuid.Nil, models.ErrForbidden
	}
	if err := validation.Struct(req); err != nil {
		return uuid.Nil, err
	}
	trainerID := actor.ID
	if req.TrainerID != nil {
		trainerID = *req.TrainerID
	}
	if trainerID != actor.ID && !actor.IsOwner() {
		return uuid.Nil, models.ErrForbidden
	}
	return trainerID, nil
}

func (s *Service) expectRole(ctx context.Context, id uuid.UUID, field string, roles ...models.Role) error {
	p, err := s.store.GetProfile(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return validation.Field(field, "unknown profile")
	}
	if err != nil {
		return err
	}
	for _, r := range roles {
		if p.Role == r {
			return nil
		}
	}
	return validation.Field(field, fmt.Sprintf("%s is a %s", p.DisplayName(), p.Role))
}

// blankToNil trims text fields and drops blank ones, which mean "clear".
func blankToNil(u models.ProfileUpdate) models.ProfileUpdate {
	for _, p := range []**string{&u.FullName, &u.Email, &u.Gender} {
		if *p == nil {
			continue
		}
		if v := strings.TrimSpace(**p); v != "" {
			*p = &v
		} else {
			*p = nil
		}
	}
	return u
}

func mergeText(cur, in *string) *string {
	if in == nil {
		return cur
	}
	v := strings.TrimSpace(*in)
	if v == "" {
		return nil
	}
	return &v
}
