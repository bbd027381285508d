// Package catalog manages the exercise and machine catalogs. Reads are
// served from an in-memory cache that every write invalidates.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/validation"
	"github.com/coocood/freecache"
	"github.com/google/uuid"
)

const (
	megabyte = 1024 * 1024

	exercisesKey = "exercises"
	machinesKey  = "machines"
)

type Service struct {
	store Store
	cache *freecache.Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewService creates a catalog service with a cache of sizeMB megabytes
// whose entries expire after ttl.
func NewService(store Store, sizeMB int, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		store: store,
		cache: freecache.NewCache(sizeMB * megabyte),
		ttl:   ttl,
		log:   log,
	}
}

// Exercises returns the exercise catalog ordered by name.
func (s *Service) Exercises(ctx context.Context) ([]models.Exercise, error) {
	return cached(s, exercisesKey, func() ([]models.Exercise, error) {
		return s.store.ListExercises(ctx)
	})
}

// Machines returns the machine catalog.
func (s *Service) Machines(ctx context.Context) ([]models.Machine, error) {
	return cached(s, machinesKey, func() ([]models.Machine, error) {
		return s.store.ListMachines(ctx)
	})
}

func (s *Service) CreateExercise(ctx context.Context, actor models.Actor, in models.ExerciseInput) (*models.Exercise, error) {
	if !actor.IsStaff() {
		return nil, models.ErrForbidden
	}
	in = cleanExercise(in)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	e, err := s.store.InsertExercise(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(exercisesKey)
	return e, nil
}

func (s *Service) UpdateExercise(ctx context.Context, actor models.Actor, id uuid.UUID, in models.ExerciseInput) (*models.Exercise, error) {
	if !actor.IsStaff() {
		return nil, models.ErrForbidden
	}
	in = cleanExercise(in)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	e, err := s.store.UpdateExercise(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(exercisesKey)
	return e, nil
}

// DeleteExercise removes an exercise. Exercises used by a program cannot
// be deleted.
func (s *Service) DeleteExercise(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if !actor.IsStaff() {
		return models.ErrForbidden
	}
	if err := s.store.DeleteExercise(ctx, id); err != nil {
		return err
	}
	s.invalidate(exercisesKey)
	return nil
}

func (s *Service) CreateMachine(ctx context.Context, actor models.Actor, in models.MachineInput) (*models.Machine, error) {
	if !actor.IsStaff() {
		return nil, models.ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	m, err := s.store.InsertMachine(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(machinesKey)
	return m, nil
}

// DeleteMachine removes a machine. Program exercises that used it keep
// their exercise and lose only the machine.
func (s *Service) DeleteMachine(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if !actor.IsStaff() {
		return models.ErrForbidden
	}
	if err := s.store.DeleteMachine(ctx, id); err != nil {
		return err
	}
	s.invalidate(machinesKey)
	return nil
}

// cached serves key from the cache, loading and storing it on a miss. A
// cache that cannot decode or store an entry falls back to the store.
func cached[T any](s *Service, key string, load func() ([]T, error)) ([]T, error) {
	if data, err := s.cache.Get([]byte(key)); err == nil {
		var out []T
		if err := json.Unmarshal(data, &out); err == nil {
			return out, nil
		}
		s.log.Warn("dropping undecodable cache entry", "key", key)
		s.cache.Del([]byte(key))
	}

	out, err := load()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return out, nil
	}
	if err := s.cache.Set([]byte(key), data, int(s.ttl.Seconds())); err != nil {
		s.log.Debug("catalog cache set failed", "key", key, "error", err)
	}
	return out, nil
}

// ExercisesChanged drops the cached exercise list. Callers that create
// exercises outside this service use it.
func (s *Service) ExercisesChanged() {
	s.invalidate(exercisesKey)
}

func (s *Service) invalidate(key string) {
	s.cache.Del([]byte(key))
}

func cleanExercise(in models.ExerciseInput) models.ExerciseInput {
	in.Name = strings.TrimSpace(in.Name)
	for _, p := range []**string{&in.MuscleGroup, &in.Notes, &in.VideoURL} {
		if *p == nil {
			continue
		}
		if v := strings.TrimSpace(**p); v != "" {
			*p = &v
		} else {
			*p = nil
		}
	}
	return in
}
