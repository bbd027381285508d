// Package training implements live workout tracking: sessions, logged
// sets, last-value hints and progress history.
package training

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/telemetry"
	"github.com/CGAmico/Invictus-Fitness/internal/validation"
	"github.com/google/uuid"
)

// sessionListLimit caps ListSessions.
const sessionListLimit = 50

type Service struct {
	store   Store
	metrics *telemetry.Manager
	log     *slog.Logger

	// Now is the clock used for set and session timestamps.
	Now func() time.Time
}

func NewService(store Store, metrics *telemetry.Manager, log *slog.Logger) *Service {
	return &Service{store: store, metrics: metrics, log: log, Now: time.Now}
}

// StartSession resumes the actor's open session for the program or starts
// a new one. Programs assigned to someone else and templates are refused.
func (s *Service) StartSession(ctx context.Context, actor models.Actor, programID uuid.UUID) (*models.WorkoutSession, error) {
	p, err := s.store.GetProgram(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	if p.MemberID != nil && *p.MemberID != actor.ID {
		return nil, models.ErrForbidden
	}
	if p.IsTemplate {
		return nil, validation.Errorf("templates cannot be tracked; clone it first")
	}
	sess, err := s.store.OpenSession(ctx, actor.ID, programID)
	if err != nil {
		return nil, err
	}
	s.log.Debug("session opened", "session_id", sess.ID, "program_id", programID, "user_id", actor.ID)
	return sess, nil
}

// LogSet records one set against an exercise of the session's program. The
// entry must match the exercise's mode; the RPE is dropped unless the
// program tracks it.
func (s *Service) LogSet(ctx context.Context, actor models.Actor, sessionID, programExerciseID uuid.UUID, entry models.SetEntry) (*models.WorkoutSet, error) {
	sess, err := s.ownSession(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Open() {
		return nil, validation.Errorf("session has already ended")
	}

	mode, err := entry.Mode()
	if err != nil {
		return nil, validation.Errorf("%v", err)
	}
	if entry.Weights != nil {
		err = validation.Struct(entry.Weights)
	} else {
		err = validation.Struct(entry.Cardio)
	}
	if err != nil {
		return nil, err
	}

	pe, err := s.store.GetProgramExercise(ctx, programExerciseID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, validation.Field("program_exercise_id", "unknown program exercise")
	}
	if err != nil {
		return nil, fmt.Errorf("loading program exercise: %w", err)
	}
	day, err := s.store.GetDay(ctx, pe.DayID)
	if err != nil {
		return nil, fmt.Errorf("loading day: %w", err)
	}
	if sess.ProgramID == nil || *sess.ProgramID != day.ProgramID {
		return nil, validation.Field("program_exercise_id", "exercise is not part of this session's program")
	}
	if want := pe.Target.Mode(); want != mode {
		return nil, validation.Errorf("%s expects a %s entry, got %s", pe.ExerciseName, want, mode)
	}

	if entry.Weights != nil {
		p, err := s.store.GetProgram(ctx, day.ProgramID)
		if err != nil {
			return nil, fmt.Errorf("loading program: %w", err)
		}
		if !p.UseRPE {
			w := *entry.Weights
			w.RPE = nil
			entry.Weights = &w
		}
	}

	set, err := s.store.InsertSet(ctx, models.WorkoutSet{
		SessionID:         sess.ID,
		UserID:            actor.ID,
		ProgramID:         sess.ProgramID,
		ProgramExerciseID: &pe.ID,
		ExerciseID:        pe.ExerciseID,
		ExerciseName:      pe.ExerciseName,
		PerformedAt:       s.Now(),
		SetEntry:          entry,
	})
	if err != nil {
		return nil, err
	}
	s.metrics.SetLogged(string(mode))
	return set, nil
}

// EndSession closes the actor's session. Ending a closed session is a no-op.
func (s *Service) EndSession(ctx context.Context, actor models.Actor, sessionID uuid.UUID) error {
	sess, err := s.ownSession(ctx, actor, sessionID)
	if err != nil {
		return err
	}
	if !sess.Open() {
		return nil
	}
	return s.store.EndSession(ctx, sessionID, s.Now())
}

// ListSessions returns the actor's most recent sessions.
func (s *Service) ListSessions(ctx context.Context, actor models.Actor) ([]models.SessionSummary, error) {
	return s.store.ListSessions(ctx, actor.ID, sessionListLimit)
}

// SessionDetail returns a session with its sets. Besides the session's
// user, owners and the user's trainers may read it.
func (s *Service) SessionDetail(ctx context.Context, actor models.Actor, sessionID uuid.UUID) (*models.SessionDetail, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.canRead(ctx, actor, sess.UserID); err != nil {
		return nil, err
	}

	sets, err := s.store.SessionSets(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	detail := &models.SessionDetail{
		SessionSummary: models.SessionSummary{WorkoutSession: *sess, SetCount: len(sets)},
		Sets:           sets,
	}
	if sess.ProgramID != nil {
		p, err := s.store.GetProgram(ctx, *sess.ProgramID)
		switch {
		case err == nil:
			detail.ProgramName = p.Name
		case !errors.Is(err, models.ErrNotFound):
			return nil, fmt.Errorf("loading program: %w", err)
		}
	}
	return detail, nil
}

// LastEntries returns the actor's latest logged values per exercise.
func (s *Service) LastEntries(ctx context.Context, actor models.Actor, exerciseIDs []uuid.UUID) (map[uuid.UUID]models.LastEntry, error) {
	return s.store.LastEntries(ctx, actor.ID, exerciseIDs)
}

// Progress returns the actor's chronological weights history of one exercise.
func (s *Service) Progress(ctx context.Context, actor models.Actor, exerciseID uuid.UUID) ([]models.ProgressPoint, error) {
	return s.store.ProgressHistory(ctx, actor.ID, exerciseID)
}

// ProgressExercises lists the exercises the actor has logged.
func (s *Service) ProgressExercises(ctx context.Context, actor models.Actor) ([]models.Exercise, error) {
	return s.store.ProgressExercises(ctx, actor.ID)
}

func (s *Service) ownSession(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.WorkoutSession, error) {
	sess, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.UserID != actor.ID {
		return nil, models.ErrForbidden
	}
	return sess, nil
}

func (s *Service) canRead(ctx context.Context, actor models.Actor, userID uuid.UUID) error {
	switch {
	case actor.ID == userID, actor.IsOwner():
		return nil
	case actor.Role == models.RoleTrainer:
		ok, err := s.store.IsTrainerOf(ctx, actor.ID, userID)
		if err != nil {
			return fmt.Errorf("checking trainer link: %w", err)
		}
		if ok {
			return nil
		}
	}
	return models.ErrForbidden
}
