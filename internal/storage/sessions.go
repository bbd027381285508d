package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const sessionColumns = `id, user_id, program_id, started_at, ended_at`

func scanSession(row pgx.Row) (*models.WorkoutSession, error) {
	var s models.WorkoutSession
	if err := row.Scan(&s.ID, &s.UserID, &s.ProgramID, &s.StartedAt, &s.EndedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// OpenSession returns the user's open session for the program, creating one
// if none exists. The partial unique index keeps at most one open session
// per user and program.
func (db *DB) OpenSession(ctx context.Context, userID, programID uuid.UUID) (*models.WorkoutSession, error) {
	s, err := scanSession(db.Pool.QueryRow(ctx,
		`INSERT INTO workout_sessions (user_id, program_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, program_id) WHERE ended_at IS NULL
		 DO UPDATE SET started_at = workout_sessions.started_at
		 RETURNING `+sessionColumns, userID, programID))
	if err != nil {
		return nil, fmt.Errorf("opening session for program %s: %w", programID, err)
	}
	return s, nil
}

// GetSession returns one session.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*models.WorkoutSession, error) {
	s, err := scanSession(db.Pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM workout_sessions WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "session "+id.String())
	}
	return s, nil
}

// EndSession closes an open session. Ending a closed session is a no-op.
func (db *DB) EndSession(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE workout_sessions SET ended_at = $2 WHERE id = $1 AND ended_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("ending session %s: %w", id, err)
	}
	return nil
}

// ListSessions returns the user's most recent sessions with program names
// and set counts.
func (db *DB) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]models.SessionSummary, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT s.id, s.user_id, s.program_id, s.started_at, s.ended_at,
		        COALESCE(p.name, ''), (SELECT COUNT(*) FROM workout_sets ws WHERE ws.session_id = s.id)
		 FROM workout_sessions s
		 LEFT JOIN programs p ON p.id = s.program_id
		 WHERE s.user_id = $1
		 ORDER BY s.started_at DESC
		 LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var out []models.SessionSummary
	for rows.Next() {
		var s models.SessionSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProgramID, &s.StartedAt, &s.EndedAt,
			&s.ProgramName, &s.SetCount); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

const setSelect = `
	SELECT ws.id, ws.session_id, ws.user_id, ws.program_id, ws.program_exercise_id, ws.exercise_id,
	       e.name, ws.performed_at, ws.load, ws.reps, ws.rpe,
	       ws.cardio_minutes, ws.cardio_distance_km, ws.cardio_intensity
	FROM workout_sets ws
	JOIN exercises e ON e.id = ws.exercise_id`

type entryColumns struct {
	load       *float64
	reps       *int
	rpe        *float64
	minutes    *float64
	distanceKm *float64
	intensity  *string
}

func (c entryColumns) entry() models.SetEntry {
	if c.minutes != nil || c.distanceKm != nil || c.intensity != nil {
		return models.SetEntry{Cardio: &models.CardioEntry{Minutes: c.minutes, DistanceKm: c.distanceKm, Intensity: c.intensity}}
	}
	return models.SetEntry{Weights: &models.WeightsEntry{Load: c.load, Reps: c.reps, RPE: c.rpe}}
}

func columnsOfEntry(e models.SetEntry) entryColumns {
	var c entryColumns
	if e.Weights != nil {
		c.load, c.reps, c.rpe = e.Weights.Load, e.Weights.Reps, e.Weights.RPE
	}
	if e.Cardio != nil {
		c.minutes, c.distanceKm, c.intensity = e.Cardio.Minutes, e.Cardio.DistanceKm, e.Cardio.Intensity
	}
	return c
}

func scanSet(row pgx.Row) (*models.WorkoutSet, error) {
	var s models.WorkoutSet
	var c entryColumns
	err := row.Scan(&s.ID, &s.SessionID, &s.UserID, &s.ProgramID, &s.ProgramExerciseID, &s.ExerciseID,
		&s.ExerciseName, &s.PerformedAt, &c.load, &c.reps, &c.rpe, &c.minutes, &c.distanceKm, &c.intensity)
	if err != nil {
		return nil, err
	}
	s.SetEntry = c.entry()
	return &s, nil
}

// SessionSets returns the sets of a session in the order they were logged.
func (db *DB) SessionSets(ctx context.Context, sessionID uuid.UUID) ([]models.WorkoutSet, error) {
	rows, err := db.Pool.Query(ctx, setSelect+` WHERE ws.session_id = $1 ORDER BY ws.performed_at, ws.id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying sets of session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var out []models.WorkoutSet
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// InsertSet stores a logged set. Only the columns of the entry's kind are
// written; the others stay null.
func (db *DB) InsertSet(ctx context.Context, s models.WorkoutSet) (*models.WorkoutSet, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.PerformedAt.IsZero() {
		s.PerformedAt = time.Now()
	}
	c := columnsOfEntry(s.SetEntry)
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_sets (id, session_id, user_id, program_id, program_exercise_id, exercise_id,
		 performed_at, load, reps, rpe, cardio_minutes, cardio_distance_km, cardio_intensity)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		s.ID, s.SessionID, s.UserID, s.ProgramID, s.ProgramExerciseID, s.ExerciseID,
		s.PerformedAt, c.load, c.reps, c.rpe, c.minutes, c.distanceKm, c.intensity)
	if err != nil {
		return nil, fmt.Errorf("inserting set: %w", err)
	}
	return &s, nil
}
