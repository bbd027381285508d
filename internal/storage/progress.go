package storage

import (
	"context"
	"fmt"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
)

// LastEntries returns the most recent logged set of each requested exercise.
// Exercises never logged are absent from the map.
func (db *DB) LastEntries(ctx context.Context, userID uuid.UUID, exerciseIDs []uuid.UUID) (map[uuid.UUID]models.LastEntry, error) {
	out := make(map[uuid.UUID]models.LastEntry, len(exerciseIDs))
	if len(exerciseIDs) == 0 {
		return out, nil
	}
	ids := make([]string, len(exerciseIDs))
	for i, id := range exerciseIDs {
		ids[i] = id.String()
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT DISTINCT ON (exercise_id)
		        exercise_id, performed_at, load, reps, rpe, cardio_minutes, cardio_distance_km, cardio_intensity
		 FROM workout_sets
		 WHERE user_id = $1 AND exercise_id = ANY($2::uuid[])
		 ORDER BY exercise_id, performed_at DESC, id DESC`, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("querying last entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.LastEntry
		var c entryColumns
		if err := rows.Scan(&e.ExerciseID, &e.PerformedAt, &c.load, &c.reps, &c.rpe,
			&c.minutes, &c.distanceKm, &c.intensity); err != nil {
			return nil, fmt.Errorf("scanning last entry: %w", err)
		}
		e.SetEntry = c.entry()
		out[e.ExerciseID] = e
	}
	return out, rows.Err()
}

// ProgressHistory returns the user's weights sets of one exercise in
// chronological order.
func (db *DB) ProgressHistory(ctx context.Context, userID, exerciseID uuid.UUID) ([]models.ProgressPoint, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT performed_at, load, reps, rpe
		 FROM workout_sets
		 WHERE user_id = $1 AND exercise_id = $2 AND (load IS NOT NULL OR reps IS NOT NULL)
		 ORDER BY performed_at, id`, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying progress history: %w", err)
	}
	defer rows.Close()

	var out []models.ProgressPoint
	for rows.Next() {
		var p models.ProgressPoint
		if err := rows.Scan(&p.PerformedAt, &p.Load, &p.Reps, &p.RPE); err != nil {
			return nil, fmt.Errorf("scanning progress point: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ProgressExercises returns the exercises the user has logged at least once.
func (db *DB) ProgressExercises(ctx context.Context, userID uuid.UUID) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT e.id, e.name, e.muscle_group, e.unit, e.notes, e.video_url, e.created_at
		 FROM exercises e
		 WHERE EXISTS (SELECT 1 FROM workout_sets ws WHERE ws.exercise_id = e.id AND ws.user_id = $1)
		 ORDER BY lower(e.name)`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying progress exercises: %w", err)
	}
	defer rows.Close()

	var out []models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}
