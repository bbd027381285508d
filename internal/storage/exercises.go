package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const exerciseColumns = `id, name, muscle_group, unit, notes, video_url, created_at`

func scanExercise(row pgx.Row) (*models.Exercise, error) {
	var e models.Exercise
	var unit string
	if err := row.Scan(&e.ID, &e.Name, &e.MuscleGroup, &unit, &e.Notes, &e.VideoURL, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Unit = models.Unit(unit)
	return &e, nil
}

// ListExercises returns the exercise catalog ordered by name.
func (db *DB) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY lower(name)`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
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

// GetExercise returns one catalog exercise.
func (db *DB) GetExercise(ctx context.Context, id uuid.UUID) (*models.Exercise, error) {
	e, err := scanExercise(db.Pool.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "exercise "+id.String())
	}
	return e, nil
}

// InsertExercise adds a catalog exercise.
func (db *DB) InsertExercise(ctx context.Context, in models.ExerciseInput) (*models.Exercise, error) {
	e, err := scanExercise(db.Pool.QueryRow(ctx,
		`INSERT INTO exercises (name, muscle_group, unit, notes, video_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+exerciseColumns,
		in.Name, in.MuscleGroup, unitOrDefault(in.Unit), in.Notes, in.VideoURL))
	if err != nil {
		return nil, fmt.Errorf("inserting exercise: %w", conflict(err, "exercise "+in.Name))
	}
	return e, nil
}

// UpdateExercise overwrites a catalog exercise.
func (db *DB) UpdateExercise(ctx context.Context, id uuid.UUID, in models.ExerciseInput) (*models.Exercise, error) {
	e, err := scanExercise(db.Pool.QueryRow(ctx,
		`UPDATE exercises SET name = $2, muscle_group = $3, unit = $4, notes = $5, video_url = $6
		 WHERE id = $1
		 RETURNING `+exerciseColumns,
		id, in.Name, in.MuscleGroup, unitOrDefault(in.Unit), in.Notes, in.VideoURL))
	if err != nil {
		return nil, notFound(conflict(err, "exercise "+in.Name), "exercise "+id.String())
	}
	return e, nil
}

// DeleteExercise removes a catalog exercise. Fails while programs reference it.
func (db *DB) DeleteExercise(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting exercise: %w", conflict(err, "exercise "+id.String()))
	}
	return mustAffect(tag, "exercise "+id.String())
}

// FindOrCreateExercise returns the exercise with the given name, compared
// case-insensitively, creating it in kg when missing.
func (db *DB) FindOrCreateExercise(ctx context.Context, name string) (*models.Exercise, error) {
	e, err := scanExercise(db.Pool.QueryRow(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE lower(name) = lower($1)`, name))
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("looking up exercise %q: %w", name, err)
	}

	// A concurrent insert of the same name wins the unique index; read it back.
	e, err = scanExercise(db.Pool.QueryRow(ctx,
		`WITH ins AS (
			INSERT INTO exercises (name, unit) VALUES ($1, 'kg')
			ON CONFLICT ((lower(name))) DO NOTHING
			RETURNING `+exerciseColumns+`
		 )
		 SELECT `+exerciseColumns+` FROM ins
		 UNION ALL
		 SELECT `+exerciseColumns+` FROM exercises WHERE lower(name) = lower($1)
		 LIMIT 1`, name))
	if err != nil {
		return nil, fmt.Errorf("creating exercise %q: %w", name, err)
	}
	return e, nil
}

func unitOrDefault(u models.Unit) string {
	if u == "" {
		return string(models.UnitKg)
	}
	return string(u)
}
