package storage

import (
	"context"
	"fmt"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/ordering"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const programExerciseSelect = `
	SELECT pe.id, pe.program_day_id, pe.exercise_id, pe.machine_id, pe.order_index, pe.is_cardio,
	       pe.target_sets, pe.target_reps, pe.target_load, pe.rest_seconds, pe.rpe_target,
	       pe.cardio_minutes, pe.cardio_distance_km, pe.cardio_intensity,
	       pe.method, pe.method_details, pe.notes, pe.created_at,
	       e.name, e.video_url, mc.name, mc.number, mc.location
	FROM program_exercises pe
	JOIN exercises e ON e.id = pe.exercise_id
	LEFT JOIN machines mc ON mc.id = pe.machine_id`

func scanProgramExercise(row pgx.Row) (*models.ProgramExercise, error) {
	var (
		pe          models.ProgramExercise
		c           models.TargetColumns
		machineName *string
		machineNum  *int
		machineLoc  *string
	)
	err := row.Scan(&pe.ID, &pe.DayID, &pe.ExerciseID, &pe.MachineID, &pe.Position, &c.IsCardio,
		&c.TargetSets, &c.TargetReps, &c.TargetLoad, &c.RestSeconds, &c.RPETarget,
		&c.CardioMinutes, &c.CardioDistanceKm, &c.CardioIntensity,
		&pe.Method, &pe.MethodDetails, &pe.Notes, &pe.CreatedAt,
		&pe.ExerciseName, &pe.VideoURL, &machineName, &machineNum, &machineLoc)
	if err != nil {
		return nil, err
	}
	pe.Target = c.Target()
	if machineName != nil {
		m := models.Machine{Name: *machineName, Location: machineLoc}
		if machineNum != nil {
			m.Number = *machineNum
		}
		label := m.Label()
		pe.MachineLabel = &label
	}
	return &pe, nil
}

// GetProgramExercise returns one program exercise with its catalog labels.
func (db *DB) GetProgramExercise(ctx context.Context, id uuid.UUID) (*models.ProgramExercise, error) {
	pe, err := scanProgramExercise(db.Pool.QueryRow(ctx, programExerciseSelect+` WHERE pe.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "program exercise "+id.String())
	}
	return pe, nil
}

func insertProgramExercise(ctx context.Context, q querier, pe *models.ProgramExercise) error {
	c := models.ColumnsOf(pe.Target)
	err := q.QueryRow(ctx,
		`INSERT INTO program_exercises (id, program_day_id, exercise_id, machine_id, order_index, is_cardio,
		 target_sets, target_reps, target_load, rest_seconds, rpe_target,
		 cardio_minutes, cardio_distance_km, cardio_intensity, method, method_details, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		 RETURNING created_at`,
		pe.ID, pe.DayID, pe.ExerciseID, pe.MachineID, pe.Position, c.IsCardio,
		c.TargetSets, c.TargetReps, c.TargetLoad, c.RestSeconds, c.RPETarget,
		c.CardioMinutes, c.CardioDistanceKm, c.CardioIntensity,
		pe.Method, pe.MethodDetails, pe.Notes,
	).Scan(&pe.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting program exercise: %w", err)
	}
	return nil
}

// AppendProgramExercise adds an exercise at the end of its day. The day is
// normalized first so the new position is max + 1 of a contiguous scope.
func (db *DB) AppendProgramExercise(ctx context.Context, pe models.ProgramExercise) (*models.ProgramExercise, error) {
	pe.ID = uuid.New()
	err := pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		pos, err := appendPosition(ctx, tx, ordering.ExerciseScope, pe.DayID)
		if err != nil {
			return err
		}
		pe.Position = pos
		return insertProgramExercise(ctx, tx, &pe)
	})
	if err != nil {
		return nil, fmt.Errorf("appending exercise to day %s: %w", pe.DayID, err)
	}
	return &pe, nil
}

// UpdateProgramExercise rewrites the exercise reference, machine, target and
// notes. All target columns are written, so the inactive mode is cleared.
func (db *DB) UpdateProgramExercise(ctx context.Context, pe models.ProgramExercise) error {
	c := models.ColumnsOf(pe.Target)
	tag, err := db.Pool.Exec(ctx,
		`UPDATE program_exercises SET
		 exercise_id = $2, machine_id = $3, is_cardio = $4,
		 target_sets = $5, target_reps = $6, target_load = $7, rest_seconds = $8, rpe_target = $9,
		 cardio_minutes = $10, cardio_distance_km = $11, cardio_intensity = $12,
		 method = $13, method_details = $14, notes = $15
		 WHERE id = $1`,
		pe.ID, pe.ExerciseID, pe.MachineID, c.IsCardio,
		c.TargetSets, c.TargetReps, c.TargetLoad, c.RestSeconds, c.RPETarget,
		c.CardioMinutes, c.CardioDistanceKm, c.CardioIntensity,
		pe.Method, pe.MethodDetails, pe.Notes)
	if err != nil {
		return fmt.Errorf("updating program exercise %s: %w", pe.ID, err)
	}
	return mustAffect(tag, "program exercise "+pe.ID.String())
}

// DeleteProgramExercise removes an exercise and renumbers its day.
func (db *DB) DeleteProgramExercise(ctx context.Context, id uuid.UUID) error {
	if err := deleteAndNormalize(ctx, db, ordering.ExerciseScope, id); err != nil {
		return fmt.Errorf("deleting program exercise %s: %w", id, err)
	}
	return nil
}
