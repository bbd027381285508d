package storage

import (
	"context"
	"fmt"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/telemetry"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// CloneTemplate instantiates a template for a member in one transaction:
// the program, then its days, then every exercise. Nothing is written if
// any step fails. Returns the new program id.
func (db *DB) CloneTemplate(ctx context.Context, templateID uuid.UUID, req models.CloneRequest) (newID uuid.UUID, err error) {
	ctx, span := telemetry.GlobalTracer.Start(ctx, "storage.cloneTemplate")
	span.SetAttributes(attribute.String("template_id", templateID.String()),
		attribute.String("member_id", req.MemberID.String()))
	defer func() {
		telemetry.EndSpanWithErrCheck(span, err)
	}()

	err = pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		// Lock the template so a concurrent edit cannot interleave with the copy.
		if _, err := tx.Exec(ctx, `SELECT 1 FROM programs WHERE id = $1 FOR SHARE`, templateID); err != nil {
			return fmt.Errorf("locking template: %w", err)
		}
		src, err := loadProgramTree(ctx, tx, templateID)
		if err != nil {
			return err
		}
		if !src.IsTemplate {
			return fmt.Errorf("program %s: %w", templateID, models.ErrNotTemplate)
		}

		clone := src.Clone(req, uuid.New)
		if err := insertProgram(ctx, tx, &clone.Program); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, d := range clone.Days {
			batch.Queue(`INSERT INTO program_days (id, program_id, day_index, name) VALUES ($1, $2, $3, $4)`,
				d.ID, d.ProgramID, d.Position, d.Name)
		}
		for _, d := range clone.Days {
			for _, pe := range d.Exercises {
				c := models.ColumnsOf(pe.Target)
				batch.Queue(`INSERT INTO program_exercises (id, program_day_id, exercise_id, machine_id, order_index, is_cardio,
					 target_sets, target_reps, target_load, rest_seconds, rpe_target,
					 cardio_minutes, cardio_distance_km, cardio_intensity, method, method_details, notes)
					 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
					pe.ID, pe.DayID, pe.ExerciseID, pe.MachineID, pe.Position, c.IsCardio,
					c.TargetSets, c.TargetReps, c.TargetLoad, c.RestSeconds, c.RPETarget,
					c.CardioMinutes, c.CardioDistanceKm, c.CardioIntensity,
					pe.Method, pe.MethodDetails, pe.Notes)
			}
		}
		if batch.Len() > 0 {
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("copying days and exercises: %w", err)
			}
		}

		newID = clone.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("cloning template %s: %w", templateID, err)
	}
	return newID, nil
}
