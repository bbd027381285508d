package storage

import (
	"context"
	"fmt"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/ordering"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func listDays(ctx context.Context, q querier, programID uuid.UUID) ([]models.ProgramDay, error) {
	rows, err := q.Query(ctx,
		`SELECT id, program_id, day_index, name, created_at
		 FROM program_days WHERE program_id = $1
		 ORDER BY day_index, created_at, id`, programID)
	if err != nil {
		return nil, fmt.Errorf("querying days of program %s: %w", programID, err)
	}
	defer rows.Close()

	var out []models.ProgramDay
	for rows.Next() {
		var d models.ProgramDay
		if err := rows.Scan(&d.ID, &d.ProgramID, &d.Position, &d.Name, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning day: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetDay returns one program day.
func (db *DB) GetDay(ctx context.Context, id uuid.UUID) (*models.ProgramDay, error) {
	var d models.ProgramDay
	err := db.Pool.QueryRow(ctx,
		`SELECT id, program_id, day_index, name, created_at FROM program_days WHERE id = $1`, id,
	).Scan(&d.ID, &d.ProgramID, &d.Position, &d.Name, &d.CreatedAt)
	if err != nil {
		return nil, notFound(err, "day "+id.String())
	}
	return &d, nil
}

// AppendDay adds a day at the end of a program.
func (db *DB) AppendDay(ctx context.Context, programID uuid.UUID, name *string) (*models.ProgramDay, error) {
	d := models.ProgramDay{ID: uuid.New(), ProgramID: programID, Name: name}
	err := pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		pos, err := appendPosition(ctx, tx, ordering.DayScope, programID)
		if err != nil {
			return err
		}
		d.Position = pos
		return tx.QueryRow(ctx,
			`INSERT INTO program_days (id, program_id, day_index, name) VALUES ($1, $2, $3, $4)
			 RETURNING created_at`,
			d.ID, d.ProgramID, d.Position, d.Name,
		).Scan(&d.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("appending day to program %s: %w", programID, err)
	}
	return &d, nil
}

// RenameDay sets or clears the display name of a day.
func (db *DB) RenameDay(ctx context.Context, id uuid.UUID, name *string) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE program_days SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("renaming day %s: %w", id, err)
	}
	return mustAffect(tag, "day "+id.String())
}

// DeleteDay removes a day with its exercises and renumbers the remaining days.
func (db *DB) DeleteDay(ctx context.Context, id uuid.UUID) error {
	if err := deleteAndNormalize(ctx, db, ordering.DayScope, id); err != nil {
		return fmt.Errorf("deleting day %s: %w", id, err)
	}
	return nil
}
