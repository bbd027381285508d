package storage

import (
	"context"
	"fmt"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
)

// ListMachines returns all machines ordered by name and number.
func (db *DB) ListMachines(ctx context.Context) ([]models.Machine, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, number, location, created_at FROM machines ORDER BY lower(name), number`)
	if err != nil {
		return nil, fmt.Errorf("querying machines: %w", err)
	}
	defer rows.Close()

	var out []models.Machine
	for rows.Next() {
		var m models.Machine
		if err := rows.Scan(&m.ID, &m.Name, &m.Number, &m.Location, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning machine: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetMachine returns one machine.
func (db *DB) GetMachine(ctx context.Context, id uuid.UUID) (*models.Machine, error) {
	var m models.Machine
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name, number, location, created_at FROM machines WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Number, &m.Location, &m.CreatedAt)
	if err != nil {
		return nil, notFound(err, "machine "+id.String())
	}
	return &m, nil
}

// InsertMachine adds a machine.
func (db *DB) InsertMachine(ctx context.Context, in models.MachineInput) (*models.Machine, error) {
	var m models.Machine
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO machines (name, number, location) VALUES ($1, $2, $3)
		 RETURNING id, name, number, location, created_at`,
		in.Name, in.Number, in.Location,
	).Scan(&m.ID, &m.Name, &m.Number, &m.Location, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting machine %q: %w", in.Name, err)
	}
	return &m, nil
}

// DeleteMachine removes a machine; program exercises using it lose the reference.
func (db *DB) DeleteMachine(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting machine %s: %w", id, err)
	}
	return mustAffect(tag, "machine "+id.String())
}
