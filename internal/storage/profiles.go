package storage

import (
	"context"
	"fmt"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, login, email, full_name, role, gender, birth_date, height_cm, weight_kg, created_at, last_seen`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	var role string
	err := row.Scan(&p.ID, &p.Login, &p.Email, &p.FullName, &role, &p.Gender,
		&p.BirthDate, &p.HeightCm, &p.WeightKg, &p.CreatedAt, &p.LastSeen)
	if err != nil {
		return nil, err
	}
	p.Role = models.Role(role)
	return &p, nil
}

// GetOrCreateProfile finds or creates a profile by login name. New profiles
// get the given role; an existing profile keeps its role unless the given
// role is owner. Updates last_seen on each call and fills an empty name.
func (db *DB) GetOrCreateProfile(ctx context.Context, login, displayName string, role models.Role) (*models.Profile, error) {
	p, err := scanProfile(db.Pool.QueryRow(ctx, `
		INSERT INTO profiles (login, full_name, role)
		VALUES ($1, NULLIF($2, ''), $3)
		ON CONFLICT (login) DO UPDATE
			SET last_seen = NOW(),
			    full_name = COALESCE(profiles.full_name, NULLIF($2, '')),
			    role = CASE WHEN $3 = 'owner' THEN 'owner' ELSE profiles.role END
		RETURNING `+profileColumns,
		login, displayName, string(role)))
	if err != nil {
		return nil, fmt.Errorf("upserting profile %s: %w", login, err)
	}
	return p, nil
}

// GetProfile returns a profile by id.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p, err := scanProfile(db.Pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "profile "+id.String())
	}
	return p, nil
}

// UpdateProfile writes the self-editable fields of a profile.
func (db *DB) UpdateProfile(ctx context.Context, id uuid.UUID, u models.ProfileUpdate) (*models.Profile, error) {
	p, err := scanProfile(db.Pool.QueryRow(ctx,
		`UPDATE profiles SET
		 full_name = $2, email = $3, gender = $4, birth_date = $5, height_cm = $6, weight_kg = $7
		 WHERE id = $1
		 RETURNING `+profileColumns,
		id, u.FullName, u.Email, u.Gender, u.BirthDate, u.HeightCm, u.WeightKg))
	if err != nil {
		return nil, notFound(err, "profile "+id.String())
	}
	return p, nil
}

// SetRole changes the role of a profile.
func (db *DB) SetRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE profiles SET role = $2 WHERE id = $1`, id, string(role))
	if err != nil {
		return fmt.Errorf("setting role of %s: %w", id, err)
	}
	return mustAffect(tag, "profile "+id.String())
}

// ListProfiles returns profiles ordered by name, optionally restricted to a role.
func (db *DB) ListProfiles(ctx context.Context, role *models.Role) ([]models.Profile, error) {
	var roleFilter *string
	if role != nil {
		r := string(*role)
		roleFilter = &r
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles
		 WHERE $1::text IS NULL OR role = $1
		 ORDER BY COALESCE(full_name, login)`, roleFilter)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	var out []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
