package storage

import (
	"context"
	"fmt"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
)

// LinkTrainer links a member to a trainer. Linking twice is a no-op.
func (db *DB) LinkTrainer(ctx context.Context, trainerID, memberID uuid.UUID) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO trainer_members (trainer_id, member_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`, trainerID, memberID)
	if err != nil {
		return fmt.Errorf("linking trainer %s to member %s: %w", trainerID, memberID, err)
	}
	return nil
}

// UnlinkTrainer removes a trainer-member link.
func (db *DB) UnlinkTrainer(ctx context.Context, trainerID, memberID uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM trainer_members WHERE trainer_id = $1 AND member_id = $2`, trainerID, memberID)
	if err != nil {
		return fmt.Errorf("unlinking trainer %s from member %s: %w", trainerID, memberID, err)
	}
	return mustAffect(tag, "trainer link")
}

// IsTrainerOf reports whether the member is linked to the trainer.
func (db *DB) IsTrainerOf(ctx context.Context, trainerID, memberID uuid.UUID) (bool, error) {
	var ok bool
	err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM trainer_members WHERE trainer_id = $1 AND member_id = $2)`,
		trainerID, memberID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("checking trainer link: %w", err)
	}
	return ok, nil
}

// ListTrainerLinks returns trainer-member links with display names. A nil
// trainerID lists every link.
func (db *DB) ListTrainerLinks(ctx context.Context, trainerID *uuid.UUID) ([]models.TrainerMember, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT tm.trainer_id, COALESCE(t.full_name, t.login),
		        tm.member_id, COALESCE(m.full_name, m.login), tm.created_at
		 FROM trainer_members tm
		 JOIN profiles t ON t.id = tm.trainer_id
		 JOIN profiles m ON m.id = tm.member_id
		 WHERE $1::uuid IS NULL OR tm.trainer_id = $1
		 ORDER BY 2, 4`, trainerID)
	if err != nil {
		return nil, fmt.Errorf("querying trainer links: %w", err)
	}
	defer rows.Close()

	var out []models.TrainerMember
	for rows.Next() {
		var l models.TrainerMember
		if err := rows.Scan(&l.TrainerID, &l.TrainerName, &l.MemberID, &l.MemberName, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning trainer link: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
