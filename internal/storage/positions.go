package storage

import (
	"context"
	"fmt"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/ordering"
	"github.com/CGAmico/Invictus-Fitness/internal/telemetry"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// Position writers of one scope serialize on the parent row. There is no
// unique constraint on positions; a scope that ends up broken anyway is
// repaired by the next normalization.

func lockParent(ctx context.Context, tx pgx.Tx, s ordering.Scope, parentID uuid.UUID) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE id = $1 FOR UPDATE`, s.ParentTable), parentID,
	).Scan(&id)
	if err != nil {
		return notFound(err, s.ParentTable+" "+parentID.String())
	}
	return nil
}

func parentOf(ctx context.Context, q querier, s ordering.Scope, id uuid.UUID) (uuid.UUID, error) {
	var parent uuid.UUID
	err := q.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, s.ParentColumn, s.Table), id,
	).Scan(&parent)
	if err != nil {
		return uuid.Nil, notFound(err, s.Name+" "+id.String())
	}
	return parent, nil
}

func listSiblings(ctx context.Context, q querier, s ordering.Scope, parentID uuid.UUID) ([]ordering.Sibling, error) {
	rows, err := q.Query(ctx,
		fmt.Sprintf(`SELECT id, %s, created_at FROM %s WHERE %s = $1 FOR UPDATE`,
			s.PositionColumn, s.Table, s.ParentColumn), parentID)
	if err != nil {
		return nil, fmt.Errorf("listing %s siblings: %w", s.Name, err)
	}
	defer rows.Close()

	var out []ordering.Sibling
	for rows.Next() {
		var sib ordering.Sibling
		if err := rows.Scan(&sib.ID, &sib.Position, &sib.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning %s sibling: %w", s.Name, err)
		}
		out = append(out, sib)
	}
	return out, rows.Err()
}

func writePositions(ctx context.Context, tx pgx.Tx, s ordering.Scope, writes []ordering.Write) error {
	if len(writes) == 0 {
		return nil
	}
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE id = $1`, s.Table, s.PositionColumn)
	batch := &pgx.Batch{}
	for _, w := range writes {
		batch.Queue(query, w.ID, w.Position)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("writing %d %s positions: %w", len(writes), s.Name, err)
	}
	return nil
}

// normalizeLocked rewrites the positions of a scope whose parent is already
// locked by tx, and returns the siblings after the rewrite.
func normalizeLocked(ctx context.Context, tx pgx.Tx, s ordering.Scope, parentID uuid.UUID) ([]ordering.Sibling, int, error) {
	sibs, err := listSiblings(ctx, tx, s, parentID)
	if err != nil {
		return nil, 0, err
	}
	writes := ordering.Normalize(sibs)
	if err := writePositions(ctx, tx, s, writes); err != nil {
		return nil, 0, err
	}
	return ordering.Apply(sibs, writes), len(writes), nil
}

// NormalizeScope repairs the positions under one parent in a single
// transaction and returns how many records were rewritten.
func (db *DB) NormalizeScope(ctx context.Context, s ordering.Scope, parentID uuid.UUID) (n int, err error) {
	ctx, span := telemetry.GlobalTracer.Start(ctx, "storage.normalizeScope")
	span.SetAttributes(attribute.String("scope", s.Name), attribute.String("parent_id", parentID.String()))
	defer func() {
		telemetry.EndSpanWithErrCheck(span, err)
	}()

	err = pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		if err := lockParent(ctx, tx, s, parentID); err != nil {
			return err
		}
		_, n, err = normalizeLocked(ctx, tx, s, parentID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("normalizing %s scope %s: %w", s.Name, parentID, err)
	}
	return n, nil
}

// MoveInScope normalizes the record's scope and swaps it with its neighbor,
// both in one transaction. Returns false when the record is already at the
// boundary; the normalization is committed either way.
func (db *DB) MoveInScope(ctx context.Context, s ordering.Scope, id uuid.UUID, dir ordering.Direction) (moved bool, err error) {
	ctx, span := telemetry.GlobalTracer.Start(ctx, "storage.moveInScope")
	span.SetAttributes(attribute.String("scope", s.Name), attribute.String("id", id.String()),
		attribute.String("direction", dir.String()))
	defer func() {
		telemetry.EndSpanWithErrCheck(span, err)
	}()

	err = pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		parent, err := parentOf(ctx, tx, s, id)
		if err != nil {
			return err
		}
		if err := lockParent(ctx, tx, s, parent); err != nil {
			return err
		}
		sibs, err := listSiblings(ctx, tx, s, parent)
		if err != nil {
			return err
		}
		var writes []ordering.Write
		writes, moved = ordering.Move(sibs, id, dir)
		return writePositions(ctx, tx, s, writes)
	})
	if err != nil {
		return false, fmt.Errorf("moving %s %s %s: %w", s.Name, id, dir, err)
	}
	return moved, nil
}

// appendPosition locks the parent, normalizes the scope and returns the
// position for a new last sibling.
func appendPosition(ctx context.Context, tx pgx.Tx, s ordering.Scope, parentID uuid.UUID) (int, error) {
	if err := lockParent(ctx, tx, s, parentID); err != nil {
		return 0, err
	}
	sibs, _, err := normalizeLocked(ctx, tx, s, parentID)
	if err != nil {
		return 0, err
	}
	return ordering.NextPosition(sibs), nil
}

// deleteAndNormalize removes one record and closes the gap it leaves.
func deleteAndNormalize(ctx context.Context, db *DB, s ordering.Scope, id uuid.UUID) error {
	return pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		parent, err := parentOf(ctx, tx, s, id)
		if err != nil {
			return err
		}
		if err := lockParent(ctx, tx, s, parent); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.Table), id)
		if err != nil {
			return fmt.Errorf("deleting %s: %w", s.Name, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%s %s: %w", s.Name, id, models.ErrNotFound)
		}
		_, _, err = normalizeLocked(ctx, tx, s, parent)
		return err
	})
}
