package storage

import (
	"context"
	"fmt"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const programSummarySelect = `
	SELECT p.id, p.name, p.owner_id, p.member_id, p.start_date, p.end_date,
	       p.use_rpe, p.is_template, p.created_at,
	       COALESCE(a.full_name, a.login, ''), COALESCE(m.full_name, m.login, '')
	FROM programs p
	LEFT JOIN profiles a ON a.id = p.owner_id
	LEFT JOIN profiles m ON m.id = p.member_id`

func scanProgramSummary(row pgx.Row) (*models.ProgramSummary, error) {
	var s models.ProgramSummary
	err := row.Scan(&s.ID, &s.Name, &s.OwnerID, &s.MemberID, &s.StartDate, &s.EndDate,
		&s.UseRPE, &s.IsTemplate, &s.CreatedAt, &s.AuthorName, &s.MemberName)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListPrograms returns programs matching the filter, templates first, then
// newest first.
func (db *DB) ListPrograms(ctx context.Context, f models.ProgramFilter) ([]models.ProgramSummary, error) {
	rows, err := db.Pool.Query(ctx, programSummarySelect+`
		WHERE ($1::uuid IS NULL OR p.member_id = $1)
		  AND ($2::uuid IS NULL
		       OR p.owner_id = $2
		       OR p.is_template
		       OR p.member_id IN (SELECT member_id FROM trainer_members WHERE trainer_id = $2))
		ORDER BY p.is_template DESC, p.created_at DESC, p.id`,
		f.MemberID, f.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var out []models.ProgramSummary
	for rows.Next() {
		s, err := scanProgramSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// ListProgramIDs returns the id of every program.
func (db *DB) ListProgramIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id FROM programs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("querying program ids: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

// GetProgram returns a program with author and member names.
func (db *DB) GetProgram(ctx context.Context, id uuid.UUID) (*models.Program, error) {
	s, err := getProgramSummary(ctx, db.Pool, id)
	if err != nil {
		return nil, err
	}
	return &s.Program, nil
}

func getProgramSummary(ctx context.Context, q querier, id uuid.UUID) (*models.ProgramSummary, error) {
	s, err := scanProgramSummary(q.QueryRow(ctx, programSummarySelect+` WHERE p.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "program "+id.String())
	}
	return s, nil
}

// InsertProgram creates a program. A zero ID is generated by the database.
func (db *DB) InsertProgram(ctx context.Context, p models.Program) (*models.Program, error) {
	if err := insertProgram(ctx, db.Pool, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func insertProgram(ctx context.Context, q querier, p *models.Program) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	err := q.QueryRow(ctx,
		`INSERT INTO programs (id, name, owner_id, member_id, start_date, end_date, use_rpe, is_template)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		p.ID, p.Name, p.OwnerID, p.MemberID, p.StartDate, p.EndDate, p.UseRPE, p.IsTemplate,
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting program %q: %w", p.Name, err)
	}
	return nil
}

// UpdateProgram overwrites the editable fields of a program.
func (db *DB) UpdateProgram(ctx context.Context, p models.Program) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE programs SET name = $2, member_id = $3, start_date = $4, end_date = $5,
		 use_rpe = $6, is_template = $7
		 WHERE id = $1`,
		p.ID, p.Name, p.MemberID, p.StartDate, p.EndDate, p.UseRPE, p.IsTemplate)
	if err != nil {
		return fmt.Errorf("updating program %s: %w", p.ID, err)
	}
	return mustAffect(tag, "program "+p.ID.String())
}

// DeleteProgram removes a program; days and their exercises cascade.
func (db *DB) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting program %s: %w", id, err)
	}
	return mustAffect(tag, "program "+id.String())
}

// GetProgramTree loads a program with its days and exercises in position
// order, with catalog labels joined in.
func (db *DB) GetProgramTree(ctx context.Context, id uuid.UUID) (*models.ProgramTree, error) {
	return loadProgramTree(ctx, db.Pool, id)
}

func loadProgramTree(ctx context.Context, q querier, id uuid.UUID) (*models.ProgramTree, error) {
	summary, err := getProgramSummary(ctx, q, id)
	if err != nil {
		return nil, err
	}
	tree := &models.ProgramTree{ProgramSummary: *summary, Days: []models.DayTree{}}

	days, err := listDays(ctx, q, id)
	if err != nil {
		return nil, err
	}
	index := make(map[uuid.UUID]int, len(days))
	for i, d := range days {
		index[d.ID] = i
		tree.Days = append(tree.Days, models.DayTree{ProgramDay: d, Exercises: []models.ProgramExercise{}})
	}

	rows, err := q.Query(ctx, programExerciseSelect+`
		JOIN program_days d ON d.id = pe.program_day_id
		WHERE d.program_id = $1
		ORDER BY pe.program_day_id, pe.order_index, pe.created_at, pe.id`, id)
	if err != nil {
		return nil, fmt.Errorf("querying exercises of program %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		pe, err := scanProgramExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning program exercise: %w", err)
		}
		i := index[pe.DayID]
		tree.Days[i].Exercises = append(tree.Days[i].Exercises, *pe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating program exercises: %w", err)
	}
	return tree, nil
}
