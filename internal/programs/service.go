// Package programs implements program authoring: templates and assigned
// programs, their days and exercises, ordering and cloning. Every
// operation takes the acting user explicitly and enforces role rules
// before touching the store.
package programs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/ordering"
	"github.com/CGAmico/Invictus-Fitness/internal/telemetry"
	"github.com/CGAmico/Invictus-Fitness/internal/validation"
	"github.com/google/uuid"
)

// Service is the program authoring service.
type Service struct {
	store   Store
	metrics *telemetry.Manager
	log     *slog.Logger

	exercisesChanged func()
}

// NewService creates a program service. metrics may be nil.
func NewService(store Store, metrics *telemetry.Manager, log *slog.Logger) *Service {
	return &Service{store: store, metrics: metrics, log: log}
}

// OnExerciseCreated registers fn to run after an exercise is looked up by
// name, which may have added it to the catalog.
func (s *Service) OnExerciseCreated(fn func()) {
	s.exercisesChanged = fn
}

// ProgramInput holds the editable fields of a program.
type ProgramInput struct {
	Name       string     `json:"name" validate:"required,max=200"`
	MemberID   *uuid.UUID `json:"member_id"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	UseRPE     bool       `json:"use_rpe"`
	IsTemplate bool       `json:"is_template"`
}

// ExerciseInput describes a program exercise. The catalog exercise is
// given by id, or by name to be found or created.
type ExerciseInput struct {
	ExerciseID    *uuid.UUID    `json:"exercise_id"`
	ExerciseName  string        `json:"exercise_name" validate:"max=120"`
	MachineID     *uuid.UUID    `json:"machine_id"`
	Target        models.Target `json:"-"`
	Method        *string       `json:"method" validate:"omitempty,max=60"`
	MethodDetails *string       `json:"method_details" validate:"omitempty,max=500"`
	Notes         *string       `json:"notes" validate:"omitempty,max=2000"`
}

// RepairReport counts the positions a repair rewrote, or would rewrite.
type RepairReport struct {
	ProgramID          uuid.UUID `json:"program_id"`
	DaysRewritten      int       `json:"days_rewritten"`
	ExercisesRewritten int       `json:"exercises_rewritten"`
}

// Total returns the number of rewritten positions.
func (r RepairReport) Total() int { return r.DaysRewritten + r.ExercisesRewritten }

// List returns the programs visible to the actor: everything for owners;
// own programs, templates and programs of linked members for trainers;
// assigned programs for members.
func (s *Service) List(ctx context.Context, actor models.Actor) ([]models.ProgramSummary, error) {
	var f models.ProgramFilter
	switch actor.Role {
	case models.RoleOwner:
	case models.RoleTrainer:
		f.TrainerID = &actor.ID
	case models.RoleMember:
		f.MemberID = &actor.ID
	default:
		return nil, models.ErrForbidden
	}
	list, err := s.store.ListPrograms(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	return list, nil
}

// Get composes the program view for the actor. Scopes found out of order
// are normalized before the view is built.
func (s *Service) Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.ProgramView, error) {
	tree, err := s.store.GetProgramTree(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	ok, err := s.canView(ctx, actor, tree.Program)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrForbidden
	}

	if report := inspect(tree); report.Total() > 0 {
		if _, err := s.repair(ctx, tree); err != nil {
			return nil, err
		}
		if tree, err = s.store.GetProgramTree(ctx, id); err != nil {
			return nil, fmt.Errorf("reloading program: %w", err)
		}
	}
	tree.ApplyRPESetting()

	return &models.ProgramView{
		ProgramTree:   *tree,
		CanEdit:       actor.CanEditProgram(tree.Program),
		AssignedToYou: tree.AssignedTo(actor.ID),
	}, nil
}

// Create adds a program authored by the actor. Only staff may author.
func (s *Service) Create(ctx context.Context, actor models.Actor, in ProgramInput) (*models.Program, error) {
	if !actor.IsStaff() {
		return nil, models.ErrForbidden
	}
	p := models.Program{OwnerID: &actor.ID}
	if err := s.applyInput(ctx, &p, in); err != nil {
		return nil, err
	}
	created, err := s.store.InsertProgram(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("creating program: %w", err)
	}
	s.log.Info("program created", "program_id", created.ID, "actor", actor.ID, "template", created.IsTemplate)
	return created, nil
}

// Update changes name, member, dates and flags of a program.
func (s *Service) Update(ctx context.Context, actor models.Actor, id uuid.UUID, in ProgramInput) (*models.Program, error) {
	p, err := s.editableProgram(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyInput(ctx, p, in); err != nil {
		return nil, err
	}
	if err := s.store.UpdateProgram(ctx, *p); err != nil {
		return nil, fmt.Errorf("updating program: %w", err)
	}
	return p, nil
}

// Delete removes a program with its days and exercises.
func (s *Service) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if _, err := s.editableProgram(ctx, actor, id); err != nil {
		return err
	}
	if err := s.store.DeleteProgram(ctx, id); err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	s.log.Info("program deleted", "program_id", id, "actor", actor.ID)
	return nil
}

// AddDay appends a day to a program.
func (s *Service) AddDay(ctx context.Context, actor models.Actor, programID uuid.UUID, name *string) (*models.ProgramDay, error) {
	if _, err := s.editableProgram(ctx, actor, programID); err != nil {
		return nil, err
	}
	day, err := s.store.AppendDay(ctx, programID, trimmed(name))
	if err != nil {
		return nil, fmt.Errorf("adding day: %w", err)
	}
	return day, nil
}

// RenameDay sets or clears a day's display name.
func (s *Service) RenameDay(ctx context.Context, actor models.Actor, dayID uuid.UUID, name *string) error {
	if _, err := s.editableDay(ctx, actor, dayID); err != nil {
		return err
	}
	if err := s.store.RenameDay(ctx, dayID, trimmed(name)); err != nil {
		return fmt.Errorf("renaming day: %w", err)
	}
	return nil
}

// DeleteDay removes a day with its exercises; remaining days are renumbered.
func (s *Service) DeleteDay(ctx context.Context, actor models.Actor, dayID uuid.UUID) error {
	if _, err := s.editableDay(ctx, actor, dayID); err != nil {
		return err
	}
	if err := s.store.DeleteDay(ctx, dayID); err != nil {
		return fmt.Errorf("deleting day: %w", err)
	}
	return nil
}

// MoveDay swaps a day with its neighbor. Returns false at the boundary.
func (s *Service) MoveDay(ctx context.Context, actor models.Actor, dayID uuid.UUID, dir ordering.Direction) (bool, error) {
	if _, err := s.editableDay(ctx, actor, dayID); err != nil {
		return false, err
	}
	moved, err := s.store.MoveInScope(ctx, ordering.DayScope, dayID, dir)
	if err != nil {
		return false, fmt.Errorf("moving day: %w", err)
	}
	return moved, nil
}

// AddExercise appends an exercise to a day. The RPE target is dropped when
// the program does not track RPE.
func (s *Service) AddExercise(ctx context.Context, actor models.Actor, dayID uuid.UUID, in ExerciseInput) (*models.ProgramExercise, error) {
	prog, err := s.editableDay(ctx, actor, dayID)
	if err != nil {
		return nil, err
	}
	pe := models.ProgramExercise{DayID: dayID}
	if err := s.applyExerciseInput(ctx, prog, &pe, in); err != nil {
		return nil, err
	}
	created, err := s.store.AppendProgramExercise(ctx, pe)
	if err != nil {
		return nil, fmt.Errorf("adding exercise: %w", err)
	}
	return created, nil
}

// UpdateExercise replaces an exercise's reference, machine, target and
// notes. Switching mode clears the fields of the previous mode.
func (s *Service) UpdateExercise(ctx context.Context, actor models.Actor, id uuid.UUID, in ExerciseInput) (*models.ProgramExercise, error) {
	pe, err := s.store.GetProgramExercise(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading program exercise: %w", err)
	}
	prog, err := s.editableDay(ctx, actor, pe.DayID)
	if err != nil {
		return nil, err
	}
	if err := s.applyExerciseInput(ctx, prog, pe, in); err != nil {
		return nil, err
	}
	if err := s.store.UpdateProgramExercise(ctx, *pe); err != nil {
		return nil, fmt.Errorf("updating program exercise: %w", err)
	}
	updated, err := s.store.GetProgramExercise(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reloading program exercise: %w", err)
	}
	return updated, nil
}

// DeleteExercise removes an exercise; the rest of its day is renumbered.
func (s *Service) DeleteExercise(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	pe, err := s.store.GetProgramExercise(ctx, id)
	if err != nil {
		return fmt.Errorf("loading program exercise: %w", err)
	}
	if _, err := s.editableDay(ctx, actor, pe.DayID); err != nil {
		return err
	}
	if err := s.store.DeleteProgramExercise(ctx, id); err != nil {
		return fmt.Errorf("deleting program exercise: %w", err)
	}
	return nil
}

// MoveExercise swaps an exercise with its neighbor in the day.
func (s *Service) MoveExercise(ctx context.Context, actor models.Actor, id uuid.UUID, dir ordering.Direction) (bool, error) {
	pe, err := s.store.GetProgramExercise(ctx, id)
	if err != nil {
		return false, fmt.Errorf("loading program exercise: %w", err)
	}
	if _, err := s.editableDay(ctx, actor, pe.DayID); err != nil {
		return false, err
	}
	moved, err := s.store.MoveInScope(ctx, ordering.ExerciseScope, id, dir)
	if err != nil {
		return false, fmt.Errorf("moving exercise: %w", err)
	}
	return moved, nil
}

// CloneTemplate instantiates a template for a member. The actor becomes the
// author of the new program.
func (s *Service) CloneTemplate(ctx context.Context, actor models.Actor, templateID uuid.UUID, req models.CloneRequest) (uuid.UUID, error) {
	if !actor.IsStaff() {
		return uuid.Nil, models.ErrForbidden
	}
	if err := validation.Struct(req); err != nil {
		return uuid.Nil, err
	}
	if err := validation.DateRange(req.StartDate, req.EndDate); err != nil {
		return uuid.Nil, err
	}
	tpl, err := s.store.GetProgram(ctx, templateID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("loading template: %w", err)
	}
	if !tpl.IsTemplate {
		return uuid.Nil, validation.Errorf("program %q is not a template", tpl.Name)
	}
	if err := s.checkMember(ctx, req.MemberID); err != nil {
		return uuid.Nil, err
	}
	if req.Name != nil {
		req.Name = trimmed(req.Name)
	}
	req.AuthorID = &actor.ID

	id, err := s.store.CloneTemplate(ctx, templateID, req)
	if err != nil {
		return uuid.Nil, err
	}
	s.metrics.ProgramCloned()
	s.log.Info("template cloned", "template_id", templateID, "program_id", id, "member_id", req.MemberID, "actor", actor.ID)
	return id, nil
}

// Repair normalizes every scope of a program. With dryRun set nothing is
// written and the report says what would change.
func (s *Service) Repair(ctx context.Context, actor models.Actor, id uuid.UUID, dryRun bool) (*RepairReport, error) {
	if _, err := s.editableProgram(ctx, actor, id); err != nil {
		return nil, err
	}
	tree, err := s.store.GetProgramTree(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	if dryRun {
		report := inspect(tree)
		return &report, nil
	}
	return s.repair(ctx, tree)
}

func (s *Service) repair(ctx context.Context, tree *models.ProgramTree) (*RepairReport, error) {
	report := &RepairReport{ProgramID: tree.ID}

	n, err := s.store.NormalizeScope(ctx, ordering.DayScope, tree.ID)
	if err != nil {
		return nil, fmt.Errorf("repairing days: %w", err)
	}
	report.DaysRewritten = n

	for _, d := range tree.Days {
		n, err := s.store.NormalizeScope(ctx, ordering.ExerciseScope, d.ID)
		if err != nil {
			return nil, fmt.Errorf("repairing exercises of day %s: %w", d.ID, err)
		}
		report.ExercisesRewritten += n
	}

	s.metrics.PositionsRepaired(ordering.DayScope.Name, report.DaysRewritten)
	s.metrics.PositionsRepaired(ordering.ExerciseScope.Name, report.ExercisesRewritten)
	if report.Total() > 0 {
		s.log.Warn("program positions repaired", "program_id", tree.ID,
			"days", report.DaysRewritten, "exercises", report.ExercisesRewritten)
	}
	return report, nil
}

// inspect counts the writes normalization would make, without writing.
func inspect(tree *models.ProgramTree) RepairReport {
	report := RepairReport{ProgramID: tree.ID}
	days := make([]ordering.Sibling, 0, len(tree.Days))
	for _, d := range tree.Days {
		days = append(days, ordering.Sibling{ID: d.ID, Position: d.Position, CreatedAt: d.CreatedAt})
		exercises := make([]ordering.Sibling, 0, len(d.Exercises))
		for _, e := range d.Exercises {
			exercises = append(exercises, ordering.Sibling{ID: e.ID, Position: e.Position, CreatedAt: e.CreatedAt})
		}
		report.ExercisesRewritten += len(ordering.Normalize(exercises))
	}
	report.DaysRewritten = len(ordering.Normalize(days))
	return report
}

func (s *Service) canView(ctx context.Context, actor models.Actor, p models.Program) (bool, error) {
	switch actor.Role {
	case models.RoleOwner:
		return true, nil
	case models.RoleMember:
		return p.AssignedTo(actor.ID), nil
	case models.RoleTrainer:
		if p.IsTemplate || (p.OwnerID != nil && *p.OwnerID == actor.ID) {
			return true, nil
		}
		if p.MemberID == nil {
			return false, nil
		}
		ok, err := s.store.IsTrainerOf(ctx, actor.ID, *p.MemberID)
		if err != nil {
			return false, fmt.Errorf("checking trainer link: %w", err)
		}
		return ok, nil
	}
	return false, nil
}

func (s *Service) editableProgram(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Program, error) {
	p, err := s.store.GetProgram(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	if !actor.CanEditProgram(*p) {
		return nil, models.ErrForbidden
	}
	return p, nil
}

func (s *Service) editableDay(ctx context.Context, actor models.Actor, dayID uuid.UUID) (*models.Program, error) {
	day, err := s.store.GetDay(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("loading day: %w", err)
	}
	return s.editableProgram(ctx, actor, day.ProgramID)
}

func (s *Service) applyInput(ctx context.Context, p *models.Program, in ProgramInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return err
	}
	if err := validation.DateRange(in.StartDate, in.EndDate); err != nil {
		return err
	}
	p.Name = in.Name
	p.MemberID = in.MemberID
	p.StartDate = in.StartDate
	p.EndDate = in.EndDate
	p.UseRPE = in.UseRPE
	p.IsTemplate = in.IsTemplate
	p.ClearAssignment()

	if p.MemberID != nil {
		return s.checkMember(ctx, *p.MemberID)
	}
	return nil
}

func (s *Service) applyExerciseInput(ctx context.Context, prog *models.Program, pe *models.ProgramExercise, in ExerciseInput) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if in.Target == nil {
		return validation.Field("target", "a strength or cardio target is required")
	}
	if err := validation.Struct(in.Target); err != nil {
		return err
	}

	if in.MachineID != nil {
		if err := s.checkMachine(ctx, *in.MachineID); err != nil {
			return err
		}
	}
	exercise, err := s.resolveExercise(ctx, in)
	if err != nil {
		return err
	}
	pe.ExerciseID = exercise.ID
	pe.ExerciseName = exercise.Name
	pe.MachineID = in.MachineID
	pe.Target = models.ForProgram(in.Target, prog.UseRPE)
	pe.Method = trimmed(in.Method)
	pe.MethodDetails = trimmed(in.MethodDetails)
	pe.Notes = trimmed(in.Notes)
	return nil
}

func (s *Service) resolveExercise(ctx context.Context, in ExerciseInput) (*models.Exercise, error) {
	if in.ExerciseID != nil {
		e, err := s.store.GetExercise(ctx, *in.ExerciseID)
		if errors.Is(err, models.ErrNotFound) {
			return nil, validation.Field("exercise_id", "unknown exercise")
		}
		if err != nil {
			return nil, fmt.Errorf("loading exercise: %w", err)
		}
		return e, nil
	}
	name := strings.TrimSpace(in.ExerciseName)
	if name == "" {
		return nil, validation.Field("exercise_name", "choose an exercise or type a name")
	}
	e, err := s.store.FindOrCreateExercise(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolving exercise %q: %w", name, err)
	}
	if s.exercisesChanged != nil {
		s.exercisesChanged()
	}
	return e, nil
}

func (s *Service) checkMachine(ctx context.Context, id uuid.UUID) error {
	_, err := s.store.GetMachine(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return validation.Field("machine_id", "unknown machine")
	}
	if err != nil {
		return fmt.Errorf("loading machine: %w", err)
	}
	return nil
}

func (s *Service) checkMember(ctx context.Context, id uuid.UUID) error {
	p, err := s.store.GetProfile(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return validation.Field("member_id", "unknown member")
	}
	if err != nil {
		return fmt.Errorf("loading member: %w", err)
	}
	if p.Role != models.RoleMember {
		return validation.Field("member_id", "programs can only be assigned to members")
	}
	return nil
}

// trimmed returns nil for a nil or blank string, else the trimmed value.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
