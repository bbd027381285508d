package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Program is a training program, either a template or assigned to a member.
type Program struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	OwnerID    *uuid.UUID `json:"owner_id,omitempty"`
	MemberID   *uuid.UUID `json:"member_id,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	UseRPE     bool       `json:"use_rpe"`
	IsTemplate bool       `json:"is_template"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AssignedTo reports whether the program is assigned to the given member.
func (p Program) AssignedTo(memberID uuid.UUID) bool {
	return p.MemberID != nil && *p.MemberID == memberID
}

// ClearAssignment enforces the template invariant: a template has no
// member and no date range.
func (p *Program) ClearAssignment() {
	if p.IsTemplate {
		p.MemberID = nil
		p.StartDate = nil
		p.EndDate = nil
	}
}

// ProgramSummary is a program row joined with its author and member names.
type ProgramSummary struct {
	Program
	AuthorName string `json:"author_name,omitempty"`
	MemberName string `json:"member_name,omitempty"`
}

// ProgramFilter narrows a program listing. A zero filter lists everything.
type ProgramFilter struct {
	// MemberID restricts to programs assigned to this member.
	MemberID *uuid.UUID
	// TrainerID restricts to programs the trainer authored, templates, and
	// programs assigned to the trainer's linked members.
	TrainerID *uuid.UUID
}

// ProgramDay is one day of a program. Position is 1-based and contiguous
// within the program.
type ProgramDay struct {
	ID        uuid.UUID `json:"id"`
	ProgramID uuid.UUID `json:"program_id"`
	Position  int       `json:"day_index"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProgramExercise is one prescribed exercise inside a day. Position is
// 1-based and contiguous within the day.
type ProgramExercise struct {
	ID            uuid.UUID  `json:"id"`
	DayID         uuid.UUID  `json:"program_day_id"`
	ExerciseID    uuid.UUID  `json:"exercise_id"`
	MachineID     *uuid.UUID `json:"machine_id,omitempty"`
	Position      int        `json:"order_index"`
	Target        Target     `json:"-"`
	Method        *string    `json:"method,omitempty"`
	MethodDetails *string    `json:"method_details,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`

	// Display labels joined from the catalog.
	ExerciseName string  `json:"exercise_name,omitempty"`
	VideoURL     *string `json:"video_url,omitempty"`
	MachineLabel *string `json:"machine_label,omitempty"`
}

type programExerciseJSON ProgramExercise

// MarshalJSON renders Target in its tagged wire form.
func (pe ProgramExercise) MarshalJSON() ([]byte, error) {
	target, err := marshalTarget(pe.Target)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		programExerciseJSON
		Target json.RawMessage `json:"target"`
	}{programExerciseJSON(pe), target})
}

// UnmarshalJSON reads the tagged wire form of Target.
func (pe *ProgramExercise) UnmarshalJSON(data []byte) error {
	var aux struct {
		programExerciseJSON
		Target TargetInput `json:"target"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t, err := aux.Target.Target()
	if err != nil {
		return err
	}
	*pe = ProgramExercise(aux.programExerciseJSON)
	pe.Target = t
	return nil
}

// DayTree is a day together with its exercises in position order.
type DayTree struct {
	ProgramDay
	Exercises []ProgramExercise `json:"exercises"`
}

// ProgramTree is a program with all of its days and exercises.
type ProgramTree struct {
	ProgramSummary
	Days []DayTree `json:"days"`
}

// ApplyRPESetting clears stored RPE targets when the program does not
// track RPE.
func (t *ProgramTree) ApplyRPESetting() {
	for i := range t.Days {
		for j := range t.Days[i].Exercises {
			pe := &t.Days[i].Exercises[j]
			pe.Target = ForProgram(pe.Target, t.UseRPE)
		}
	}
}

// CloneRequest holds the parameters for instantiating a template.
type CloneRequest struct {
	MemberID  uuid.UUID  `json:"member_id" validate:"required"`
	Name      *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	// AuthorID becomes the owner of the new program. When nil the
	// template's author is kept.
	AuthorID *uuid.UUID `json:"-"`
}

// Clone returns a concrete copy of the tree bound to the requested member
// and dates. Fresh ids come from newID; days and exercises keep their
// positions, names and every target field, and only their parent
// references are rebound. The receiver is not modified.
func (t ProgramTree) Clone(req CloneRequest, newID func() uuid.UUID) ProgramTree {
	src := t.Program
	member := req.MemberID

	p := Program{
		ID:         newID(),
		Name:       src.Name,
		OwnerID:    copyPtr(src.OwnerID),
		MemberID:   &member,
		StartDate:  copyPtr(req.StartDate),
		EndDate:    copyPtr(req.EndDate),
		UseRPE:     src.UseRPE,
		IsTemplate: false,
	}
	if req.Name != nil && *req.Name != "" {
		p.Name = *req.Name
	}
	if req.AuthorID != nil {
		p.OwnerID = copyPtr(req.AuthorID)
	}

	out := ProgramTree{
		ProgramSummary: ProgramSummary{Program: p},
		Days:           make([]DayTree, 0, len(t.Days)),
	}
	for _, d := range t.Days {
		day := ProgramDay{
			ID:        newID(),
			ProgramID: p.ID,
			Position:  d.Position,
			Name:      copyPtr(d.Name),
		}
		exercises := make([]ProgramExercise, 0, len(d.Exercises))
		for _, e := range d.Exercises {
			exercises = append(exercises, ProgramExercise{
				ID:            newID(),
				DayID:         day.ID,
				ExerciseID:    e.ExerciseID,
				MachineID:     copyPtr(e.MachineID),
				Position:      e.Position,
				Target:        CopyTarget(e.Target),
				Method:        copyPtr(e.Method),
				MethodDetails: copyPtr(e.MethodDetails),
				Notes:         copyPtr(e.Notes),
				ExerciseName:  e.ExerciseName,
				VideoURL:      copyPtr(e.VideoURL),
				MachineLabel:  copyPtr(e.MachineLabel),
			})
		}
		out.Days = append(out.Days, DayTree{ProgramDay: day, Exercises: exercises})
	}
	return out
}

// ProgramView is a program tree composed for one actor.
type ProgramView struct {
	ProgramTree
	CanEdit       bool `json:"can_edit"`
	AssignedToYou bool `json:"assigned_to_you"`
}
