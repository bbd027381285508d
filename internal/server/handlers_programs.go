package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/ordering"
	"github.com/CGAmico/Invictus-Fitness/internal/programs"
	"github.com/CGAmico/Invictus-Fitness/internal/sheets"
	"github.com/CGAmico/Invictus-Fitness/internal/validation"
	"github.com/google/uuid"
)

type programRequest struct {
	Name       string     `json:"name"`
	MemberID   *uuid.UUID `json:"member_id"`
	StartDate  *string    `json:"start_date"`
	EndDate    *string    `json:"end_date"`
	UseRPE     bool       `json:"use_rpe"`
	IsTemplate bool       `json:"is_template"`
}

func (req programRequest) input() (programs.ProgramInput, error) {
	in := programs.ProgramInput{
		Name:       req.Name,
		MemberID:   req.MemberID,
		UseRPE:     req.UseRPE,
		IsTemplate: req.IsTemplate,
	}
	var err error
	if in.StartDate, err = parseDate("start_date", req.StartDate); err != nil {
		return in, err
	}
	if in.EndDate, err = parseDate("end_date", req.EndDate); err != nil {
		return in, err
	}
	return in, nil
}

type cloneRequest struct {
	MemberID  uuid.UUID `json:"member_id"`
	Name      *string   `json:"name"`
	StartDate *string   `json:"start_date"`
	EndDate   *string   `json:"end_date"`
}

// exerciseRequest is the wire form of programs.ExerciseInput with the
// target as a tagged object.
type exerciseRequest struct {
	ExerciseID    *uuid.UUID          `json:"exercise_id"`
	ExerciseName  string              `json:"exercise_name"`
	MachineID     *uuid.UUID          `json:"machine_id"`
	Target        *models.TargetInput `json:"target"`
	Method        *string             `json:"method"`
	MethodDetails *string             `json:"method_details"`
	Notes         *string             `json:"notes"`
}

func (req exerciseRequest) input() (programs.ExerciseInput, error) {
	in := programs.ExerciseInput{
		ExerciseID:    req.ExerciseID,
		ExerciseName:  req.ExerciseName,
		MachineID:     req.MachineID,
		Method:        req.Method,
		MethodDetails: req.MethodDetails,
		Notes:         req.Notes,
	}
	if req.Target != nil {
		t, err := req.Target.Target()
		if err != nil {
			return in, validation.Field("target", err.Error())
		}
		in.Target = t
	}
	return in, nil
}

type nameRequest struct {
	Name *string `json:"name"`
}

type moveRequest struct {
	Direction string `json:"direction"`
}

func (req moveRequest) direction() (ordering.Direction, error) {
	d, err := ordering.ParseDirection(req.Direction)
	if err != nil {
		return 0, validation.Field("direction", err.Error())
	}
	return d, nil
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	list, err := s.programs.List(r.Context(), actor)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.ProgramSummary{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	var req programRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	in, err := req.input()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.programs.Create(r.Context(), actor, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	view, err := s.programs.Get(r.Context(), actor, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleUpdateProgram(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req programRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	in, err := req.input()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.programs.Update(r.Context(), actor, id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.programs.Delete(r.Context(), actor, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCloneProgram(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req cloneRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	clone := models.CloneRequest{MemberID: req.MemberID, Name: req.Name}
	if clone.StartDate, err = parseDate("start_date", req.StartDate); err != nil {
		s.writeError(w, r, err)
		return
	}
	if clone.EndDate, err = parseDate("end_date", req.EndDate); err != nil {
		s.writeError(w, r, err)
		return
	}

	newID, err := s.programs.CloneTemplate(r.Context(), actor, id, clone)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": newID})
}

func (s *Server) handleRepairProgram(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	dryRun := false
	if v := r.URL.Query().Get("dry_run"); v != "" {
		if dryRun, err = strconv.ParseBool(v); err != nil {
			s.writeError(w, r, validation.Field("dry_run", "must be true or false"))
			return
		}
	}
	report, err := s.programs.Repair(r.Context(), actor, id, dryRun)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleProgramSheet(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	view, err := s.programs.Get(r.Context(), actor, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := sheets.Render(&buf, view.ProgramTree); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="`+sheets.FileName(view.Program)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) handleAddDay(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	day, err := s.programs.AddDay(r.Context(), actor, id, req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, day)
}

func (s *Server) handleRenameDay(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "day")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.programs.RenameDay(r.Context(), actor, id, req.Name); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "day")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.programs.DeleteDay(r.Context(), actor, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoveDay(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "day")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	dir, err := req.direction()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	moved, err := s.programs.MoveDay(r.Context(), actor, id, dir)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"moved": moved})
}

func (s *Server) handleAddProgramExercise(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "day")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req exerciseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	in, err := req.input()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	pe, err := s.programs.AddExercise(r.Context(), actor, id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, pe)
}

func (s *Server) handleUpdateProgramExercise(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program exercise")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req exerciseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	in, err := req.input()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	pe, err := s.programs.UpdateExercise(r.Context(), actor, id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pe)
}

func (s *Server) handleDeleteProgramExercise(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program exercise")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.programs.DeleteExercise(r.Context(), actor, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoveProgramExercise(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program exercise")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	dir, err := req.direction()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	moved, err := s.programs.MoveExercise(r.Context(), actor, id, dir)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"moved": moved})
}
