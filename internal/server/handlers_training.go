package server

import (
	"net/http"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/CGAmico/Invictus-Fitness/internal/validation"
	"github.com/google/uuid"
)

type setRequest struct {
	ProgramExerciseID uuid.UUID `json:"program_exercise_id"`
	models.SetEntry
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "program")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	session, err := s.training.StartSession(r.Context(), actor, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	list, err := s.training.ListSessions(r.Context(), actor)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.SessionSummary{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "session")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	detail, err := s.training.SessionDetail(r.Context(), actor, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleLogSet(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "session")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req setRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.ProgramExerciseID == uuid.Nil {
		s.writeError(w, r, validation.Field("program_exercise_id", "this field is required"))
		return
	}
	set, err := s.training.LogSet(r.Context(), actor, id, req.ProgramExerciseID, req.SetEntry)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "session")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.training.EndSession(r.Context(), actor, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	exerciseID, err := uuid.Parse(r.URL.Query().Get("exercise"))
	if err != nil {
		s.writeError(w, r, validation.Field("exercise", "an exercise ID is required"))
		return
	}
	points, err := s.training.Progress(r.Context(), actor, exerciseID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if points == nil {
		points = []models.ProgressPoint{}
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleProgressExercises(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	list, err := s.training.ProgressExercises(r.Context(), actor)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleLastEntries(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	ids, err := queryIDs(r, "exercise")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	entries, err := s.training.LastEntries(r.Context(), actor, ids)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = map[uuid.UUID]models.LastEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
