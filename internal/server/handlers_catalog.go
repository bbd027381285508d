package server

import (
	"net/http"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.Exercises(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	var in models.ExerciseInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := s.catalog.CreateExercise(r.Context(), actor, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "exercise")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var in models.ExerciseInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := s.catalog.UpdateExercise(r.Context(), actor, id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "exercise")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.DeleteExercise(r.Context(), actor, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type machineView struct {
	models.Machine
	Label string `json:"label"`
}

func (s *Server) handleListMachines(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.Machines(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]machineView, 0, len(list))
	for _, m := range list {
		out = append(out, machineView{Machine: m, Label: m.Label()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateMachine(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	var in models.MachineInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := s.catalog.CreateMachine(r.Context(), actor, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, machineView{Machine: *m, Label: m.Label()})
}

func (s *Server) handleDeleteMachine(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "machine")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.catalog.DeleteMachine(r.Context(), actor, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
