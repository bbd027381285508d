package server

import (
	"net/http"

	"github.com/CGAmico/Invictus-Fitness/internal/accounts"
	"github.com/CGAmico/Invictus-Fitness/internal/models"
)

type meResponse struct {
	*models.Profile
	DisplayName string `json:"display_name"`
	Tailnet     string `json:"tailnet_login"`
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	p, err := s.accounts.Me(r.Context(), actor)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meResponse{
		Profile:     p,
		DisplayName: p.DisplayName(),
		Tailnet:     userInfoFromContext(r).Login,
	})
}

type profileRequest struct {
	FullName  *string  `json:"full_name"`
	Email     *string  `json:"email"`
	Gender    *string  `json:"gender"`
	BirthDate *string  `json:"birth_date"`
	HeightCm  *float64 `json:"height_cm"`
	WeightKg  *float64 `json:"weight_kg"`
}

func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	birth, err := parseDate("birth_date", req.BirthDate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	p, err := s.accounts.UpdateMe(r.Context(), actor, models.ProfileUpdate{
		FullName:  req.FullName,
		Email:     req.Email,
		Gender:    req.Gender,
		BirthDate: birth,
		HeightCm:  req.HeightCm,
		WeightKg:  req.WeightKg,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	var role *models.Role
	if v := r.URL.Query().Get("role"); v != "" {
		rl := models.Role(v)
		role = &rl
	}
	list, err := s.accounts.ListProfiles(r.Context(), actor, role)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleSetRole(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "profile")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req struct {
		Role models.Role `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.accounts.SetRole(r.Context(), actor, id, req.Role); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListLinks(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	links, err := s.accounts.Links(r.Context(), actor)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	req, err := decodeLink(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.accounts.Link(r.Context(), actor, req); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnlink(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	req, err := decodeLink(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.accounts.Unlink(r.Context(), actor, req); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeLink(r *http.Request) (accounts.LinkRequest, error) {
	var req accounts.LinkRequest
	err := decodeJSON(r, &req)
	return req, err
}
