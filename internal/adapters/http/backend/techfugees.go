package backend

import (
	"net/http"
)

func (s *Server) insertTechfugee(w http.ResponseWriter, r *http.Request) {
	const op = "backend.insert_techfugee"
	var req insertTechfugeeRequest
	if err := bind(r, &req); err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	if req.Skills == "" {
		req.Skills = "[]"
	}
	t, err := s.store.InsertTechfugee(r.Context(), req.Name, req.Email, req.Skills)
	s.reply(w, r, op, t, err)
}

func (s *Server) techfugee(w http.ResponseWriter, r *http.Request) {
	const op = "backend.techfugee"
	id, err := s.bindID(r)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	t, err := s.store.Techfugee(r.Context(), id)
	s.reply(w, r, op, t, err)
}

func (s *Server) techfugees(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.Techfugees(r.Context())
	s.reply(w, r, "backend.techfugees", list, err)
}

func (s *Server) loginTechfugee(w http.ResponseWriter, r *http.Request) {
	const op = "backend.login_techfugee"
	var req loginTechfugeeRequest
	if err := bind(r, &req); err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	t, err := s.store.LoginTechfugee(r.Context(), req.Email)
	s.reply(w, r, op, t, err)
}

func (s *Server) addSkills(w http.ResponseWriter, r *http.Request) {
	const op = "backend.add_skills"
	var req addSkillsRequest
	if err := bind(r, &req); err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	id, err := parseUint("id", req.ID)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	t, err := s.store.UpdateTechfugeeSkills(r.Context(), id, req.Skills)
	s.reply(w, r, op, t, err)
}

func (s *Server) updateTechfugee(w http.ResponseWriter, r *http.Request) {
	const op = "backend.update_techfugee"
	var req updateTechfugeeRequest
	if err := bind(r, &req); err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	id, err := parseUint("id", req.ID)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	t, err := s.store.UpdateTechfugee(r.Context(), id, req.City, req.Introduction)
	s.reply(w, r, op, t, err)
}

func (s *Server) updateAuth(w http.ResponseWriter, r *http.Request) {
	const op = "backend.update_auth"
	var req updateAuthRequest
	if err := bind(r, &req); err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	id, err := parseUint("id", req.ID)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	t, err := s.store.UpdateAuth(r.Context(), id, req.Passed)
	s.reply(w, r, op, t, err)
}

// bindID reads the required numeric id form value.
func (s *Server) bindID(r *http.Request) (uint, error) {
	var req idRequest
	if err := bind(r, &req); err != nil {
		return 0, err
	}
	return parseUint("id", req.ID)
}
