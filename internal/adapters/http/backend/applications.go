package backend

import "net/http"

func (s *Server) insertApplication(w http.ResponseWriter, r *http.Request) {
	const op = "backend.insert_application"
	var req insertApplicationRequest
	if err := bind(r, &req); err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	techfugeeID, err := parseUint("techfugee_id", req.TechfugeeID)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	challengeID, err := parseUint("challenge_id", req.ChallengeID)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	a, err := s.store.InsertApplication(r.Context(), techfugeeID, challengeID)
	s.reply(w, r, op, a, err)
}

func (s *Server) acceptApplication(w http.ResponseWriter, r *http.Request) {
	const op = "backend.accept_application"
	id, err := s.bindID(r)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	a, err := s.store.AcceptApplication(r.Context(), id)
	s.reply(w, r, op, a, err)
}

// applicationByTechfugee lists the challenges a techfugee applied to, each
// carrying only that techfugee's applications.
func (s *Server) applicationByTechfugee(w http.ResponseWriter, r *http.Request) {
	const op = "backend.application_by_techfugee"
	id, err := s.bindID(r)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	list, err := s.store.ChallengesByTechfugee(r.Context(), id)
	s.reply(w, r, op, list, err)
}
