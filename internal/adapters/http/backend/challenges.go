package backend

import (
	"net/http"

	"github.com/okian/donatugee/internal/adapters/repository"
)

func (s *Server) insertChallenge(w http.ResponseWriter, r *http.Request) {
	const op = "backend.insert_challenge"
	var req insertChallengeRequest
	if err := bind(r, &req); err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	donatorID, err := parseUint("id_donator", req.DonatorID)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	amount, err := parseUint("amount", req.Amount)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	c, err := s.store.InsertChallenge(r.Context(), repository.NewChallenge{
		DonatorID:        donatorID,
		Name:             req.Name,
		Description:      req.Description,
		LaptopType:       req.LaptopType,
		Amount:           amount,
		HardwareProvided: req.HardwareProvided,
		Duration:         req.Duration,
	})
	s.reply(w, r, op, c, err)
}

func (s *Server) challenge(w http.ResponseWriter, r *http.Request) {
	const op = "backend.challenge"
	id, err := s.bindID(r)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	c, err := s.store.Challenge(r.Context(), id)
	s.reply(w, r, op, c, err)
}

func (s *Server) challenges(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.Challenges(r.Context())
	s.reply(w, r, "backend.challenges", list, err)
}

func (s *Server) challengesByDonator(w http.ResponseWriter, r *http.Request) {
	const op = "backend.challenges_by_donator"
	id, err := s.bindID(r)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	list, err := s.store.ChallengesByDonator(r.Context(), id)
	s.reply(w, r, op, list, err)
}
