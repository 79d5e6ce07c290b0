package backend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/donatugee/internal/adapters/repository"
)

func (s *Server) insertDonator(w http.ResponseWriter, r *http.Request) {
	const op = "backend.insert_donator"
	var req insertDonatorRequest
	if err := bind(r, &req); err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	d, err := s.store.InsertDonator(r.Context(), repository.NewDonator{
		Name:     req.Name,
		Email:    req.Email,
		Website:  req.Website,
		Address:  req.Address,
		Password: req.Password,
	})
	s.reply(w, r, op, d, err)
}

func (s *Server) donator(w http.ResponseWriter, r *http.Request) {
	const op = "backend.donator"
	id, err := s.bindID(r)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	d, err := s.store.Donator(r.Context(), id)
	s.reply(w, r, op, d, err)
}

// loginDonator looks a donor up by email. A supplied password must match the
// stored hash; an absent one skips the check.
func (s *Server) loginDonator(w http.ResponseWriter, r *http.Request) {
	const op = "backend.login_donator"
	var req loginDonatorRequest
	if err := bind(r, &req); err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	d, err := s.store.LoginDonator(r.Context(), req.Email)
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	if req.Password != "" {
		if err := s.store.CheckDonatorPassword(r.Context(), d.ID, req.Password); err != nil {
			if errors.Is(err, repository.ErrInvalidCredentials) {
				err = fmt.Errorf("donator %q: %w", req.Email, ErrUnauthorized)
			}
			s.writeError(r.Context(), w, op, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, d)
}
