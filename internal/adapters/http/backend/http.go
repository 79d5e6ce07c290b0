// Package backend serves the donatugee REST routes over an entity store.
package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/okian/donatugee/internal/adapters/http/swagger"
	"github.com/okian/donatugee/internal/adapters/repository"
	"github.com/okian/donatugee/pkg/donatugee"
	"github.com/okian/donatugee/pkg/logger"
	"github.com/okian/donatugee/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIPrefix is the mount point of the entity routes.
const APIPrefix = "/api/v1"

// FillerTextPrefix is the mount point of the filler-text route. A client's
// filler-text URL is the server URL plus FillerTextPrefix plus "p-1/".
const FillerTextPrefix = "/api/gibberish"

// Server wires HTTP routes for the backend API.
type Server struct {
	store   repository.Store
	logger  logger.Logger
	metrics bool
	router  chi.Router
}

// NewServer creates a server over store.
func NewServer(store repository.Store, opts ...Option) *Server {
	s := &Server{
		store:   store,
		logger:  logger.Nop(),
		metrics: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)

	r.Get("/healthz", s.handleHealth)
	if s.metrics {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	}
	swagger.Register(r)

	// Routes accept any verb and read query or form values.
	r.Route(APIPrefix, func(r chi.Router) {
		handle := func(path string, h http.HandlerFunc) {
			r.HandleFunc("/"+path, h)
		}
		handle(donatugee.PathInsertTechfugee, s.insertTechfugee)
		handle(donatugee.PathTechfugee, s.techfugee)
		handle("techfugees", s.techfugees)
		handle("login", s.loginTechfugee)
		handle(donatugee.PathAddSkills, s.addSkills)
		handle(donatugee.PathUpdateTechfugee, s.updateTechfugee)
		handle(donatugee.PathUpdateAuth, s.updateAuth)

		handle(donatugee.PathInsertDonator, s.insertDonator)
		handle(donatugee.PathDonator, s.donator)
		handle(donatugee.PathLoginDonator, s.loginDonator)

		handle(donatugee.PathInsertChallenge, s.insertChallenge)
		handle(donatugee.PathChallenge, s.challenge)
		handle(donatugee.PathChallenges, s.challenges)
		handle(donatugee.PathChallengesByDonator, s.challengesByDonator)

		handle(donatugee.PathInsertApplication, s.insertApplication)
		handle(donatugee.PathAcceptApplication, s.acceptApplication)
		handle(donatugee.PathApplicationByTechfugee, s.applicationByTechfugee)
	})

	r.Get(FillerTextPrefix+"/p-{paragraphs}/{length}", s.gibberish)
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Counts repository.Counts `json:"counts"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Counts: s.store.Count(r.Context())})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(ctx, "request failed", logger.String("operation", op), logger.Error(err))
	}
	writeJSON(w, status, errorResponse{Code: code, Message: err.Error()})
}

// reply writes v, or the error if err is set.
func (s *Server) reply(w http.ResponseWriter, r *http.Request, op string, v any, err error) {
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
