package backend

import "github.com/okian/donatugee/pkg/logger"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetricsEndpoint toggles the /metrics route.
func WithMetricsEndpoint(enabled bool) Option {
	return func(s *Server) { s.metrics = enabled }
}
