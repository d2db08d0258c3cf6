package server

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// newProxy creates a handler that forwards requests to the scoreboard unchanged.
// Other sites can make requests if their origin is allowed.
func (s *Server) newProxy(backendURL *url.URL) http.Handler {
	p := httputil.NewSingleHostReverseProxy(backendURL)
	p.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log := zerolog.Ctx(r.Context())
		log.Error().Err(err).Str("path", r.URL.Path).Msg("forwarding request to scoreboard")
		s.httpError(w, http.StatusBadGateway)
	}
	if len(s.AllowedOrigins) == 0 {
		return p
	}
	c := cors.New(cors.Options{
		AllowedOrigins: s.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID},
	})
	return c.Handler(p)
}
