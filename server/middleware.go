package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// withRequestID identifies each request, adding the id to the request, the response, and the logger of the request context.
// Valid ids from the client are kept.
func (s *Server) withRequestID(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		r.Header.Set(HeaderRequestID, id) // forwarded to the scoreboard
		w.Header().Set(HeaderRequestID, id)
		log := s.log.With().Str("request_id", id).Logger()
		ctx := log.WithContext(r.Context())
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withAccessLog logs a line for each request after it is handled.
func (*Server) withAccessLog(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := statusRecorder{
			ResponseWriter: w,
			status:         http.StatusOK,
		}
		h.ServeHTTP(&sr, r)
		log := zerolog.Ctx(r.Context())
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sr.status).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	})
}

// statusRecorder remembers the status code written to the response.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

// WriteHeader records the first status code.
func (sr *statusRecorder) WriteHeader(statusCode int) {
	if !sr.wroteHeader {
		sr.status = statusCode
		sr.wroteHeader = true
	}
	sr.ResponseWriter.WriteHeader(statusCode)
}

// Unwrap allows the http.ResponseController to flush forwarded responses.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
