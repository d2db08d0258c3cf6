package server

import (
	"compress/gzip"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jacobpatterson1549/scoreboard-panel/ui/api"
	"github.com/rs/zerolog"
)

// staticFiles are served from the static file system.
var staticFiles = []string{"/wasm_exec.js", "/main.wasm", "/robots.txt", "/favicon.svg"}

// newRouter creates the handler for the paths of the site.
// Requests to the scoreboard are sent to the proxy.
func (s *Server) newRouter(proxy http.Handler) *mux.Router {
	r := mux.NewRouter()
	for _, prefix := range api.Prefixes() {
		r.PathPrefix(prefix).Handler(proxy)
	}
	get := r.Methods(http.MethodGet).Subrouter()
	for _, path := range []string{"/", "/index.html"} {
		get.Handle(path, s.fileHandler(s.serveTemplate("index.html")))
	}
	for _, path := range staticFiles {
		get.Handle(path, s.fileHandler(s.serveStatic))
	}
	get.HandleFunc("/monitor", s.handleMonitor)
	r.NotFoundHandler = s.errorHandler(http.StatusNotFound)
	r.MethodNotAllowedHandler = s.errorHandler(http.StatusMethodNotAllowed)
	return r
}

// fileHandler wraps the handler with handleFile.
func (s *Server) fileHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handleFile(w, r, h)
	})
}

// handleFile wraps the handling of the file, add cache-control header and gzip compression, if possible.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request, h http.Handler) {
	switch r.URL.Path {
	default:
		if r.URL.Query().Get("v") != s.Version {
			url := r.URL
			q := url.Query()
			q.Set("v", s.Version)
			url.RawQuery = q.Encode()
			w.Header().Set(HeaderLocation, url.String())
			w.WriteHeader(http.StatusMovedPermanently)
			return
		}
		fallthrough
	case "/favicon.svg", "/robots.txt":
		w.Header().Set(HeaderCacheControl, s.cacheMaxAge)
	case "/", "/index.html":
		w.Header().Set(HeaderCacheControl, "no-store")
	}
	if strings.Contains(r.Header.Get(HeaderAcceptEncoding), "gzip") {
		w2 := gzip.NewWriter(w)
		defer w2.Close()
		w = wrappedResponseWriter{
			Writer:         w2,
			ResponseWriter: w,
		}
		w.Header().Set(HeaderContentEncoding, "gzip")
	}
	h.ServeHTTP(w, r)
}

// serveTemplate serves the named file from the data-driven template.
func (s *Server) serveTemplate(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		addMimeType(name, w)
		if err := s.template.ExecuteTemplate(w, name, s.data); err != nil {
			err = fmt.Errorf("rendering template: %w", err)
			s.handleError(w, r, err)
			return
		}
	}
}

// errorHandler writes the status code for every request.
func (s *Server) errorHandler(statusCode int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.httpError(w, statusCode)
	})
}

// handleError logs and writes the error as an internal server error (500).
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := zerolog.Ctx(r.Context())
	log.Error().Err(err).Msg("server error")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// httpError writes the error status code.
func (*Server) httpError(w http.ResponseWriter, statusCode int) {
	http.Error(w, http.StatusText(statusCode), statusCode)
}

// addMimeType adds the applicable mime type to the response.
func addMimeType(fileName string, w http.ResponseWriter) {
	extension := filepath.Ext(fileName)
	mimeType := mime.TypeByExtension(extension)
	w.Header().Set(HeaderContentType, mimeType)
}

// wrappedResponseWriter wraps response writing with another writer.
type wrappedResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

// Write delegates the write to the wrapped writer.
func (wrw wrappedResponseWriter) Write(p []byte) (n int, err error) {
	return wrw.Writer.Write(p)
}
