// Package server runs the http server that hosts the control panel and forwards its requests to the scoreboard.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jacobpatterson1549/scoreboard-panel/server/layout"
	"github.com/jacobpatterson1549/scoreboard-panel/server/runner"
	"github.com/rs/zerolog"
)

type (
	// Server runs the site.
	Server struct {
		log         *zerolog.Logger
		data        pageData
		httpServer  *http.Server
		cacheMaxAge string
		template    *template.Template
		serveStatic http.Handler
		runner      runner.Runner
		Config
	}

	// Config contains fields which describe the server.
	Config struct {
		// Port is the TCP port for server http requests.
		Port int
		// BackendURL is the address of the scoreboard that requests of the panel are forwarded to.
		BackendURL string
		// AllowedOrigins are the origins of other sites allowed to make requests to the scoreboard through the server.
		AllowedOrigins []string
		// StopDur is the maximum duration the server can take to shut down.
		StopDur time.Duration
		// CacheSec is the number of seconds some files are cached.
		CacheSec int
		// Version is used to bust caches of files from older server version.
		Version string
		// Layout is the arrangement of the panel page.
		Layout layout.Layout
	}

	// Parameters contains the dependencies needed to create a new server.
	Parameters struct {
		Log        *zerolog.Logger
		StaticFS   fs.FS
		TemplateFS fs.FS
	}
)

const (
	// HeaderContentType is used to set the document type header on http responses.
	HeaderContentType = "Content-Type"
	// HeaderCacheControl is used to tell browsers how long to cache http responses.
	HeaderCacheControl = "Cache-Control"
	// HeaderLocation is used to tell browsers to request a different document.
	HeaderLocation = "Location"
	// HeaderAcceptEncoding is specified by the browser to tell the server what types of document encoding it can handle.
	HeaderAcceptEncoding = "Accept-Encoding"
	// HeaderContentEncoding is used to tell browsers how the document is encoded.
	HeaderContentEncoding = "Content-Encoding"
	// HeaderRequestID identifies a request in the logs of the server and the scoreboard.
	HeaderRequestID = "X-Request-Id"
)

// NewServer creates a Server from the Config.
func (cfg Config) NewServer(p Parameters) (*Server, error) {
	if err := cfg.validate(p); err != nil {
		return nil, fmt.Errorf("creating server: validation: %w", err)
	}
	backendURL, err := parseBackendURL(cfg.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}
	template, err := template.ParseFS(p.TemplateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	staticFileSystem := http.FS(p.StaticFS)
	staticFilesHandler := http.FileServer(staticFileSystem)
	s := Server{
		log:         p.Log,
		data:        newPageData(cfg.Layout, cfg.Version),
		cacheMaxAge: "max-age=" + strconv.Itoa(cfg.CacheSec),
		template:    template,
		serveStatic: staticFilesHandler,
		Config:      cfg,
	}
	proxy := s.newProxy(backendURL)
	router := s.newRouter(proxy)
	s.httpServer = &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           s.withRequestID(s.withAccessLog(router)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &s, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(p Parameters) error {
	switch {
	case p.Log == nil:
		return errors.New("log required")
	case p.StaticFS == nil:
		return errors.New("static file system required")
	case p.TemplateFS == nil:
		return errors.New("template file system required")
	case cfg.Port <= 0:
		return fmt.Errorf("positive port required, got %v", cfg.Port)
	case cfg.StopDur <= 0:
		return errors.New("stop timeout duration required")
	case cfg.CacheSec < 0:
		return errors.New("non-negative cache time required")
	}
	if err := cfg.Layout.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	return nil
}

// parseBackendURL ensures the address of the scoreboard is an absolute http url.
func parseBackendURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	switch {
	case err != nil:
		return nil, fmt.Errorf("parsing backend url: %w", err)
	case u.Scheme != "http" && u.Scheme != "https":
		return nil, fmt.Errorf("backend url must use http or https: %q", rawURL)
	case len(u.Host) == 0:
		return nil, fmt.Errorf("backend url must have a host: %q", rawURL)
	}
	return u, nil
}

// Run the server asynchronously until it receives a shutdown signal.
// When the server stops, its error is added to the returned channel.
func (s *Server) Run(ctx context.Context) <-chan error {
	errC := make(chan error, 1)
	if err := s.runner.Run(); err != nil {
		errC <- fmt.Errorf("running server: %w", err)
		return errC
	}
	s.log.Info().
		Str("addr", "http://127.0.0.1"+s.httpServer.Addr).
		Str("backend", s.BackendURL).
		Msg("starting server")
	go func() {
		errC <- s.httpServer.ListenAndServe()
	}()
	return errC
}

// Stop asks the server to shutdown and waits for the shutdown to complete.
// An error is returned if the context times out.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.runner.Stop(); err != nil {
		return fmt.Errorf("stopping server: %w", err)
	}
	ctx, cancelFunc := context.WithTimeout(ctx, s.StopDur)
	defer cancelFunc()
	return s.httpServer.Shutdown(ctx)
}
