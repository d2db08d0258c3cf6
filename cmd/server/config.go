package main

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/jacobpatterson1549/scoreboard-panel/server"
	"github.com/jacobpatterson1549/scoreboard-panel/server/layout"
	"github.com/rs/zerolog"
)

// embedParameters contains the files embedded in the server.
type embedParameters struct {
	Version    string
	StaticFS   fs.FS
	TemplateFS fs.FS
}

// newEmbedParameters cleans the version and removes the embed directory prefix from the file systems.
func newEmbedParameters(version string, staticFS, templateFS fs.FS) (*embedParameters, error) {
	v, err := cleanVersion(version)
	if err != nil {
		return nil, fmt.Errorf("creating build version: %w", err)
	}
	static, err := unembedFS(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("unembedding static file system: %w", err)
	}
	template, err := unembedFS(templateFS, "template")
	if err != nil {
		return nil, fmt.Errorf("unembedding template file system: %w", err)
	}
	e := embedParameters{
		Version:    v,
		StaticFS:   static,
		TemplateFS: template,
	}
	return &e, nil
}

// createServer creates the server from the flags and embedded files.
func (m mainFlags) createServer(log *zerolog.Logger, e embedParameters) (*server.Server, error) {
	cfg, err := m.serverConfig(e)
	if err != nil {
		return nil, fmt.Errorf("creating server config: %w", err)
	}
	p := server.Parameters{
		Log:        log,
		StaticFS:   e.StaticFS,
		TemplateFS: e.TemplateFS,
	}
	return cfg.NewServer(p)
}

// serverConfig creates the server configuration.
func (m mainFlags) serverConfig(e embedParameters) (*server.Config, error) {
	l, err := m.readLayout()
	if err != nil {
		return nil, err
	}
	cfg := server.Config{
		Port:           m.port,
		BackendURL:     m.backendURL,
		AllowedOrigins: m.origins(),
		StopDur:        time.Duration(m.stopSec) * time.Second,
		CacheSec:       m.cacheSec,
		Version:        e.Version,
		Layout:         *l,
	}
	return &cfg, nil
}

// readLayout reads the layout file, if one is specified.
func (m mainFlags) readLayout() (*layout.Layout, error) {
	if len(m.layoutFile) == 0 {
		l := layout.Default()
		return &l, nil
	}
	f, err := os.Open(m.layoutFile)
	if err != nil {
		return nil, fmt.Errorf("opening layout file: %w", err)
	}
	defer f.Close()
	l, err := layout.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading layout file %q: %w", m.layoutFile, err)
	}
	return l, nil
}

// cleanVersion returns the version, but cleaned up to only be letters and numbers.
// Spaces on each end are trimmed, but spaces in the middle of the version or special characters cause an error to be returned.
func cleanVersion(v string) (string, error) {
	cleanV := strings.TrimSpace(v)
	if len(cleanV) == 0 {
		return "", fmt.Errorf("empty version")
	}
	for i, r := range cleanV {
		if !unicode.In(r, unicode.Letter, unicode.Digit) {
			return "", fmt.Errorf("only letters and digits are allowed: invalid rune at index %v of '%v': '%v'", i, cleanV, string(r))
		}
	}
	return cleanV, nil
}
