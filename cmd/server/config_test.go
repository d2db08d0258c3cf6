package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jacobpatterson1549/scoreboard-panel/server/layout"
	"github.com/rs/zerolog"
)

func TestCleanVersion(t *testing.T) {
	cleanVersionTests := []struct {
		v      string
		wantOk bool
		want   string
	}{
		{},
		{
			v:      "9d2ffad8e5e5383569d37ec381147f2d\n",
			wantOk: true,
			want:   "9d2ffad8e5e5383569d37ec381147f2d",
		},
		{
			v: "adhoc version",
		},
	}
	for i, test := range cleanVersionTests {
		got, err := cleanVersion(test.v)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error when version is '%v'", i, test.v)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error when version is '%v': %v", i, test.v, err)
		case test.want != got:
			t.Errorf("Test %v: when version is '%v':\nwanted: '%v'\ngot:    '%v", i, test.v, test.want, got)
		}
	}
}

func TestReadLayout(t *testing.T) {
	dir := t.TempDir()
	validFile := filepath.Join(dir, "valid.yaml")
	if err := os.WriteFile(validFile, []byte("title: Finals\nplayers: [Selene]\n"), 0600); err != nil {
		t.Fatalf("writing layout file: %v", err)
	}
	invalidFile := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalidFile, []byte("buttons: []\nextra: true\n"), 0600); err != nil {
		t.Fatalf("writing layout file: %v", err)
	}
	readLayoutTests := []struct {
		layoutFile string
		wantOk     bool
		wantTitle  string
	}{
		{
			wantOk:    true,
			wantTitle: layout.Default().Title,
		},
		{
			layoutFile: filepath.Join(dir, "missing.yaml"),
		},
		{
			layoutFile: invalidFile,
		},
		{
			layoutFile: validFile,
			wantOk:     true,
			wantTitle:  "Finals",
		},
	}
	for i, test := range readLayoutTests {
		m := mainFlags{layoutFile: test.layoutFile}
		got, err := m.readLayout()
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.wantTitle != got.Title:
			t.Errorf("Test %v: wanted title %q, got %q", i, test.wantTitle, got.Title)
		}
	}
}

func TestServerConfig(t *testing.T) {
	m := mainFlags{
		port:           8001,
		backendURL:     "http://127.0.0.1:5001",
		allowedOrigins: "http://example.com",
		cacheSec:       60,
		stopSec:        3,
	}
	e := embedParameters{Version: "v2"}
	got, err := m.serverConfig(e)
	switch {
	case err != nil:
		t.Errorf("unwanted error: %v", err)
	case got.Port != 8001,
		got.BackendURL != "http://127.0.0.1:5001",
		!reflect.DeepEqual(got.AllowedOrigins, []string{"http://example.com"}),
		got.CacheSec != 60,
		got.StopDur != 3*time.Second,
		got.Version != "v2",
		!reflect.DeepEqual(got.Layout, layout.Default()):
		t.Errorf("server config not created from flags: %+v", got)
	}
}

func TestCreateServer(t *testing.T) {
	m := newMainFlags(nil, func(string) (string, bool) { return "", false })
	e := embedParameters{
		Version: "v3",
		StaticFS: fstest.MapFS{
			"robots.txt": &fstest.MapFile{},
		},
		TemplateFS: fstest.MapFS{
			"index.html": &fstest.MapFile{Data: []byte("{{.Title}}")},
		},
	}
	log := zerolog.Nop()
	if _, err := m.createServer(&log, e); err != nil {
		t.Errorf("unwanted error creating server: %v", err)
	}
}
