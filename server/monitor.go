package server

import (
	"fmt"
	"io"
	"net/http"
	"runtime"
	"runtime/pprof"
)

// idleGoroutines are expected to run on a server with no requests in flight.
var idleGoroutines = []string{
	"a goroutine to run the main procedure",
	"a goroutine listening for interrupt/termination signals so the server can stop gracefully",
	"a goroutine to run the http server",
	"a goroutine to write profiling information about goroutines",
}

// handleMonitor writes runtime information to the response.
func (s *Server) handleMonitor(w http.ResponseWriter, r *http.Request) {
	m := new(runtime.MemStats)
	runtime.ReadMemStats(m)
	p := pprof.Lookup("goroutine")
	w.Header().Set(HeaderContentType, "text/plain; charset=utf-8")
	w.Header().Set(HeaderCacheControl, "no-store")
	writeMemoryStats(w, m)
	fmt.Fprintln(w)
	writeGoroutineExpectations(w)
	fmt.Fprintln(w)
	writeGoroutineStackTraces(w, p)
}

// writeMemoryStats writes the memory runtime statistics of the server.
func writeMemoryStats(w io.Writer, m *runtime.MemStats) {
	fmt.Fprintln(w, "--- Memory Stats ---")
	fmt.Fprintln(w, "Alloc (bytes on heap)", m.Alloc)
	fmt.Fprintln(w, "TotalAlloc (total heap size)", m.TotalAlloc)
	fmt.Fprintln(w, "Sys (bytes used to run server)", m.Sys)
	fmt.Fprintln(w, "Live object count (Mallocs - Frees)", m.Mallocs-m.Frees)
}

// writeGoroutineExpectations writes a message about the expected goroutines.
func writeGoroutineExpectations(w io.Writer) {
	fmt.Fprintln(w, "--- Goroutine Expectations ---")
	fmt.Fprintf(w, "%d goroutines are expected on an idling server.\n", len(idleGoroutines))
	for _, g := range idleGoroutines {
		fmt.Fprintln(w, "*", g)
	}
	fmt.Fprintln(w, "Each open connection to the server has a goroutine to serve its requests.")
	fmt.Fprintln(w, "Each idle connection to the scoreboard has two (2) goroutines to read and write to it.")
}

// writeGoroutineStackTraces writes the goroutine runtime profile's stack traces.
func writeGoroutineStackTraces(w io.Writer, p *pprof.Profile) {
	fmt.Fprintln(w, "--- Goroutine Stack Traces ---")
	p.WriteTo(w, 1)
}
