package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

const (
	environmentVariablePort           = "PORT"
	environmentVariableBackendURL     = "BACKEND_URL"
	environmentVariableAllowedOrigins = "ALLOWED_ORIGINS"
	environmentVariableLayoutFile     = "LAYOUT_FILE"
	environmentVariableCacheSec       = "CACHE_SECONDS"
	environmentVariableStopSec        = "STOP_SECONDS"
)

// mainFlags are the configuration options which can be easly configured at run startup for different environments.
type mainFlags struct {
	port           int
	backendURL     string
	allowedOrigins string
	layoutFile     string
	cacheSec       int
	stopSec        int
}

const (
	defaultPort       int    = 8000
	defaultBackendURL string = "http://127.0.0.1:5000"
	defaultCacheSec   int    = 60 * 60 * 24 * 365 // 1 year
	defaultStopSec    int    = 5
)

// usage prints how to run the server to the flagset's output.
func usage(fs *flag.FlagSet) {
	envVars := []string{
		environmentVariablePort,
		environmentVariableBackendURL,
		environmentVariableAllowedOrigins,
		environmentVariableLayoutFile,
		environmentVariableCacheSec,
		environmentVariableStopSec,
	}
	fmt.Fprintf(fs.Output(), "Runs the panel server\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables when possible: [%s]\n", strings.Join(envVars, ","))
	fmt.Fprintf(fs.Output(), "Reads environment variables from a .env file in the working directory, if present\n")
	fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// newFlagSet creates a flagSet that populates the specified mainFlags.
func (m *mainFlags) newFlagSet(osLookupEnvFunc func(string) (string, bool)) *flag.FlagSet {
	fs := flag.NewFlagSet("main", flag.ExitOnError)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	envValue := func(key, defaultValue string) string {
		if envValue, ok := osLookupEnvFunc(key); ok {
			return envValue
		}
		return defaultValue
	}
	envValueInt := func(key string, defaultValue int) int {
		v1 := envValue(key, "")
		v2, err := strconv.Atoi(v1)
		if err != nil {
			return defaultValue
		}
		return v2
	}
	fs.IntVar(&m.port, "port", envValueInt(environmentVariablePort, defaultPort), "The TCP port for server http requests.")
	fs.StringVar(&m.backendURL, "backend-url", envValue(environmentVariableBackendURL, defaultBackendURL), "The address of the scoreboard that panel requests are forwarded to.")
	fs.StringVar(&m.allowedOrigins, "allowed-origins", envValue(environmentVariableAllowedOrigins, ""), "A comma-separated list of other sites allowed to make scoreboard requests through the server.")
	fs.StringVar(&m.layoutFile, "layout-file", envValue(environmentVariableLayoutFile, ""), "The yaml file describing the title, player names, and event buttons of the panel.  The default layout is used if not set.")
	fs.IntVar(&m.cacheSec, "cache-sec", envValueInt(environmentVariableCacheSec, defaultCacheSec), "The number of seconds static assets are cached, such as javascript files.")
	fs.IntVar(&m.stopSec, "stop-sec", envValueInt(environmentVariableStopSec, defaultStopSec), "The maximum number of seconds the server can take to stop gracefully.")
	return fs
}

// newMainFlags creates a new, populated mainFlags structure.
// Fields are populated from command line arguments.
// If fields are not specified on the command line, environment variable values are used before defaulting to other defaults.
func newMainFlags(osArgs []string, osLookupEnvFunc func(string) (string, bool)) mainFlags {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	programArgs := osArgs[1:]
	var m mainFlags
	fs := m.newFlagSet(osLookupEnvFunc)
	fs.Parse(programArgs)
	return m
}

// origins splits the allowed origins.
func (m mainFlags) origins() []string {
	var origins []string
	for _, o := range strings.Split(m.allowedOrigins, ",") {
		if o = strings.TrimSpace(o); len(o) != 0 {
			origins = append(origins, o)
		}
	}
	return origins
}
