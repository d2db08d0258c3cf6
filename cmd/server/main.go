// Package main starts the panel server after configuring it from supplied or standard arguments
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jacobpatterson1549/scoreboard-panel/server"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// main configures and runs the server.
func main() {
	ctx := context.Background()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal().Err(err).Msg("loading .env file")
	}
	e, err := newEmbedParameters(embedVersion, embeddedStaticFS, embeddedTemplateFS)
	if err != nil {
		log.Fatal().Err(err).Msg("reading embedded files")
	}
	m := newMainFlags(os.Args, os.LookupEnv)
	server, err := m.createServer(&log, *e)
	if err != nil {
		log.Fatal().Err(err).Msg("creating server")
	}
	if err := runServer(ctx, server, &log); err != nil {
		log.Fatal().Err(err).Msg("running server")
	}
	log.Info().Msg("server run stopped successfully")
}

// runServer runs the server until it is interrupted or terminated.
func runServer(ctx context.Context, server *server.Server, log *zerolog.Logger) error {
	done := make(chan os.Signal, 2)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(done)
	errC := server.Run(ctx)
	select { // BLOCKING
	case err := <-errC:
		switch {
		case errors.Is(err, http.ErrServerClosed):
			log.Info().Msg("server shutdown triggered")
		default:
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	case signal := <-done:
		log.Info().Stringer("signal", signal).Msg("handled signal")
	}
	if err := server.Stop(ctx); err != nil {
		return fmt.Errorf("stopping server: %w", err)
	}
	return nil
}
