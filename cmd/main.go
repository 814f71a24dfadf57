package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/mcikids/portal/config"
	"github.com/mcikids/portal/database"
	"github.com/mcikids/portal/routes"
	"github.com/mcikids/portal/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := database.Open(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DataPath).Msg("cannot open database")
	}
	defer db.Close()

	// The store loads (or confirms absent) the persisted snapshot before any
	// mutation may schedule a save.
	st, err := store.Open(db, cfg.SaveDebounce, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load state")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, st, cfg)

	go func() {
		addr := ":" + cfg.AppPort
		log.Info().Str("addr", addr).Msg("server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	// Write out any state change still inside the debounce window.
	st.Flush()
	log.Info().Msg("bye")
}
