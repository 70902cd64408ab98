package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	v1 "awardvote/api/v1"
	"awardvote/internal/admin"
	"awardvote/internal/config"
	"awardvote/internal/store/memory"
	"awardvote/internal/store/postgres"
	"awardvote/internal/voting"
	"awardvote/pkg/async"
	"awardvote/pkg/logger"
	"awardvote/pkg/server"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp/reuseport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("failed to load configuration:", err)
		os.Exit(1)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFile)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("failed to open store")
	}
	defer closeStore()

	if cfg.AdminToken == "" {
		log.Warn().Msg("APP_ADMIN_TOKEN is not set, admin routes will reject every request")
	}

	app := server.NewFiber()
	if cfg.RateLimit > 0 {
		app.Use(server.NewLimiter(cfg.RateLimit, cfg.RateWindow))
	}

	svc := voting.NewService(store, voting.Options{PublishedOnly: cfg.PublishedOnly})
	v1.SetupRoutes(app, svc, admin.SharedSecret(cfg.AdminToken))

	run(app, cfg)
}

func openStore(cfg *config.Config) (voting.Store, func(), error) {
	if cfg.DatabaseURL == config.MemoryDB {
		log.Warn().Msg("using in-memory store, data is lost on exit")
		return memory.New(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Migrate {
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		log.Info().Msg("database schema ready")
	}

	return store, func() {
		log.Info().Msg("closing database connection")
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}, nil
}

func run(app *fiber.App, cfg *config.Config) {
	if cfg.Dev() {
		log.Info().Str("port", cfg.Port).Msg("dev mode enabled")
		if err := app.Listen(cfg.Port); err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
		return
	}

	ln, err := reuseport.Listen("tcp4", cfg.Port)
	if err != nil {
		log.Error().Err(err).Str("port", cfg.Port).Msg("failed to listen")
		return
	}
	serveErr := async.ErrAble(func() error {
		return app.Listener(ln)
	})
	log.Info().Str("port", cfg.Port).Msg("listening")

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	select {
	case err := <-serveErr:
		log.Error().Err(err).Msg("listener stopped")
		return
	case sig := <-c:
		if sig == syscall.SIGHUP {
			log.Info().Msg("hot restarting server")
			exe, _ := os.Executable()
			cmd := exec.Command(exe)
			cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
			if err := cmd.Start(); err != nil {
				log.Error().Err(err).Msg("failed to start new process")
				return
			}
		}
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
