package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	server "staycards/internal/adapters/http_server"
	"staycards/internal/adapters/observability"
	"staycards/internal/adapters/page"
	"staycards/internal/app"
	"staycards/internal/shared"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// deps
	src, target, err := shared.Build(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize listing pipeline")
	}
	defer func() {
		if err := shared.Close(target); err != nil {
			log.Error().Err(err).Msg("close card container")
		}
	}()
	ps := app.NewPageService(src, target)

	// initial load, like page-ready; failures leave the error indicator up
	go func() {
		if err := ps.Load(ctx); err != nil {
			log.Warn().Err(err).Msg("initial load failed; POST /reload to retry")
		}
	}()

	// http
	srv := server.New(server.Options{})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{P: ps, Title: page.DefaultTitle})

	log.Info().Str("addr", cfg.HTTPAddr).Str("source", cfg.SourceURL).Msg("preview server listening")
	if err := srv.Run(ctx, cfg.HTTPAddr); err != nil {
		log.Error().Err(err).Msg("http server failed")
	}
}
