package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/htx-audio/backend-probe/config"
	"github.com/htx-audio/backend-probe/internal/endpoint"
	"github.com/htx-audio/backend-probe/internal/envfile"
	"github.com/htx-audio/backend-probe/internal/probe"
	"github.com/htx-audio/backend-probe/internal/runner"
	"github.com/htx-audio/backend-probe/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, false, cfg.Server.Environment)

	if err := envfile.Load(cfg.Persist.File); err != nil {
		log.Warn("Could not preload env file",
			slog.String("file", cfg.Persist.File),
			slog.Any("err", err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	endpoints, err := initializeEndpoints(cfg, log)
	if err != nil {
		log.Error("Failed to initialize endpoints", slog.Any("err", err))
		os.Exit(1)
	}

	settings, timeout, err := buildSettings(cfg)
	if err != nil {
		log.Error("Failed to parse probe settings", slog.Any("err", err))
		os.Exit(1)
	}

	prober := probe.New(timeout, log)
	r := runner.New(log, prober, endpoints, settings, os.Stdout)

	if r.Run(ctx) != runner.Succeeded {
		os.Exit(1)
	}
}

func initializeEndpoints(cfg *config.Config, log *slog.Logger) ([]*endpoint.Endpoint, error) {
	var endpoints []*endpoint.Endpoint

	for _, ep := range cfg.Endpoints {
		u, err := url.Parse(ep.URL)

		if err != nil {
			log.Error("Failed to parse URL",
				slog.String("name", ep.Name),
				slog.String("url", ep.URL),
				slog.String("error", err.Error()))
			continue
		}

		endpoints = append(endpoints, endpoint.New(ep.Name, u))
	}

	if len(endpoints) == 0 {
		return nil, os.ErrInvalid
	}

	return endpoints, nil
}

func buildSettings(cfg *config.Config) (runner.Settings, time.Duration, error) {
	timeout, err := time.ParseDuration(cfg.Probe.Timeout)
	if err != nil {
		return runner.Settings{}, 0, err
	}

	retryDelay, err := time.ParseDuration(cfg.Probe.RetryDelay)
	if err != nil {
		return runner.Settings{}, 0, err
	}

	settings := runner.Settings{
		Priority:    cfg.Priority,
		PersistKey:  cfg.Persist.Key,
		PersistFile: cfg.Persist.File,
		MaxAttempts: cfg.Probe.MaxAttempts,
		RetryDelay:  retryDelay,
	}

	return settings, timeout, nil
}
