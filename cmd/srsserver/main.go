package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/srs_server/api/rpc/srs/srsconnect"
	"github.com/domino14/srs_server/config"
	"github.com/domino14/srs_server/internal/auth"
	"github.com/domino14/srs_server/internal/srsserver"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("error-loading-config")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if strings.ToLower(cfg.LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if cfg.SecretKey == "" {
		log.Fatal().Msg("secret-key is required")
	}

	ctx := context.Background()
	store, err := srsserver.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error-opening-store")
	}
	defer store.Close()

	counter, closeCounter, err := srsserver.OpenCounter(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error-opening-counter")
	}
	defer closeCounter()

	server, err := srsserver.NewServer(cfg, store, counter)
	if err != nil {
		log.Fatal().Err(err).Msg("error-creating-server")
	}

	interceptors := connect.WithInterceptors(
		srsserver.NewMetricsInterceptor(),
		auth.NewAuthInterceptor([]byte(cfg.SecretKey)),
	)
	mux := http.NewServeMux()
	mux.Handle(srsconnect.NewSchedulingServiceHandler(server, interceptors))
	mux.Handle("/metrics", promhttp.Handler())

	middlewares := alice.New(
		hlog.NewHandler(log.With().Str("service", "srsserver").Logger()),
		hlog.RemoteAddrHandler("ip"),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().Str("path", r.URL.Path).Int("status", status).
				Int("size", size).Dur("duration", duration).Msg("request")
		}),
	)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: middlewares.Then(mux),
	}
	idleConnsClosed := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)

		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Error().Msgf("HTTP server Shutdown: %v", err)
		}
		cancel()
		close(idleConnsClosed)
	}()

	log.Info().Str("addr", cfg.ListenAddr).Str("store", cfg.Store).Msg("srsserver-listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("")
	}
	<-idleConnsClosed
	log.Info().Msg("server gracefully shutting down")
}
