package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/GlebRadaev/ofgateway/internal/config"
	"github.com/GlebRadaev/ofgateway/internal/mockapi"
	"github.com/GlebRadaev/ofgateway/pkg/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.NewMockAPI()
	l, err := logger.NewConsoleLogger(cfg.LogLvl)
	if err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}

	server := http.Server{
		Addr:    cfg.Address,
		Handler: mockapi.New(l).Routes(),
	}
	go func() {
		<-ctx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	l.Info().Str("address", cfg.Address).Msg("mock OnlyFans API started")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Fatal().Err(err).Msg("mock OnlyFans API exited with error")
	}
	l.Info().Msg("mock OnlyFans API stopped")
}
