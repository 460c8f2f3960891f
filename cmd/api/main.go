package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/mongo-gateway/config"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/bootstrap"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/repository"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/service"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/logging"
)

const serviceName = "mongo-gateway"

type storeOpener func(ctx context.Context, cfg *config.Config) (repository.Store, func(), error)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	logging.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, bootstrap.OpenStore)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// run serves until ctx is cancelled or the listener fails. Every handle it
// opens is released before it returns.
func run(ctx context.Context, cfg *config.Config, openStore storeOpener) error {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer closeStore()

	publisher, closePublisher := bootstrap.OpenPublisher(ctx, cfg)
	defer closePublisher()

	entries := service.NewEntryService(store, publisher)

	if cfg.App.ProbeSchedule != "" {
		scheduler, err := bootstrap.StartProbe(cfg.App.ProbeSchedule, bootstrap.NewProbe(entries))
		if err != nil {
			return fmt.Errorf("probe: %w", err)
		}
		defer scheduler.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Database:       config.DatabaseName,
		Entries:        entries,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Printf("%s %s listening on :%s (backend=%s)", serviceName, cfg.App.Version, cfg.Server.Port, cfg.App.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	return nil
}
