package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/GoSim-25-26J-441/mongo-gateway/config"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/bootstrap"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/service"
)

func openService(ctx context.Context) (*service.EntryService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return service.NewEntryService(store, nil), closeStore, nil
}

// RunPing exits with an error when the configured store is unreachable.
func RunPing(_ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	svc, closeFn, err := openService(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	return ping(ctx, svc)
}

func ping(ctx context.Context, svc *service.EntryService) error {
	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	log.Println("database reachable")
	return nil
}

// RunFetch prints the fetch result as indented JSON.
func RunFetch(_ []string, w io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc, closeFn, err := openService(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	return fetch(ctx, svc, w)
}

func fetch(ctx context.Context, svc *service.EntryService, w io.Writer) error {
	docs, err := svc.FetchEntries(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}
