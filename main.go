package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auction "auction-engine/internal/auctionService"
	"auction-engine/internal/repository"
	"auction-engine/internal/scheduler"
	"auction-engine/internal/server"
	"auction-engine/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	store := repository.NewMemoryStore()

	snapshotPath := os.Getenv("SNAPSHOT_PATH")
	if err := restoreSnapshot(store, snapshotPath); err != nil {
		utils.Fatal("failed to restore snapshot", map[string]any{"path": snapshotPath, "error": err.Error()})
	}

	engine := auction.NewAuctionEngine(store)
	router := server.SetupRouter(engine)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(store, getTickInterval())
	go sched.Run(ctx)

	srv := &http.Server{
		Addr:    getPort(),
		Handler: router,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}

	if err := writeSnapshot(store, snapshotPath); err != nil {
		utils.Error("failed to write snapshot", map[string]any{"path": snapshotPath, "error": err.Error()})
		os.Exit(1)
	}
	utils.Info("auction server stopped", nil)
}

// restoreSnapshot loads store state from path, if configured and present.
func restoreSnapshot(store *repository.MemoryStore, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var state repository.SnapshotState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	if err := store.Restore(state); err != nil {
		return err
	}

	utils.Info("restored snapshot", map[string]any{"path": path, "auctions": len(state.Auctions)})
	return nil
}

// writeSnapshot persists store state to path, if configured.
func writeSnapshot(store *repository.MemoryStore, path string) error {
	if path == "" {
		return nil
	}

	data, err := json.Marshal(store.Snapshot())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// getTickInterval returns the scheduler period from env or defaults to one
// second, so remaining time counts down in seconds.
func getTickInterval() time.Duration {
	if raw := os.Getenv("TICK_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
		utils.Warn("invalid TICK_INTERVAL, using default", map[string]any{"value": raw})
	}
	return time.Second
}
