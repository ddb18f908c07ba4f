package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/content"
	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/save"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, err := logDestination(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	id := uuid.New()
	log := logger.WithSessionID(logger.SetupWriter(cfg, logOut), id.String())

	pack, err := content.Default()
	if err != nil {
		log.Error("Failed to load world content", "error", err)
		fmt.Fprintf(os.Stderr, "Failed to load world content: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		logger.WithError(log, err).Error("Failed to open save store", "backend", cfg.SaveBackend)
		fmt.Fprintf(os.Stderr, "Failed to open save store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	opts := game.Options{
		ID:         id,
		PlayerName: cfg.PlayerName,
		Dice:       dice.NewSeeded(cfg.RandomSeed),
		Saves:      save.NewManager(store, pack.Catalog, log),
		Logger:     log,
		Encounters: cfg.Encounters,
	}
	log.Info("Starting adventure", "ui", cfg.UIMode, "backend", cfg.SaveBackend, "seed", cfg.RandomSeed)

	if cfg.UIMode == config.UIModePlain {
		err = runPlain(ctx, pack, opts, os.Stdin, os.Stdout)
	} else {
		err = runTUI(ctx, pack, opts)
	}
	if err != nil {
		logger.WithError(log, err).Error("Game ended with error")
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// logDestination keeps logs off the terminal when the TUI owns it.
func logDestination(cfg *config.Config) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	if cfg.UIMode == config.UIModeTUI {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (save.Store, func(), error) {
	if cfg.SaveBackend == config.BackendRedis {
		rs, err := storage.NewRedisStore(cfg.RedisURL, cfg.SaveTTL, log)
		if err != nil {
			return nil, nil, err
		}
		waitCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := rs.WaitForConnection(waitCtx); err != nil {
			_ = rs.Close()
			return nil, nil, err
		}
		return rs, func() { _ = rs.Close() }, nil
	}

	fs, err := storage.NewFileStore(cfg.SaveDir, log)
	if err != nil {
		return nil, nil, err
	}
	return fs, func() {}, nil
}
