package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sintov/rpgbot/internal/config"
	"github.com/sintov/rpgbot/internal/data"
	"github.com/sintov/rpgbot/internal/db"
	"github.com/sintov/rpgbot/internal/engine"
)

const ConfigPath = "config/botserver.yaml"

const autosaveInterval = 30 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("RPGBOT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("rpgbot server starting", "log_level", cfg.LogLevel)

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	players := db.NewPlayerRepository(database.Pool())

	eng := engine.New(cfg, data.DefaultCatalog(), nil, nil)

	slog.Info("engine ready",
		"death_floor", cfg.Combat.DeathFloor,
		"base_hit", cfg.Combat.BaseHitChance,
		"base_flee", cfg.Combat.BaseFleeChance)

	g, gctx := errgroup.WithContext(ctx)

	// Periodic autosave of every live session.
	g.Go(func() error {
		ticker := time.NewTicker(autosaveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				saveAll(context.Background(), eng, players)
				return nil
			case <-ticker.C:
				saveAll(gctx, eng, players)
			}
		}
	})

	// The chat transport attaches here; the engine is transport-agnostic
	// and only sees submitted actions.
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	return g.Wait()
}

// saveAll persists every live session's player record.
func saveAll(ctx context.Context, eng *engine.Engine, players *db.PlayerRepository) {
	for _, s := range eng.Sessions() {
		state := s.State()
		rec := db.RecordFromPlayer(s.Player(), state.CurrentState, state.Context)
		if err := players.Save(ctx, rec); err != nil {
			slog.Error("autosave failed",
				"player", rec.PlayerID,
				"error", err)
		}
	}
}

// parseLogLevel maps a config string onto a slog level (default info).
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
