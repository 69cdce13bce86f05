// Command tutorhub is the tutor's address book: a text shell for managing
// students, their assignments and the lessons booked with them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tutorhub/tutorhub/config"
	"github.com/tutorhub/tutorhub/internal/application/logic"
	"github.com/tutorhub/tutorhub/internal/application/model"
	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/prefs"
	"github.com/tutorhub/tutorhub/internal/infrastructure/messaging"
	"github.com/tutorhub/tutorhub/internal/infrastructure/persistence/jsonfile"
	"github.com/tutorhub/tutorhub/internal/infrastructure/persistence/postgres"
	"github.com/tutorhub/tutorhub/internal/infrastructure/persistence/redis"
	"github.com/tutorhub/tutorhub/internal/infrastructure/seed"
	"github.com/tutorhub/tutorhub/internal/interface/cli"
	"github.com/tutorhub/tutorhub/internal/interface/cli/parser"
	"github.com/tutorhub/tutorhub/pkg/logger"
)

const welcome = "Welcome to TutorHub! Type help to see the commands."

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. Configuration and logging
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, closeLog, err := setupLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLog()

	log.Info("starting tutorhub",
		"env", cfg.App.Environment,
		"version", cfg.App.Version,
		"backend", cfg.Storage.Backend,
		"mirrors", cfg.Storage.Mirrors,
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 2. Preferences
	// ─────────────────────────────────────────────────────────────────────────
	prefsStore := jsonfile.NewPrefsStore(cfg.Storage.PrefsFile)
	userPrefs := loadPrefs(ctx, prefsStore, cfg, log)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. Storage backends
	// ─────────────────────────────────────────────────────────────────────────
	backends, err := openBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer backends.close()

	var primary addressbook.Repository
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		primary = backends.postgres
	case config.BackendRedis:
		primary = backends.redis
	default:
		primary = jsonfile.NewAddressBookStore(userPrefs.DataFilePath, logger.Component(log, "jsonfile"))
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. Event bus and mirrors
	// ─────────────────────────────────────────────────────────────────────────
	bus := messaging.NewInMemoryEventBus(messaging.InMemoryEventBusConfig{
		AsyncMode:      true,
		WorkerPoolSize: cfg.Storage.EventWorkers,
		Logger:         logger.Component(log, "eventbus"),
		EnableMetrics:  true,
	})

	dispatcher := messaging.NewMirrorDispatcher(messaging.MirrorDispatcherConfig{
		Mirrors:             backends.mirrors(cfg.Storage.Mirrors),
		WriteTimeout:        cfg.Storage.MirrorTimeout,
		BreakerThreshold:    cfg.Storage.MirrorFailureThreshold,
		BreakerCooldown:     cfg.Storage.MirrorCooldown,
		DeadLetterQueueSize: cfg.Storage.DeadLetterQueueSize,
		Logger:              logger.Component(log, "mirrors"),
	})
	if err := dispatcher.Start(bus); err != nil {
		return fmt.Errorf("failed to start mirrors: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. Model, logic and shell
	// ─────────────────────────────────────────────────────────────────────────
	book, outcome := logic.LoadAddressBook(ctx, primary, seed.SampleAddressBook, bus, log)
	log.Info("address book ready", "source", outcome)

	m := model.NewManager(book, userPrefs)
	manager, err := logic.NewManager(logic.ManagerConfig{
		Model:     m,
		Parser:    parser.New(),
		Store:     primary,
		Publisher: bus,
		Logger:    logger.Component(log, "logic"),
	})
	if err != nil {
		return err
	}

	shell := cli.NewShell(manager, cli.ShellConfig{
		In:          in,
		Out:         out,
		Welcome:     welcome,
		ShowLessons: userPrefs.ShowLessonsOnStart,
		Logger:      logger.Component(log, "shell"),
	})
	runErr := shell.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		log.Info("received shutdown signal")
		runErr = nil
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 6. Shutdown
	// ─────────────────────────────────────────────────────────────────────────
	shutdown(bus, dispatcher, cfg, log)

	final := m.UserPrefs()
	final.LastBackend = cfg.Storage.Backend
	if err := prefsStore.Save(context.Background(), final); err != nil {
		log.Warn("failed to save preferences", "error", err)
	}

	return runErr
}

// loadPrefs falls back to defaults built from cfg when the preferences file is
// missing or unusable.
func loadPrefs(ctx context.Context, store prefs.Repository, cfg *config.Config, log *slog.Logger) prefs.UserPrefs {
	p, err := store.Load(ctx)
	if err == nil {
		if p.LastBackend != "" && p.LastBackend != cfg.Storage.Backend {
			log.Info("storage backend changed since last session",
				"previous", p.LastBackend, "current", cfg.Storage.Backend)
		}
		return p
	}
	if !errors.Is(err, prefs.ErrNotFound) {
		log.Warn("preferences could not be loaded, using defaults", "error", err)
	}
	p = prefs.Default()
	p.DataFilePath = cfg.Storage.DataFile
	return p
}

func shutdown(bus *messaging.InMemoryEventBus, dispatcher *messaging.MirrorDispatcher, cfg *config.Config, log *slog.Logger) {
	log.Info("starting graceful shutdown...", "timeout", cfg.App.ShutdownTimeout.String())

	closed := make(chan struct{})
	go func() {
		_ = bus.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(cfg.App.ShutdownTimeout):
		log.Warn("mirrors did not finish in time, abandoning pending writes")
		dispatcher.Stop()
		<-closed
	}
	dispatcher.Stop()

	if dead := dispatcher.DeadLetters(); len(dead) > 0 {
		log.Warn("some mirror writes failed", "count", len(dead))
	}
	snap := bus.Metrics().Snapshot()
	log.Info("shutdown completed",
		"events_published", snap.TotalPublished,
		"handler_failures", snap.HandlerFailures,
	)
}

// ══════════════════════════════════════════════════════════════════════════════
// BACKENDS
// ══════════════════════════════════════════════════════════════════════════════

type backendSet struct {
	pgConn   *postgres.Connection
	postgres *postgres.SnapshotRepository
	cache    *redis.Cache
	redis    *redis.SnapshotCache
}

func openBackends(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backendSet, error) {
	b := &backendSet{}

	if cfg.Uses(config.BackendPostgres) {
		log.Info("connecting to database...")
		conn, err := postgres.NewConnection(ctx, postgres.Config{
			URL:            cfg.Database.URL,
			Host:           cfg.Database.Host,
			Port:           cfg.Database.Port,
			Database:       cfg.Database.Name,
			User:           cfg.Database.User,
			Password:       cfg.Database.Password,
			SSLMode:        cfg.Database.SSLMode,
			MaxConns:       int32(cfg.Database.MaxConns),
			ConnectTimeout: cfg.Database.ConnectTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		b.pgConn = conn

		if cfg.Database.Migrate {
			if err := postgres.NewMigrator(conn).Migrate(ctx); err != nil {
				b.close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Info("migrations completed")
		}
		b.postgres = postgres.NewSnapshotRepository(conn)
	}

	if cfg.Uses(config.BackendRedis) {
		log.Info("connecting to Redis...")
		rc := redis.DefaultConfig()
		rc.Host = cfg.Redis.Host
		rc.Port = cfg.Redis.Port
		rc.Password = cfg.Redis.Password
		rc.DB = cfg.Redis.DB
		rc.Namespace = cfg.Redis.Namespace
		rc.TTL = cfg.Redis.TTL
		rc.DialTimeout = cfg.Redis.DialTimeout

		cache, err := redis.NewCache(ctx, rc)
		if err != nil {
			b.close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		b.cache = cache
		b.redis = redis.NewSnapshotCache(cache)
	}

	return b, nil
}

func (b *backendSet) mirrors(names []string) []addressbook.Mirror {
	var out []addressbook.Mirror
	for _, name := range names {
		switch name {
		case config.BackendPostgres:
			out = append(out, b.postgres)
		case config.BackendRedis:
			out = append(out, b.redis)
		}
	}
	return out
}

func (b *backendSet) close() {
	if b.pgConn != nil {
		b.pgConn.Close()
	}
	if b.cache != nil {
		_ = b.cache.Close()
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// setupLogger configures structured logging. Logs never go to stdout, which
// belongs to the shell.
func setupLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	opts := logger.DefaultOptions()
	opts.Level = logger.ParseLevel(cfg.Observability.LogLevel)
	if cfg.Observability.LogFormat == logger.FormatJSON || cfg.IsProduction() {
		opts.Format = logger.FormatJSON
	}

	closeFn := func() {}
	if cfg.Observability.LogFile != "" {
		w, c, err := logger.OpenFile(cfg.Observability.LogFile)
		if err != nil {
			return nil, nil, err
		}
		opts.Output, closeFn = w, c
	}

	log := logger.New(opts)
	slog.SetDefault(log)

	return log, closeFn, nil
}
