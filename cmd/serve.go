package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"formdesk/internal/config"
	"formdesk/internal/database"
	"formdesk/internal/repositories"
	"formdesk/internal/server"
	"formdesk/internal/services"
	"formdesk/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

// Serve targets.
const (
	targetTodo    = "todo"
	targetContact = "contact"
	targetAll     = "all"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:       "serve [todo|contact|all]",
	Short:     "Run the todo service, the contact service, or both",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{targetTodo, targetContact, targetAll},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := targetAll
		if len(args) == 1 {
			target = args[0]
		}
		return runServe(cmd.Context(), target)
	},
}

// closer releases a resource opened while starting up.
type closer func() error

type listener struct {
	name string
	addr string
	app  *fiber.App
}

func runServe(ctx context.Context, target string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warn().Err(err).Msg("error releasing resource")
			}
		}
	}()

	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			return err
		}
		closers = append(closers, mqClient.Close)
		publisher = mqClient

		if err := mqClient.ConsumeEvents(logEvent); err != nil {
			log.Warn().Err(err).Msg("event consumer not started")
		}
	} else {
		log.Info().Msg("RABBITMQ_URL not set, events disabled")
	}

	var listeners []listener

	if target == targetTodo || target == targetAll {
		repo, release, err := openTodoRepository(ctx, cfg)
		if err != nil {
			return err
		}
		closers = append(closers, release)

		app := server.NewTodoApp(server.TodoDeps{
			Service: services.NewTodoService(repo, publisher, log),
			Log:     log,
		})
		listeners = append(listeners, listener{name: targetTodo, addr: cfg.TodoPort, app: app})
	}

	if target == targetContact || target == targetAll {
		db, err := database.OpenSQL(cfg, log)
		if err != nil {
			return err
		}
		closers = append(closers, func() error { return database.CloseSQL(db) })
		if err := database.Migrate(db); err != nil {
			return err
		}

		var auth *services.AuthService
		if cfg.AuthJWTSecret != "" {
			auth = services.NewAuthService(cfg.AuthJWTSecret)
		} else {
			log.Warn().Msg("AUTH_JWT_SECRET not set, post deletion is unauthenticated")
		}

		app := server.NewContactApp(server.ContactDeps{
			Service:   services.NewContactService(repositories.NewGORMContactFormRepository(db), publisher, log),
			Auth:      auth,
			StaticDir: staticDir(cfg.StaticDir),
			Log:       log,
		})
		listeners = append(listeners, listener{name: targetContact, addr: cfg.ContactPort, app: app})
	}

	return listen(listeners)
}

// listen serves every app until SIGINT/SIGTERM or until one of them fails,
// then shuts all of them down.
func listen(listeners []listener) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	failed := make(chan error, len(listeners))
	for _, l := range listeners {
		l := l
		go func() {
			log.Info().Str("service", l.name).Str("addr", l.addr).Msg("starting server")
			if err := l.app.Listen(l.addr); err != nil {
				failed <- fmt.Errorf("%s server: %w", l.name, err)
			}
		}()
	}

	var runErr error
	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down servers")
	case runErr = <-failed:
		log.Error().Err(runErr).Msg("server failed, shutting down")
	}

	for _, l := range listeners {
		if err := l.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Warn().Err(err).Str("service", l.name).Msg("error during shutdown")
		}
	}
	log.Info().Msg("servers gracefully stopped")
	return runErr
}

// openTodoRepository opens the configured todo store.
func openTodoRepository(ctx context.Context, cfg *config.Config) (repositories.TodoRepository, closer, error) {
	switch cfg.TodoStore {
	case config.TodoStoreMongo:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		collection := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		log.Info().Str("database", cfg.MongoDatabase).Str("collection", cfg.MongoCollection).Msg("connected to mongo")
		return repositories.NewMongoTodoRepository(collection), func() error {
			return client.Disconnect(context.Background())
		}, nil
	case config.TodoStoreBadger:
		db, err := database.OpenBadger(cfg.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.BadgerPath).Msg("opened badger todo store")
		return repositories.NewBadgerTodoRepository(db), db.Close, nil
	case config.TodoStoreMemory:
		log.Warn().Msg("using in-memory todo store, data is lost on exit")
		return repositories.NewMockTodoRepository(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported todo store %q", cfg.TodoStore)
	}
}

// staticDir returns dir, or "" when it is not an existing directory.
func staticDir(dir string) string {
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Warn().Str("dir", dir).Msg("static directory not found, /static disabled")
		return ""
	}
	return dir
}

func logEvent(event rabbitmq.Event) error {
	log.Info().
		Str("event_id", event.ID).
		Str("type", event.Type).
		Time("occurred_at", event.OccurredAt).
		Interface("data", event.Data).
		Msg("event received")
	return nil
}
