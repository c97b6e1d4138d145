package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/repository"
	"github.com/rocketscienceinc/connectfour/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
	"github.com/rocketscienceinc/connectfour/pkg/identity"
	"github.com/rocketscienceinc/connectfour/transport/terminal"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	participantID, err := loadIdentity(conf)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStore()

	playerRepo := repository.NewPlayerRepository(store)
	gameRepo := repository.NewGameRepository(logger, store)
	gameManager := usecase.NewGameManager(logger, playerRepo, gameRepo)

	log.Info("Starting console", "store", conf.Store, "participant", participantID)

	console := terminal.New(logger, gameManager, os.Stdin, os.Stdout)
	if err = console.Start(ctx, participantID); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

func loadIdentity(conf *config.Config) (string, error) {
	path := conf.IdentityPath
	if path == "" {
		var err error
		if path, err = identity.DefaultPath(); err != nil {
			return "", err
		}
	}

	participantID, err := identity.LoadOrCreate(path)
	if err != nil {
		return "", fmt.Errorf("could not load participant id: %w", err)
	}

	return participantID, nil
}

// openStore - connects the configured document store; the returned func releases it.
func openStore(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.DocumentStore, func(), error) {
	switch conf.Store {
	case config.StorePostgres:
		postgresStorage, err := storage.NewPostgresStorage(ctx, conf.Postgres.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to postgres storage: %w", err)
		}

		if err = postgresStorage.Init(ctx); err != nil {
			postgresStorage.Close()
			return nil, nil, fmt.Errorf("could not init postgres storage: %w", err)
		}

		return repository.NewPostgresDocumentStore(logger, postgresStorage.Connection), postgresStorage.Close, nil
	default:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStore := func() {
			if err := redisStorage.Close(); err != nil {
				logger.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewRedisDocumentStore(redisStorage.Connection), closeStore, nil
	}
}
