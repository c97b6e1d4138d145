package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const notifyChannel = "documents"

const (
	selectQuery = `SELECT value FROM documents WHERE path = $1`
	upsertQuery = `INSERT INTO documents (path, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (path) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	notifyQuery = `SELECT pg_notify($1, $2)`
	lockQuery   = `SELECT pg_advisory_xact_lock(hashtext($1))`
)

type postgresDocuments struct {
	logger *slog.Logger
	pool   *pgxpool.Pool

	newBackOff func() backoff.BackOff
}

// NewPostgresDocumentStore - documents live in one table, changes are announced with
// NOTIFY on the "documents" channel carrying the changed path.
func NewPostgresDocumentStore(logger *slog.Logger, pool *pgxpool.Pool) DocumentStore {
	return &postgresDocuments{
		logger: logger.With("component", "postgres-documents"),
		pool:   pool,

		newBackOff: newRereadBackOff,
	}
}

func (that *postgresDocuments) Read(ctx context.Context, path string) ([]byte, error) {
	var value []byte

	err := that.pool.QueryRow(ctx, selectQuery, path).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}

	if err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("can't read document %s: %w", path, err))
	}

	return value, nil
}

func (that *postgresDocuments) Write(ctx context.Context, path string, value []byte) error {
	err := pgx.BeginFunc(ctx, that.pool, func(tx pgx.Tx) error {
		return upsert(ctx, tx, path, value)
	})
	if err != nil {
		return apperror.Unavailable(fmt.Errorf("can't write document %s: %w", path, err))
	}

	return nil
}

func (that *postgresDocuments) Update(ctx context.Context, path string, fn UpdateFunc) error {
	var fnErr error

	err := pgx.BeginFunc(ctx, that.pool, func(tx pgx.Tx) error {
		// serializes updates of one path, including the very first insert
		if _, err := tx.Exec(ctx, lockQuery, path); err != nil {
			return fmt.Errorf("can't lock document: %w", err)
		}

		var current []byte
		err := tx.QueryRow(ctx, selectQuery, path).Scan(&current)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("can't read document: %w", err)
		}

		next, err := fn(current)
		if err != nil {
			fnErr = err
			return err
		}

		if next == nil {
			return nil
		}

		return upsert(ctx, tx, path, next)
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return apperror.Unavailable(fmt.Errorf("can't update document %s: %w", path, err))
	}
}

func (that *postgresDocuments) Subscribe(ctx context.Context, path string) (<-chan []byte, error) {
	conn, err := that.pool.Acquire(ctx)
	if err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("can't acquire connection: %w", err))
	}

	if _, err = conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		conn.Release()
		return nil, apperror.Unavailable(fmt.Errorf("can't listen for %s: %w", path, err))
	}

	current, err := that.Read(ctx, path)
	if err != nil && !errors.Is(err, ErrDocumentNotFound) {
		conn.Release()
		return nil, err
	}

	out := make(chan []byte, 1)
	if current != nil {
		out <- current
	}

	go func() {
		defer close(out)
		defer func() {
			_, _ = conn.Exec(context.Background(), "UNLISTEN *")
			conn.Release()
		}()

		for {
			notification, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				return
			}

			if notification.Payload != path {
				continue
			}

			value, err := reread(ctx, that.logger, that.newBackOff(), that.Read, path)
			if errors.Is(err, ErrDocumentNotFound) {
				continue
			}

			if err != nil {
				// the subscriber sees the channel close and can subscribe again
				that.logger.Error("failed to read changed document, closing subscription", "path", path, "error", err)
				return
			}

			offerLatest(out, value)
		}
	}()

	return out, nil
}

func upsert(ctx context.Context, tx pgx.Tx, path string, value []byte) error {
	if _, err := tx.Exec(ctx, upsertQuery, path, value); err != nil {
		return fmt.Errorf("can't upsert document: %w", err)
	}

	if _, err := tx.Exec(ctx, notifyQuery, notifyChannel, path); err != nil {
		return fmt.Errorf("can't notify: %w", err)
	}

	return nil
}
