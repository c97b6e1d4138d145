package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	notifyPrefix = "notify:"

	// maxUpdateAttempts - optimistic transaction retries before giving up on a hot key.
	maxUpdateAttempts = 16
)

var ErrUpdateConflict = errors.New("document kept changing during update")

type redisDocuments struct {
	client *redis.Client
}

// NewRedisDocumentStore - documents are plain keys, notifications go through PUBLISH on "notify:<path>".
func NewRedisDocumentStore(client *redis.Client) DocumentStore {
	return &redisDocuments{
		client: client,
	}
}

func (that *redisDocuments) Read(ctx context.Context, path string) ([]byte, error) {
	value, err := that.client.Get(ctx, path).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDocumentNotFound
	}

	if err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("failed to get document %s: %w", path, err))
	}

	return value, nil
}

func (that *redisDocuments) Write(ctx context.Context, path string, value []byte) error {
	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		that.queueSet(ctx, pipe, path, value)
		return nil
	})
	if err != nil {
		return apperror.Unavailable(fmt.Errorf("failed to set document %s: %w", path, err))
	}

	return nil
}

func (that *redisDocuments) Update(ctx context.Context, path string, fn UpdateFunc) error {
	var fnErr error

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, path).Bytes()
		if errors.Is(err, redis.Nil) {
			current = nil
		} else if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			fnErr = err
			return err
		}

		if next == nil {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			that.queueSet(ctx, pipe, path, next)
			return nil
		})

		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		fnErr = nil

		err := that.client.Watch(ctx, txf, path)
		switch {
		case err == nil:
			return nil
		case fnErr != nil:
			return fnErr
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return apperror.Unavailable(fmt.Errorf("failed to update document %s: %w", path, err))
		}
	}

	return apperror.Unavailable(fmt.Errorf("%w: %s", ErrUpdateConflict, path))
}

func (that *redisDocuments) Subscribe(ctx context.Context, path string) (<-chan []byte, error) {
	pubsub := that.client.Subscribe(ctx, notifyPrefix+path)

	// wait for the subscription to be confirmed, so no write after the read below is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, apperror.Unavailable(fmt.Errorf("failed to subscribe to %s: %w", path, err))
	}

	current, err := that.Read(ctx, path)
	if err != nil && !errors.Is(err, ErrDocumentNotFound) {
		_ = pubsub.Close()
		return nil, err
	}

	out := make(chan []byte, 1)
	if current != nil {
		out <- current
	}

	messages := pubsub.Channel()

	go func() {
		defer close(out)
		defer pubsub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				offerLatest(out, []byte(msg.Payload))
			}
		}
	}()

	return out, nil
}

func (that *redisDocuments) queueSet(ctx context.Context, pipe redis.Pipeliner, path string, value []byte) {
	pipe.Set(ctx, path, value, 0)
	pipe.Publish(ctx, notifyPrefix+path, value)
}
