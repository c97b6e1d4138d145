package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// maxRereadRetries - retries of a document read that follows a change notification.
const maxRereadRetries = 5

var ErrDocumentNotFound = errors.New("document not found")

// UpdateFunc - receives the current value (nil when absent) and returns the value to store.
// Returning a nil value leaves the document untouched.
type UpdateFunc func(current []byte) ([]byte, error)

// DocumentStore - a shared key-value document store with change notifications.
type DocumentStore interface {
	// Read - point-in-time read, ErrDocumentNotFound when absent.
	Read(ctx context.Context, path string) ([]byte, error)
	// Write - whole-value replace, followed by a change notification.
	Write(ctx context.Context, path string, value []byte) error
	// Update - atomic read-verify-write of a single document.
	Update(ctx context.Context, path string, fn UpdateFunc) error
	// Subscribe - delivers the current value once (if present) and then the latest value
	// after every change. The channel is closed when ctx is done.
	Subscribe(ctx context.Context, path string) (<-chan []byte, error)
}

// offerLatest - puts value into a 1-slot channel, replacing an unread older value.
// Must only be called by the single producer of out.
func offerLatest(out chan []byte, value []byte) {
	for {
		select {
		case out <- value:
			return
		default:
		}

		select {
		case <-out:
		default:
		}
	}
}

type readFunc func(ctx context.Context, path string) ([]byte, error)

func newRereadBackOff() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxInterval = 2 * time.Second

	return backoff.WithMaxRetries(policy, maxRereadRetries)
}

// reread - reads path after a change notification. A notification is not repeated, so a failed
// read is retried with policy; ErrDocumentNotFound is final.
func reread(ctx context.Context, logger *slog.Logger, policy backoff.BackOff, read readFunc, path string) ([]byte, error) {
	var value []byte

	operation := func() error {
		current, err := read(ctx, path)
		if errors.Is(err, ErrDocumentNotFound) {
			return backoff.Permanent(err)
		}

		if err != nil {
			return err
		}

		value = current
		return nil
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("failed to read changed document, retrying", "path", path, "wait", wait, "error", err)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		return nil, err
	}

	return value, nil
}

func roomPath(room string) string {
	return "rooms/" + room
}

func playersPath(room string) string {
	return roomPath(room) + "/players"
}
