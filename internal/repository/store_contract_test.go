package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deliveryTimeout = 5 * time.Second

var errRejected = errors.New("rejected by update func")

// recvDocument - receive one delivery with a timeout so tests never hang.
func recvDocument(t *testing.T, ch <-chan []byte) []byte {
	t.Helper()

	select {
	case value, ok := <-ch:
		if !ok {
			t.Fatalf("subscription closed unexpectedly")
		}
		return value
	case <-time.After(deliveryTimeout):
		t.Fatalf("timed out waiting for document")
		return nil
	}
}

func recvNoDocument(t *testing.T, ch <-chan []byte, within time.Duration) {
	t.Helper()

	select {
	case value, ok := <-ch:
		if ok {
			t.Fatalf("expected no document within %v, got %q", within, value)
		}
	case <-time.After(within):
	}
}

// testDocumentStore - behaviour every DocumentStore backend must share.
func testDocumentStore(ctx context.Context, t *testing.T, store DocumentStore) {
	t.Helper()

	t.Run("Read of a missing document returns ErrDocumentNotFound", func(t *testing.T) {
		_, err := store.Read(ctx, "rooms/missing")

		require.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("Write replaces the whole value", func(t *testing.T) {
		// Given: a stored document
		require.NoError(t, store.Write(ctx, "rooms/write", []byte(`{"a":1}`)))

		// When: it is written again
		require.NoError(t, store.Write(ctx, "rooms/write", []byte(`{"b":2}`)))

		// Then: only the last value remains
		value, err := store.Read(ctx, "rooms/write")
		require.NoError(t, err)
		assert.Equal(t, `{"b":2}`, string(value))
	})

	t.Run("Subscribe delivers the current value and then every change", func(t *testing.T) {
		subCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		// Given: a stored document and a subscription to it
		require.NoError(t, store.Write(ctx, "rooms/sub", []byte("first")))
		updates, err := store.Subscribe(subCtx, "rooms/sub")
		require.NoError(t, err)

		// Then: the current value arrives immediately
		assert.Equal(t, "first", string(recvDocument(t, updates)))

		// When: the document changes
		require.NoError(t, store.Write(ctx, "rooms/sub", []byte("second")))

		// Then: the new value is delivered
		assert.Equal(t, "second", string(recvDocument(t, updates)))
	})

	t.Run("Subscribe to a missing document waits for the first write", func(t *testing.T) {
		subCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		updates, err := store.Subscribe(subCtx, "rooms/later")
		require.NoError(t, err)

		recvNoDocument(t, updates, 100*time.Millisecond)

		require.NoError(t, store.Write(ctx, "rooms/later", []byte("created")))
		assert.Equal(t, "created", string(recvDocument(t, updates)))
	})

	t.Run("Unread deliveries collapse to the latest value", func(t *testing.T) {
		subCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		updates, err := store.Subscribe(subCtx, "rooms/burst")
		require.NoError(t, err)

		// When: several writes happen before the subscriber reads
		for i := 1; i <= 5; i++ {
			require.NoError(t, store.Write(ctx, "rooms/burst", []byte(strconv.Itoa(i))))
		}

		// Then: the subscriber eventually sees the last one
		deadline := time.After(deliveryTimeout)
		for {
			select {
			case value := <-updates:
				if string(value) == "5" {
					return
				}
			case <-deadline:
				t.Fatalf("latest value never delivered")
			}
		}
	})

	t.Run("Subscription closes when its context ends", func(t *testing.T) {
		subCtx, cancel := context.WithCancel(ctx)

		updates, err := store.Subscribe(subCtx, "rooms/closing")
		require.NoError(t, err)

		cancel()

		select {
		case _, ok := <-updates:
			for ok {
				_, ok = <-updates
			}
		case <-time.After(deliveryTimeout):
			t.Fatalf("subscription was not closed")
		}
	})

	t.Run("Update sees nil for a missing document and stores the result", func(t *testing.T) {
		var seen []byte
		err := store.Update(ctx, "rooms/update", func(current []byte) ([]byte, error) {
			seen = current
			return []byte("created"), nil
		})
		require.NoError(t, err)
		assert.Nil(t, seen)

		value, err := store.Read(ctx, "rooms/update")
		require.NoError(t, err)
		assert.Equal(t, "created", string(value))
	})

	t.Run("Update returning nil leaves the document untouched", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "rooms/keep", []byte("original")))

		err := store.Update(ctx, "rooms/keep", func(current []byte) ([]byte, error) {
			assert.Equal(t, "original", string(current))
			return nil, nil
		})
		require.NoError(t, err)

		value, err := store.Read(ctx, "rooms/keep")
		require.NoError(t, err)
		assert.Equal(t, "original", string(value))
	})

	t.Run("Update passes the func error through unchanged", func(t *testing.T) {
		err := store.Update(ctx, "rooms/reject", func([]byte) ([]byte, error) {
			return nil, errRejected
		})

		require.ErrorIs(t, err, errRejected)

		_, err = store.Read(ctx, "rooms/reject")
		require.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("Update notifies subscribers", func(t *testing.T) {
		subCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		updates, err := store.Subscribe(subCtx, "rooms/update-notify")
		require.NoError(t, err)

		require.NoError(t, store.Update(ctx, "rooms/update-notify", func([]byte) ([]byte, error) {
			return []byte("updated"), nil
		}))

		assert.Equal(t, "updated", string(recvDocument(t, updates)))
	})

	t.Run("Concurrent updates are atomic", func(t *testing.T) {
		const workers = 8

		// When: several workers increment the same counter
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- store.Update(ctx, "rooms/counter", func(current []byte) ([]byte, error) {
					count := 0
					if current != nil {
						var err error
						if count, err = strconv.Atoi(string(current)); err != nil {
							return nil, err
						}
					}
					return []byte(strconv.Itoa(count + 1)), nil
				})
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		// Then: no increment is lost
		value, err := store.Read(ctx, "rooms/counter")
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(workers), string(value))
	})
}
