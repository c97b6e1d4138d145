package usecase

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/repository"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMemoryManager - a game manager over an in-process store shared by every participant.
func newMemoryManager(store repository.DocumentStore) *GameManager {
	return NewGameManager(
		discardLogger(),
		repository.NewPlayerRepository(store),
		repository.NewGameRepository(discardLogger(), store),
	)
}

type recordingRenderer struct {
	mu    sync.Mutex
	views []entity.View
}

func (that *recordingRenderer) Render(view entity.View) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.views = append(that.views, view)
}

func (that *recordingRenderer) Views() []entity.View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]entity.View(nil), that.views...)
}

func (that *recordingRenderer) Terminal() int {
	count := 0
	for _, view := range that.Views() {
		if view.Outcome.IsTerminal() {
			count++
		}
	}

	return count
}

// waitPieces - blocks until the session mirrors a board with the given number of discs.
func waitPieces(t *testing.T, session *Session, pieces int) {
	t.Helper()

	require.Eventually(t, func() bool {
		view := session.View()
		return view.Started && view.Board.Pieces() == pieces
	}, waitFor, tick, "session %s never saw %d pieces", session.Seat(), pieces)
}

func waitDone(t *testing.T, session *Session) {
	t.Helper()

	select {
	case <-session.Done():
	case <-time.After(waitFor):
		t.Fatalf("session did not finish")
	}
}
