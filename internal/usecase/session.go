package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var ErrSessionClosed = errors.New("session is closed")

type gameRepo interface {
	Save(ctx context.Context, room string, game *entity.Game) error
	CreateIfAbsent(ctx context.Context, room string, game *entity.Game) (*entity.Game, error)
	Restart(ctx context.Context, room string, finished *entity.Game) (*entity.Game, error)
	Watch(ctx context.Context, room string) (<-chan *entity.Game, error)
}

// Renderer - the presentation side of a session. Render is called with the session
// locked and must not call back into the session.
type Renderer interface {
	Render(view entity.View)
}

// GameSynchronizer - bridges a room's shared game record and the local board.
type GameSynchronizer struct {
	logger   *slog.Logger
	gameRepo gameRepo
}

func NewGameSynchronizer(logger *slog.Logger, gameRepo gameRepo) *GameSynchronizer {
	return &GameSynchronizer{
		logger:   logger.With("component", "game-synchronizer"),
		gameRepo: gameRepo,
	}
}

// Open - initializes the room's game record and subscribes to it.
// The session lives until Close is called or ctx is done.
func (that *GameSynchronizer) Open(ctx context.Context, room string, seat entity.Seat, renderer Renderer) (*Session, error) {
	room, err := NormalizeRoom(room)
	if err != nil {
		return nil, err
	}

	if !seat.IsValid() {
		return nil, fmt.Errorf("unknown seat %q", seat)
	}

	watchCtx, cancel := context.WithCancel(ctx)

	session := &Session{
		logger:   that.logger.With("room", room, "seat", seat),
		gameRepo: that.gameRepo,
		renderer: renderer,
		room:     room,
		seat:     seat,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	if err = session.initialize(ctx); err != nil {
		cancel()
		return nil, err
	}

	games, err := that.gameRepo.Watch(watchCtx, room)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to subscribe to room %s: %w", room, apperror.Unavailable(err))
	}

	go session.listen(games)

	return session, nil
}

// Session - one participant's view of one room.
type Session struct {
	logger   *slog.Logger
	gameRepo gameRepo
	renderer Renderer

	room string
	seat entity.Seat

	mu      sync.Mutex
	game    *entity.Game
	outcome entity.Outcome
	closed  bool

	cancel context.CancelFunc
	done   chan struct{}
}

func (that *Session) Room() string {
	return that.room
}

func (that *Session) Seat() entity.Seat {
	return that.seat
}

func (that *Session) MyTurn() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.myTurn()
}

func (that *Session) View() entity.View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.view()
}

// Done - closed once the subscription has ended.
func (that *Session) Done() <-chan struct{} {
	return that.done
}

// Close - unsubscribes; no render happens after Close returns.
func (that *Session) Close() {
	that.mu.Lock()
	that.closed = true
	that.mu.Unlock()

	that.cancel()
}

// SubmitMove - drops the local seat's disc into column, optimistically updates the local
// board and writes the whole record. An illegal move changes nothing. When the write fails
// the local board is rolled back and the error wraps apperror.ErrStoreUnavailable.
func (that *Session) SubmitMove(ctx context.Context, column int) error {
	log := that.logger.With("method", "SubmitMove")

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.confirmMyTurn(); err != nil {
		log.Debug("move ignored", "column", column, "error", err)
		return err
	}

	prevGame, prevOutcome := that.game, that.outcome

	next := that.game.Clone()
	row, err := next.Board.ApplyMove(column, that.seat.Mark())
	if err != nil {
		log.Debug("move ignored", "column", column, "error", err)
		return fmt.Errorf("invalid move: %w", err)
	}
	next.PassTurn()

	that.game = next
	that.outcome = next.Board.OutcomeAfter(entity.Position{Row: row, Column: column})
	that.render()

	if err = that.gameRepo.Save(ctx, that.room, next); err != nil {
		log.Error("failed to save move", "column", column, "error", err)

		that.game, that.outcome = prevGame, prevOutcome
		that.render()

		return fmt.Errorf("failed to save move: %w", apperror.Unavailable(err))
	}

	if that.outcome.IsTerminal() {
		log.Info("game finished", "result", that.outcome.Result, "winner", that.outcome.Winner)
	}

	return nil
}

// Restart - starts the next round once the current one is finished.
// If the opponent restarted first, their record is adopted instead.
func (that *Session) Restart(ctx context.Context) error {
	log := that.logger.With("method", "Restart")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return ErrSessionClosed
	}

	if that.game == nil || !that.outcome.IsTerminal() {
		return apperror.ErrGameNotFinished
	}

	stored, err := that.gameRepo.Restart(ctx, that.room, that.game)
	if err != nil {
		log.Error("failed to restart game", "error", err)
		return fmt.Errorf("failed to restart game: %w", apperror.Unavailable(err))
	}

	that.reconcile(stored)
	log.Info("game restarted", "round", stored.Round)

	return nil
}

// initialize - seat1 creates the room's record when it is missing; seat2 waits for it.
func (that *Session) initialize(ctx context.Context) error {
	if that.seat != entity.Seat1 {
		return nil
	}

	game, err := that.gameRepo.CreateIfAbsent(ctx, that.room, entity.NewGame(0))
	if err != nil {
		return fmt.Errorf("failed to initialize room %s: %w", that.room, apperror.Unavailable(err))
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.reconcile(game)

	return nil
}

// listen - the single consumer of the room's change notifications.
func (that *Session) listen(games <-chan *entity.Game) {
	defer close(that.done)

	for game := range games {
		that.mu.Lock()
		that.reconcile(game)
		that.mu.Unlock()
	}

	that.logger.Debug("subscription ended")
}

// reconcile - replaces the local mirror with a received record. Caller holds the lock.
// Identical records are no-ops and older records are dropped, so redundant or reordered
// deliveries never re-render or announce the result twice.
func (that *Session) reconcile(next *entity.Game) {
	if that.closed || next == nil || next.Equal(that.game) {
		return
	}

	if next.IsOlderThan(that.game) {
		that.logger.Debug("stale record dropped", "round", next.Round, "pieces", next.Board.Pieces())
		return
	}

	var prevBoard *entity.Board
	outcome := entity.Outcome{}
	if that.game != nil && that.game.Round == next.Round {
		prevBoard = &that.game.Board
		outcome = that.outcome
	}

	if !outcome.IsTerminal() {
		outcome = next.Board.OutcomeAfter(next.Board.PlacedSince(prevBoard)...)
		if outcome.IsTerminal() {
			that.logger.Info("game finished", "result", outcome.Result, "winner", outcome.Winner)
		}
	}

	that.game = next.Clone()
	that.outcome = outcome
	that.render()
}

func (that *Session) confirmMyTurn() error {
	switch {
	case that.closed:
		return ErrSessionClosed
	case that.game == nil:
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameIsNotStarted)
	case that.outcome.IsTerminal():
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	case !that.myTurn():
		return apperror.ErrNotYourTurn
	default:
		return nil
	}
}

func (that *Session) myTurn() bool {
	return that.game != nil && !that.outcome.IsTerminal() && that.game.ActiveSeat == that.seat
}

func (that *Session) view() entity.View {
	view := entity.View{
		Room:    that.room,
		Seat:    that.seat,
		MyTurn:  that.myTurn(),
		Outcome: that.outcome,
	}

	if that.game != nil {
		view.Started = true
		view.Board = that.game.Board
		view.ActiveSeat = that.game.ActiveSeat
	}

	return view
}

func (that *Session) render() {
	if that.renderer != nil {
		that.renderer.Render(that.view())
	}
}
