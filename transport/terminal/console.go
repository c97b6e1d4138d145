package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

var (
	ErrNoInput          = errors.New("input closed before a room was chosen")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrSubscriptionLost = errors.New("lost the connection to the game")
)

// defaultReconnectDelay - pause before rejoining a room whose subscription ended.
const defaultReconnectDelay = time.Second

const (
	ActionDrop    = "drop"
	ActionRestart = "restart"
	ActionQuit    = "quit"
)

// Command - one line of player input.
type Command struct {
	Action string
	Column int
}

// ParseCommand - "1".."7" drops into that column (0-indexed in the result), "r" restarts, "q" quits.
// Any number is accepted as a column, the board decides whether it exists.
func ParseCommand(line string) (Command, error) {
	line = strings.ToLower(strings.TrimSpace(line))

	switch line {
	case "r", "restart":
		return Command{Action: ActionRestart}, nil
	case "q", "quit", "exit":
		return Command{Action: ActionQuit}, nil
	}

	column, err := strconv.Atoi(line)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}

	return Command{Action: ActionDrop, Column: column - 1}, nil
}

type uGame interface {
	Join(ctx context.Context, room, participantID string, renderer usecase.Renderer) (*usecase.Session, error)
}

type gameSession interface {
	SubmitMove(ctx context.Context, column int) error
	Restart(ctx context.Context) error
}

// Console - plays one room through a line-based terminal.
type Console struct {
	logger   *slog.Logger
	uGame    uGame
	in       io.Reader
	renderer *Renderer

	reconnectDelay time.Duration

	handlers map[string]func(ctx context.Context, session gameSession, command Command) error
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer) *Console {
	console := &Console{
		logger:   logger.With("component", "console"),
		uGame:    uGame,
		in:       in,
		renderer: NewRenderer(out),

		reconnectDelay: defaultReconnectDelay,

		handlers: make(map[string]func(context.Context, gameSession, Command) error),
	}

	console.handlers[ActionDrop] = console.handleDrop
	console.handlers[ActionRestart] = console.handleRestart

	return console
}

// Start - asks for a room, joins it as participantID and plays until quit, end of input or ctx is done.
// A lost subscription is not fatal: the room is joined again, and the player keeps seat and board.
func (that *Console) Start(ctx context.Context, participantID string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	session, err := that.join(ctx, participantID, lines)
	if err != nil {
		return err
	}

	for {
		err = that.handleCommands(ctx, session, lines)
		session.Close()

		if !errors.Is(err, ErrSubscriptionLost) {
			return err
		}

		if session, err = that.rejoin(ctx, session.Room(), participantID, lines); err != nil {
			return err
		}
	}
}

// rejoin - opens room again after its subscription ended; falls back to the room prompt.
func (that *Console) rejoin(ctx context.Context, room, participantID string, lines <-chan string) (*usecase.Session, error) {
	log := that.logger.With("method", "rejoin")

	log.Warn("subscription ended, rejoining", "room", room)
	that.renderer.Notify("Connection to the game lost, reconnecting...")

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(that.reconnectDelay):
	}

	session, err := that.uGame.Join(ctx, room, participantID, that.renderer)
	if err == nil {
		return session, nil
	}

	log.Warn("failed to rejoin room", "room", room, "error", err)
	that.renderer.Notify(fmt.Sprintf("Could not rejoin room %s.", room))

	return that.join(ctx, participantID, lines)
}

// join - prompts until a room accepts the participant.
func (that *Console) join(ctx context.Context, participantID string, lines <-chan string) (*usecase.Session, error) {
	log := that.logger.With("method", "join")

	for {
		that.renderer.Prompt("Enter room code (share with your friend): ")

		var line string
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case next, ok := <-lines:
			if !ok {
				return nil, ErrNoInput
			}
			line = next
		}

		room, err := usecase.NormalizeRoom(line)
		if err != nil {
			continue
		}

		session, err := that.uGame.Join(ctx, room, participantID, that.renderer)
		switch {
		case err == nil:
			return session, nil
		case errors.Is(err, apperror.ErrRoomFull):
			that.renderer.Notify("Room is full. Please use a different room code.")
		case errors.Is(err, apperror.ErrStoreUnavailable):
			log.Warn("failed to join room", "room", room, "error", err)
			that.renderer.Notify("Could not reach the game store, please try again.")
		default:
			return nil, fmt.Errorf("failed to join room: %w", err)
		}
	}
}

// handleCommands - processes player input until the game is left.
func (that *Console) handleCommands(ctx context.Context, session *usecase.Session, lines <-chan string) error {
	log := that.logger.With("method", "handleCommands")

	for {
		var line string
		select {
		case <-ctx.Done():
			return nil
		case <-session.Done():
			if ctx.Err() != nil {
				return nil
			}
			return ErrSubscriptionLost
		case next, ok := <-lines:
			if !ok {
				return nil
			}
			line = next
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		command, err := ParseCommand(line)
		if err != nil {
			that.renderer.Notify("Type a column 1-7, r to restart or q to quit.")
			continue
		}

		if command.Action == ActionQuit {
			log.Info("left the room", "room", session.Room())
			return nil
		}

		handler, ok := that.handlers[command.Action]
		if !ok {
			continue
		}

		if err = handler(ctx, session, command); err != nil {
			return err
		}
	}
}

func (that *Console) handleDrop(ctx context.Context, session gameSession, command Command) error {
	return that.report("handleDrop", session.SubmitMove(ctx, command.Column))
}

func (that *Console) handleRestart(ctx context.Context, session gameSession, _ Command) error {
	return that.report("handleRestart", session.Restart(ctx))
}

// report - turns a command failure into a notice; only a closed session ends the loop.
func (that *Console) report(method string, err error) error {
	log := that.logger.With("method", method)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrIllegalMove):
		log.Debug("command ignored", "error", err)
		return nil
	case errors.Is(err, apperror.ErrGameNotFinished):
		that.renderer.Notify("The game is still running.")
		return nil
	case errors.Is(err, apperror.ErrStoreUnavailable):
		log.Warn("command failed", "error", err)
		that.renderer.Notify("Could not reach the game store, please try again.")
		return nil
	default:
		return err
	}
}

// readLines - feeds input lines to the caller; the channel closes at end of input.
func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}

var _ usecase.Renderer = (*Renderer)(nil)
