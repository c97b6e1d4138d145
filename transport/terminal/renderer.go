package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	lip "github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const disc = "●"

// Renderer - draws the board of a session onto a terminal.
type Renderer struct {
	mu  sync.Mutex
	out io.Writer

	redStyle    lip.Style
	yellowStyle lip.Style
	emptyStyle  lip.Style
	headerStyle lip.Style
	bannerStyle lip.Style
	noticeStyle lip.Style
}

func NewRenderer(out io.Writer) *Renderer {
	// colors follow out, so a pipe or a buffer gets plain text
	renderer := lip.NewRenderer(out)

	return &Renderer{
		out: out,

		redStyle:    renderer.NewStyle().Foreground(lip.Color("#FF5555")).Bold(true),
		yellowStyle: renderer.NewStyle().Foreground(lip.Color("#F1FA8C")).Bold(true),
		emptyStyle:  renderer.NewStyle().Foreground(lip.Color("#6272A4")),
		headerStyle: renderer.NewStyle().Foreground(lip.Color("#BD93F9")).Bold(true),
		bannerStyle: renderer.NewStyle().Foreground(lip.Color("#50FA7B")).Bold(true),
		noticeStyle: renderer.NewStyle().Foreground(lip.Color("#FFB86C")),
	}
}

func (that *Renderer) Render(view entity.View) {
	that.print(that.Format(view))
}

// Notify - a one-line message outside the board, e.g. a prompt or an error.
func (that *Renderer) Notify(message string) {
	that.print(that.noticeStyle.Render(message) + "\n")
}

// Prompt - same as Notify, without the line break.
func (that *Renderer) Prompt(message string) {
	that.print(that.noticeStyle.Render(message))
}

// Format - the whole screen for one view.
func (that *Renderer) Format(view entity.View) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(that.headerStyle.Render(fmt.Sprintf("Room %s, you are %s", view.Room, that.markName(view.Seat.Mark()))))
	sb.WriteString("\n\n")

	if !view.Started {
		sb.WriteString(that.noticeStyle.Render("Waiting for the other player to start the game..."))
		sb.WriteString("\n")
		return sb.String()
	}

	for col := 1; col <= entity.Columns; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")

	for _, row := range view.Board {
		for _, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(that.cell(cell))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(that.status(view))
	sb.WriteString("\n")

	return sb.String()
}

func (that *Renderer) status(view entity.View) string {
	switch view.Outcome.Result {
	case entity.ResultWin:
		banner := that.markName(view.Outcome.Winner.Mark()) + that.bannerStyle.Render(" wins!")
		return banner + "\n" + that.noticeStyle.Render("Press r to play again, q to quit.")
	case entity.ResultDraw:
		return that.bannerStyle.Render("It's a draw!") + "\n" + that.noticeStyle.Render("Press r to play again, q to quit.")
	}

	status := that.markName(view.ActiveSeat.Mark()) + "'s turn"
	if view.MyTurn {
		status += " (you), pick a column 1-7"
	}

	return status
}

func (that *Renderer) cell(cell entity.Cell) string {
	switch cell {
	case entity.RedMark:
		return that.redStyle.Render(disc)
	case entity.YellowMark:
		return that.yellowStyle.Render(disc)
	default:
		return that.emptyStyle.Render("·")
	}
}

func (that *Renderer) markName(mark entity.Cell) string {
	switch mark {
	case entity.RedMark:
		return that.redStyle.Render(mark.String())
	case entity.YellowMark:
		return that.yellowStyle.Render(mark.String())
	default:
		return mark.String()
	}
}

func (that *Renderer) print(text string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, _ = io.WriteString(that.out, text)
}
