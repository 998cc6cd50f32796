package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type view struct {
	markX  lipgloss.Style
	markO  lipgloss.Style
	hint   lipgloss.Style
	board  lipgloss.Style
	status lipgloss.Style
	score  lipgloss.Style
	errors lipgloss.Style
}

// newView - styles are bound to out, plain text when out is not a terminal.
func newView(out io.Writer) *view {
	renderer := lipgloss.NewRenderer(out)

	return &view{
		markX: renderer.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		markO: renderer.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		hint:  renderer.NewStyle().Foreground(lipgloss.Color("241")),
		board: renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		status: renderer.NewStyle().Bold(true),
		score:  renderer.NewStyle().Foreground(lipgloss.Color("241")),
		errors: renderer.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (that *view) render(game *entity.Game) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		that.board.Render(that.cells(game.Board)),
		that.status.Render(that.statusLine(game)),
		that.score.Render(scoreLine(game.Score)),
	)
}

// cells - empty cells show the key that plays them.
func (that *view) cells(board tictactoe.Board) string {
	rows := make([]string, 0, 3)

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)

		for col := 0; col < 3; col++ {
			i := row*3 + col

			switch board[i] {
			case tictactoe.X:
				cells = append(cells, that.markX.Render("X"))
			case tictactoe.O:
				cells = append(cells, that.markO.Render("O"))
			default:
				cells = append(cells, that.hint.Render(strconv.Itoa(i+1)))
			}
		}

		rows = append(rows, strings.Join(cells, " │ "))
	}

	return strings.Join(rows, "\n──┼───┼──\n")
}

func (that *view) statusLine(game *entity.Game) string {
	switch game.Status {
	case entity.StatusWonByX, entity.StatusWonByO:
		return fmt.Sprintf("%s wins! Press n for a new round.", game.Winner)
	case entity.StatusDraw:
		return "It's a tie! Press n for a new round."
	}

	if game.IsComputerTurn() {
		return fmt.Sprintf("Turn: %s (computer thinking)", game.Turn)
	}

	return fmt.Sprintf("Turn: %s", game.Turn)
}

func (that *view) problem(err error) string {
	return that.errors.Render(err.Error())
}

func (that *view) farewell(score entity.Score) string {
	return "Bye. " + scoreLine(score)
}

func scoreLine(score entity.Score) string {
	return fmt.Sprintf("Score X: %d  O: %d  Ties: %d", score.X, score.O, score.Ties)
}
