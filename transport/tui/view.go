package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cellStyle   = lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	xStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	oStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	lineStyle   = lipgloss.NewStyle().Background(lipgloss.Color("28"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

func (that *Model) View() string {
	if that.terminated {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Tic Tac Toe"))
	sb.WriteString("\n")
	sb.WriteString(boardStyle.Render(that.renderBoard()))
	sb.WriteString("\n")

	if prompt := Prompt(that.outcome); prompt != "" {
		sb.WriteString(promptStyle.Render(prompt))
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("y: restart • n: quit"))
	} else {
		fmt.Fprintf(&sb, "\n%s to move\n", that.outcome.Current.Name)
		sb.WriteString(helpStyle.Render("arrows/hjkl: move • enter/space: place • 1-9: place • q: quit"))
	}

	sb.WriteString("\n")

	return sb.String()
}

// Prompt - the question asked once a round is over, empty while it runs.
func Prompt(outcome usecase.Outcome) string {
	switch outcome.Kind {
	case usecase.KindWin:
		return fmt.Sprintf("Player %s won the game. Do you want to restart?", outcome.Winner.Symbol())
	case usecase.KindDraw:
		return "Draw. Do you want to restart?"
	default:
		return ""
	}
}

func (that *Model) renderBoard() string {
	onLine := make(map[int]bool, len(that.outcome.Line))
	if that.outcome.Kind == usecase.KindWin {
		for _, i := range that.outcome.Line {
			onLine[i] = true
		}
	}

	separator := strings.Repeat("─", cellStyle.GetWidth())
	rows := make([]string, 0, 2*entity.BoardSize-1)

	for row := range entity.BoardSize {
		if row > 0 {
			rows = append(rows, strings.Join([]string{separator, separator, separator}, "┼"))
		}

		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			i := row*entity.BoardSize + col

			style := cellStyle
			switch {
			case onLine[i]:
				style = style.Inherit(lineStyle)
			case !that.outcome.NeedsPrompt() && row == that.row && col == that.col:
				style = style.Inherit(cursorStyle)
			}

			cells = append(cells, style.Render(renderMark(that.outcome.Board[i])))
		}

		rows = append(rows, strings.Join(cells, "│"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderMark(mark entity.Mark) string {
	switch mark {
	case entity.MarkX:
		return xStyle.Render(mark.String())
	case entity.MarkO:
		return oStyle.Render(mark.String())
	default:
		return " "
	}
}
