package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

type gameHandler interface {
	Handle(ctx context.Context, cmd usecase.Command) (usecase.Outcome, error)
}

// Model is the terminal board. It only renders outcomes and forwards key presses as commands.
type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	handler gameHandler

	outcome usecase.Outcome
	row     int
	col     int

	terminated bool
}

// New - the startup outcome decides whether the restart prompt is shown right away.
func New(ctx context.Context, logger *slog.Logger, handler gameHandler, startup usecase.Outcome) *Model {
	return &Model{
		ctx:     ctx,
		logger:  logger.With("component", "tui"),
		handler: handler,
		outcome: startup,
		row:     1,
		col:     1,
	}
}

func (that *Model) Init() tea.Cmd {
	return nil
}

// Terminated - true once the game saved its state and asked to close.
func (that *Model) Terminated() bool {
	return that.terminated
}

func (that *Model) Outcome() usecase.Outcome {
	return that.outcome
}

func (that *Model) Cursor() (int, int) {
	return that.row, that.col
}

func (that *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return that, nil
	}

	key := keyMsg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		return that, that.dispatch(usecase.Quit{})
	}

	if that.outcome.NeedsPrompt() {
		switch key {
		case "y", "Y":
			return that, that.dispatch(usecase.Restart{Confirmed: true})
		case "n", "N":
			return that, that.dispatch(usecase.Restart{Confirmed: false})
		}

		return that, nil
	}

	switch key {
	case "up", "k":
		that.row = (that.row + entity.BoardSize - 1) % entity.BoardSize
	case "down", "j":
		that.row = (that.row + 1) % entity.BoardSize
	case "left", "h":
		that.col = (that.col + entity.BoardSize - 1) % entity.BoardSize
	case "right", "l":
		that.col = (that.col + 1) % entity.BoardSize
	case "enter", " ":
		return that, that.activate(that.row, that.col)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		cell := int(key[0] - '1')
		that.row, that.col = cell/entity.BoardSize, cell%entity.BoardSize

		return that, that.activate(that.row, that.col)
	}

	return that, nil
}

// activate forwards a cell only while the game runs and the cell is free.
func (that *Model) activate(row, col int) tea.Cmd {
	if !that.outcome.Board[row*entity.BoardSize+col].IsEmpty() {
		return nil
	}

	return that.dispatch(usecase.PlaceMark{Row: row, Col: col})
}

func (that *Model) dispatch(cmd usecase.Command) tea.Cmd {
	outcome, err := that.handler.Handle(that.ctx, cmd)
	if err != nil {
		if !errors.Is(err, apperror.ErrCellOccupied) && !errors.Is(err, apperror.ErrGameFinished) {
			that.logger.Error("command failed", "command", cmd, "error", err)
		}

		return nil
	}

	that.outcome = outcome

	if outcome.Kind == usecase.KindTerminate {
		that.terminated = true
		return tea.Quit
	}

	return nil
}
