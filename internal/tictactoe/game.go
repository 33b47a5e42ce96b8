package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type Status int

const (
	StatusRunning Status = iota
	StatusFinished
)

func (that Status) String() string {
	switch that {
	case StatusRunning:
		return "running"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(that))
	}
}

// Outcome is the evaluation of the board after a move.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWin
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(that))
	}
}

// Game owns whose turn it is and whether the round is still running.
// It reads the board to evaluate wins and draws; cells are written only through Place, Reset and Restore.
type Game struct {
	board *entity.Board

	first  entity.Player
	second entity.Player

	current entity.Player
	status  Status
}

func NewGame(board *entity.Board, first, second entity.Player) *Game {
	return &Game{
		board:   board,
		first:   first,
		second:  second,
		current: first,
		status:  StatusRunning,
	}
}

func (that *Game) Board() *entity.Board {
	return that.board
}

func (that *Game) Current() entity.Player {
	return that.current
}

func (that *Game) Status() Status {
	return that.status
}

func (that *Game) IsRunning() bool {
	return that.status == StatusRunning
}

// Place - puts the current player's mark on the cell and advances the game.
func (that *Game) Place(row, col int) error {
	if !that.IsRunning() {
		return apperror.ErrGameFinished
	}

	if !entity.InRange(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if !that.board.Get(row, col).IsEmpty() {
		return apperror.ErrCellOccupied
	}

	that.board.Set(row, col, that.current.Mark)
	that.Advance()

	return nil
}

// Advance - called after the current player placed a mark.
// A win finishes the game and keeps the winner as current player, otherwise the turn passes.
func (that *Game) Advance() {
	if that.IsWin() {
		that.status = StatusFinished
		return
	}

	that.current = that.opponent(that.current)
}

func (that *Game) IsWin() bool {
	_, ok := that.board.WinningLine()
	return ok
}

// Winner returns the player whose mark occupies the winning line.
func (that *Game) Winner() (entity.Player, bool) {
	line, ok := that.board.WinningLine()
	if !ok {
		return entity.Player{}, false
	}

	mark := that.board.Cells()[line[0]]
	if mark == that.second.Mark {
		return that.second, true
	}

	return that.first, true
}

// IsNoMoreChoice - true when every cell already has a mark.
func (that *Game) IsNoMoreChoice() bool {
	return that.board.IsFull()
}

// Outcome evaluates win before draw, a full board with a line is a win.
func (that *Game) Outcome() Outcome {
	switch {
	case that.IsWin():
		return OutcomeWin
	case that.IsNoMoreChoice():
		return OutcomeDraw
	default:
		return OutcomeContinue
	}
}

func (that *Game) Reset() {
	that.board.Reset()
	that.current = that.first
	that.status = StatusRunning
}

// Restore - applies a saved board and derives whose turn it is.
// On a format error nothing is changed.
func (that *Game) Restore(state string) error {
	if err := that.board.Deserialize(state); err != nil {
		return fmt.Errorf("failed to restore board: %w", err)
	}

	// the first player starts, unless he already has more marks on the board
	that.current = that.first
	if that.board.Count(that.first.Mark) > that.board.Count(that.second.Mark) {
		that.current = that.second
	}

	that.status = StatusRunning

	if winner, ok := that.Winner(); ok {
		that.current = winner
		that.status = StatusFinished
	}

	return nil
}

func (that *Game) opponent(player entity.Player) entity.Player {
	if player.Is(that.first) {
		return that.second
	}

	return that.first
}
