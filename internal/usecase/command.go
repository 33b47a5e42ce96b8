package usecase

import (
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Command is an intent captured by the presentation layer.
type Command interface {
	command()
}

// PlaceMark - the player to move activated a cell.
type PlaceMark struct {
	Row int
	Col int
}

// Restart - answer to the restart prompt, a refusal ends the program.
type Restart struct {
	Confirmed bool
}

// Quit - the window is being closed.
type Quit struct{}

func (PlaceMark) command() {}
func (Restart) command()   {}
func (Quit) command()      {}

type Kind int

const (
	// KindIgnored - the command was refused, nothing changed.
	KindIgnored Kind = iota
	// KindContinue - the board changed and the game goes on.
	KindContinue
	KindWin
	KindDraw
	// KindTerminate - state was saved, the presentation layer should close.
	KindTerminate
)

func (that Kind) String() string {
	switch that {
	case KindIgnored:
		return "ignored"
	case KindContinue:
		return "continue"
	case KindWin:
		return "win"
	case KindDraw:
		return "draw"
	case KindTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// Outcome is what the presentation layer renders after a command.
type Outcome struct {
	Kind    Kind
	Board   [entity.CellCount]entity.Mark
	Current entity.Player
	// Winner and Line are set only for KindWin.
	Winner entity.Player
	Line   entity.Line
}

// NeedsPrompt - the restart or quit question has to be asked.
func (that Outcome) NeedsPrompt() bool {
	return that.Kind == KindWin || that.Kind == KindDraw
}
