package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

var ErrUnknownCommand = errors.New("unknown command")

type stateRepo interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, state string) error
}

// GameManager - dispatches commands of the presentation layer to the game and persists the board.
type GameManager struct {
	logger    *slog.Logger
	stateRepo stateRepo

	game *tictactoe.Game
}

func NewGameManager(logger *slog.Logger, stateRepo stateRepo, game *tictactoe.Game) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		stateRepo: stateRepo,

		game: game,
	}
}

// Load - restores the saved board. A missing or broken state is not an error, the game starts fresh.
// The returned outcome asks for a prompt when the restored board is already won or drawn.
func (that *GameManager) Load(ctx context.Context) Outcome {
	log := that.logger.With("method", "Load")

	that.game.Reset()

	state, err := that.stateRepo.Load(ctx)
	switch {
	case errors.Is(err, apperror.ErrStateNotFound):
		log.Info("No saved state was loaded")
		return that.outcome()
	case err != nil:
		log.Warn("could not read saved state, starting a fresh game", "error", err)
		return that.outcome()
	}

	if err = that.game.Restore(state); err != nil {
		log.Info("State not properly formatted, reset the game", "error", err)
		return that.outcome()
	}

	log.Debug("state restored", "current", that.game.Current().Symbol(), "status", that.game.Status().String())

	return that.outcome()
}

// Handle - applies a command and reports what the presentation layer should show.
func (that *GameManager) Handle(ctx context.Context, cmd Command) (Outcome, error) {
	switch cmd := cmd.(type) {
	case PlaceMark:
		return that.placeMark(cmd)
	case Restart:
		if !cmd.Confirmed {
			return that.Exit(ctx), nil
		}

		that.Reset()

		return that.outcome(), nil
	case Quit:
		return that.Exit(ctx), nil
	default:
		return Outcome{Kind: KindIgnored}, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

func (that *GameManager) Reset() {
	that.game.Reset()
	that.logger.Debug("game reset")
}

// Save - writes the board to storage. Failures are logged and the game goes on.
func (that *GameManager) Save(ctx context.Context) {
	log := that.logger.With("method", "Save")

	if err := that.stateRepo.Save(ctx, that.game.Board().Serialize()); err != nil {
		log.Error("An unexpected error occurred while saving state", "error", err)
		return
	}

	log.Debug("state saved")
}

// Exit - saves the board and asks the presentation layer to close.
func (that *GameManager) Exit(ctx context.Context) Outcome {
	that.Save(ctx)

	outcome := that.outcome()
	outcome.Kind = KindTerminate

	return outcome
}

// Outcome - the current state as the presentation layer should render it.
func (that *GameManager) Outcome() Outcome {
	return that.outcome()
}

func (that *GameManager) placeMark(cmd PlaceMark) (Outcome, error) {
	player := that.game.Current()

	if err := that.game.Place(cmd.Row, cmd.Col); err != nil {
		ignored := that.outcome()
		ignored.Kind = KindIgnored

		return ignored, fmt.Errorf("failed to place mark: %w", err)
	}

	that.logger.Debug("mark placed", "player", player.Symbol(), "row", cmd.Row, "col", cmd.Col)

	return that.outcome(), nil
}

func (that *GameManager) outcome() Outcome {
	board := that.game.Board()

	outcome := Outcome{
		Board:   board.Cells(),
		Current: that.game.Current(),
	}

	switch that.game.Outcome() {
	case tictactoe.OutcomeWin:
		outcome.Kind = KindWin
		outcome.Winner, _ = that.game.Winner()
		outcome.Line, _ = board.WinningLine()
	case tictactoe.OutcomeDraw:
		outcome.Kind = KindDraw
	default:
		outcome.Kind = KindContinue
	}

	return outcome
}
