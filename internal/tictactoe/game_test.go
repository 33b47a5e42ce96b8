package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) (*Game, entity.Player, entity.Player) {
	t.Helper()

	playerX, playerO := entity.NewPlayers()

	return NewGame(entity.NewBoard(), playerX, playerO), playerX, playerO
}

func TestNewGame(t *testing.T) {
	// Given: a new game
	game, playerX, _ := newTestGame(t)

	// Then: the game is running, X is to move and the board is empty
	assert.Equal(t, StatusRunning, game.Status())
	assert.True(t, game.IsRunning())
	assert.Equal(t, playerX, game.Current())
	assert.Equal(t, "         ", game.Board().Serialize())
}

func TestGame_Place(t *testing.T) {
	t.Run("Non winning move passes the turn", func(t *testing.T) {
		// Given: a new game
		game, _, playerO := newTestGame(t)

		// When: player X places a mark
		err := game.Place(0, 0)
		require.NoError(t, err)

		// Then: the mark is on the board and it is O's turn
		assert.Equal(t, entity.MarkX, game.Board().Get(0, 0))
		assert.Equal(t, playerO, game.Current())
		assert.Equal(t, StatusRunning, game.Status())
	})

	t.Run("Winning move finishes the game and keeps the winner current", func(t *testing.T) {
		// Given: X at (0,0),(0,1) and O at (1,0),(1,1)
		game, playerX, _ := newTestGame(t)
		require.NoError(t, game.Place(0, 0))
		require.NoError(t, game.Place(1, 0))
		require.NoError(t, game.Place(0, 1))
		require.NoError(t, game.Place(1, 1))

		// When: X completes the first row
		err := game.Place(0, 2)
		require.NoError(t, err)

		// Then: the game is finished and X stays current
		assert.Equal(t, StatusFinished, game.Status())
		assert.Equal(t, playerX, game.Current())
		assert.Equal(t, OutcomeWin, game.Outcome())

		winner, ok := game.Winner()
		require.True(t, ok)
		assert.Equal(t, playerX, winner)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X in the center
		game, _, playerO := newTestGame(t)
		require.NoError(t, game.Place(1, 1))

		// When: O tries the same cell
		err := game.Place(1, 1)

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.MarkX, game.Board().Get(1, 1))
		assert.Equal(t, playerO, game.Current())
	})

	t.Run("Error on invalid cell", func(t *testing.T) {
		game, _, _ := newTestGame(t)

		assert.ErrorIs(t, game.Place(3, 0), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.Place(0, -1), apperror.ErrInvalidCell)
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a restored game that X has already won
		game, _, _ := newTestGame(t)
		require.NoError(t, game.Restore("XXX OO   "))

		// When: another mark is placed
		err := game.Place(2, 2)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.MarkEmpty, game.Board().Get(2, 2))
	})
}

func TestGame_Advance(t *testing.T) {
	t.Run("Swaps the player when nobody won", func(t *testing.T) {
		game, playerX, playerO := newTestGame(t)
		game.Board().Set(0, 0, entity.MarkX)

		game.Advance()
		assert.Equal(t, playerO, game.Current())

		game.Advance()
		assert.Equal(t, playerX, game.Current())
		assert.Equal(t, StatusRunning, game.Status())
	})

	t.Run("Keeps the player on a win", func(t *testing.T) {
		game, playerX, _ := newTestGame(t)
		game.Board().Set(0, 0, entity.MarkX)
		game.Board().Set(1, 1, entity.MarkX)
		game.Board().Set(2, 2, entity.MarkX)

		game.Advance()

		assert.Equal(t, playerX, game.Current())
		assert.Equal(t, StatusFinished, game.Status())
	})
}

func TestGame_Outcome(t *testing.T) {
	t.Run("Draw on a full board without a line", func(t *testing.T) {
		// Given: nine alternating placements that complete no line
		game, _, _ := newTestGame(t)
		moves := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 0}, {1, 2}, {2, 2}, {2, 1}}
		for _, move := range moves {
			require.NoError(t, game.Place(move[0], move[1]))
		}

		// Then: the board is full and there is no win
		assert.Equal(t, "XOXOXXOXO", game.Board().Serialize())
		assert.True(t, game.IsNoMoreChoice())
		assert.False(t, game.IsWin())
		assert.Equal(t, OutcomeDraw, game.Outcome())
	})

	t.Run("Full board with a line is a win", func(t *testing.T) {
		game, _, _ := newTestGame(t)
		require.NoError(t, game.Restore("XXXOOXOXO"))

		assert.True(t, game.IsNoMoreChoice())
		assert.Equal(t, OutcomeWin, game.Outcome())
	})

	t.Run("Ongoing game continues", func(t *testing.T) {
		game, _, _ := newTestGame(t)
		require.NoError(t, game.Place(1, 1))

		assert.Equal(t, OutcomeContinue, game.Outcome())
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	game, playerX, _ := newTestGame(t)
	require.NoError(t, game.Restore("OOOXX X  "))
	require.Equal(t, StatusFinished, game.Status())

	// When: the game is reset
	game.Reset()

	// Then: it is back to the initial state
	assert.Equal(t, StatusRunning, game.Status())
	assert.Equal(t, playerX, game.Current())
	assert.Equal(t, "         ", game.Board().Serialize())
}

func TestGame_Restore(t *testing.T) {
	t.Run("Empty board gives X the turn", func(t *testing.T) {
		game, playerX, _ := newTestGame(t)

		require.NoError(t, game.Restore("         "))

		assert.Equal(t, playerX, game.Current())
		assert.Equal(t, StatusRunning, game.Status())
	})

	t.Run("More X than O gives O the turn", func(t *testing.T) {
		game, _, playerO := newTestGame(t)

		require.NoError(t, game.Restore("X   O   X"))

		assert.Equal(t, playerO, game.Current())
		assert.Equal(t, StatusRunning, game.Status())
	})

	t.Run("Winning row of X finishes with X as winner", func(t *testing.T) {
		// Given: the saved state "XXX      "
		game, playerX, _ := newTestGame(t)

		// When: it is restored
		require.NoError(t, game.Restore("XXX      "))

		// Then: X is the winner even though the counts made O current first
		assert.Equal(t, StatusFinished, game.Status())
		assert.Equal(t, playerX, game.Current())
	})

	t.Run("Tied counts with an O line make O the winner", func(t *testing.T) {
		game, _, playerO := newTestGame(t)

		require.NoError(t, game.Restore("OOOXX X  "))

		assert.Equal(t, StatusFinished, game.Status())
		assert.Equal(t, playerO, game.Current())
	})

	t.Run("Tied counts with an X line make X the winner", func(t *testing.T) {
		// Given: a board no legal game reaches, X owns the diagonal with equal counts
		game, playerX, _ := newTestGame(t)

		require.NoError(t, game.Restore("XOOOX   X"))

		// Then: the winner comes from the line, not from count parity
		assert.Equal(t, StatusFinished, game.Status())
		assert.Equal(t, playerX, game.Current())
	})

	t.Run("Malformed state leaves the game untouched", func(t *testing.T) {
		// Given: a game in progress
		game, _, playerO := newTestGame(t)
		require.NoError(t, game.Place(0, 0))

		// When: a malformed state is restored
		err := game.Restore("XXX      X")

		// Then: a format error is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrInvalidFormat)
		assert.Equal(t, "X        ", game.Board().Serialize())
		assert.Equal(t, playerO, game.Current())
	})
}
