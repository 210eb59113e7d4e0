package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: player 1 moves first on an empty board
	require.NotNil(t, game)
	assert.Equal(t, Player1, game.Turn)
	assert.Equal(t, StatusAwaiting, game.Status)
	assert.Equal(t, NewBoard(), game.Board)
	assert.Nil(t, game.Winner)
	assert.Zero(t, game.Moves)

	// Then: the id is a valid uuid
	_, err := uuid.Parse(game.ID)
	require.NoError(t, err)
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("Awaiting game is not finished", func(t *testing.T) {
		game := &Game{Status: StatusAwaiting}

		assert.False(t, game.IsFinished())
		assert.False(t, game.IsWon())
		assert.False(t, game.IsDraw())
	})

	t.Run("Won game is finished", func(t *testing.T) {
		game := &Game{Status: StatusWon}

		assert.True(t, game.IsFinished())
		assert.True(t, game.IsWon())
	})

	t.Run("Drawn game is finished", func(t *testing.T) {
		game := &Game{Status: StatusDraw}

		assert.True(t, game.IsFinished())
		assert.True(t, game.IsDraw())
	})
}

func TestGame_ConfirmAwaitingMove(t *testing.T) {
	t.Run("Returns nil when game awaits a move", func(t *testing.T) {
		game := &Game{Status: StatusAwaiting}

		assert.NoError(t, game.ConfirmAwaitingMove())
	})

	t.Run("Returns ErrGameFinished when game is won or drawn", func(t *testing.T) {
		for _, status := range []string{StatusWon, StatusDraw} {
			game := &Game{Status: status}

			assert.ErrorIs(t, game.ConfirmAwaitingMove(), apperror.ErrGameFinished)
		}
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmAwaitingMove()

		require.ErrorIs(t, err, apperror.ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, Player2, Player1.Opponent())
	assert.Equal(t, Player1, Player2.Opponent())
	assert.Equal(t, MarkO, Player1.Mark)
	assert.Equal(t, MarkX, Player2.Mark)
	assert.Equal(t, "Player1", Player1.String())
	assert.Equal(t, "Player2", Player2.String())
}
