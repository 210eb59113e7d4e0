package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrInvalidCell = errors.New("invalid cell position")

// MakeTurn places the mark of the player whose turn it is and moves the game
// to its next state.
func MakeTurn(game *entity.Game, pos entity.Position) error {
	if err := game.ConfirmAwaitingMove(); err != nil {
		return err
	}

	if err := validateMove(&game.Board, pos); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board.Set(pos.Row, pos.Col, game.Turn.Mark)
	game.Moves++
	updateGameStatus(game)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, pos entity.Position) error {
	if pos.Row < 0 || pos.Row >= entity.Size || pos.Col < 0 || pos.Col >= entity.Size {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidCell, pos.Row, pos.Col)
	}

	if !board.IsEmptyAt(pos) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game) {
	verdict := Judge(&game.Board)

	switch {
	case verdict.Won:
		winner := verdict.Winner
		game.Winner = &winner
		game.Status = entity.StatusWon
	case game.Board.IsFull():
		game.Status = entity.StatusDraw
	default:
		game.Turn = game.Turn.Opponent()
	}
}
