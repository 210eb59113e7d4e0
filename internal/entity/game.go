package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusAwaiting = "awaiting"
	StatusWon      = "won"
	StatusDraw     = "draw"
)

type Game struct {
	ID     string  `json:"id"`
	Board  Board   `json:"board"`
	Turn   Player  `json:"turn"`
	Winner *Player `json:"winner,omitempty"`
	Status string  `json:"status"`
	Moves  int     `json:"moves"`
}

func NewGame() *Game {
	return &Game{
		ID:     uuid.NewString(),
		Board:  NewBoard(),
		Turn:   Player1,
		Status: StatusAwaiting,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDraw
}

// ConfirmAwaitingMove returns an error unless the game still accepts moves.
func (that *Game) ConfirmAwaitingMove() error {
	switch that.Status {
	case StatusAwaiting:
		return nil
	case StatusWon, StatusDraw:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}
