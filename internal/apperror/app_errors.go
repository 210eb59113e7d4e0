package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInputClosed       = errors.New("input stream is closed")
)
