package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	RowPrompt = "row [0, 1, 2] > "
	ColPrompt = "col [0, 1, 2] > "

	invalidCoordinateMessage = "\nEnter 0, 1, or 2\n\n"
	cellTakenMessage         = "\n(%d, %d) is already taken.\n\n"
)

// ReadLegalMove asks for a row and a column until they point at an empty cell.
func (that *Console) ReadLegalMove(board *entity.Board) (entity.Position, error) {
	for {
		row, err := that.ReadCoordinate(RowPrompt)
		if err != nil {
			return entity.Position{}, err
		}

		col, err := that.ReadCoordinate(ColPrompt)
		if err != nil {
			return entity.Position{}, err
		}

		pos := entity.Position{Row: row, Col: col}
		if board.IsEmptyAt(pos) {
			return pos, nil
		}

		that.printf(cellTakenMessage, row, col)
	}
}

// ReadCoordinate prompts until the line read is a single 0, 1 or 2.
// It fails only when the input can no longer be read.
func (that *Console) ReadCoordinate(prompt string) (int, error) {
	for {
		that.printf("%s", prompt)

		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		if coordinate, ok := parseCoordinate(line); ok {
			return coordinate, nil
		}

		that.logger.Debug("rejected coordinate", "input", line)
		that.printf(invalidCoordinateMessage)
	}
}

func (that *Console) readLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF) && line != "":
		// last line without a trailing newline
		return line, nil
	case errors.Is(err, io.EOF):
		return "", apperror.ErrInputClosed
	default:
		return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
	}
}

func parseCoordinate(line string) (int, bool) {
	line = strings.TrimSpace(line)
	if len(line) != 1 || line[0] < '0' || line[0] >= '0'+entity.Size {
		return 0, false
	}

	return int(line[0] - '0'), true
}
