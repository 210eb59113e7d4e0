package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// Verdict is the outcome of judging a board. Won is false while no line is
// complete. A full board without a winner is still NoWinnerYet here, the
// caller decides about a draw.
type Verdict struct {
	Won    bool
	Winner entity.Player
	Line   entity.Line
}

var NoWinnerYet = Verdict{}

// Judge scans entity.Lines in catalog order and returns the first line owned
// entirely by one player.
func Judge(board *entity.Board) Verdict {
	for _, line := range entity.Lines {
		sum := 0
		for _, pos := range line {
			sum += board.Get(pos.Row, pos.Col).Weight()
		}

		switch {
		case sum >= entity.Size*entity.Player1.Mark.Weight():
			return Verdict{Won: true, Winner: entity.Player1, Line: line}
		case sum <= entity.Size*entity.Player2.Mark.Weight():
			return Verdict{Won: true, Winner: entity.Player2, Line: line}
		}
	}

	return NoWinnerYet
}
