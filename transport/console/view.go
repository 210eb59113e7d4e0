package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const rowSeparator = "-----------\n"

// RenderBoard draws the grid, every cell centered in three characters.
func RenderBoard(board *entity.Board) string {
	rows := make([]string, 0, entity.Size)

	for _, row := range board {
		cells := make([]string, 0, entity.Size)
		for _, cell := range row {
			cells = append(cells, " "+cell.String()+" ")
		}
		rows = append(rows, strings.Join(cells, "|")+"\n")
	}

	return strings.Join(rows, rowSeparator)
}

func (that *Console) ShowBoard(board *entity.Board) {
	that.printf("%s\n", RenderBoard(board))
}

func (that *Console) ShowMove(board *entity.Board) {
	that.printf("\n%s\n", RenderBoard(board))
}

func (that *Console) ShowTurn(player entity.Player) {
	that.printf("%s's turn\n", player)
}

func (that *Console) ShowWinner(player entity.Player) {
	that.printf("%s won!\n", player)
}

func (that *Console) ShowDraw() {
	that.printf("Draw!\n")
}

func (that *Console) ShowScore(score *entity.Score) {
	that.printf("Score: %s %d | %s %d | Draws %d\n",
		entity.Player1, score.Player1, entity.Player2, score.Player2, score.Draws)
}
