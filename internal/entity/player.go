package entity

import "fmt"

// Player is one of the two seats at the board. Player1 always plays O and
// moves first, Player2 always plays X.
type Player struct {
	No   int  `json:"no"`
	Mark Cell `json:"mark"`
}

var (
	Player1 = Player{No: 1, Mark: MarkO}
	Player2 = Player{No: 2, Mark: MarkX}
)

// Opponent returns the player who moves after that.
func (that Player) Opponent() Player {
	if that == Player1 {
		return Player2
	}
	return Player1
}

func (that Player) String() string {
	return fmt.Sprintf("Player%d", that.No)
}
