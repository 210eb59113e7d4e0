package entity

// Score is the running tally of finished games.
type Score struct {
	Player1 int64 `json:"player1"`
	Player2 int64 `json:"player2"`
	Draws   int64 `json:"draws"`
}
