package entity

// Size is the length of a board side and of every winning line.
const Size = 3

// Cell is the state of a single board square. The value doubles as the
// weight used when summing a line: O counts +1, X counts -1.
type Cell int8

const (
	EmptyCell Cell = 0
	MarkO     Cell = 1
	MarkX     Cell = -1
)

func (that Cell) Weight() int {
	return int(that)
}

func (that Cell) String() string {
	switch that {
	case MarkO:
		return "o"
	case MarkX:
		return "x"
	default:
		return " "
	}
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is addressed by (row, col), both in [0, Size). Out-of-range access panics.
type Board [Size][Size]Cell

func NewBoard() Board {
	return Board{}
}

func (that *Board) Get(row, col int) Cell {
	return that[row][col]
}

// Set puts mark into the cell. The cell is expected to be empty, callers check that.
func (that *Board) Set(row, col int, mark Cell) {
	that[row][col] = mark
}

func (that *Board) IsEmptyAt(pos Position) bool {
	return that.Get(pos.Row, pos.Col) == EmptyCell
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}
