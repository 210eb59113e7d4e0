package entity

// Line is a set of positions that wins the game when uniformly marked.
type Line [Size]Position

// Lines is the catalog of winning lines: rows, then columns, then the
// top-left to bottom-right diagonal and the top-right to bottom-left one.
// It is built once and must not be modified.
var Lines = buildLines(Size)

func buildLines(size int) []Line {
	lines := make([]Line, 0, 2*size+2)

	for row := range size {
		var line Line
		for col := range size {
			line[col] = Position{Row: row, Col: col}
		}
		lines = append(lines, line)
	}

	for col := range size {
		var line Line
		for row := range size {
			line[row] = Position{Row: row, Col: col}
		}
		lines = append(lines, line)
	}

	var diagonal, antiDiagonal Line
	for i := range size {
		diagonal[i] = Position{Row: i, Col: i}
		antiDiagonal[i] = Position{Row: i, Col: size - 1 - i}
	}

	return append(lines, diagonal, antiDiagonal)
}
