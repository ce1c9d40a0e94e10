package tetris

// Arena is the grid of locked cells. Row 0 is the top of the board.
type Arena struct {
	width  int
	height int
	rows   [][]ShapeID
}

// NewArena creates an empty width x height arena.
func NewArena(width, height int) *Arena {
	rows := make([][]ShapeID, height)
	for y := range rows {
		rows[y] = make([]ShapeID, width)
	}
	return &Arena{
		width:  width,
		height: height,
		rows:   rows,
	}
}

func (a *Arena) Width() int  { return a.width }
func (a *Arena) Height() int { return a.height }

// Cell returns the value at column x, row y, or Empty outside the arena.
func (a *Arena) Cell(x, y int) ShapeID {
	if !a.contains(x, y) {
		return Empty
	}
	return a.rows[y][x]
}

// Set writes id at column x, row y. Writes outside the arena are dropped.
func (a *Arena) Set(x, y int, id ShapeID) {
	if !a.contains(x, y) {
		return
	}
	a.rows[y][x] = id
}

// Row returns a copy of row y.
func (a *Arena) Row(y int) []ShapeID {
	if y < 0 || y >= a.height {
		return nil
	}
	row := make([]ShapeID, a.width)
	copy(row, a.rows[y])
	return row
}

// Rows returns a deep copy of the grid.
func (a *Arena) Rows() [][]ShapeID {
	rows := make([][]ShapeID, a.height)
	for y := range rows {
		rows[y] = a.Row(y)
	}
	return rows
}

// Merge locks the piece into the arena. The caller must have checked that
// the piece does not collide at its current position.
func (a *Arena) Merge(p *Piece) {
	for r, row := range p.Matrix {
		for c, v := range row {
			if v != Empty {
				a.rows[p.Y+r][p.X+c] = p.Color
			}
		}
	}
}

// Clear empties every cell.
func (a *Arena) Clear() {
	for _, row := range a.rows {
		clear(row)
	}
}

// Filled returns the number of nonzero cells.
func (a *Arena) Filled() int {
	n := 0
	for _, row := range a.rows {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

func (a *Arena) contains(x, y int) bool {
	return x >= 0 && x < a.width && y >= 0 && y < a.height
}

func (a *Arena) rowFull(y int) bool {
	if a.width == 0 {
		return false
	}
	for _, v := range a.rows[y] {
		if v == Empty {
			return false
		}
	}
	return true
}
