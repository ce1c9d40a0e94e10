package tetris

import "slices"

// ShapeID identifies a tetromino. The same value is written into arena
// cells when a piece locks, so it doubles as the palette index. Zero is an
// empty cell.
type ShapeID uint8

const (
	Empty ShapeID = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

const (
	// ShapeCount is the number of real tetrominoes in the catalog.
	ShapeCount = 7
	// MatrixSize is the side length of every shape matrix.
	MatrixSize = 4
)

var shapeNames = [ShapeCount + 1]string{"empty", "I", "J", "L", "O", "S", "T", "Z"}

func (id ShapeID) String() string {
	if int(id) >= len(shapeNames) {
		return "invalid"
	}
	return shapeNames[id]
}

// Valid reports whether id names a real tetromino.
func (id ShapeID) Valid() bool {
	return id >= ShapeI && id <= ShapeZ
}

// Matrix is a square occupancy grid indexed [row][col].
type Matrix [MatrixSize][MatrixSize]ShapeID

var catalog = [ShapeCount + 1]Matrix{
	{},
	{ // I
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	},
	{ // J
		{0, 2, 0, 0},
		{0, 2, 0, 0},
		{2, 2, 0, 0},
		{0, 0, 0, 0},
	},
	{ // L
		{0, 3, 0, 0},
		{0, 3, 0, 0},
		{0, 3, 3, 0},
		{0, 0, 0, 0},
	},
	{ // O
		{4, 4, 0, 0},
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{ // S
		{0, 5, 5, 0},
		{5, 5, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{ // T
		{6, 6, 6, 0},
		{0, 6, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{ // Z
		{7, 7, 0, 0},
		{0, 7, 7, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

// Shape returns a copy of the catalog template for id. Unknown ids yield an
// empty matrix.
func Shape(id ShapeID) Matrix {
	if int(id) >= len(catalog) {
		return Matrix{}
	}
	return catalog[id]
}

// Rotate turns the matrix a quarter turn in place: a transpose followed by
// reversing each row (clockwise) or the row order (counter-clockwise).
func (m *Matrix) Rotate(clockwise bool) {
	for y := range MatrixSize {
		for x := 0; x < y; x++ {
			m[x][y], m[y][x] = m[y][x], m[x][y]
		}
	}

	if clockwise {
		for y := range m {
			slices.Reverse(m[y][:])
		}
	} else {
		slices.Reverse(m[:])
	}
}

// Occupied returns the number of nonzero cells.
func (m *Matrix) Occupied() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}
