package tetris

// Piece is a falling tetromino. X and Y locate the top-left corner of the
// matrix in arena coordinates; Y may be negative while spawning or rotating.
type Piece struct {
	Matrix Matrix
	X, Y   int
	Color  ShapeID
}

// NewPiece spawns the tetromino id horizontally centred in an arena of the
// given width, at the top row. The matrix is a private copy of the template.
func NewPiece(id ShapeID, arenaWidth int) Piece {
	return Piece{
		Matrix: Shape(id),
		X:      arenaWidth/2 - MatrixSize/2,
		Y:      0,
		Color:  id,
	}
}

// Collides reports whether p overlaps a locked cell of a or leaves the arena
// through the left, right or bottom edge. The top edge is open: occupied
// cells above row 0 never collide.
func Collides(a *Arena, p *Piece) bool {
	for r, row := range p.Matrix {
		for c, v := range row {
			if v == Empty {
				continue
			}

			x := p.X + c
			y := p.Y + r

			if x < 0 || x >= a.width || y >= a.height {
				return true
			}

			if y >= 0 && a.rows[y][x] != Empty {
				return true
			}
		}
	}

	return false
}
