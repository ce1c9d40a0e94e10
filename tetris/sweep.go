package tetris

const linePoints = 10

// Sweep removes every full row below row 0, shifting the rows above it down
// and inserting an empty row at the top. The first line cleared in a call is
// worth 10 points and each further line in the same call is worth double the
// previous one.
//
// Row 0 is never inspected, so a full top row stays on the board.
func (a *Arena) Sweep() (lines, points int) {
	multiplier := 1

	for y := a.height - 1; y > 0; {
		if !a.rowFull(y) {
			y--
			continue
		}

		cleared := a.rows[y]
		copy(a.rows[1:y+1], a.rows[:y])
		clear(cleared)
		a.rows[0] = cleared

		lines++
		points += multiplier * linePoints
		multiplier *= 2
	}

	return lines, points
}
