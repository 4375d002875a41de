package connectfour

import "github.com/rocketscienceinc/connectfour-backend/internal/entity"

// findOutcome - classifies the game after a checker landed on (placedRow, placedColumn).
// Only the row and the column through the placed cell are examined; diagonals never win.
func (that *Game) findOutcome(placedRow, placedColumn int) entity.Outcome {
	placed := that.grid[placedRow][placedColumn]

	if that.winsHorizontally(placedRow, placedColumn, placed) || that.winsVertically(placedRow, placedColumn, placed) {
		return entity.WinFor(placed)
	}

	if that.marks == that.rows*that.columns {
		return entity.Draw
	}

	return that.outcome
}

// winsHorizontally - tests every window of winLength columns in placedRow that contains placedColumn.
func (that *Game) winsHorizontally(placedRow, placedColumn int, placed entity.Color) bool {
	row := that.grid[placedRow]

	first := max(placedColumn-that.winLength+1, 0)
	last := min(placedColumn, that.columns-that.winLength)

	for start := first; start <= last; start++ {
		matched := true
		for column := start; column < start+that.winLength; column++ {
			if row[column] != placed {
				matched = false
				break
			}
		}

		if matched {
			return true
		}
	}

	return false
}

// winsVertically - counts matching checkers from placedRow downwards. Cells above
// the placed one are always empty, so the run can only extend towards row 0.
func (that *Game) winsVertically(placedRow, placedColumn int, placed entity.Color) bool {
	count := 0
	for row := placedRow; row >= 0 && count < that.winLength; row-- {
		if that.grid[row][placedColumn] != placed {
			break
		}
		count++
	}

	return count == that.winLength
}
