package connectfour

import (
	"strings"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const cellSeparator = " | "

// Board is a read-only view of a game grid. Row 0 is the bottom row.
type Board struct {
	grid [][]entity.Color
}

func (that Board) Rows() int {
	return len(that.grid)
}

func (that Board) Columns() int {
	if len(that.grid) == 0 {
		return 0
	}

	return len(that.grid[0])
}

// At returns the color at (row, column); positions off the board read as Empty.
func (that Board) At(row, column int) entity.Color {
	if row < 0 || row >= that.Rows() || column < 0 || column >= that.Columns() {
		return entity.Empty
	}

	return that.grid[row][column]
}

// Cells returns a deep copy of the grid indexed [row][column].
func (that Board) Cells() [][]entity.Color {
	cells := make([][]entity.Color, len(that.grid))
	for row := range that.grid {
		cells[row] = append([]entity.Color(nil), that.grid[row]...)
	}

	return cells
}

// String renders one line per row, top row first, with cells joined by " | ".
func (that Board) String() string {
	var sb strings.Builder

	for row := len(that.grid) - 1; row >= 0; row-- {
		for column, color := range that.grid[row] {
			if column > 0 {
				sb.WriteString(cellSeparator)
			}
			sb.WriteString(color.String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
