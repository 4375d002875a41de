// Package connectfour implements the rules engine of a gravity-drop grid game
// with a configurable board size and win length.
//
// A Game is not safe for concurrent use. Hosts that touch one engine from
// several goroutines must serialize every call, observers included.
package connectfour

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	DefaultRows      = 8
	DefaultColumns   = 8
	DefaultWinLength = 4
)

var (
	ErrConfiguration   = errors.New("invalid game configuration")
	ErrOutOfBounds     = errors.New("cell is out of bounds")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrUnsupportedDrop = errors.New("cell below is empty")
)

type Game struct {
	rows      int
	columns   int
	winLength int

	grid    [][]entity.Color
	marks   int
	turn    entity.Color
	outcome entity.Outcome

	observers observers
}

// New - creates a game with an empty board of rows × columns where first moves first.
func New(rows, columns, winLength int, first entity.Color) (*Game, error) {
	if err := ValidateDimensions(rows, columns, winLength); err != nil {
		return nil, err
	}

	if !first.IsPlayer() {
		return nil, fmt.Errorf("%w: first turn %s", ErrConfiguration, first)
	}

	grid := make([][]entity.Color, rows)
	cells := make([]entity.Color, rows*columns)
	for row := range grid {
		grid[row] = cells[row*columns : (row+1)*columns : (row+1)*columns]
	}

	game := &Game{
		rows:      rows,
		columns:   columns,
		winLength: winLength,
		grid:      grid,
	}
	game.Reset(first)

	return game, nil
}

// NewDefault - creates the standard 8 × 8 game with four in a row to win.
func NewDefault(first entity.Color) (*Game, error) {
	return New(DefaultRows, DefaultColumns, DefaultWinLength, first)
}

// ValidateDimensions - checks that a board of rows × columns can host a line of winLength.
func ValidateDimensions(rows, columns, winLength int) error {
	switch {
	case rows < 1:
		return fmt.Errorf("%w: rows %d", ErrConfiguration, rows)
	case columns < 1:
		return fmt.Errorf("%w: columns %d", ErrConfiguration, columns)
	case winLength < 1:
		return fmt.Errorf("%w: win length %d", ErrConfiguration, winLength)
	case winLength > rows || winLength > columns:
		return fmt.Errorf("%w: win length %d exceeds %d × %d board", ErrConfiguration, winLength, rows, columns)
	}

	return nil
}

// Reset - clears the board and starts a new game with first to move.
// Subscribers are kept. A non-player first leaves the game refusing every move until the next Reset.
func (that *Game) Reset(first entity.Color) {
	for row := range that.grid {
		clear(that.grid[row])
	}

	that.marks = 0
	that.turn = first
	that.outcome = entity.InProgress
}

// TakeTurn - drops the checker of the player to move into (row, column) and returns the new outcome.
// A rejected move leaves the game and its observers untouched.
func (that *Game) TakeTurn(row, column int) (entity.Outcome, error) {
	if err := that.validateMove(row, column); err != nil {
		return that.outcome, err
	}

	moved := that.turn

	that.grid[row][column] = moved
	that.marks++
	that.outcome = that.findOutcome(row, column)
	that.turn = moved.Opponent()

	that.observers.notify(entity.Move{Row: row, Column: column, Color: moved})

	return that.outcome, nil
}

// validateMove - checks the player to move, then bounds, occupancy and gravity, in that order.
func (that *Game) validateMove(row, column int) error {
	if !that.turn.IsPlayer() {
		return fmt.Errorf("%w: no player to move (turn %s)", ErrConfiguration, that.turn)
	}

	if row < 0 || row >= that.rows || column < 0 || column >= that.columns {
		return fmt.Errorf("%w: (%d, %d) on %d × %d board", ErrOutOfBounds, row, column, that.rows, that.columns)
	}

	if that.grid[row][column] != entity.Empty {
		return fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, row, column)
	}

	if row > 0 && that.grid[row-1][column] == entity.Empty {
		return fmt.Errorf("%w: (%d, %d)", ErrUnsupportedDrop, row, column)
	}

	return nil
}

func (that *Game) Turn() entity.Color {
	return that.turn
}

func (that *Game) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Game) Rows() int {
	return that.rows
}

func (that *Game) Columns() int {
	return that.columns
}

func (that *Game) WinLength() int {
	return that.winLength
}

// Marks returns how many cells hold a checker.
func (that *Game) Marks() int {
	return that.marks
}

// Board returns a read-only view of the grid. The view tracks later moves.
func (that *Game) Board() Board {
	return Board{grid: that.grid}
}

// DropRow returns the row a checker dropped into column would land on, or -1 if the column is full.
func (that *Game) DropRow(column int) int {
	if column < 0 || column >= that.columns {
		return -1
	}

	for row := 0; row < that.rows; row++ {
		if that.grid[row][column] == entity.Empty {
			return row
		}
	}

	return -1
}

func (that *Game) String() string {
	return that.Board().String()
}
