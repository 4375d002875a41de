package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

// Game is a persisted snapshot of one engine: its shape, grid, turn and outcome.
// Board is indexed [row][column] with row 0 at the bottom.
type Game struct {
	ID        string    `json:"id"`
	Rows      int       `json:"rows"`
	Columns   int       `json:"columns"`
	WinLength int       `json:"win_length"`
	Board     [][]Color `json:"board"`
	Turn      Color     `json:"player_turn"`
	Outcome   Outcome   `json:"outcome"`
	Marks     int       `json:"marks"`
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsFinished()
}

func (that *Game) IsOngoing() bool {
	return that.Outcome == InProgress
}

// ConfirmTurn - checks that the game still accepts moves and that color is the one to move.
func (that *Game) ConfirmTurn(color Color) error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case !color.IsPlayer():
		return fmt.Errorf("%w: %s", ErrUnknownColor, color)
	case that.Turn != color:
		return apperror.ErrNotYourTurn
	default:
		return nil
	}
}
