package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownOutcome = errors.New("unknown outcome")

// Outcome is the classification of a game after the latest accepted move.
type Outcome int8

const (
	InProgress Outcome = iota
	BlackWins
	RedWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case InProgress:
		return "IN_PROGRESS"
	case BlackWins:
		return "BLACK"
	case RedWins:
		return "RED"
	case Draw:
		return "DRAW"
	default:
		return fmt.Sprintf("Outcome(%d)", int8(that))
	}
}

// IsFinished reports whether no further moves are expected.
func (that Outcome) IsFinished() bool {
	return that != InProgress
}

// Winner returns the winning color, or Empty for a draw or a game still in progress.
func (that Outcome) Winner() Color {
	switch that {
	case BlackWins:
		return Black
	case RedWins:
		return Red
	default:
		return Empty
	}
}

// WinFor maps a player color to its winning outcome.
func WinFor(color Color) Outcome {
	switch color {
	case Black:
		return BlackWins
	case Red:
		return RedWins
	default:
		return InProgress
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	if that < InProgress || that > Draw {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOutcome, int8(that))
	}

	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "IN_PROGRESS":
		*that = InProgress
	case "BLACK":
		*that = BlackWins
	case "RED":
		*that = RedWins
	case "DRAW":
		*that = Draw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, string(text))
	}

	return nil
}
