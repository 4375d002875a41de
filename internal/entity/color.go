package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownColor = errors.New("unknown color")

// Color is the value of a single board cell and also names the player that owns a checker.
type Color int8

const (
	Empty Color = iota
	Black
	Red
)

func (that Color) String() string {
	switch that {
	case Empty:
		return "EMPTY"
	case Black:
		return "BLACK"
	case Red:
		return "RED"
	default:
		return fmt.Sprintf("Color(%d)", int8(that))
	}
}

// IsPlayer reports whether the color belongs to one of the two players.
func (that Color) IsPlayer() bool {
	return that == Black || that == Red
}

// Opponent returns the other player color. Empty has no opponent and stays Empty.
func (that Color) Opponent() Color {
	switch that {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return Empty
	}
}

func (that Color) MarshalText() ([]byte, error) {
	if that != Empty && !that.IsPlayer() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, int8(that))
	}

	return []byte(that.String()), nil
}

func (that *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*that = color

	return nil
}

// ParseColor - parses color labels, case-sensitive.
func ParseColor(label string) (Color, error) {
	switch label {
	case "EMPTY", "":
		return Empty, nil
	case "BLACK":
		return Black, nil
	case "RED":
		return Red, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownColor, label)
	}
}
