package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_Opponent(t *testing.T) {
	assert.Equal(t, Red, Black.Opponent())
	assert.Equal(t, Black, Red.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestColor_JSON(t *testing.T) {
	t.Run("Encodes colors as labels", func(t *testing.T) {
		// When: a move is marshaled
		data, err := json.Marshal(Move{Row: 1, Column: 2, Color: Red})

		// Then: the color is written as its label
		require.NoError(t, err)
		assert.JSONEq(t, `{"row":1,"column":2,"color":"RED"}`, string(data))
	})

	t.Run("Rejects unknown labels", func(t *testing.T) {
		// Given: a payload with a bogus color
		var move Move

		// When: it is unmarshaled
		err := json.Unmarshal([]byte(`{"row":0,"column":0,"color":"GREEN"}`), &move)

		// Then: ErrUnknownColor should be returned
		require.ErrorIs(t, err, ErrUnknownColor)
	})

	t.Run("Rejects out of range values on encode", func(t *testing.T) {
		_, err := json.Marshal(Color(9))
		require.ErrorIs(t, err, ErrUnknownColor)
	})
}

func TestOutcome(t *testing.T) {
	t.Run("WinFor maps colors to wins", func(t *testing.T) {
		assert.Equal(t, BlackWins, WinFor(Black))
		assert.Equal(t, RedWins, WinFor(Red))
		assert.Equal(t, InProgress, WinFor(Empty))
	})

	t.Run("Winner maps wins back to colors", func(t *testing.T) {
		assert.Equal(t, Black, BlackWins.Winner())
		assert.Equal(t, Red, RedWins.Winner())
		assert.Equal(t, Empty, Draw.Winner())
		assert.Equal(t, Empty, InProgress.Winner())
	})

	t.Run("Labels match the console output", func(t *testing.T) {
		assert.Equal(t, "IN_PROGRESS", InProgress.String())
		assert.Equal(t, "DRAW", Draw.String())
	})

	t.Run("Text unmarshaling inverts String", func(t *testing.T) {
		for _, outcome := range []Outcome{InProgress, BlackWins, RedWins, Draw} {
			var decoded Outcome
			require.NoError(t, decoded.UnmarshalText([]byte(outcome.String())))
			assert.Equal(t, outcome, decoded)
		}
	})
}
