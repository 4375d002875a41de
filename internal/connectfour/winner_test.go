package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

func TestGame_HorizontalWin(t *testing.T) {
	// Given: an 8 × 8 game where black moves first
	game, err := NewDefault(entity.Black)
	require.NoError(t, err)

	// When: black fills row 0 columns 0..2 while red stacks on top
	outcome := play(t, game,
		[2]int{0, 0}, [2]int{1, 0},
		[2]int{0, 1}, [2]int{1, 1},
		[2]int{0, 2}, [2]int{1, 2},
	)

	// Then: three in a row is not enough
	assert.Equal(t, entity.InProgress, outcome)

	// When: black completes the run at column 3
	outcome, err = game.TakeTurn(0, 3)

	// Then: black wins on the fourth checker
	require.NoError(t, err)
	assert.Equal(t, entity.BlackWins, outcome)
	assert.Equal(t, entity.BlackWins, game.Outcome())
	assert.Equal(t, entity.Red, game.Turn())
}

func TestGame_HorizontalWinInTheMiddle(t *testing.T) {
	// Given: red holds columns 2, 3 and 5 of the bottom row
	game, err := NewDefault(entity.Red)
	require.NoError(t, err)

	play(t, game,
		[2]int{0, 2}, [2]int{0, 0},
		[2]int{0, 3}, [2]int{0, 7},
		[2]int{0, 5}, [2]int{1, 0},
	)

	// When: red fills the gap at column 4
	outcome, err := game.TakeTurn(0, 4)

	// Then: the window 2..5 containing the placed cell wins
	require.NoError(t, err)
	assert.Equal(t, entity.RedWins, outcome)
}

func TestGame_HorizontalWinAtTheRightEdge(t *testing.T) {
	game, err := New(4, 5, 4, entity.Black)
	require.NoError(t, err)

	outcome := play(t, game,
		[2]int{0, 4}, [2]int{0, 0},
		[2]int{0, 3}, [2]int{1, 0},
		[2]int{0, 2}, [2]int{2, 0},
		[2]int{0, 1},
	)

	assert.Equal(t, entity.BlackWins, outcome)
}

func TestGame_BrokenRowDoesNotWin(t *testing.T) {
	game, err := NewDefault(entity.Black)
	require.NoError(t, err)

	// black at columns 0, 1, 3, 4 with red at 2
	outcome := play(t, game,
		[2]int{0, 0}, [2]int{0, 2},
		[2]int{0, 1}, [2]int{1, 2},
		[2]int{0, 3}, [2]int{1, 3},
		[2]int{0, 4},
	)

	assert.Equal(t, entity.InProgress, outcome)
}

func TestGame_VerticalWin(t *testing.T) {
	// Given: an 8 × 8 game where red moves first
	game, err := NewDefault(entity.Red)
	require.NoError(t, err)

	// When: red stacks three in column 6 while black plays in other columns
	outcome := play(t, game,
		[2]int{0, 6}, [2]int{0, 0},
		[2]int{1, 6}, [2]int{0, 1},
		[2]int{2, 6}, [2]int{0, 3},
	)
	assert.Equal(t, entity.InProgress, outcome)

	// When: red drops the fourth checker in column 6
	outcome, err = game.TakeTurn(3, 6)

	// Then: red wins
	require.NoError(t, err)
	assert.Equal(t, entity.RedWins, outcome)
}

func TestGame_VerticalRunInterrupted(t *testing.T) {
	game, err := New(6, 3, 3, entity.Black)
	require.NoError(t, err)

	// column 0 from the bottom: B R B B, then B on top would make three
	outcome := play(t, game,
		[2]int{0, 0}, [2]int{1, 0},
		[2]int{2, 0}, [2]int{0, 1},
		[2]int{3, 0}, [2]int{0, 2},
	)
	assert.Equal(t, entity.InProgress, outcome)

	outcome, err = game.TakeTurn(4, 0)
	require.NoError(t, err)
	assert.Equal(t, entity.BlackWins, outcome)
}

func TestGame_DiagonalDoesNotWin(t *testing.T) {
	// Given: a board where black builds a rising diagonal 0,0 → 3,3
	game, err := NewDefault(entity.Black)
	require.NoError(t, err)

	outcome := play(t, game,
		[2]int{0, 0}, [2]int{0, 1},
		[2]int{1, 1}, [2]int{0, 2},
		[2]int{1, 2}, [2]int{0, 3},
		[2]int{2, 2}, [2]int{1, 3},
		[2]int{0, 6}, [2]int{2, 3},
		[2]int{3, 3},
	)

	// Then: the diagonal is on the board
	for i := 0; i < 4; i++ {
		require.Equal(t, entity.Black, game.Board().At(i, i))
	}

	// Then: diagonals are not evaluated and the game goes on
	assert.Equal(t, entity.InProgress, outcome)
}

func TestGame_Draw(t *testing.T) {
	// Given: a 4 × 4 game needing four in a row
	game, err := New(4, 4, 4, entity.Black)
	require.NoError(t, err)

	// When: the board is filled in pairs of columns so no row or column holds four of a color
	// row colors: B R B R / B R B R / R B R B / R B R B
	cells := [][2]int{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 0}, {2, 3}, {2, 2},
		{3, 1}, {3, 0}, {3, 3},
	}
	outcome := play(t, game, cells...)

	// Then: the game goes on until the last cell
	assert.Equal(t, entity.InProgress, outcome)
	assert.Equal(t, 15, game.Marks())

	outcome, err = game.TakeTurn(3, 2)

	// Then: filling the last cell is a draw
	require.NoError(t, err)
	assert.Equal(t, entity.Draw, outcome)
	assert.Equal(t, 16, game.Marks())
}

func TestGame_FullBoard(t *testing.T) {
	t.Run("Full board without a line is a draw", func(t *testing.T) {
		game, err := New(1, 2, 2, entity.Black)
		require.NoError(t, err)

		outcome := play(t, game, [2]int{0, 0}, [2]int{0, 1})
		assert.Equal(t, entity.Draw, outcome)
	})

	t.Run("Win on the last cell beats the draw", func(t *testing.T) {
		game, err := New(1, 3, 2, entity.Black)
		require.NoError(t, err)

		// B _ R, then black fills the gap
		outcome := play(t, game, [2]int{0, 0}, [2]int{0, 2}, [2]int{0, 1})

		assert.Equal(t, entity.BlackWins, outcome)
		assert.Equal(t, 3, game.Marks())
	})
}

func TestGame_MoveAfterWin(t *testing.T) {
	// Given: a game black has already won vertically
	game, err := New(4, 4, 2, entity.Black)
	require.NoError(t, err)

	outcome := play(t, game, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0})
	require.Equal(t, entity.BlackWins, outcome)

	// When: the engine is asked for another legal move
	outcome, err = game.TakeTurn(0, 3)

	// Then: the move is accepted and the stored outcome is kept
	require.NoError(t, err)
	assert.Equal(t, entity.BlackWins, outcome)
	assert.Equal(t, entity.Red, game.Board().At(0, 3))
}
