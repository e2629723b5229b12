package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// englishSolution clears the default English board down to one marble at (6,3).
var englishSolution = [][4]int{
	{1, 3, 3, 3}, {2, 1, 2, 3}, {0, 2, 2, 2}, {0, 4, 0, 2}, {2, 3, 2, 1}, {2, 0, 2, 2},
	{2, 4, 0, 4}, {2, 6, 2, 4}, {3, 2, 1, 2}, {0, 2, 2, 2}, {3, 0, 3, 2}, {3, 2, 1, 2},
	{3, 4, 1, 4}, {0, 4, 2, 4}, {3, 6, 3, 4}, {3, 4, 1, 4}, {5, 2, 3, 2}, {4, 0, 4, 2},
	{4, 2, 2, 2}, {1, 2, 3, 2}, {3, 2, 3, 4}, {4, 4, 2, 4}, {1, 4, 3, 4}, {4, 6, 4, 4},
	{4, 3, 4, 5}, {6, 4, 4, 4}, {3, 4, 5, 4}, {6, 2, 6, 4}, {6, 4, 4, 4}, {4, 5, 4, 3},
	{4, 3, 6, 3},
}

// triangleSolution clears the default triangle down to one marble at (2,0).
var triangleSolution = [][4]int{
	{2, 0, 0, 0}, {2, 2, 2, 0}, {0, 0, 2, 2}, {3, 0, 1, 0}, {3, 3, 1, 1}, {4, 0, 2, 2},
	{1, 1, 3, 3}, {3, 3, 3, 1}, {4, 2, 4, 0}, {4, 4, 4, 2}, {4, 2, 2, 0}, {1, 0, 3, 0},
	{4, 0, 2, 0},
}

func play(t *testing.T, b *Board, moves [][4]int) {
	t.Helper()
	for i, m := range moves {
		require.False(t, b.IsGameOver(), "game over before move %d", i)
		require.NoError(t, b.Move(m[0], m[1], m[2], m[3]), "move %d %v", i, m)
		require.Equal(t, b.Marbles(), b.Score(), "score drift after move %d", i)
	}
}

func TestIsGameOverFreshBoards(t *testing.T) {
	for _, topo := range []*Topology{English, European, Triangle} {
		b := mustBoard(t, topo)
		assert.False(t, b.IsGameOver(), topo.Name)
		assert.NotEmpty(t, b.LegalMoves(), topo.Name)
	}
}

func TestIsGameOverEnglishSolved(t *testing.T) {
	b := mustBoard(t, English)
	play(t, b, englishSolution)

	assert.Equal(t, 1, b.Score())
	s, _ := b.SlotAt(6, 3)
	assert.Equal(t, SlotMarble, s)
	assert.True(t, b.IsGameOver())
	assert.Empty(t, b.LegalMoves())
}

func TestIsGameOverTriangleSolved(t *testing.T) {
	b := mustBoard(t, Triangle)
	play(t, b, triangleSolution)

	assert.Equal(t, 1, b.Score())
	assert.True(t, b.IsGameOver())
}

func TestIsGameOverSingleCell(t *testing.T) {
	b := mustBoard(t, English, WithSize(1))
	assert.Equal(t, 0, b.Score())
	assert.True(t, b.IsGameOver())
}

func TestLegalMovesAfterFirstJump(t *testing.T) {
	b := mustBoard(t, English)
	require.NoError(t, b.Move(5, 3, 3, 3))

	want := []Move{
		{From: Pos{2, 3}, To: Pos{4, 3}},
		{From: Pos{4, 1}, To: Pos{4, 3}},
		{From: Pos{4, 5}, To: Pos{4, 3}},
	}
	assert.ElementsMatch(t, want, b.LegalMoves())
	for _, m := range want {
		assert.True(t, b.CanMove(m.From.Row, m.From.Col, m.To.Row, m.To.Col))
	}
}

func TestTriangleDiagonalKeepsGameAlive(t *testing.T) {
	// only a diagonal jump is left: marbles at (1,1) and (2,2), hole at (3,3)
	b := mustBoard(t, Triangle, WithSize(4), WithEmpty(3, 3))
	for r := 0; r < b.Size(); r++ {
		for c := 0; c <= r; c++ {
			if (r == 1 && c == 1) || (r == 2 && c == 2) || (r == 3 && c == 3) {
				continue
			}
			b.cells[r][c] = SlotEmpty
			b.score--
		}
	}
	require.Equal(t, 2, b.Score())
	require.Equal(t, b.Marbles(), b.Score())

	assert.False(t, b.IsGameOver())
	require.NoError(t, b.Move(1, 1, 3, 3))
	assert.True(t, b.IsGameOver())
}
