package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validSizes = []int{3, 5, 7, 9, 11, 21, 101}

func TestResolveClassic(t *testing.T) {
	// rock=0, paper=1, scissors=2 with the user as challenger
	const rock, paper, scissors = 0, 1, 2

	assert.Equal(t, Win, Resolve(rock, scissors, 3))
	assert.Equal(t, Lose, Resolve(rock, paper, 3))
	assert.Equal(t, Draw, Resolve(rock, rock, 3))

	assert.Equal(t, Win, Resolve(paper, rock, 3))
	assert.Equal(t, Lose, Resolve(scissors, rock, 3))
}

func TestResolveFiveMoves(t *testing.T) {
	assert.Equal(t, 2, Steps(0, 2, 5))
	assert.Equal(t, Lose, Resolve(0, 2, 5))
	assert.Equal(t, 3, Steps(0, 3, 5))
	assert.Equal(t, Win, Resolve(0, 3, 5))
	assert.Equal(t, Lose, Resolve(0, 1, 5))
	assert.Equal(t, Win, Resolve(0, 4, 5))
	assert.Equal(t, Lose, Resolve(4, 0, 5))
}

func TestResolveDrawOnDiagonal(t *testing.T) {
	for _, n := range validSizes {
		for i := range n {
			assert.Equal(t, Draw, Resolve(i, i, n), "n=%d i=%d", n, i)
		}
	}
}

func TestResolveAntisymmetric(t *testing.T) {
	for _, n := range validSizes {
		for i := range n {
			for j := range n {
				if i == j {
					continue
				}
				ij := Resolve(i, j, n)
				ji := Resolve(j, i, n)
				require.NotEqual(t, Draw, ij, "n=%d i=%d j=%d", n, i, j)
				assert.True(t, (ij == Win) != (ji == Win), "n=%d i=%d j=%d: %s vs %s", n, i, j, ij, ji)
			}
		}
	}
}

func TestEachMoveBeatsHalf(t *testing.T) {
	for _, n := range validSizes {
		for i := range n {
			wins, losses := 0, 0
			for j := range n {
				switch Resolve(i, j, n) {
				case Win:
					wins++
				case Lose:
					losses++
				}
			}
			assert.Equal(t, n/2, wins, "n=%d i=%d wins", n, i)
			assert.Equal(t, n/2, losses, "n=%d i=%d losses", n, i)
		}
	}
}

func TestMatrixMatchesResolve(t *testing.T) {
	for _, n := range validSizes {
		m := Matrix(n)
		require.Len(t, m, n)
		for r := range n {
			require.Len(t, m[r], n)
			for c := range n {
				assert.Equal(t, Resolve(c, r, n), m[r][c], "n=%d r=%d c=%d", n, r, c)
			}
			assert.Equal(t, Draw, m[r][r])
		}
	}
}

func TestMatrixClassicLayout(t *testing.T) {
	// rows: computer move, columns: user move
	want := [][]Outcome{
		{Draw, Win, Lose},
		{Lose, Draw, Win},
		{Win, Lose, Draw},
	}
	assert.Equal(t, want, Matrix(3))
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "Draw", Draw.String())
	assert.Equal(t, "Win", Win.String())
	assert.Equal(t, "Lose", Lose.String())
	assert.Equal(t, "Unknown", Outcome(9).String())

	assert.Equal(t, "Draw", Draw.Verdict())
	assert.Equal(t, "You win!", Win.Verdict())
	assert.Equal(t, "You lose", Lose.Verdict())
}
