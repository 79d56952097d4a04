// Package outcome resolves a pair of moves using cyclic distance.
//
// For a set of n moves (n odd), let half = n/2. A challenger loses to any
// reference that sits 1..half positions after it in the cycle and beats the
// remaining half. Every move therefore beats exactly half others and loses to
// exactly half others.
package outcome

// Outcome is the result of a move from the challenger's point of view.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

// String returns the short form used in the help table.
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// Verdict returns the message shown to a user playing the challenger side.
func (o Outcome) Verdict() string {
	switch o {
	case Win:
		return "You win!"
	case Lose:
		return "You lose"
	default:
		return "Draw"
	}
}

// Steps returns how many positions forward reference lies from challenger
// in a cycle of n moves.
func Steps(challenger, reference, n int) int {
	return ((reference-challenger)%n + n) % n
}

// Resolve returns the outcome of challenger played against reference.
// Both indices must be in [0, n).
func Resolve(challenger, reference, n int) Outcome {
	steps := Steps(challenger, reference, n)
	switch {
	case steps == 0:
		return Draw
	case steps <= n/2:
		return Lose
	default:
		return Win
	}
}

// Matrix returns the n x n outcome table used for help display. Rows are the
// reference move and columns the challenger, so cell [r][c] is exactly
// Resolve(c, r, n).
func Matrix(n int) [][]Outcome {
	m := make([][]Outcome, n)
	for r := range m {
		m[r] = make([]Outcome, n)
		for c := range m[r] {
			m[r][c] = Resolve(c, r, n)
		}
	}
	return m
}
