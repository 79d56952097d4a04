// Package moveset validates the list of move names a game is played with.
//
// A MoveSet is the ordered, duplicate-free, odd-length list of moves that
// the cyclic resolver in package outcome relies on. Position in the list
// defines the cycle order.
package moveset

import (
	"errors"
	"fmt"
	"slices"
)

// MinMoves is the smallest playable number of moves.
const MinMoves = 3

var (
	// ErrTooFewMoves is returned when fewer than MinMoves names are given.
	ErrTooFewMoves = errors.New("the number of moves is less than three")

	// ErrEvenCount is returned when an even number of names is given.
	ErrEvenCount = errors.New("the number of moves must be odd")

	// ErrDuplicateMove is returned when the same name appears more than once.
	ErrDuplicateMove = errors.New("there should be no repeated moves")
)

// MoveSet is a validated, immutable list of move names.
type MoveSet struct {
	names []string
}

// Validate checks moves and returns them as a MoveSet in their original order.
// The count is checked before parity, and parity before duplicates.
func Validate(moves []string) (MoveSet, error) {
	if len(moves) < MinMoves {
		return MoveSet{}, fmt.Errorf("%w: got %d", ErrTooFewMoves, len(moves))
	}
	if len(moves)%2 == 0 {
		return MoveSet{}, fmt.Errorf("%w: got %d", ErrEvenCount, len(moves))
	}

	unique := make(map[string]struct{}, len(moves))
	for _, name := range moves {
		unique[name] = struct{}{}
	}
	if len(unique) != len(moves) {
		return MoveSet{}, fmt.Errorf("%w: %q", ErrDuplicateMove, firstDuplicate(moves))
	}

	return MoveSet{
		names: slices.Clone(moves),
	}, nil
}

func firstDuplicate(moves []string) string {
	seen := make(map[string]struct{}, len(moves))
	for _, name := range moves {
		if _, ok := seen[name]; ok {
			return name
		}
		seen[name] = struct{}{}
	}
	return ""
}

// Len returns the number of moves.
func (m MoveSet) Len() int {
	return len(m.names)
}

// Name returns the move at position i. It panics if i is out of range.
func (m MoveSet) Name(i int) string {
	return m.names[i]
}

// Contains reports whether i is a valid move index.
func (m MoveSet) Contains(i int) bool {
	return i >= 0 && i < len(m.names)
}

// Names returns a copy of the move names in cycle order.
func (m MoveSet) Names() []string {
	return slices.Clone(m.names)
}
