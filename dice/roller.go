// Package dice parses and evaluates roll expressions such as "2d6 + 3" or
// "@ability.mod + 2". The schema engine only orchestrates it: formula fields
// call Parse to confirm an expression is well-formed, Deterministic to reject
// randomness where it is forbidden, and Eval for a throwaway dry run.
package dice

import (
	"errors"
	"math/rand"
)

// Roller provides an interface for rolling dice.
// This allows us to inject different implementations for testing.
type Roller interface {
	// Roll rolls count dice with the given number of sides.
	Roll(count, sides int) (*RollResult, error)
}

// RollResult carries the outcome of one dice roll.
type RollResult struct {
	Total   int
	Rolls   []int
	Highest int
	Lowest  int
}

type randomRoller struct{}

// NewRandomRoller creates a new random dice roller.
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll.
func (r *randomRoller) Roll(count, sides int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	out := make([]int, count)
	highest, lowest, total := 0, 0, 0
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		total += roll
		if i == 0 {
			lowest = roll
			highest = roll
		}
		if roll < lowest {
			lowest = roll
		}
		if roll > highest {
			highest = roll
		}
		out[i] = roll
	}

	return &RollResult{
		Total:   total,
		Rolls:   out,
		Highest: highest,
		Lowest:  lowest,
	}, nil
}
