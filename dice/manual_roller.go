package dice

import (
	"fmt"
	"sync"
)

// ManualRoller implements Roller for testing with predetermined results.
type ManualRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualRoller creates a new manual dice roller.
func NewManualRoller() *ManualRoller {
	return &ManualRoller{rolls: []int{}}
}

// SetNextRoll appends one predetermined roll result.
func (m *ManualRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the predetermined roll results.
func (m *ManualRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index.
func (m *ManualRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

func (m *ManualRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements Roller.Roll.
func (m *ManualRoller) Roll(count, sides int) (*RollResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid dice count %d", count)
	}
	if sides < 1 {
		return nil, fmt.Errorf("invalid dice size %d", sides)
	}

	rolls := make([]int, count)
	highest, lowest, total := 0, 0, 0
	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
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
	}

	return &RollResult{
		Total:   total,
		Rolls:   rolls,
		Highest: highest,
		Lowest:  lowest,
	}, nil
}
