// Package dice implements the five-dice set: values, hold flags and
// re-rolling of unheld dice.
package dice

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// Count is the number of dice in a set.
	Count = 5
	// Sides per die.
	Sides = 6
)

// ErrAllHeld indicates a roll was requested while every die is held.
var ErrAllHeld = errors.New("all dice are held")

type die struct {
	value int
	held  bool
}

// Set is an ordered set of exactly five dice. Randomness comes from the
// injected source so rolls are reproducible under a fixed seed.
type Set struct {
	dice [Count]die
	rng  *rand.Rand
}

// NewSet returns a set with every die at face 1 and no holds.
func NewSet(rng *rand.Rand) *Set {
	s := &Set{rng: rng}
	for i := range s.dice {
		s.dice[i].value = 1
	}
	return s
}

// Restore rebuilds a set from persisted values and hold flags.
// Values outside 1..6 are rejected.
func Restore(values [Count]int, holds [Count]bool, rng *rand.Rand) (*Set, error) {
	s := &Set{rng: rng}
	for i, v := range values {
		if v < 1 || v > Sides {
			return nil, fmt.Errorf("die %d has value %d, want 1..%d", i, v, Sides)
		}
		s.dice[i] = die{value: v, held: holds[i]}
	}
	return s, nil
}

// Roll re-rolls every unheld die. Held dice keep their value.
func (s *Set) Roll() error {
	if s.allHeld() {
		return ErrAllHeld
	}
	for i := range s.dice {
		if s.dice[i].held {
			continue
		}
		s.dice[i].value = s.rng.Intn(Sides) + 1
	}
	return nil
}

// ToggleHold flips the hold flag of one die.
func (s *Set) ToggleHold(index int) error {
	if index < 0 || index >= Count {
		return fmt.Errorf("die index %d out of range", index)
	}
	s.dice[index].held = !s.dice[index].held
	return nil
}

// ToggleHoldMatching flips the hold flag of the selected die and
// synchronizes every other die showing the same face to the new state.
func (s *Set) ToggleHoldMatching(index int) error {
	if index < 0 || index >= Count {
		return fmt.Errorf("die index %d out of range", index)
	}
	held := !s.dice[index].held
	face := s.dice[index].value
	for i := range s.dice {
		if s.dice[i].value == face {
			s.dice[i].held = held
		}
	}
	return nil
}

// ClearHolds releases every die. Called at the start of a new turn.
func (s *Set) ClearHolds() {
	for i := range s.dice {
		s.dice[i].held = false
	}
}

// Values returns the current face of each die.
func (s *Set) Values() [Count]int {
	var out [Count]int
	for i, d := range s.dice {
		out[i] = d.value
	}
	return out
}

// Holds returns the hold flag of each die.
func (s *Set) Holds() [Count]bool {
	var out [Count]bool
	for i, d := range s.dice {
		out[i] = d.held
	}
	return out
}

func (s *Set) allHeld() bool {
	for _, d := range s.dice {
		if !d.held {
			return false
		}
	}
	return true
}
