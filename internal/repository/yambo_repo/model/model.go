package model

import (
	"encoding/json"
	"fmt"

	domain "yambo_backend/internal/model"
)

// GameState is the storage shape of one player's table: array columns
// for the dice and a jsonb document for the cell grid.
type GameState struct {
	Dice      []int64
	Holds     []bool
	RollCount int
	MaxRolls  int
	Cells     []byte
	Scratched []string
}

type cellRecord struct {
	Column string `json:"col"`
	Row    string `json:"row"`
	State  int    `json:"state"`
	Value  int    `json:"value,omitempty"`
}

// FromDomain converts a domain snapshot into its storage shape.
func FromDomain(state domain.GameState) (*GameState, error) {
	records := make([]cellRecord, 0, len(state.Cells))
	for _, c := range state.Cells {
		records = append(records, cellRecord{
			Column: string(c.Column),
			Row:    string(c.Row),
			State:  int(c.State),
			Value:  c.Value,
		})
	}
	cells, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal cells: %w", err)
	}

	out := &GameState{
		Dice:      make([]int64, len(state.Dice)),
		Holds:     make([]bool, len(state.Holds)),
		RollCount: state.RollCount,
		MaxRolls:  state.MaxRolls,
		Cells:     cells,
		Scratched: make([]string, 0, len(state.Scratched)),
	}
	for i, v := range state.Dice {
		out.Dice[i] = int64(v)
	}
	copy(out.Holds, state.Holds[:])
	for _, id := range state.Scratched {
		out.Scratched = append(out.Scratched, string(id))
	}
	return out, nil
}

// ToDomain converts a stored row back into the domain snapshot.
func (g *GameState) ToDomain() (*domain.GameState, error) {
	if len(g.Dice) != 5 || len(g.Holds) != 5 {
		return nil, fmt.Errorf("stored game state has %d dice and %d holds, want 5", len(g.Dice), len(g.Holds))
	}

	var records []cellRecord
	if len(g.Cells) > 0 {
		if err := json.Unmarshal(g.Cells, &records); err != nil {
			return nil, fmt.Errorf("unmarshal cells: %w", err)
		}
	}

	state := &domain.GameState{
		RollCount: g.RollCount,
		MaxRolls:  g.MaxRolls,
		Cells:     make([]domain.Cell, 0, len(records)),
		Scratched: make([]domain.ColumnID, 0, len(g.Scratched)),
	}
	for i, v := range g.Dice {
		state.Dice[i] = int(v)
	}
	copy(state.Holds[:], g.Holds)
	for _, r := range records {
		state.Cells = append(state.Cells, domain.Cell{
			Column: domain.ColumnID(r.Column),
			Row:    domain.RowID(r.Row),
			State:  domain.CellState(r.State),
			Value:  r.Value,
		})
	}
	for _, id := range g.Scratched {
		state.Scratched = append(state.Scratched, domain.ColumnID(id))
	}
	return state, nil
}
