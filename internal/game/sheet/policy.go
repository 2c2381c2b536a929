package sheet

import "yambo_backend/internal/model"

// RollAllowed reports whether the column still takes part in a roll with
// the given roll count (counted after the roll, so the first roll is 1).
// Scratched columns never do; one- and two-try columns drop out once the
// count passes their limit.
func (s *Sheet) RollAllowed(col model.ColumnID, rollCount int) bool {
	rules, ok := s.rules[col]
	if !ok || s.scratched[col] {
		return false
	}
	switch rules.MaxTries {
	case 1:
		return rollCount == 1
	case 2:
		return rollCount == 1 || rollCount == 2
	default:
		return true
	}
}

// Eligible computes which of the column's cells may take a save for the
// current roll, without mutating the sheet. Free-order columns offer
// every empty cell; sequential columns offer only the earliest unfilled
// cell in row order (reversed for bottom-up).
func (s *Sheet) Eligible(col model.ColumnID, rollCount int, candidates map[model.RowID]int) []model.Cell {
	if !s.RollAllowed(col, rollCount) {
		return nil
	}
	rules := s.rules[col]
	cells := s.cells[col]

	var out []model.Cell
	offer := func(i int) {
		row := Rows[i]
		value, ok := candidates[row]
		if !ok {
			return
		}
		out = append(out, model.Cell{
			Column: col,
			Row:    row,
			State:  model.CellAvailable,
			Value:  value,
		})
	}

	switch rules.FillOrder {
	case model.FillTopDown:
		for i := range cells {
			if !terminal(cells[i].state) {
				offer(i)
				break
			}
		}
	case model.FillBottomUp:
		for i := len(cells) - 1; i >= 0; i-- {
			if !terminal(cells[i].state) {
				offer(i)
				break
			}
		}
	default:
		for i := range cells {
			if !terminal(cells[i].state) {
				offer(i)
			}
		}
	}
	return out
}

// Offer recomputes eligibility for every column and marks the offered
// cells Available with their candidate values. Previous offers are
// withdrawn first.
func (s *Sheet) Offer(rollCount int, candidates map[model.RowID]int) []model.Cell {
	s.ClearAvailable()
	var out []model.Cell
	for _, rules := range s.cfg.Columns {
		for _, c := range s.Eligible(rules.ID, rollCount, candidates) {
			s.MarkAvailable(c.Column, c.Row, c.Value)
			out = append(out, c)
		}
	}
	return out
}

// Available lists every cell currently marked Available, in column and
// row order.
func (s *Sheet) Available() []model.Cell {
	var out []model.Cell
	for _, rules := range s.cfg.Columns {
		for i, c := range s.cells[rules.ID] {
			if c.state == model.CellAvailable {
				out = append(out, model.Cell{
					Column: rules.ID,
					Row:    Rows[i],
					State:  c.state,
					Value:  c.value,
				})
			}
		}
	}
	return out
}

// HasOpenCells reports whether the column still has any non-terminal cell.
func (s *Sheet) HasOpenCells(col model.ColumnID) bool {
	for _, c := range s.cells[col] {
		if !terminal(c.state) {
			return true
		}
	}
	return false
}

// MaxRolls is the roll limit for the current turn: the highest try limit
// among unscratched columns that still have open cells. Zero when no
// column can take a score anymore.
func (s *Sheet) MaxRolls() int {
	max := 0
	for _, rules := range s.cfg.Columns {
		if s.scratched[rules.ID] || !s.HasOpenCells(rules.ID) {
			continue
		}
		if rules.MaxTries > max {
			max = rules.MaxTries
		}
	}
	return max
}

func terminal(state model.CellState) bool {
	return state == model.CellSaved || state == model.CellScratched
}
