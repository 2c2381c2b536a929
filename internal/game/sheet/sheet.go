// Package sheet implements the 5x11 score sheet: cell states, save and
// scratch commits, derived totals and per-column fill policy.
package sheet

import (
	"errors"
	"fmt"

	"yambo_backend/internal/model"
)

// ErrCellNotEligible indicates a save on a cell that is not currently
// offered for this roll.
var ErrCellNotEligible = errors.New("cell is not eligible for saving")

// ErrInvalidChanceOrder indicates a chance+/chance- save that violates the
// ordering rule within the column.
var ErrInvalidChanceOrder = errors.New("chance scores out of order")

// Config carries the tunable sheet rules.
type Config struct {
	Columns        []model.ColumnRules
	BonusThreshold int
	BonusPoints    int
}

// DefaultConfig returns the standard ruleset: five columns, upper bonus
// of 30 points at 63.
func DefaultConfig() Config {
	return Config{
		Columns:        DefaultColumns(),
		BonusThreshold: 63,
		BonusPoints:    30,
	}
}

type cell struct {
	state model.CellState
	value int
}

// Sheet owns every cell and the per-column scratched flags. Totals are
// never stored; they are recomputed from saved cells on demand.
type Sheet struct {
	cfg       Config
	rules     map[model.ColumnID]model.ColumnRules
	cells     map[model.ColumnID][]cell
	scratched map[model.ColumnID]bool
}

// New returns an empty sheet for the configured columns.
func New(cfg Config) (*Sheet, error) {
	if len(cfg.Columns) == 0 {
		return nil, errors.New("sheet needs at least one column")
	}
	s := &Sheet{
		cfg:       cfg,
		rules:     make(map[model.ColumnID]model.ColumnRules, len(cfg.Columns)),
		cells:     make(map[model.ColumnID][]cell, len(cfg.Columns)),
		scratched: make(map[model.ColumnID]bool, len(cfg.Columns)),
	}
	for _, c := range cfg.Columns {
		if c.MaxTries < 1 || c.MaxTries > 3 {
			return nil, fmt.Errorf("column %q: max tries %d out of range", c.ID, c.MaxTries)
		}
		if _, dup := s.rules[c.ID]; dup {
			return nil, fmt.Errorf("column %q declared twice", c.ID)
		}
		s.rules[c.ID] = c
		s.cells[c.ID] = make([]cell, len(Rows))
	}
	return s, nil
}

// Restore rebuilds a sheet from a persisted snapshot.
func Restore(cfg Config, cells []model.Cell, scratched []model.ColumnID) (*Sheet, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		col, ok := s.cells[c.Column]
		if !ok {
			return nil, fmt.Errorf("snapshot references unknown column %q", c.Column)
		}
		i, ok := rowIndex[c.Row]
		if !ok {
			return nil, fmt.Errorf("snapshot references unknown row %q", c.Row)
		}
		col[i] = cell{state: c.State, value: c.Value}
	}
	for _, id := range scratched {
		if _, ok := s.rules[id]; !ok {
			return nil, fmt.Errorf("snapshot scratches unknown column %q", id)
		}
		s.scratched[id] = true
	}
	return s, nil
}

// Snapshot dumps every cell and the scratched column list for persistence.
func (s *Sheet) Snapshot() ([]model.Cell, []model.ColumnID) {
	cells := make([]model.Cell, 0, len(s.cfg.Columns)*len(Rows))
	scratched := make([]model.ColumnID, 0)
	for _, rules := range s.cfg.Columns {
		for i, c := range s.cells[rules.ID] {
			cells = append(cells, model.Cell{
				Column: rules.ID,
				Row:    Rows[i],
				State:  c.state,
				Value:  c.value,
			})
		}
		if s.scratched[rules.ID] {
			scratched = append(scratched, rules.ID)
		}
	}
	return cells, scratched
}

// Columns returns the configured column rules in display order.
func (s *Sheet) Columns() []model.ColumnRules {
	return s.cfg.Columns
}

// Save commits a value to an Available cell. Zero scratches the cell,
// anything else is saved as-is. Rejections leave the sheet untouched;
// a successful save clears every Available mark sheet-wide.
func (s *Sheet) Save(col model.ColumnID, row model.RowID, value int) error {
	cells, ok := s.cells[col]
	if !ok {
		return fmt.Errorf("unknown column %q", col)
	}
	i, ok := rowIndex[row]
	if !ok {
		return fmt.Errorf("unknown row %q", row)
	}
	if cells[i].state != model.CellAvailable {
		return ErrCellNotEligible
	}
	if value != 0 {
		if err := s.checkChanceOrder(col, row, value); err != nil {
			return err
		}
	}

	if value == 0 {
		cells[i] = cell{state: model.CellScratched}
	} else {
		cells[i] = cell{state: model.CellSaved, value: value}
	}
	s.ClearAvailable()
	return nil
}

// checkChanceOrder enforces chance+ > chance- within one column against
// whichever of the pair is already saved.
func (s *Sheet) checkChanceOrder(col model.ColumnID, row model.RowID, value int) error {
	cells := s.cells[col]
	switch row {
	case model.RowChanceMinus:
		plus := cells[rowIndex[model.RowChancePlus]]
		if plus.state == model.CellSaved && value >= plus.value {
			return ErrInvalidChanceOrder
		}
	case model.RowChancePlus:
		minus := cells[rowIndex[model.RowChanceMinus]]
		if minus.state == model.CellSaved && value <= minus.value {
			return ErrInvalidChanceOrder
		}
	}
	return nil
}

// MarkAvailable offers an empty cell with its candidate value attached.
func (s *Sheet) MarkAvailable(col model.ColumnID, row model.RowID, value int) {
	cells, ok := s.cells[col]
	if !ok {
		return
	}
	i := rowIndex[row]
	if cells[i].state == model.CellEmpty {
		cells[i] = cell{state: model.CellAvailable, value: value}
	}
}

// ClearAvailable drops every Available mark back to Empty. Candidate
// highlighting is valid for a single save only.
func (s *Sheet) ClearAvailable() {
	for _, cells := range s.cells {
		for i := range cells {
			if cells[i].state == model.CellAvailable {
				cells[i] = cell{state: model.CellEmpty}
			}
		}
	}
}

// ToggleColumnScratch flips a column's scratched flag. Saved and
// scratched cells keep their state; scratching only blocks future rolls
// for the column, so any pending offers in it are withdrawn.
func (s *Sheet) ToggleColumnScratch(col model.ColumnID) error {
	if _, ok := s.rules[col]; !ok {
		return fmt.Errorf("unknown column %q", col)
	}
	s.scratched[col] = !s.scratched[col]
	if s.scratched[col] {
		cells := s.cells[col]
		for i := range cells {
			if cells[i].state == model.CellAvailable {
				cells[i] = cell{state: model.CellEmpty}
			}
		}
	}
	return nil
}

// IsColumnScratched reports the column's scratched flag.
func (s *Sheet) IsColumnScratched(col model.ColumnID) bool {
	return s.scratched[col]
}

// Cell returns the current state of one cell.
func (s *Sheet) Cell(col model.ColumnID, row model.RowID) (model.Cell, error) {
	cells, ok := s.cells[col]
	if !ok {
		return model.Cell{}, fmt.Errorf("unknown column %q", col)
	}
	i, ok := rowIndex[row]
	if !ok {
		return model.Cell{}, fmt.Errorf("unknown row %q", row)
	}
	c := cells[i]
	return model.Cell{Column: col, Row: row, State: c.state, Value: c.value}, nil
}

// Totals folds the column's saved cells into its derived totals.
func (s *Sheet) Totals(col model.ColumnID) model.Totals {
	cells, ok := s.cells[col]
	if !ok {
		return model.Totals{}
	}
	var t model.Totals
	for i, c := range cells {
		if c.state != model.CellSaved {
			continue
		}
		if i < upperRowCount {
			t.Upper += c.value
		} else {
			t.Lower += c.value
		}
	}
	if t.Upper >= s.cfg.BonusThreshold {
		t.Bonus = s.cfg.BonusPoints
	}
	t.Grand = t.Upper + t.Bonus + t.Lower
	return t
}

// GrandTotal sums the grand totals of every column.
func (s *Sheet) GrandTotal() int {
	sum := 0
	for id := range s.cells {
		sum += s.Totals(id).Grand
	}
	return sum
}

// IsGameOver reports whether every cell on the sheet is terminal.
func (s *Sheet) IsGameOver() bool {
	for _, cells := range s.cells {
		for _, c := range cells {
			if c.state != model.CellSaved && c.state != model.CellScratched {
				return false
			}
		}
	}
	return true
}
