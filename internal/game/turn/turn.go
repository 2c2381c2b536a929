// Package turn implements the turn state machine: roll gating, roll
// counting, score commits and game-over detection.
package turn

import (
	"errors"
	"math/rand"

	"yambo_backend/internal/game/combo"
	"yambo_backend/internal/game/dice"
	"yambo_backend/internal/game/sheet"
	"yambo_backend/internal/model"
)

// ErrNoRollsLeft indicates a roll after the turn's roll limit was
// exhausted, or after the game ended.
var ErrNoRollsLeft = errors.New("no rolls left")

// Phase is the controller's position in the turn cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingSave
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingSave:
		return "awaitingSave"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Controller drives one player's table. It owns the dice set and the
// roll counter; the sheet owns cells and totals. All collaborators are
// passed in at construction.
type Controller struct {
	dice      *dice.Set
	sheet     *sheet.Sheet
	rollCount int
	maxRolls  int
	phase     Phase
}

// New starts a fresh game.
func New(cfg sheet.Config, rng *rand.Rand) (*Controller, error) {
	sh, err := sheet.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Controller{
		dice:     dice.NewSet(rng),
		sheet:    sh,
		maxRolls: sh.MaxRolls(),
		phase:    PhaseIdle,
	}, nil
}

// Restore rebuilds a controller from a persisted snapshot. The phase is
// derived: a non-zero roll count means a save is pending.
func Restore(state model.GameState, cfg sheet.Config, rng *rand.Rand) (*Controller, error) {
	d, err := dice.Restore(state.Dice, state.Holds, rng)
	if err != nil {
		return nil, err
	}
	sh, err := sheet.Restore(cfg, state.Cells, state.Scratched)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		dice:      d,
		sheet:     sh,
		rollCount: state.RollCount,
		maxRolls:  state.MaxRolls,
	}
	switch {
	case sh.IsGameOver():
		c.phase = PhaseGameOver
	case c.rollCount > 0:
		c.phase = PhaseAwaitingSave
	default:
		c.phase = PhaseIdle
	}
	return c, nil
}

// Snapshot dumps the controller state for persistence.
func (c *Controller) Snapshot() model.GameState {
	cells, scratched := c.sheet.Snapshot()
	return model.GameState{
		Dice:      c.dice.Values(),
		Holds:     c.dice.Holds(),
		RollCount: c.rollCount,
		MaxRolls:  c.maxRolls,
		Cells:     cells,
		Scratched: scratched,
	}
}

// Roll re-rolls the unheld dice and recomputes candidate scores and
// per-column offers.
func (c *Controller) Roll() (*model.RollResult, error) {
	if c.phase == PhaseGameOver || c.rollCount >= c.maxRolls {
		return nil, ErrNoRollsLeft
	}
	if err := c.dice.Roll(); err != nil {
		return nil, err
	}
	c.rollCount++
	c.phase = PhaseAwaitingSave

	values := c.dice.Values()
	eligible := c.sheet.Offer(c.rollCount, combo.CandidateScores(values))
	return &model.RollResult{
		Values:       values,
		Combinations: combo.Detect(values),
		Eligible:     eligible,
		RollCount:    c.rollCount,
		MaxRolls:     c.maxRolls,
	}, nil
}

// Save commits the offered candidate value of the addressed cell and
// starts the next turn: roll count back to zero, holds released, roll
// limit recomputed from the columns that remain open.
func (c *Controller) Save(col model.ColumnID, row model.RowID) (*model.SaveResult, error) {
	cell, err := c.sheet.Cell(col, row)
	if err != nil {
		return nil, err
	}
	if cell.State != model.CellAvailable {
		return nil, sheet.ErrCellNotEligible
	}
	if err := c.sheet.Save(col, row, cell.Value); err != nil {
		return nil, err
	}

	c.rollCount = 0
	c.dice.ClearHolds()
	c.maxRolls = c.sheet.MaxRolls()

	saved, err := c.sheet.Cell(col, row)
	if err != nil {
		return nil, err
	}
	res := &model.SaveResult{
		Cell:   saved,
		Totals: c.sheet.Totals(col),
	}
	if c.sheet.IsGameOver() {
		c.phase = PhaseGameOver
		res.GameOver = true
	} else {
		c.phase = PhaseIdle
	}
	return res, nil
}

// ToggleHold flips the hold flag of one die.
func (c *Controller) ToggleHold(index int) error {
	return c.dice.ToggleHold(index)
}

// ToggleHoldMatching flips the hold flag of one die and synchronizes
// every die with the same face.
func (c *Controller) ToggleHoldMatching(index int) error {
	return c.dice.ToggleHoldMatching(index)
}

// ToggleColumnScratch flips a column's scratched flag. Pending offers in
// the column are withdrawn; the roll limit is recomputed at the next save.
func (c *Controller) ToggleColumnScratch(col model.ColumnID) error {
	return c.sheet.ToggleColumnScratch(col)
}

// Phase returns the controller's current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// GrandTotal sums the grand totals of every column.
func (c *Controller) GrandTotal() int {
	return c.sheet.GrandTotal()
}

// Totals returns one column's derived totals.
func (c *Controller) Totals(col model.ColumnID) model.Totals {
	return c.sheet.Totals(col)
}

// IsGameOver reports whether every cell is terminal.
func (c *Controller) IsGameOver() bool {
	return c.sheet.IsGameOver()
}

// Table assembles the read-only view of the whole table.
func (c *Controller) Table() model.TableData {
	totals := make(map[model.ColumnID]model.Totals)
	scratched := make([]model.ColumnID, 0)
	for _, rules := range c.sheet.Columns() {
		totals[rules.ID] = c.sheet.Totals(rules.ID)
		if c.sheet.IsColumnScratched(rules.ID) {
			scratched = append(scratched, rules.ID)
		}
	}
	return model.TableData{
		Dice:       c.dice.Values(),
		Holds:      c.dice.Holds(),
		RollCount:  c.rollCount,
		MaxRolls:   c.maxRolls,
		Eligible:   c.sheet.Available(),
		Totals:     totals,
		GrandTotal: c.sheet.GrandTotal(),
		Scratched:  scratched,
		GameOver:   c.sheet.IsGameOver(),
	}
}
