package turn

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"yambo_backend/internal/game/dice"
	"yambo_backend/internal/game/sheet"
	"yambo_backend/internal/model"
)

func newController(t *testing.T, seed int64) *Controller {
	t.Helper()
	c, err := New(sheet.DefaultConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

// filledState builds a snapshot where every cell is saved except the
// listed open cells, which stay empty.
func filledState(open map[model.ColumnID][]model.RowID) model.GameState {
	state := model.GameState{
		Dice:     [5]int{1, 1, 1, 1, 1},
		MaxRolls: 3,
	}
	for _, rules := range sheet.DefaultColumns() {
		for _, row := range sheet.Rows {
			cell := model.Cell{Column: rules.ID, Row: row, State: model.CellSaved, Value: 1}
			for _, openRow := range open[rules.ID] {
				if row == openRow {
					cell.State = model.CellEmpty
					cell.Value = 0
					break
				}
			}
			state.Cells = append(state.Cells, cell)
		}
	}
	return state
}

func TestRollProducesOffers(t *testing.T) {
	c := newController(t, 1)
	res, err := c.Roll()
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if res.RollCount != 1 || res.MaxRolls != 3 {
		t.Fatalf("roll count %d/%d, want 1/3", res.RollCount, res.MaxRolls)
	}
	if len(res.Eligible) == 0 {
		t.Fatal("no eligible cells after first roll")
	}
	if c.Phase() != PhaseAwaitingSave {
		t.Fatalf("phase = %v, want %v", c.Phase(), PhaseAwaitingSave)
	}
	for _, v := range res.Values {
		if v < 1 || v > 6 {
			t.Fatalf("die outside 1..6: %v", res.Values)
		}
	}
}

func TestRollLimitPerTurn(t *testing.T) {
	c := newController(t, 1)
	for i := 0; i < 3; i++ {
		if _, err := c.Roll(); err != nil {
			t.Fatalf("roll %d returned error: %v", i+1, err)
		}
	}
	if _, err := c.Roll(); !errors.Is(err, ErrNoRollsLeft) {
		t.Fatalf("fourth roll error = %v, want %v", err, ErrNoRollsLeft)
	}
}

func TestRollAllDiceHeld(t *testing.T) {
	c := newController(t, 1)
	// Fresh dice all show face 1, so one matching toggle holds the set.
	if err := c.ToggleHoldMatching(0); err != nil {
		t.Fatalf("ToggleHoldMatching returned error: %v", err)
	}
	if _, err := c.Roll(); !errors.Is(err, dice.ErrAllHeld) {
		t.Fatalf("Roll error = %v, want %v", err, dice.ErrAllHeld)
	}
}

func TestSaveStartsNextTurn(t *testing.T) {
	c := newController(t, 1)
	res, err := c.Roll()
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if err := c.ToggleHold(0); err != nil {
		t.Fatalf("ToggleHold returned error: %v", err)
	}

	target := res.Eligible[0]
	saveRes, err := c.Save(target.Column, target.Row)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	wantState := model.CellSaved
	if target.Value == 0 {
		wantState = model.CellScratched
	}
	if saveRes.Cell.State != wantState || saveRes.Cell.Value != target.Value {
		t.Fatalf("saved cell = %+v, want state %v value %d", saveRes.Cell, wantState, target.Value)
	}

	table := c.Table()
	if table.RollCount != 0 {
		t.Fatalf("roll count = %d after save, want 0", table.RollCount)
	}
	if table.Holds != ([5]bool{}) {
		t.Fatalf("holds = %v after save, want all released", table.Holds)
	}
	if len(table.Eligible) != 0 {
		t.Fatalf("offers survived the save: %v", table.Eligible)
	}
	if c.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want %v", c.Phase(), PhaseIdle)
	}
}

func TestSaveWithoutRoll(t *testing.T) {
	c := newController(t, 1)
	if _, err := c.Save(model.ColumnFree, model.RowOnes); !errors.Is(err, sheet.ErrCellNotEligible) {
		t.Fatalf("Save error = %v, want %v", err, sheet.ErrCellNotEligible)
	}
}

func TestSaveFullHouseScenario(t *testing.T) {
	// Upper rows of the top-down column already filled; the dice show a
	// full house and the full house cell is the pending offer.
	state := filledState(map[model.ColumnID][]model.RowID{
		model.ColumnDown: {model.RowFullHouse},
	})
	state.Dice = [5]int{1, 1, 1, 2, 2}
	state.RollCount = 1
	for i := range state.Cells {
		c := &state.Cells[i]
		if c.Column == model.ColumnDown && c.Row == model.RowFullHouse {
			c.State = model.CellAvailable
			c.Value = 20
		}
	}

	ctrl, err := Restore(state, sheet.DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if ctrl.Phase() != PhaseAwaitingSave {
		t.Fatalf("phase = %v, want %v", ctrl.Phase(), PhaseAwaitingSave)
	}
	before := ctrl.Totals(model.ColumnDown).Lower

	res, err := ctrl.Save(model.ColumnDown, model.RowFullHouse)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if res.Cell.State != model.CellSaved || res.Cell.Value != 20 {
		t.Fatalf("saved cell = %+v, want Saved(20)", res.Cell)
	}
	if got := res.Totals.Lower; got != before+20 {
		t.Fatalf("lower total = %d, want %d", got, before+20)
	}
}

func TestMaxRollsShrinksAfterSave(t *testing.T) {
	// Only the two-try column still has open cells (plus one extra so the
	// first save does not end the game).
	state := filledState(map[model.ColumnID][]model.RowID{
		model.ColumnTwo: {model.RowOnes, model.RowTwos},
	})
	ctrl, err := Restore(state, sheet.DefaultConfig(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}

	res, err := ctrl.Roll()
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if len(res.Eligible) != 2 {
		t.Fatalf("eligible = %v, want the two open cells", res.Eligible)
	}
	if _, err := ctrl.Save(model.ColumnTwo, model.RowOnes); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := ctrl.Table().MaxRolls; got != 2 {
		t.Fatalf("max rolls = %d after save, want 2", got)
	}

	// The shrunk limit now gates the turn.
	for i := 0; i < 2; i++ {
		if _, err := ctrl.Roll(); err != nil {
			t.Fatalf("roll %d returned error: %v", i+1, err)
		}
	}
	if _, err := ctrl.Roll(); !errors.Is(err, ErrNoRollsLeft) {
		t.Fatalf("third roll error = %v, want %v", err, ErrNoRollsLeft)
	}
}

func TestGameOverBlocksEverything(t *testing.T) {
	state := filledState(map[model.ColumnID][]model.RowID{
		model.ColumnOne: {model.RowOnes},
	})
	ctrl, err := Restore(state, sheet.DefaultConfig(), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}

	res, err := ctrl.Roll()
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if len(res.Eligible) != 1 {
		t.Fatalf("eligible = %v, want the single open cell", res.Eligible)
	}
	saveRes, err := ctrl.Save(model.ColumnOne, model.RowOnes)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !saveRes.GameOver || !ctrl.IsGameOver() {
		t.Fatal("expected game over after the final save")
	}
	if ctrl.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want %v", ctrl.Phase(), PhaseGameOver)
	}

	if _, err := ctrl.Roll(); !errors.Is(err, ErrNoRollsLeft) {
		t.Fatalf("post-game roll error = %v, want %v", err, ErrNoRollsLeft)
	}
	if _, err := ctrl.Save(model.ColumnOne, model.RowTwos); !errors.Is(err, sheet.ErrCellNotEligible) {
		t.Fatalf("post-game save error = %v, want %v", err, sheet.ErrCellNotEligible)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := newController(t, 9)
	if _, err := c.Roll(); err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if err := c.ToggleHold(2); err != nil {
		t.Fatalf("ToggleHold returned error: %v", err)
	}

	snap := c.Snapshot()
	restored, err := Restore(snap, sheet.DefaultConfig(), rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if diff := cmp.Diff(snap, restored.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch after round trip (-want +got):\n%s", diff)
	}
	if restored.Phase() != PhaseAwaitingSave {
		t.Fatalf("restored phase = %v, want %v", restored.Phase(), PhaseAwaitingSave)
	}
}

// TestPlayRandomGame drives full turns with a naive strategy and checks
// the state machine's invariants hold throughout. The drive stops either
// at game over or when only chance cells with conflicting orderings
// remain (the rules make such stalls possible; they are not a bug).
func TestPlayRandomGame(t *testing.T) {
	c := newController(t, 11)
	saves := 0
	for turn := 0; turn < 500 && !c.IsGameOver(); turn++ {
		res, err := c.Roll()
		if errors.Is(err, ErrNoRollsLeft) {
			break // stalled turn, nothing savable with rolls exhausted
		}
		if err != nil {
			t.Fatalf("turn %d: Roll returned error: %v", turn, err)
		}
		if res.RollCount < 1 || res.RollCount > res.MaxRolls {
			t.Fatalf("turn %d: roll count %d outside 1..%d", turn, res.RollCount, res.MaxRolls)
		}
		if len(res.Eligible) == 0 {
			t.Fatalf("turn %d: no offers on a live table", turn)
		}

		saved := false
		for _, cell := range res.Eligible {
			_, err := c.Save(cell.Column, cell.Row)
			if err == nil {
				saved = true
				saves++
				break
			}
			if !errors.Is(err, sheet.ErrInvalidChanceOrder) {
				t.Fatalf("turn %d: Save returned error: %v", turn, err)
			}
		}
		if saved && c.Table().RollCount != 0 {
			t.Fatal("roll count not reset after save")
		}
	}

	if c.IsGameOver() {
		if got := c.Table().MaxRolls; got != 0 {
			t.Fatalf("max rolls = %d after game over, want 0", got)
		}
		return
	}
	// Stalled: the offers the drive could not commit must all be chance
	// cells blocked by the ordering rule.
	for _, cell := range c.Table().Eligible {
		if cell.Row != model.RowChancePlus && cell.Row != model.RowChanceMinus {
			t.Fatalf("stalled on a non-chance offer after %d saves: %+v", saves, cell)
		}
	}
}
