package model

// ColumnID identifies one of the five scoring columns.
type ColumnID string

const (
	ColumnDown ColumnID = "dn"
	ColumnFree ColumnID = "fr"
	ColumnUp   ColumnID = "up"
	ColumnTwo  ColumnID = "two"
	ColumnOne  ColumnID = "one"
)

// RowID identifies one of the eleven scoring rows.
type RowID string

const (
	RowOnes   RowID = "ones"
	RowTwos   RowID = "twos"
	RowThrees RowID = "threes"
	RowFours  RowID = "fours"
	RowFives  RowID = "fives"
	RowSixes  RowID = "sixes"

	RowFullHouse   RowID = "fullHouse"
	RowStraight    RowID = "straight"
	RowChancePlus  RowID = "chancePlus"
	RowChanceMinus RowID = "chanceMinus"
	RowYambo       RowID = "yambo"
)

// FillOrder constrains the order in which a column's cells may be filled.
type FillOrder int

const (
	FillAny FillOrder = iota
	FillTopDown
	FillBottomUp
)

func (f FillOrder) String() string {
	switch f {
	case FillAny:
		return "any"
	case FillTopDown:
		return "topDown"
	case FillBottomUp:
		return "bottomUp"
	default:
		return "unknown"
	}
}

// CellState is the lifecycle state of a single sheet cell.
// Saved and Scratched are terminal.
type CellState int

const (
	CellEmpty CellState = iota
	CellAvailable
	CellSaved
	CellScratched
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellAvailable:
		return "available"
	case CellSaved:
		return "saved"
	case CellScratched:
		return "scratched"
	default:
		return "unknown"
	}
}

// Cell is one (column, row) slot on the sheet. Value carries the saved
// score, or the candidate score while the cell is Available.
type Cell struct {
	Column ColumnID
	Row    RowID
	State  CellState
	Value  int
}

// ColumnRules are the static per-column constraints.
type ColumnRules struct {
	ID        ColumnID
	MaxTries  int
	FillOrder FillOrder
}

// Totals are the derived numbers for one column.
type Totals struct {
	Upper int
	Bonus int
	Lower int
	Grand int
}

// Combinations flags which named combinations the current dice form.
type Combinations struct {
	ThreeOfAKind bool
	FourOfAKind  bool
	FullHouse    bool
	Straight     bool
	Yambo        bool
}

// GameState is a full snapshot of one player's table, as persisted
// between requests.
type GameState struct {
	Dice      [5]int
	Holds     [5]bool
	RollCount int
	MaxRolls  int
	Cells     []Cell
	Scratched []ColumnID
}

// RollResult is returned from a roll: the new dice, detected
// combinations and every cell currently offered for saving.
type RollResult struct {
	Values       [5]int
	Combinations Combinations
	Eligible     []Cell
	RollCount    int
	MaxRolls     int
}

// SaveResult is returned after a score commit.
type SaveResult struct {
	Cell     Cell
	Totals   Totals
	GameOver bool
}

// TableData is the read-only view of a player's table.
type TableData struct {
	Dice       [5]int
	Holds      [5]bool
	RollCount  int
	MaxRolls   int
	Eligible   []Cell
	Totals     map[ColumnID]Totals
	GrandTotal int
	Scratched  []ColumnID
	GameOver   bool
}
