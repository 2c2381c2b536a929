package sheet

import "yambo_backend/internal/model"

// Rows lists all eleven rows in sheet order: the upper section first,
// then the lower section. Fill-order columns walk this sequence.
var Rows = []model.RowID{
	model.RowOnes,
	model.RowTwos,
	model.RowThrees,
	model.RowFours,
	model.RowFives,
	model.RowSixes,
	model.RowFullHouse,
	model.RowStraight,
	model.RowChancePlus,
	model.RowChanceMinus,
	model.RowYambo,
}

const upperRowCount = 6

var rowIndex = func() map[model.RowID]int {
	m := make(map[model.RowID]int, len(Rows))
	for i, r := range Rows {
		m[r] = i
	}
	return m
}()

// IsUpperRow reports whether the row belongs to the upper section.
func IsUpperRow(row model.RowID) bool {
	i, ok := rowIndex[row]
	return ok && i < upperRowCount
}

// DefaultColumns are the standard five columns: top-down, free, bottom-up,
// a two-try column and a one-try column.
func DefaultColumns() []model.ColumnRules {
	return []model.ColumnRules{
		{ID: model.ColumnDown, MaxTries: 3, FillOrder: model.FillTopDown},
		{ID: model.ColumnFree, MaxTries: 3, FillOrder: model.FillAny},
		{ID: model.ColumnUp, MaxTries: 3, FillOrder: model.FillBottomUp},
		{ID: model.ColumnTwo, MaxTries: 2, FillOrder: model.FillAny},
		{ID: model.ColumnOne, MaxTries: 1, FillOrder: model.FillAny},
	}
}
