package converter

import (
	"yambo_backend/internal/api/dto/yambo"
	"yambo_backend/internal/model"
)

func ToRollResponse(res *model.RollResult) yambo.RollResponse {
	return yambo.RollResponse{
		Values:       res.Values,
		Combinations: toCombinations(res.Combinations),
		Eligible:     toCells(res.Eligible),
		RollCount:    res.RollCount,
		MaxRolls:     res.MaxRolls,
	}
}

func ToSaveResponse(res *model.SaveResult) yambo.SaveResponse {
	return yambo.SaveResponse{
		Cell:     toCell(res.Cell),
		Totals:   toTotals(res.Totals),
		GameOver: res.GameOver,
	}
}

func ToTableResponse(data *model.TableData) yambo.TableResponse {
	totals := make(map[string]yambo.Totals, len(data.Totals))
	for col, t := range data.Totals {
		totals[string(col)] = toTotals(t)
	}

	scratched := make([]string, 0, len(data.Scratched))
	for _, col := range data.Scratched {
		scratched = append(scratched, string(col))
	}

	return yambo.TableResponse{
		Dice:       data.Dice,
		Holds:      data.Holds,
		RollCount:  data.RollCount,
		MaxRolls:   data.MaxRolls,
		Eligible:   toCells(data.Eligible),
		Totals:     totals,
		GrandTotal: data.GrandTotal,
		Scratched:  scratched,
		GameOver:   data.GameOver,
	}
}

func toCell(c model.Cell) yambo.Cell {
	return yambo.Cell{
		Column: string(c.Column),
		Row:    string(c.Row),
		State:  c.State.String(),
		Value:  c.Value,
	}
}

func toCells(cells []model.Cell) []yambo.Cell {
	out := make([]yambo.Cell, 0, len(cells))
	for _, c := range cells {
		out = append(out, toCell(c))
	}

	return out
}

func toCombinations(c model.Combinations) yambo.Combinations {
	return yambo.Combinations{
		ThreeOfAKind: c.ThreeOfAKind,
		FourOfAKind:  c.FourOfAKind,
		FullHouse:    c.FullHouse,
		Straight:     c.Straight,
		Yambo:        c.Yambo,
	}
}

func toTotals(t model.Totals) yambo.Totals {
	return yambo.Totals{
		Upper: t.Upper,
		Bonus: t.Bonus,
		Lower: t.Lower,
		Grand: t.Grand,
	}
}
