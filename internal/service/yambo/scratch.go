package yambo

import (
	"context"

	"yambo_backend/internal/game/turn"
	"yambo_backend/internal/model"
)

// ToggleColumnScratch flips a column's scratched flag, removing it from
// (or returning it to) roll eligibility.
func (s *serv) ToggleColumnScratch(ctx context.Context, col model.ColumnID) (*model.TableData, error) {
	return s.mutate(ctx, func(ctrl *turn.Controller) error {
		return ctrl.ToggleColumnScratch(col)
	})
}
