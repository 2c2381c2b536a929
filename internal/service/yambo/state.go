package yambo

import (
	"context"

	"yambo_backend/internal/model"
)

// CheckTable returns the player's current table without changing it.
func (s *serv) CheckTable(ctx context.Context) (*model.TableData, error) {
	id, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	ctrl, err := s.loadController(ctx, id)
	if err != nil {
		return nil, err
	}
	table := ctrl.Table()
	return &table, nil
}
