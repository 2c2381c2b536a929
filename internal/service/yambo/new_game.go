package yambo

import (
	"context"

	"yambo_backend/internal/game/turn"
	"yambo_backend/internal/model"
)

// NewGame discards the player's table and starts a fresh one.
func (s *serv) NewGame(ctx context.Context) (*model.TableData, error) {
	id, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	var table model.TableData
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		ctrl, err := turn.New(s.cfg, s.newRNG())
		if err != nil {
			return err
		}
		if err := s.repo.UpsertGameState(txCtx, id, ctrl.Snapshot()); err != nil {
			return err
		}
		table = ctrl.Table()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}
