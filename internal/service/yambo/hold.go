package yambo

import (
	"context"

	"yambo_backend/internal/game/turn"
	"yambo_backend/internal/model"
)

// ToggleHold flips the hold flag of one die.
func (s *serv) ToggleHold(ctx context.Context, index int) (*model.TableData, error) {
	return s.mutate(ctx, func(ctrl *turn.Controller) error {
		return ctrl.ToggleHold(index)
	})
}

// ToggleHoldMatching flips the hold flag of one die together with every
// die showing the same face.
func (s *serv) ToggleHoldMatching(ctx context.Context, index int) (*model.TableData, error) {
	return s.mutate(ctx, func(ctrl *turn.Controller) error {
		return ctrl.ToggleHoldMatching(index)
	})
}

// mutate applies a small state change to the player's table inside a
// transaction and returns the refreshed view.
func (s *serv) mutate(ctx context.Context, apply func(*turn.Controller) error) (*model.TableData, error) {
	id, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	var table model.TableData
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		ctrl, err := s.loadController(txCtx, id)
		if err != nil {
			return err
		}
		if err := apply(ctrl); err != nil {
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
