package yambo

import (
	"context"

	"yambo_backend/internal/model"
)

// Roll re-rolls the player's unheld dice and returns the new offers.
// The whole read-roll-persist cycle runs in one transaction so two
// concurrent requests cannot both consume the same roll.
func (s *serv) Roll(ctx context.Context) (*model.RollResult, error) {
	id, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	var res *model.RollResult
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		ctrl, err := s.loadController(txCtx, id)
		if err != nil {
			return err
		}
		res, err = ctrl.Roll()
		if err != nil {
			return err
		}
		return s.repo.UpsertGameState(txCtx, id, ctrl.Snapshot())
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.RecordRoll()
	return res, nil
}
