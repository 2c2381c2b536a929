package yambo

import (
	"context"

	"yambo_backend/internal/model"
)

// Save commits the offered score into one cell and starts the next turn.
// When the save finishes the game, the player's personal best is updated
// in the same transaction.
func (s *serv) Save(ctx context.Context, col model.ColumnID, row model.RowID) (*model.SaveResult, error) {
	id, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	var (
		res        *model.SaveResult
		grandTotal int
	)
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		ctrl, err := s.loadController(txCtx, id)
		if err != nil {
			return err
		}
		res, err = ctrl.Save(col, row)
		if err != nil {
			return err
		}
		if err := s.repo.UpsertGameState(txCtx, id, ctrl.Snapshot()); err != nil {
			return err
		}

		if res.GameOver {
			grandTotal = ctrl.GrandTotal()
			best, err := s.userRepo.GetBestScore(txCtx, id)
			if err != nil {
				return err
			}
			if grandTotal > best {
				if err := s.userRepo.UpdateBestScore(txCtx, id, grandTotal); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.RecordSave()
	if res.GameOver {
		s.statsRepo.RecordGameOver(grandTotal)
	}
	return res, nil
}
