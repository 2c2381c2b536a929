package yambo

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"yambo_backend/internal/game/sheet"
	"yambo_backend/internal/game/turn"
	"yambo_backend/internal/middleware"
	"yambo_backend/internal/repository"
	"yambo_backend/internal/service"
)

type serv struct {
	cfg       sheet.Config
	repo      repository.YamboRepository
	userRepo  repository.UserRepository
	statsRepo repository.YamboStatsRepository
	txManager trm.Manager
	newRNG    func() *rand.Rand
}

// NewYamboService creates the table service for the configured ruleset.
func NewYamboService(
	cfg sheet.Config,
	repo repository.YamboRepository,
	userRepo repository.UserRepository,
	statsRepo repository.YamboStatsRepository,
	txManager trm.Manager,
) service.YamboService {
	return &serv{
		cfg:       cfg,
		repo:      repo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		txManager: txManager,
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// userID pulls the authenticated player from the request context.
func userID(ctx context.Context) (int, error) {
	id, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.New("user id not found in context")
	}
	return id, nil
}

// loadController rebuilds the player's turn controller from storage,
// creating a fresh game on first touch.
func (s *serv) loadController(ctx context.Context, userID int) (*turn.Controller, error) {
	state, err := s.repo.GetGameState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		ctrl, err := turn.New(s.cfg, s.newRNG())
		if err != nil {
			return nil, err
		}
		if err := s.repo.CreateGameState(ctx, userID, ctrl.Snapshot()); err != nil {
			return nil, err
		}
		return ctrl, nil
	}
	return turn.Restore(*state, s.cfg, s.newRNG())
}
