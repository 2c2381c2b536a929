package repository

import (
	"context"

	"yambo_backend/internal/model"
	statsModel "yambo_backend/internal/repository/yambo_stats_repo/model"
)

type YamboRepository interface {
	// GetGameState returns the player's persisted table, or nil when the
	// player has no game yet.
	GetGameState(ctx context.Context, userID int) (*model.GameState, error)
	UpsertGameState(ctx context.Context, userID int, state model.GameState) error
	CreateGameState(ctx context.Context, userID int, state model.GameState) error
}

type YamboStatsRepository interface {
	Stats() statsModel.TableStats
	RecordRoll()
	RecordSave()
	RecordGameOver(grandTotal int)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetBestScore(ctx context.Context, id int) (int, error)
	UpdateBestScore(ctx context.Context, id int, score int) error
}
