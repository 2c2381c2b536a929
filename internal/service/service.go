package service

import (
	"context"

	"yambo_backend/internal/model"
)

type YamboService interface {
	Roll(ctx context.Context) (*model.RollResult, error)
	Save(ctx context.Context, col model.ColumnID, row model.RowID) (*model.SaveResult, error)
	ToggleHold(ctx context.Context, index int) (*model.TableData, error)
	ToggleHoldMatching(ctx context.Context, index int) (*model.TableData, error)
	ToggleColumnScratch(ctx context.Context, col model.ColumnID) (*model.TableData, error)
	CheckTable(ctx context.Context) (*model.TableData, error)
	NewGame(ctx context.Context) (*model.TableData, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
