package auth

import (
	"context"
	"errors"

	"yambo_backend/internal/model"
	"yambo_backend/pkg/token"
)

// Refresh issues a new access token after verifying the presented
// refresh token against the stored hash.
func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	if !token.VerifyRefreshToken(data.RefreshToken, refreshTokenHash) {
		return "", errors.New("invalid refresh token")
	}

	user, err := s.authRepo.GetUserBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	return token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
