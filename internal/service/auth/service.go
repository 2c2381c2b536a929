package auth

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"

	"yambo_backend/internal/config"
	"yambo_backend/internal/repository"
	"yambo_backend/internal/service"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
}

func NewAuthService(
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	txManager trm.Manager,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
