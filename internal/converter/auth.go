package converter

import (
	"yambo_backend/internal/api/dto/auth"
	"yambo_backend/internal/model"
)

func RegisterRequestToUserModel(req auth.RegisterRequest) model.User {
	return model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}
