package service

import (
	"context"
	"errors"
	"time"

	"forohub/config"
	"forohub/dao"
	"forohub/pkg/encrypt"
	"forohub/pkg/jwt"
	"forohub/pkg/log"
	"forohub/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInvalidCredentials login o contraseña incorrectos; el handler lo mapea a 401.
var ErrInvalidCredentials = errors.New("credenciales inválidas")

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error)
}

// AuthService intercambia credenciales por un token de acceso.
type AuthService struct {
	Config  *config.Config
	UserDAO *dao.User
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.UserDAO.FindByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, req.Contrasena) {
		log.L.Info("login rejected", zap.String("login", req.Login))
		return nil, ErrInvalidCredentials
	}

	expire := time.Duration(s.Config.Jwt.ExpireMinutes) * time.Minute
	if expire <= 0 {
		expire = 2 * time.Hour
	}
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.Login, "access", expire)
	if err != nil {
		return nil, err
	}

	return &types.TokenResponse{Token: token}, nil
}
