package auth

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/chronos-hr/attendance-backend-go/internal/config"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/auth"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	cfg        config.AdminConfig
	jwtService jwt.Service
}

func NewAuthService(cfg config.AdminConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService. There is a single operator account,
// configured through the environment; the stored value is a bcrypt hash,
// never a plaintext password.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if req.Email != s.cfg.Email {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("failed login attempt", "email", req.Email)
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Email)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
