package service

import (
	"context"
	"strings"
	"time"

	"agent-chat-be/internal/dto"
	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/pkg/serverutils"

	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

type IAuthService interface {
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
}

type AdminCredentials struct {
	Email        string
	PasswordHash string
	JwtSecret    string
}

type authService struct {
	creds AdminCredentials
	now   func() time.Time
}

func NewAuthService(creds AdminCredentials) IAuthService {
	return &authService{creds: creds, now: time.Now}
}

// AdminLogin checks the single configured admin account.
func (s *authService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if s.creds.Email == "" || s.creds.PasswordHash == "" || s.creds.JwtSecret == "" {
		return nil, entity.ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(req.Email), s.creds.Email) {
		return nil, entity.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(req.Password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	token, err := serverutils.IssueToken(s.creds.JwtSecret, s.creds.Email, serverutils.RoleAdmin, adminTokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{
		AccessToken: token,
		ExpiresAt:   s.now().Add(adminTokenTTL),
	}, nil
}
