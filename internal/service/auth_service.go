package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"kedai/config"
	"kedai/internal/auth"
	"kedai/internal/models"
	"kedai/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCreds = errors.New("invalid email or password")

type AuthService struct {
	cfg       *config.JWTConfig
	adminRepo *repository.AdminRepository
}

func NewAuthService(cfg *config.JWTConfig, adminRepo *repository.AdminRepository) *AuthService {
	return &AuthService{cfg: cfg, adminRepo: adminRepo}
}

// Login checks admin credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	a, err := s.adminRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCreds
	}
	access, err := auth.GenerateAccessToken(s.cfg, a.ID, a.Email, a.Role)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	if err := s.adminRepo.TouchLogin(ctx, a.ID, now); err == nil {
		a.LastLoginAt = &now
	}
	return a, access, nil
}
