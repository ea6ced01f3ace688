package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cokeke26/fenats/internal/admin"
	"github.com/cokeke26/fenats/internal/model"
	"github.com/cokeke26/fenats/internal/shared/logger"
	"github.com/cokeke26/fenats/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db              *gorm.DB
	adminRepository *admin.AdminRepository
	tokenManager    token.Manager
}

func NewAuthService(db *gorm.DB, adminRepository *admin.AdminRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:              db,
		adminRepository: adminRepository,
		tokenManager:    tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)
	email := strings.ToLower(strings.TrimSpace(request.Email))

	// 1. Find admin by email
	found, err := a.adminRepository.FindByEmail(ctx, a.db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("login failed - email not found", "email", logger.MaskEmail(email))
			return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword) // Security: don't reveal if email exists
		}
		log.Error("login failed", "error", err)
		return nil, fmt.Errorf("find admin: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(request.Password)); err != nil {
		log.Warn("login failed - invalid password", "email", logger.MaskEmail(email))
		return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
	}

	// 3. Generate JWT tokens
	response, err := a.issue(found)
	if err != nil {
		log.Error("token generation failed", "error", err)
		return nil, err
	}

	log.Info("login succeeded", "email", logger.MaskEmail(email))
	return response, nil
}

// Refresh exchanges a refresh token for a new token pair. The admin must
// still exist.
func (a *AuthService) Refresh(ctx context.Context, request *RefreshRequest) (*LoginResponse, error) {
	claims, err := a.tokenManager.ValidateToken(request.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRefreshToken, err)
	}
	if claims.TokenType != token.REFRESH {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRefreshToken, token.ErrWrongTokenType)
	}

	id, err := strconv.ParseUint(claims.AdminID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: admin id %q", ErrInvalidRefreshToken, claims.AdminID)
	}

	found, err := a.adminRepository.FindByID(ctx, a.db, uint32(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: admin %d no longer exists", ErrInvalidRefreshToken, id)
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	return a.issue(found)
}

func (a *AuthService) issue(found *model.Admin) (*LoginResponse, error) {
	adminID := strconv.FormatUint(uint64(found.ID), 10)

	accessToken, err := a.tokenManager.GenerateAccessToken(adminID, found.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(adminID, found.Email)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
