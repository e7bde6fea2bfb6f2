package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	authRepo "github.com/dajor/bewirtungsbeleg-sub002/internal/repository/auth"
	userRepo "github.com/dajor/bewirtungsbeleg-sub002/internal/repository/user"
	userService "github.com/dajor/bewirtungsbeleg-sub002/internal/service/user"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/auth"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service defines the auth service interface
type Service interface {
	Login(req *model.LoginRequest) (*model.LoginResponse, error)
	LoginWithMagicLink(email string) (*model.LoginResponse, error)
	Logout(refreshToken string) error
}

// authService provides auth-related services.
type authService struct {
	jwtManager  *auth.JWTManager
	userService userService.Service
	authRepo    authRepo.Repository
}

// NewAuthService creates a new auth service instance.
func NewAuthService(
	cfg *config.Config,
	userService userService.Service,
	authRepo authRepo.Repository,
) Service {
	return &authService{
		jwtManager:  auth.NewJWTManager(cfg.JWTSecret),
		userService: userService,
		authRepo:    authRepo,
	}
}

// Login authenticates a user with email and password and returns tokens
func (s *authService) Login(req *model.LoginRequest) (*model.LoginResponse, error) {
	// Get user by email
	user, err := s.userService.GetUserByEmail(req.Email)
	if err != nil {
		if err == userService.ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Verify password
	err = userRepo.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(user)
}

// LoginWithMagicLink creates a session for a user whose magic-link token was
// already redeemed. The caller is responsible for having consumed the token.
func (s *authService) LoginWithMagicLink(email string) (*model.LoginResponse, error) {
	user, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if err == userService.ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return s.createSession(user)
}

// Logout invalidates a refresh token
func (s *authService) Logout(refreshToken string) error {
	refreshTokenHash := hashToken(refreshToken)
	return s.authRepo.DeleteRefreshToken(refreshTokenHash)
}

// createSession issues access and refresh tokens and persists the refresh
// token hash
func (s *authService) createSession(user *model.User) (*model.LoginResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	// Store refresh token hash in database
	refreshTokenHash := hashToken(refreshToken)
	err = s.authRepo.StoreRefreshToken(user.ID, refreshTokenHash)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	}, nil
}

// hashToken creates a SHA-256 hash of a token for storage
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
