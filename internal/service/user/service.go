package user

import (
	"errors"
	"strings"
	"time"

	userRepo "github.com/dajor/bewirtungsbeleg-sub002/internal/repository/user"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
)

// Service defines the user service interface
type Service interface {
	Register(email, password string, profile *model.RegistrationProfile, role string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id uuid.UUID) (*model.User, error)
	EmailExists(email string) (bool, error)
	UpdatePassword(email, newPassword string) error
}

// userService provides user-related services.
type userService struct {
	userRepo userRepo.Repository
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo userRepo.Repository) Service {
	return &userService{
		userRepo: userRepo,
	}
}

// Register creates a new user account
func (s *userService) Register(email, password string, profile *model.RegistrationProfile, role string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// check if user already exists
	existingUser, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	// hash the password
	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	// create user
	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if profile != nil {
		user.FirstName = profile.FirstName
		user.LastName = profile.LastName
	}

	// save user to database
	err = s.userRepo.Create(user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(email string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// EmailExists reports whether an account exists for the email
func (s *userService) EmailExists(email string) (bool, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// UpdatePassword replaces a user's password
func (s *userService) UpdatePassword(email, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePasswordHash(email, hashedPassword)
}

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}
