package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfoliohub/internal/model"
	"portfoliohub/internal/repository"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUsernameExists    = errors.New("username already exists")
	ErrEmailExists       = errors.New("email already in use")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrUnauthenticated   = errors.New("authentication required")
)

// SessionStore issues and resolves opaque session tokens. Implemented by the
// redis-backed session.Store; tests substitute an in-memory fake.
type SessionStore interface {
	Create(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Destroy(ctx context.Context, token string) error
}

type AuthService struct {
	userRepo *repository.UserRepository
	sessions SessionStore
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Bio      string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token string
	User  *model.User
}

func NewAuthService(userRepo *repository.UserRepository, sessions SessionStore) *AuthService {
	return &AuthService{userRepo: userRepo, sessions: sessions}
}

func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := input.Password
	fullName := strings.TrimSpace(input.FullName)

	if username == "" || email == "" || password == "" || fullName == "" {
		return nil, ErrInvalidInput
	}

	existingByName, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existingByName != nil {
		return nil, ErrUsernameExists
	}

	existingByEmail, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existingByEmail != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Bio:          strings.TrimSpace(input.Bio),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, ErrInvalidCredential
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredential
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthenticated
	}
	return s.sessions.Destroy(ctx, token)
}

// ResolveToken maps a cookie token to the owning user id. Used by the session
// middleware; a stale token whose user no longer exists is treated the same as
// no session at all.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return "", ErrUnauthenticated
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUnauthenticated
	}
	return user.ID, nil
}

func (s *AuthService) GetUserByID(id string) (*model.User, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.userRepo.GetByID(id)
}
