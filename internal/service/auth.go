package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"brasserie/internal/domain"
)

type AuthService struct {
	staff    StaffRepository
	sessions SessionStore
}

func NewAuthService(staff StaffRepository, sessions SessionStore) *AuthService {
	return &AuthService{staff: staff, sessions: sessions}
}

// Login checks the credentials and opens a session, returning its token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.StaffUser, error) {
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("username and password are required: %w", domain.ErrValidation)
	}

	staff, err := s.staff.GetStaffByUsername(username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.Put(ctx, token, staff.ID); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}
	return token, staff, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves the staff identity bound to a session token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.StaffUser, error) {
	if token == "" {
		return nil, domain.ErrAuthRequired
	}
	staffID, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if staffID == 0 {
		return nil, domain.ErrAuthRequired
	}
	staff, err := s.staff.GetStaff(staffID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrAuthRequired
	}
	if err != nil {
		return nil, err
	}
	return staff, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
