package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"brasserie/internal/domain"
	"brasserie/internal/mocks"
	"brasserie/internal/service"
)

func staffWithPassword(t *testing.T, password string) *domain.StaffUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.StaffUser{ID: 1, Username: "serveur1", PasswordHash: string(hash), FullName: "Premier Serveur"}
}

func TestAuthService_LoginSuccess(t *testing.T) {
	mockStaff := new(mocks.StaffRepository)
	mockSessions := new(mocks.SessionStore)
	svc := service.NewAuthService(mockStaff, mockSessions)

	staff := staffWithPassword(t, "password123")
	mockStaff.On("GetStaffByUsername", "serveur1").Return(staff, nil).Once()
	mockSessions.On("Put", mock.Anything, mock.AnythingOfType("string"), 1).Return(nil).Once()

	token, got, err := svc.Login(context.Background(), "serveur1", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, staff, got)
	mockStaff.AssertExpectations(t)
	mockSessions.AssertExpectations(t)
}

func TestAuthService_LoginBadPassword(t *testing.T) {
	mockStaff := new(mocks.StaffRepository)
	mockSessions := new(mocks.SessionStore)
	svc := service.NewAuthService(mockStaff, mockSessions)

	mockStaff.On("GetStaffByUsername", "serveur1").Return(staffWithPassword(t, "password123"), nil).Once()

	_, _, err := svc.Login(context.Background(), "serveur1", "motdepasse")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	mockSessions.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	mockStaff := new(mocks.StaffRepository)
	svc := service.NewAuthService(mockStaff, new(mocks.SessionStore))

	mockStaff.On("GetStaffByUsername", "inconnu").Return(nil, domain.ErrNotFound).Once()

	_, _, err := svc.Login(context.Background(), "inconnu", "password123")

	// Unknown user and bad password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginEmptyCredentials(t *testing.T) {
	mockStaff := new(mocks.StaffRepository)
	svc := service.NewAuthService(mockStaff, new(mocks.SessionStore))

	_, _, err := svc.Login(context.Background(), "", "password123")

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockStaff.AssertNotCalled(t, "GetStaffByUsername", mock.Anything)
}

func TestAuthService_AuthenticateEmptyToken(t *testing.T) {
	svc := service.NewAuthService(new(mocks.StaffRepository), new(mocks.SessionStore))

	_, err := svc.Authenticate(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestAuthService_AuthenticateUnknownToken(t *testing.T) {
	mockSessions := new(mocks.SessionStore)
	svc := service.NewAuthService(new(mocks.StaffRepository), mockSessions)

	mockSessions.On("Get", mock.Anything, "stale-token").Return(0, nil).Once()

	_, err := svc.Authenticate(context.Background(), "stale-token")

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	mockSessions.AssertExpectations(t)
}

func TestAuthService_AuthenticateResolvesStaff(t *testing.T) {
	mockStaff := new(mocks.StaffRepository)
	mockSessions := new(mocks.SessionStore)
	svc := service.NewAuthService(mockStaff, mockSessions)

	mockSessions.On("Get", mock.Anything, "tok").Return(1, nil).Once()
	mockStaff.On("GetStaff", 1).Return(&domain.StaffUser{ID: 1, Username: "serveur1"}, nil).Once()

	staff, err := svc.Authenticate(context.Background(), "tok")

	assert.NoError(t, err)
	assert.Equal(t, "serveur1", staff.Username)
	mockStaff.AssertExpectations(t)
}

func TestAuthService_AuthenticateDeletedStaff(t *testing.T) {
	mockStaff := new(mocks.StaffRepository)
	mockSessions := new(mocks.SessionStore)
	svc := service.NewAuthService(mockStaff, mockSessions)

	mockSessions.On("Get", mock.Anything, "tok").Return(9, nil).Once()
	mockStaff.On("GetStaff", 9).Return(nil, domain.ErrNotFound).Once()

	_, err := svc.Authenticate(context.Background(), "tok")

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestAuthService_Logout(t *testing.T) {
	mockSessions := new(mocks.SessionStore)
	svc := service.NewAuthService(new(mocks.StaffRepository), mockSessions)

	mockSessions.On("Delete", mock.Anything, "tok").Return(nil).Once()

	assert.NoError(t, svc.Logout(context.Background(), "tok"))
	assert.NoError(t, svc.Logout(context.Background(), ""))
	mockSessions.AssertExpectations(t)
}
