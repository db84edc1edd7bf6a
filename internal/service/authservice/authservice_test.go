package authservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/GlebRadaev/ofgateway/internal/domain"
	"github.com/GlebRadaev/ofgateway/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

type registerInput struct {
	username, email, password, accountID string
}

var validInput = registerInput{"alice", "alice@example.com", "testpassword", "acct_1"}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		input         registerInput
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:  "Successful registration",
			input: validInput,
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword(context.Background(), "testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:                1,
				Username:          "alice",
				Email:             "alice@example.com",
				PasswordHash:      "hashedpassword",
				OnlyFansAccountID: "acct_1",
			},
		},
		{
			name:          "Missing email",
			input:         registerInput{"alice", "", "testpassword", "acct_1"},
			prepareMock:   func() {},
			expectedError: ErrValidation,
		},
		{
			name:          "Blank account id",
			input:         registerInput{"alice", "alice@example.com", "testpassword", "  "},
			prepareMock:   func() {},
			expectedError: ErrValidation,
		},
		{
			name:  "Duplicate username",
			input: validInput,
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword(context.Background(), "testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, fmt.Errorf("%w: pg", domain.ErrDuplicateUser))
			},
			expectedError: ErrConflict,
		},
		{
			name:  "Duplicate account",
			input: validInput,
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword(context.Background(), "testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, domain.ErrDuplicateAccount)
			},
			expectedError: domain.ErrDuplicateAccount,
		},
		{
			name:  "Error hashing password",
			input: validInput,
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword(context.Background(), "testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:  "Error creating user",
			input: validInput,
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword(context.Background(), "testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.input.username, tt.input.email, tt.input.password, tt.input.accountID)
			if tt.expectedError != nil {
				require.Error(t, err)
				if !errors.Is(err, tt.expectedError) {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestRegister_ConflictNotInternal(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	passwordHasher.EXPECT().HashPassword(gomock.Any(), "testpassword").Return("hashedpassword", nil)
	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateAccount)

	_, err := service.Register(context.Background(), "alice", "alice@example.com", "testpassword", "acct_1")

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	stored := &domain.User{ID: 1, Username: "alice", PasswordHash: "hashedpassword"}

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			username: "alice",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword(context.Background(), "hashedpassword", "testpassword").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:          "Missing password",
			username:      "alice",
			prepareMock:   func() {},
			expectedError: ErrValidation,
		},
		{
			name:     "Invalid credentials - user not found",
			username: "alice",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			username: "alice",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword(context.Background(), "hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Database error",
			username: "alice",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				require.Error(t, err)
				if !errors.Is(err, tt.expectedError) {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)
	issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issuedAt }
	user := &domain.User{ID: 1, Username: "alice"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful token generation",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, "alice", issuedAt.Add(24*time.Hour)).Return("generated-token", nil)
			},
			expectedToken: "generated-token",
		},
		{
			name: "Error generating token",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, "alice", gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(user)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestRegisterThenVerifyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	jwtService := auth.NewJWTService("secret")
	service := New(repo, auth.NewHashService(), jwtService)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
		user.ID = 42
		return user, nil
	})

	user, err := service.Register(context.Background(), "alice", "alice@example.com", "testpassword", "acct_1")
	require.NoError(t, err)
	token, err := service.GenerateToken(user)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEqual(t, "testpassword", user.PasswordHash)
}
