package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/ofgateway/internal/domain"
	"github.com/GlebRadaev/ofgateway/internal/dto"
	"github.com/GlebRadaev/ofgateway/internal/service/authservice"
	"github.com/GlebRadaev/ofgateway/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

var registered = &domain.User{
	ID:                1,
	Username:          "alice",
	Email:             "alice@example.com",
	PasswordHash:      "hashedpassword",
	OnlyFansAccountID: "acct_1",
}

const registerBody = `{"username":"alice","email":"alice@example.com","password":"password123","onlyfansAccountId":"acct_1"}`

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: registerBody,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "alice@example.com", "password123", "acct_1").Return(registered, nil)
				service.EXPECT().GenerateToken(registered).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Missing fields",
			body: `{"username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "", "", "").
					Return(nil, fmt.Errorf("%w: email, password, onlyfansAccountId", authservice.ErrValidation))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "All fields are required: username, email, password, onlyfansAccountId",
		},
		{
			name: "User already exists",
			body: registerBody,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "alice@example.com", "password123", "acct_1").
					Return(nil, fmt.Errorf("%w: %w", authservice.ErrConflict, domain.ErrDuplicateUser))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username or email already exists",
		},
		{
			name: "Account already registered",
			body: registerBody,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "alice@example.com", "password123", "acct_1").
					Return(nil, fmt.Errorf("%w: %w", authservice.ErrConflict, domain.ErrDuplicateAccount))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "OnlyFans account already registered",
		},
		{
			name: "Database failure",
			body: registerBody,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "alice@example.com", "password123", "acct_1").
					Return(nil, errors.New("connection reset"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: registerBody,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "alice@example.com", "password123", "acct_1").Return(registered, nil)
				service.EXPECT().GenerateToken(registered).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp dto.RegisterResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, dto.RegisterResponseDTO{
				Message: "User registered successfully",
				User: dto.UserDTO{
					ID:                1,
					Username:          "alice",
					Email:             "alice@example.com",
					OnlyFansAccountID: "acct_1",
				},
				Token: "some-jwt-token",
			}, resp)
		})
	}
}

func TestRegisterHandler_ResponseShape(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(registered, nil)
	service.EXPECT().GenerateToken(registered).Return("tok", nil)

	rr := httptest.NewRecorder()
	handler.Register(rr, httptest.NewRequest("POST", "/register", bytes.NewReader([]byte(registerBody))))

	assert.JSONEq(t, `{
		"message": "User registered successfully",
		"user": {"id": 1, "username": "alice", "email": "alice@example.com", "onlyfans_account_id": "acct_1"},
		"token": "tok"
	}`, rr.Body.String())
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"username":"alice","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "alice", "password123").
					Return(registered, nil)

				service.EXPECT().
					GenerateToken(registered).
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"alice","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "alice", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Missing password",
			body: `{"username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "alice", "").
					Return(nil, authservice.ErrValidation)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "All fields are required: username, password",
		},
		{
			name: "Database failure",
			body: `{"username":"alice","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "alice", "password123").
					Return(nil, errors.New("connection reset"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"username":"alice","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "alice", "password123").
					Return(registered, nil)

				service.EXPECT().
					GenerateToken(registered).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp dto.LoginResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, 1, resp.User.ID)
		})
	}
}
