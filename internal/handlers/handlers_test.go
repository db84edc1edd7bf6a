package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/ofgateway/internal/handlers/auth"
	"github.com/GlebRadaev/ofgateway/internal/handlers/payouts"
	"github.com/GlebRadaev/ofgateway/internal/service"
	pkgauth "github.com/GlebRadaev/ofgateway/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:   auth.NewMockService(ctrl),
		PayoutService: payouts.NewMockService(ctrl),
		TokenService:  pkgauth.NewMockJWTServiceInterface(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Authenticator)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockPayoutHandler := NewMockPayoutHandler(ctrl)
	mockTokenService := pkgauth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().GetEarnings(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()

	mockTokenService.EXPECT().ValidateToken("good").Return(&pkgauth.Claims{UserID: 1, Username: "alice"}, nil).AnyTimes()
	mockTokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("token expired")).AnyTimes()

	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		PayoutHandler: mockPayoutHandler,
		Authenticator: pkgauth.Middleware(mockTokenService),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/register", "", http.StatusOK},
		{"POST", "/login", "", http.StatusOK},
		{"GET", "/ping", "", http.StatusOK},
		{"GET", "/swagger/doc.json", "", http.StatusOK},
		{"GET", "/earnings/acct_1", "", http.StatusUnauthorized},
		{"GET", "/transactions/acct_1", "", http.StatusUnauthorized},
		{"GET", "/earnings/acct_1", "bad", http.StatusForbidden},
		{"GET", "/transactions/acct_1", "bad", http.StatusForbidden},
		{"GET", "/earnings/acct_1", "good", http.StatusOK},
		{"GET", "/transactions/acct_1?limit=5", "good", http.StatusOK},
		{"GET", "/api/user/orders", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	Ping(rec, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}
