package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/ofgateway/internal/domain"
	"github.com/GlebRadaev/ofgateway/internal/dto"
	"github.com/GlebRadaev/ofgateway/internal/service/authservice"
	"github.com/GlebRadaev/ofgateway/pkg/utils"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, username, email, password, accountID string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user bound to an OnlyFans account and get a JWT token valid for 24 hours
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing fields, or username/email/account already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password, req.OnlyFansAccountID)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, "All fields are required: username, email, password, onlyfansAccountId")
		case errors.Is(err, domain.ErrDuplicateAccount):
			utils.RespondWithError(w, http.StatusBadRequest, "OnlyFans account already registered")
		case errors.Is(err, authservice.ErrConflict):
			utils.RespondWithError(w, http.StatusBadRequest, "Username or email already exists")
		default:
			zap.L().Error("registration error", zap.String("endpoint", r.URL.Path), zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		Message: "User registered successfully",
		User:    toUserDTO(user),
		Token:   token,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with username and password and get a JWT token valid for 24 hours
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, "All fields are required: username, password")
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			zap.L().Error("login error", zap.String("endpoint", r.URL.Path), zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User logged in successfully",
		User:    toUserDTO(user),
		Token:   token,
	})
}

func toUserDTO(user *domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		OnlyFansAccountID: user.OnlyFansAccountID,
	}
}
