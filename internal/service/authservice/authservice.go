package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/ofgateway/internal/domain"
	"github.com/GlebRadaev/ofgateway/pkg/auth"
	"github.com/GlebRadaev/ofgateway/pkg/validate"
	"go.uber.org/zap"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

var (
	ErrValidation         = errors.New("missing required fields")
	ErrConflict           = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	now         func() time.Time
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		now:         time.Now,
	}
}

func (s *Service) Register(ctx context.Context, username, email, password, accountID string) (*domain.User, error) {
	missing := validate.Missing(
		validate.Field{Name: "username", Value: username},
		validate.Field{Name: "email", Value: email},
		validate.Field{Name: "password", Value: password},
		validate.Field{Name: "onlyfansAccountId", Value: accountID},
	)
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, ", "))
	}

	hashedPassword, err := s.hashService.HashPassword(ctx, password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:          username,
		Email:             email,
		PasswordHash:      hashedPassword,
		OnlyFansAccountID: accountID,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) || errors.Is(err, domain.ErrDuplicateAccount) {
			zap.L().Info("user already exists", zap.String("username", username))
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", username), zap.Int("id", newUser.ID))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if !validate.Present(username, password) {
		return nil, fmt.Errorf("%w: username, password", ErrValidation)
	}
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(ctx, user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := s.now().Add(TokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Username, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
