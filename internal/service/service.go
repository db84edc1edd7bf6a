package service

import (
	"github.com/GlebRadaev/ofgateway/internal/handlers/auth"
	"github.com/GlebRadaev/ofgateway/internal/handlers/payouts"
	"github.com/GlebRadaev/ofgateway/internal/repo"
	authservice "github.com/GlebRadaev/ofgateway/internal/service/authservice"
	payoutservice "github.com/GlebRadaev/ofgateway/internal/service/payoutservice"

	pkgauth "github.com/GlebRadaev/ofgateway/pkg/auth"
)

type Services struct {
	AuthService   auth.Service
	PayoutService payouts.Service
	TokenService  pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, api payoutservice.API, hashService pkgauth.HashServiceInterface, jwtService pkgauth.JWTServiceInterface) *Services {
	authService := authservice.New(repo.UserRepo, hashService, jwtService)
	payoutService := payoutservice.New(repo.UserRepo, repo.SnapshotRepo, api)

	return &Services{
		AuthService:   authService,
		PayoutService: payoutService,
		TokenService:  jwtService,
	}
}
