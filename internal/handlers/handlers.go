package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/ofgateway/docs"
	"github.com/GlebRadaev/ofgateway/internal/dto"
	authhandlers "github.com/GlebRadaev/ofgateway/internal/handlers/auth"
	payouthandlers "github.com/GlebRadaev/ofgateway/internal/handlers/payouts"
	"github.com/GlebRadaev/ofgateway/internal/service"
	"github.com/GlebRadaev/ofgateway/pkg/auth"
	"github.com/GlebRadaev/ofgateway/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	GetEarnings(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	PayoutHandler PayoutHandler
	Authenticator func(http.Handler) http.Handler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		PayoutHandler: payouthandlers.New(s.PayoutService),
		Authenticator: auth.Middleware(s.TokenService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/ping", Ping)
	r.Post("/register", h.AuthHandler.Register)
	r.Post("/login", h.AuthHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(h.Authenticator)
		r.Get("/earnings/{"+payouthandlers.AccountIDParam+"}", h.PayoutHandler.GetEarnings)
		r.Get("/transactions/{"+payouthandlers.AccountIDParam+"}", h.PayoutHandler.GetTransactions)
	})

	return r
}

// Ping godoc
//
//	@Summary	Liveness check
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	dto.PingResponseDTO
//	@Router		/ping [get]
func Ping(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.PingResponseDTO{Message: "pong"})
}
