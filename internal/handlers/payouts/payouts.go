package payouts

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/ofgateway/internal/domain"
	"github.com/GlebRadaev/ofgateway/internal/dto"
	"github.com/GlebRadaev/ofgateway/internal/service/payoutservice"
	"github.com/GlebRadaev/ofgateway/pkg/auth"
	"github.com/GlebRadaev/ofgateway/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const AccountIDParam = "onlyfansAccountId"

type Service interface {
	FetchEarnings(ctx context.Context, userID int, accountID string) (*domain.Envelope, error)
	FetchTransactions(ctx context.Context, userID int, accountID string, q domain.TransactionsQuery) (*domain.Envelope, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

// GetEarnings godoc
//
//	@Summary		Get earning statistics
//	@Description	Fetch earning statistics of an owned OnlyFans account and store a snapshot of them
//	@Tags			Payouts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			onlyfansAccountId	path		string	true	"OnlyFans account ID"
//	@Success		200					{object}	dto.EarningsResponseDTO
//	@Failure		400					{object}	utils.Response	"OnlyFans account ID is required"
//	@Failure		401					{object}	utils.Response	"Access token required"
//	@Failure		403					{object}	utils.Response	"Invalid token, or account not owned"
//	@Failure		500					{object}	utils.Response	"Error fetching earnings from OnlyFans API"
//	@Router			/earnings/{onlyfansAccountId} [get]
func (h *PayoutHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	userID, accountID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	envelope, err := h.payoutService.FetchEarnings(r.Context(), userID, accountID)
	if err != nil {
		respondWithFetchError(w, r, err, "Error fetching earnings from OnlyFans API")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.EarningsResponseDTO{
		Message:   "Earnings retrieved successfully",
		AccountID: accountID,
		Earnings:  envelope.Raw,
	})
}

// GetTransactions godoc
//
//	@Summary		Get payout transactions
//	@Description	Fetch a page of payout transactions of an owned OnlyFans account and store a snapshot of it
//	@Tags			Payouts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			onlyfansAccountId	path		string	true	"OnlyFans account ID"
//	@Param			limit				query		string	false	"Page size"	default(10)
//	@Param			marker				query		string	false	"Pagination marker from a previous page"
//	@Success		200					{object}	dto.TransactionsResponseDTO
//	@Failure		400					{object}	utils.Response	"OnlyFans account ID is required"
//	@Failure		401					{object}	utils.Response	"Access token required"
//	@Failure		403					{object}	utils.Response	"Invalid token, or account not owned"
//	@Failure		500					{object}	utils.Response	"Error fetching transactions from OnlyFans API"
//	@Router			/transactions/{onlyfansAccountId} [get]
func (h *PayoutHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, accountID, ok := requestIdentity(w, r)
	if !ok {
		return
	}

	q := domain.TransactionsQuery{
		Limit:  r.URL.Query().Get("limit"),
		Marker: r.URL.Query().Get("marker"),
	}
	envelope, err := h.payoutService.FetchTransactions(r.Context(), userID, accountID, q)
	if err != nil {
		respondWithFetchError(w, r, err, "Error fetching transactions from OnlyFans API")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionsResponseDTO{
		Message:      "Transactions retrieved successfully",
		AccountID:    accountID,
		Transactions: envelope.Raw,
	})
}

func requestIdentity(w http.ResponseWriter, r *http.Request) (int, string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Access token required")
		return 0, "", false
	}
	return userID, chi.URLParam(r, AccountIDParam), true
}

func respondWithFetchError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, payoutservice.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, "OnlyFans account ID is required")
	case errors.Is(err, payoutservice.ErrAccessDenied):
		utils.RespondWithError(w, http.StatusForbidden, "Access denied: You do not own this OnlyFans account")
	default:
		zap.L().Error(message, zap.String("endpoint", r.URL.Path), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, message)
	}
}
