package payoutservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/ofgateway/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrValidation   = errors.New("onlyfans account id is required")
	ErrAccessDenied = errors.New("access denied")
	ErrUpstream     = errors.New("onlyfans api request failed")
	ErrPersist      = errors.New("can't store snapshot")
)

type OwnerRepo interface {
	IsOwner(ctx context.Context, userID int, accountID string) (bool, error)
}

type SnapshotRepo interface {
	SaveEarnings(ctx context.Context, userID int, accountID string, data []byte) (*domain.Snapshot, error)
	SaveTransactions(ctx context.Context, userID int, accountID string, data []byte) (*domain.Snapshot, error)
}

type API interface {
	GetEarningStatistics(ctx context.Context, accountID string) (*domain.Envelope, error)
	GetTransactions(ctx context.Context, accountID string, q domain.TransactionsQuery) (*domain.Envelope, error)
}

type Service struct {
	ownerRepo    OwnerRepo
	snapshotRepo SnapshotRepo
	api          API
}

func New(ownerRepo OwnerRepo, snapshotRepo SnapshotRepo, api API) *Service {
	return &Service{
		ownerRepo:    ownerRepo,
		snapshotRepo: snapshotRepo,
		api:          api,
	}
}

// FetchEarnings proxies the earning statistics of an owned account and keeps
// the "data" part as a snapshot of userID.
func (s *Service) FetchEarnings(ctx context.Context, userID int, accountID string) (*domain.Envelope, error) {
	if err := s.authorize(ctx, userID, accountID); err != nil {
		return nil, err
	}

	envelope, err := s.api.GetEarningStatistics(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if _, err := s.snapshotRepo.SaveEarnings(ctx, userID, accountID, envelope.Data); err != nil {
		return nil, persistError(err)
	}

	zap.L().Info("earnings snapshot stored", zap.Int("userID", userID), zap.String("accountID", accountID))
	return envelope, nil
}

func (s *Service) FetchTransactions(ctx context.Context, userID int, accountID string, q domain.TransactionsQuery) (*domain.Envelope, error) {
	if err := s.authorize(ctx, userID, accountID); err != nil {
		return nil, err
	}

	envelope, err := s.api.GetTransactions(ctx, accountID, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if _, err := s.snapshotRepo.SaveTransactions(ctx, userID, accountID, envelope.Data); err != nil {
		return nil, persistError(err)
	}

	zap.L().Info("transactions snapshot stored", zap.Int("userID", userID), zap.String("accountID", accountID))
	return envelope, nil
}

func (s *Service) authorize(ctx context.Context, userID int, accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return ErrValidation
	}

	owner, err := s.ownerRepo.IsOwner(ctx, userID, accountID)
	if err != nil {
		return fmt.Errorf("can't check account ownership: %w", err)
	}
	if !owner {
		zap.L().Info("account access denied", zap.Int("userID", userID), zap.String("accountID", accountID))
		return ErrAccessDenied
	}
	return nil
}

func persistError(err error) error {
	if errors.Is(err, domain.ErrNotOwner) {
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	}
	return fmt.Errorf("%w: %w", ErrPersist, err)
}
