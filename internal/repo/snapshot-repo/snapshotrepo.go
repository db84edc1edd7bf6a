package snapshotrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/ofgateway/internal/domain"
	"github.com/GlebRadaev/ofgateway/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const lockOwnerQuery = "SELECT id FROM users WHERE onlyfans_account_id = $1 AND id = $2 FOR SHARE"

var insertQueries = map[domain.SnapshotKind]string{
	domain.EarningsSnapshot: `
		INSERT INTO onlyfans_earnings (user_id, earnings_data)
		VALUES ($1, $2)
		RETURNING id, retrieved_at
	`,
	domain.TransactionsSnapshot: `
		INSERT INTO onlyfans_transactions (user_id, transactions_data)
		VALUES ($1, $2)
		RETURNING id, retrieved_at
	`,
}

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Save stores the snapshot for its user. Ownership of accountID is checked
// again in the same transaction, with the user row locked until commit, so
// nothing is written for a user who no longer owns the account.
func (r *Repository) Save(ctx context.Context, accountID string, snapshot *domain.Snapshot) (*domain.Snapshot, error) {
	query, ok := insertQueries[snapshot.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown snapshot kind %q", snapshot.Kind)
	}

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var ownerID int
		err := r.db.QueryRow(ctx, lockOwnerQuery, accountID, snapshot.UserID).Scan(&ownerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotOwner
			}
			zap.L().Error("can't lock account owner", zap.Int("userID", snapshot.UserID), zap.Error(err))
			return err
		}

		err = r.db.QueryRow(ctx, query, snapshot.UserID, []byte(snapshot.Data)).Scan(&snapshot.ID, &snapshot.RetrievedAt)
		if err != nil {
			zap.L().Error("can't save snapshot", zap.String("kind", string(snapshot.Kind)), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *Repository) SaveEarnings(ctx context.Context, userID int, accountID string, data []byte) (*domain.Snapshot, error) {
	return r.Save(ctx, accountID, &domain.Snapshot{UserID: userID, Kind: domain.EarningsSnapshot, Data: data})
}

func (r *Repository) SaveTransactions(ctx context.Context, userID int, accountID string, data []byte) (*domain.Snapshot, error) {
	return r.Save(ctx, accountID, &domain.Snapshot{UserID: userID, Kind: domain.TransactionsSnapshot, Data: data})
}
