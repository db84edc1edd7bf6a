package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/ofgateway/internal/domain"
	"github.com/GlebRadaev/ofgateway/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const accountConstraint = "users_onlyfans_account_id_key"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, onlyfans_account_id, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.OnlyFansAccountID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, onlyfans_account_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := repo.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.OnlyFansAccountID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if constraint, ok := pg.IsUniqueViolation(err); ok {
			zap.L().Info("user already exists", zap.String("constraint", constraint))
			if constraint == accountConstraint {
				return nil, fmt.Errorf("%w: %w", domain.ErrDuplicateAccount, err)
			}
			return nil, fmt.Errorf("%w: %w", domain.ErrDuplicateUser, err)
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// IsOwner reports whether accountID is registered to userID.
func (repo *Repository) IsOwner(ctx context.Context, userID int, accountID string) (bool, error) {
	query := "SELECT id FROM users WHERE onlyfans_account_id = $1 AND id = $2"

	var id int
	err := repo.db.QueryRow(ctx, query, accountID, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't check account ownership", zap.Int("userID", userID), zap.Error(err))
		return false, err
	}
	return true, nil
}
