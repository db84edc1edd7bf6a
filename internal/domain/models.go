package domain

import (
	"encoding/json"
	"time"
)

type User struct {
	ID                int       `db:"id"`
	Username          string    `db:"username"`
	Email             string    `db:"email"`
	PasswordHash      string    `db:"password_hash"`
	OnlyFansAccountID string    `db:"onlyfans_account_id"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// SnapshotKind selects the table a snapshot is stored in.
type SnapshotKind string

const (
	EarningsSnapshot     SnapshotKind = "earnings"
	TransactionsSnapshot SnapshotKind = "transactions"
)

// Snapshot is an immutable copy of the "data" part of an OnlyFans API response.
type Snapshot struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Kind        SnapshotKind    `db:"-"`
	Data        json.RawMessage `db:"data"`
	RetrievedAt time.Time       `db:"retrieved_at"`
}

// Envelope is an OnlyFans API response. Raw holds the body exactly as received.
type Envelope struct {
	Data json.RawMessage
	Raw  json.RawMessage
}

type TransactionsQuery struct {
	Limit  string
	Marker string
}
