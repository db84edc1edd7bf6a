package repo

import (
	"github.com/GlebRadaev/ofgateway/internal/pg"
	snapshotrepo "github.com/GlebRadaev/ofgateway/internal/repo/snapshot-repo"
	userrepo "github.com/GlebRadaev/ofgateway/internal/repo/user-repo"
	"github.com/GlebRadaev/ofgateway/internal/service/authservice"
	"github.com/GlebRadaev/ofgateway/internal/service/payoutservice"
)

type UserRepo interface {
	authservice.Repo
	payoutservice.OwnerRepo
}

type Repositories struct {
	UserRepo     UserRepo
	SnapshotRepo payoutservice.SnapshotRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		SnapshotRepo: snapshotrepo.New(conn, txManager),
	}
}
