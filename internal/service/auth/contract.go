//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"expresso/internal/entities"
)

type AccountRepository interface {
	Create(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Account, error)
	GetByUsername(ctx context.Context, username string) (*entities.Account, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session entities.Session) error
	GetByToken(ctx context.Context, token string) (*entities.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
