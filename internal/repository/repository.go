package repository

import (
	"context"

	"fortuna_backend/internal/model"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) (id int, err error)
	GetAccount(ctx context.Context, id int) (*model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)
	UpdateAccount(ctx context.Context, account *model.Account) error

	// ListAccountIDs - все аккаунты для обхода свипером
	ListAccountIDs(ctx context.Context) ([]int, error)
}

// AuditRepository - журнал действий на аккаунт: только добавление,
// новые записи первыми, длина ограничена model.MaxAuditEntries
type AuditRepository interface {
	Append(ctx context.Context, accountID int, action, details string) error
	List(ctx context.Context, accountID int, limit int) ([]model.AuditEntry, error)
}

// CatalogRepository - статический каталог, только чтение
type CatalogRepository interface {
	GetCase(id string) (*model.Case, error)
	GetVIPOption(id string) (*model.VIPOption, error)
	Cases() []model.Case
	VIPOptions() []model.VIPOption

	// PremiumLuckBoost - доля буста удачи канонической 30-дневной Premium опции
	PremiumLuckBoost() float64
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetAccountBySessionID(ctx context.Context, sessionID string) (*model.Account, error)
}
