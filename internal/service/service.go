package service

import (
	"context"

	"fortuna_backend/internal/model"
)

type CaseService interface {
	Open(ctx context.Context, accountID int, caseID string) (*model.CaseOpenResult, error)
	Cases() []model.Case
}

type VipService interface {
	Purchase(ctx context.Context, accountID int, optionID string) (*model.Account, error)
	ActivateFromStash(ctx context.Context, accountID int, stashItemID string) (*model.Account, error)
	Grant(ctx context.Context, accountID int, vipType model.VIPStatus, durationDays int, source model.ActivationSource) (*model.Account, error)
	Options() []model.VIPOption
}

type AccountService interface {
	Get(ctx context.Context, accountID int) (*model.Account, error)
	Deposit(ctx context.Context, accountID int, currency model.CurrencyType, amount int) (*model.Account, error)
	AuditLog(ctx context.Context, accountID int, limit int) ([]model.AuditEntry, error)
}

type ModerationService interface {
	Ban(ctx context.Context, accountID int, reason string, days int) error
	Unban(ctx context.Context, accountID int) error
	Mute(ctx context.Context, accountID int, reason string, minutes int) error
	Unmute(ctx context.Context, accountID int) error
}

// SweeperService - периодический обход аккаунтов, сброс истекших состояний
type SweeperService interface {
	Start() error
	Stop()
	SweepAll(ctx context.Context) error
	SweepAccount(ctx context.Context, accountID int) error
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.AuthData, error)
	Login(ctx context.Context, username, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
