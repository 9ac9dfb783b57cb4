package moderation

import (
	"fortuna_backend/internal/repository"
	"fortuna_backend/internal/service"
	"fortuna_backend/pkg/keylock"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	accountRepo repository.AccountRepository
	auditRepo   repository.AuditRepository
	locks       *keylock.KeyLock
	txManager   trm.Manager
}

// NewModerationService Создать сервис модерации
func NewModerationService(
	accountRepo repository.AccountRepository,
	auditRepo repository.AuditRepository,
	locks *keylock.KeyLock,
	txManager trm.Manager,
) service.ModerationService {
	return &serv{
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		locks:       locks,
		txManager:   txManager,
	}
}
