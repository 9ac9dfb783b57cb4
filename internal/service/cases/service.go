package cases

import (
	"math/rand"

	"fortuna_backend/internal/repository"
	"fortuna_backend/internal/service"
	"fortuna_backend/pkg/keylock"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	catalog     repository.CatalogRepository
	accountRepo repository.AccountRepository
	auditRepo   repository.AuditRepository
	locks       *keylock.KeyLock
	txManager   trm.Manager
	randFloat   func() float64 // источник розыгрыша, подменяется в тестах
}

// NewCaseService Создать сервис открытия кейсов
func NewCaseService(
	catalog repository.CatalogRepository,
	accountRepo repository.AccountRepository,
	auditRepo repository.AuditRepository,
	locks *keylock.KeyLock,
	txManager trm.Manager,
) service.CaseService {
	return &serv{
		catalog:     catalog,
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		locks:       locks,
		txManager:   txManager,
		randFloat:   rand.Float64,
	}
}
