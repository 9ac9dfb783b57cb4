package vip

import (
	"fortuna_backend/internal/model"
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
}

// NewVipService Создать сервис VIP статусов
func NewVipService(
	catalog repository.CatalogRepository,
	accountRepo repository.AccountRepository,
	auditRepo repository.AuditRepository,
	locks *keylock.KeyLock,
	txManager trm.Manager,
) service.VipService {
	return &serv{
		catalog:     catalog,
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		locks:       locks,
		txManager:   txManager,
	}
}

func (s *serv) Options() []model.VIPOption {
	return s.catalog.VIPOptions()
}
