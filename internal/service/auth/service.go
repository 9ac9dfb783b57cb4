package auth

import (
	"fortuna_backend/internal/config"
	"fortuna_backend/internal/repository"
	"fortuna_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

const minPasswordLength = 4

type serv struct {
	txManager   trm.Manager
	accountRepo repository.AccountRepository
	authRepo    repository.AuthRepository
	auditRepo   repository.AuditRepository
	jwtConfig   config.JWTConfig
}

// NewAuthService Создать сервис аутентификации
func NewAuthService(
	txManager trm.Manager,
	accountRepo repository.AccountRepository,
	authRepo repository.AuthRepository,
	auditRepo repository.AuditRepository,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager:   txManager,
		accountRepo: accountRepo,
		authRepo:    authRepo,
		auditRepo:   auditRepo,
		jwtConfig:   jwtConfig,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
