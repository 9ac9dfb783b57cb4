package account

import (
	"context"
	"fmt"

	"fortuna_backend/internal/model"
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

// NewAccountService Создать сервис аккаунтов
func NewAccountService(
	accountRepo repository.AccountRepository,
	auditRepo repository.AuditRepository,
	locks *keylock.KeyLock,
	txManager trm.Manager,
) service.AccountService {
	return &serv{
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		locks:       locks,
		txManager:   txManager,
	}
}

func (s *serv) Get(ctx context.Context, accountID int) (*model.Account, error) {
	return s.accountRepo.GetAccount(ctx, accountID)
}

func (s *serv) Deposit(ctx context.Context, accountID int, currency model.CurrencyType, amount int) (*model.Account, error) {
	if amount <= 0 {
		return nil, model.ErrInvalidState
	}
	if currency != model.CurrencyRegular && currency != model.CurrencyPremium {
		return nil, model.ErrInvalidState
	}

	unlock := s.locks.Lock(accountID)
	defer unlock()

	var result *model.Account

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		account.AddBalance(currency, amount)

		if err = s.accountRepo.UpdateAccount(ctx, account); err != nil {
			return err
		}

		details := fmt.Sprintf("Зачислено %d %s.", amount, currency.Label())
		if err = s.auditRepo.Append(ctx, accountID, "Пополнение", details); err != nil {
			return err
		}

		result = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *serv) AuditLog(ctx context.Context, accountID int, limit int) ([]model.AuditEntry, error) {
	if limit <= 0 || limit > model.MaxAuditEntries {
		limit = model.MaxAuditEntries
	}
	return s.auditRepo.List(ctx, accountID, limit)
}
