package memory_repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"fortuna_backend/internal/model"
	"fortuna_backend/internal/repository"
)

// Реализация репозитория аккаунтов в памяти.
// Используется при запуске без PG_DSN и в тестах
type AccountRepo struct {
	mtx      sync.RWMutex
	accounts map[int]*model.Account
	nextID   int
}

func NewAccountRepository() *AccountRepo {
	return &AccountRepo{
		accounts: make(map[int]*model.Account),
		nextID:   1,
	}
}

var _ repository.AccountRepository = (*AccountRepo)(nil)

func (r *AccountRepo) CreateAccount(_ context.Context, account *model.Account) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	id := r.nextID
	r.nextID++

	stored := cloneAccount(account)
	stored.ID = id
	r.accounts[id] = stored

	return id, nil
}

func (r *AccountRepo) GetAccount(_ context.Context, id int) (*model.Account, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

func (r *AccountRepo) GetAccountByUsername(_ context.Context, username string) (*model.Account, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	for _, account := range r.accounts {
		if strings.EqualFold(account.Username, username) {
			return cloneAccount(account), nil
		}
	}
	return nil, model.ErrAccountNotFound
}

func (r *AccountRepo) UpdateAccount(_ context.Context, account *model.Account) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return model.ErrAccountNotFound
	}
	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (r *AccountRepo) ListAccountIDs(_ context.Context) ([]int, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	ids := make([]int, 0, len(r.accounts))
	for id := range r.accounts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// cloneAccount копирует аккаунт, чтобы хранилище и вызывающие
// никогда не делили один слайс или указатель
func cloneAccount(account *model.Account) *model.Account {
	cloned := *account

	if account.VIPExpiry != nil {
		expiry := *account.VIPExpiry
		cloned.VIPExpiry = &expiry
	}
	if account.BanExpiry != nil {
		expiry := *account.BanExpiry
		cloned.BanExpiry = &expiry
	}
	if account.MuteExpiry != nil {
		expiry := *account.MuteExpiry
		cloned.MuteExpiry = &expiry
	}

	cloned.VipStash = append([]model.VipStashItem(nil), account.VipStash...)
	cloned.VipActivationHistory = append([]model.VipActivationEntry(nil), account.VipActivationHistory...)

	return &cloned
}
