package memory_repo

import (
	"context"
	"errors"
	"sync"

	"fortuna_backend/internal/model"
	"fortuna_backend/internal/repository"
)

// Сессии в памяти для режима без БД
type AuthRepo struct {
	mtx      sync.RWMutex
	sessions map[string]model.Session
	accounts repository.AccountRepository
}

func NewAuthRepository(accounts repository.AccountRepository) *AuthRepo {
	return &AuthRepo{
		sessions: make(map[string]model.Session),
		accounts: accounts,
	}
}

var _ repository.AuthRepository = (*AuthRepo)(nil)

func (r *AuthRepo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.sessions[session.ID] = *session
	return nil
}

func (r *AuthRepo) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return "", errors.New("session not found")
	}
	return session.RefreshToken, nil
}

func (r *AuthRepo) DeleteSession(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

func (r *AuthRepo) GetAccountBySessionID(ctx context.Context, sessionID string) (*model.Account, error) {
	r.mtx.RLock()
	session, ok := r.sessions[sessionID]
	r.mtx.RUnlock()

	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return r.accounts.GetAccount(ctx, session.AccountID)
}
