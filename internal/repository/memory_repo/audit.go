package memory_repo

import (
	"context"
	"sync"
	"time"

	"fortuna_backend/internal/model"
	"fortuna_backend/internal/repository"

	"github.com/google/uuid"
)

// Журнал аудита в памяти. Новые записи первыми,
// длина ограничена model.MaxAuditEntries
type AuditRepo struct {
	mtx     sync.RWMutex
	entries map[int][]model.AuditEntry
}

func NewAuditRepository() *AuditRepo {
	return &AuditRepo{
		entries: make(map[int][]model.AuditEntry),
	}
}

var _ repository.AuditRepository = (*AuditRepo)(nil)

func (r *AuditRepo) Append(_ context.Context, accountID int, action, details string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	entry := model.AuditEntry{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	}

	log := append([]model.AuditEntry{entry}, r.entries[accountID]...)
	if len(log) > model.MaxAuditEntries {
		log = log[:model.MaxAuditEntries]
	}
	r.entries[accountID] = log

	return nil
}

func (r *AuditRepo) List(_ context.Context, accountID int, limit int) ([]model.AuditEntry, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	log := r.entries[accountID]
	if limit <= 0 || limit > len(log) {
		limit = len(log)
	}

	return append([]model.AuditEntry(nil), log[:limit]...), nil
}
