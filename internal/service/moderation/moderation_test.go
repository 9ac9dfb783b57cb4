package moderation

import (
	"context"
	"testing"
	"time"

	"fortuna_backend/internal/model"
	"fortuna_backend/internal/repository/memory_repo"
	"fortuna_backend/internal/service"
	"fortuna_backend/pkg/keylock"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (service.ModerationService, *memory_repo.AccountRepo, *memory_repo.AuditRepo, int) {
	t.Helper()

	accountRepo := memory_repo.NewAccountRepository()
	auditRepo := memory_repo.NewAuditRepository()
	s := NewModerationService(accountRepo, auditRepo, keylock.New(), memory_repo.NewTxManager())

	id, err := accountRepo.CreateAccount(context.Background(), &model.Account{
		Username: "player",
		Status:   model.VIPNone,
	})
	require.NoError(t, err)

	return s, accountRepo, auditRepo, id
}

func TestBanTemporary(t *testing.T) {
	s, accountRepo, auditRepo, id := newTestService(t)

	require.NoError(t, s.Ban(context.Background(), id, "спам", 3))

	account, err := accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.True(t, account.IsBanned)
	require.Equal(t, "спам", account.BanReason)
	require.NotNil(t, account.BanExpiry)
	require.WithinDuration(t, time.Now().AddDate(0, 0, 3), *account.BanExpiry, time.Minute)

	log, err := auditRepo.List(context.Background(), id, 10)
	require.NoError(t, err)
	require.Len(t, log, 1)
	require.Equal(t, "Блокировка", log[0].Action)
	require.Contains(t, log[0].Details, "спам")
}

func TestBanPermanent(t *testing.T) {
	s, accountRepo, _, id := newTestService(t)

	// 0 дней = навсегда
	require.NoError(t, s.Ban(context.Background(), id, "мультиаккаунт", 0))

	account, err := accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.True(t, account.IsBanned)
	require.Nil(t, account.BanExpiry)
}

func TestUnban(t *testing.T) {
	s, accountRepo, _, id := newTestService(t)

	require.NoError(t, s.Ban(context.Background(), id, "спам", 0))
	require.NoError(t, s.Unban(context.Background(), id))

	account, err := accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.False(t, account.IsBanned)
	require.Empty(t, account.BanReason)
	require.Nil(t, account.BanExpiry)
}

func TestMuteAndUnmute(t *testing.T) {
	s, accountRepo, _, id := newTestService(t)

	require.NoError(t, s.Mute(context.Background(), id, "флуд", 30))

	account, err := accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.True(t, account.IsMuted)
	require.NotNil(t, account.MuteExpiry)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), *account.MuteExpiry, time.Minute)

	require.NoError(t, s.Unmute(context.Background(), id))

	account, err = accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.False(t, account.IsMuted)
	require.Nil(t, account.MuteExpiry)
}

func TestNegativeTermRejected(t *testing.T) {
	s, _, _, id := newTestService(t)

	require.ErrorIs(t, s.Ban(context.Background(), id, "спам", -1), model.ErrInvalidState)
	require.ErrorIs(t, s.Mute(context.Background(), id, "флуд", -5), model.ErrInvalidState)
}

func TestModerationUnknownAccount(t *testing.T) {
	s, _, _, _ := newTestService(t)

	require.ErrorIs(t, s.Ban(context.Background(), 404, "спам", 0), model.ErrAccountNotFound)
}
