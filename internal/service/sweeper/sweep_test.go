package sweeper

import (
	"context"
	"testing"
	"time"

	"fortuna_backend/internal/model"
	"fortuna_backend/internal/repository/memory_repo"
	"fortuna_backend/pkg/keylock"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	serv        *serv
	accountRepo *memory_repo.AccountRepo
	auditRepo   *memory_repo.AuditRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	accountRepo := memory_repo.NewAccountRepository()
	auditRepo := memory_repo.NewAuditRepository()

	s := NewSweeperService(accountRepo, auditRepo, keylock.New(), memory_repo.NewTxManager(), time.Minute).(*serv)

	return &testEnv{serv: s, accountRepo: accountRepo, auditRepo: auditRepo}
}

func (e *testEnv) createAccount(t *testing.T, account *model.Account) int {
	t.Helper()

	if account.Username == "" {
		account.Username = "player"
	}
	id, err := e.accountRepo.CreateAccount(context.Background(), account)
	require.NoError(t, err)
	return id
}

func timePtr(ts time.Time) *time.Time {
	return &ts
}

func TestSweepRevertsAllExpiredStates(t *testing.T) {
	env := newTestEnv(t)

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	env.serv.now = func() time.Time { return fixed }
	past := timePtr(fixed.Add(-time.Hour))

	// VIP, бан и мут истекли одновременно: три независимых сброса за проход
	id := env.createAccount(t, &model.Account{
		Status:     model.VIPPremium,
		VIPExpiry:  past,
		IsBanned:   true,
		BanReason:  "спам",
		BanExpiry:  past,
		IsMuted:    true,
		MuteReason: "флуд",
		MuteExpiry: past,
	})

	require.NoError(t, env.serv.SweepAccount(context.Background(), id))

	account, err := env.accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, model.VIPNone, account.Status)
	require.Nil(t, account.VIPExpiry)
	require.False(t, account.IsBanned)
	require.Empty(t, account.BanReason)
	require.Nil(t, account.BanExpiry)
	require.False(t, account.IsMuted)
	require.Nil(t, account.MuteExpiry)

	log, err := env.auditRepo.List(context.Background(), id, 10)
	require.NoError(t, err)
	require.Len(t, log, 3)
	for _, entry := range log {
		require.Equal(t, "Истечение срока", entry.Action)
	}
}

func TestSweepIdempotent(t *testing.T) {
	env := newTestEnv(t)

	id := env.createAccount(t, &model.Account{
		Status:    model.VIPBase,
		VIPExpiry: timePtr(time.Now().Add(-time.Minute)),
	})

	require.NoError(t, env.serv.SweepAccount(context.Background(), id))
	require.NoError(t, env.serv.SweepAccount(context.Background(), id))

	account, err := env.accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, model.VIPNone, account.Status)
	require.Nil(t, account.VIPExpiry)

	// Второй проход ничего не добавил
	log, err := env.auditRepo.List(context.Background(), id, 10)
	require.NoError(t, err)
	require.Len(t, log, 1)
}

func TestSweepPermanentStatesUntouched(t *testing.T) {
	env := newTestEnv(t)

	// nil expiry = навсегда, свипер не трогает
	id := env.createAccount(t, &model.Account{
		Status:   model.VIPPremium,
		IsBanned: true,
		IsMuted:  true,
	})

	require.NoError(t, env.serv.SweepAccount(context.Background(), id))

	account, err := env.accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, model.VIPPremium, account.Status)
	require.True(t, account.IsBanned)
	require.True(t, account.IsMuted)

	log, err := env.auditRepo.List(context.Background(), id, 10)
	require.NoError(t, err)
	require.Empty(t, log)
}

func TestSweepFutureExpiryUntouched(t *testing.T) {
	env := newTestEnv(t)

	id := env.createAccount(t, &model.Account{
		Status:    model.VIPPlus,
		VIPExpiry: timePtr(time.Now().Add(time.Hour)),
	})

	require.NoError(t, env.serv.SweepAccount(context.Background(), id))

	account, err := env.accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, model.VIPPlus, account.Status)
	require.NotNil(t, account.VIPExpiry)
}

func TestSweepAllVisitsEveryAccount(t *testing.T) {
	env := newTestEnv(t)
	past := timePtr(time.Now().Add(-time.Hour))

	first := env.createAccount(t, &model.Account{Username: "a", Status: model.VIPBase, VIPExpiry: past})
	second := env.createAccount(t, &model.Account{Username: "b", IsMuted: true, MuteExpiry: past})
	third := env.createAccount(t, &model.Account{Username: "c", Status: model.VIPNone})

	require.NoError(t, env.serv.SweepAll(context.Background()))

	account, err := env.accountRepo.GetAccount(context.Background(), first)
	require.NoError(t, err)
	require.Equal(t, model.VIPNone, account.Status)

	account, err = env.accountRepo.GetAccount(context.Background(), second)
	require.NoError(t, err)
	require.False(t, account.IsMuted)

	account, err = env.accountRepo.GetAccount(context.Background(), third)
	require.NoError(t, err)
	require.Equal(t, model.VIPNone, account.Status)

	log, err := env.auditRepo.List(context.Background(), third, 10)
	require.NoError(t, err)
	require.Empty(t, log)
}
