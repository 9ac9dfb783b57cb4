package cases

import (
	"context"
	"testing"
	"time"

	"fortuna_backend/internal/model"
	"fortuna_backend/internal/repository/catalog_repo"
	"fortuna_backend/internal/repository/memory_repo"
	"fortuna_backend/pkg/keylock"

	"github.com/stretchr/testify/require"
)

type staticCatalog struct {
	caseList []model.Case
	options  []model.VIPOption
}

func (c staticCatalog) Cases() []model.Case { return c.caseList }

func (c staticCatalog) VIPOptions() []model.VIPOption { return c.options }

type testEnv struct {
	serv        *serv
	accountRepo *memory_repo.AccountRepo
	auditRepo   *memory_repo.AuditRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog, err := catalog_repo.NewCatalogRepository(staticCatalog{
		caseList: []model.Case{
			{
				ID:       "case_rusty_box",
				Name:     "Ржавый ящик",
				Price:    50,
				Currency: model.CurrencyRegular,
				Items:    rustyBoxItems(),
			},
			{
				ID:       "case_vip_chance",
				Name:     "VIP шанс",
				Price:    100,
				Currency: model.CurrencyRegular,
				Items: []model.CaseItem{
					{ID: "vip_3d", Kind: model.ItemVIPGrant, VIPType: model.VIPBase, VIPDurationDays: 3, Probability: 1, Rarity: model.RarityEpic},
				},
			},
		},
		options: []model.VIPOption{
			{ID: "premium_30", Name: "Premium 30", BaseType: model.VIPPremium, PricePremium: 300, DurationDays: 30, CaseLuckBoost: testBoost},
		},
	})
	require.NoError(t, err)

	accountRepo := memory_repo.NewAccountRepository()
	auditRepo := memory_repo.NewAuditRepository()

	s := NewCaseService(catalog, accountRepo, auditRepo, keylock.New(), memory_repo.NewTxManager()).(*serv)

	return &testEnv{serv: s, accountRepo: accountRepo, auditRepo: auditRepo}
}

func (e *testEnv) createAccount(t *testing.T, regular, premium int) int {
	t.Helper()

	id, err := e.accountRepo.CreateAccount(context.Background(), &model.Account{
		Username:       "player",
		RegularBalance: regular,
		PremiumBalance: premium,
		Status:         model.VIPNone,
		CreatedAt:      time.Now(),
	})
	require.NoError(t, err)
	return id
}

func TestOpenDebitAndRewardAreOneUnit(t *testing.T) {
	env := newTestEnv(t)
	id := env.createAccount(t, 1000, 10)
	env.serv.randFloat = func() float64 { return 0.05 }

	result, err := env.serv.Open(context.Background(), id, "case_rusty_box")
	require.NoError(t, err)

	// 1000 - 50 (цена) + 10 (выигрыш)
	require.Equal(t, 960, result.RegularBalance)
	require.Equal(t, 10, result.PremiumBalance)
	require.Equal(t, 1, result.OpenedCases)
	require.Equal(t, "coins_10", result.Item.ID)
	require.Equal(t, `Выигрыш 10 Обычная валюта (из "Ржавый ящик")`, result.Prize)

	// Сохраненное состояние совпадает с результатом
	account, err := env.accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, 960, account.RegularBalance)
	require.Equal(t, 1, account.OpenedCases)

	log, err := env.auditRepo.List(context.Background(), id, 10)
	require.NoError(t, err)
	require.Len(t, log, 1)
	require.Equal(t, "Открытие кейса", log[0].Action)
	require.Contains(t, log[0].Details, "Ржавый ящик")
	require.Contains(t, log[0].Details, "Списано: 50")
}

func TestOpenInsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	id := env.createAccount(t, 49, 0)

	_, err := env.serv.Open(context.Background(), id, "case_rusty_box")
	require.ErrorIs(t, err, model.ErrInsufficientFunds)

	// Состояние не тронуто
	account, err := env.accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, 49, account.RegularBalance)
	require.Equal(t, 0, account.OpenedCases)

	log, err := env.auditRepo.List(context.Background(), id, 10)
	require.NoError(t, err)
	require.Empty(t, log)
}

func TestOpenUnknownCase(t *testing.T) {
	env := newTestEnv(t)
	id := env.createAccount(t, 1000, 10)

	_, err := env.serv.Open(context.Background(), id, "case_missing")
	require.ErrorIs(t, err, model.ErrCaseNotFound)
}

func TestOpenUnknownAccount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.serv.Open(context.Background(), 42, "case_rusty_box")
	require.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestOpenLossGoesBelowZero(t *testing.T) {
	env := newTestEnv(t)
	id := env.createAccount(t, 50, 0)
	env.serv.randFloat = func() float64 { return 0.9 } // coins_minus_20

	result, err := env.serv.Open(context.Background(), id, "case_rusty_box")
	require.NoError(t, err)

	// Штрафной предмет не ограничен нулем: 50 - 50 - 20
	require.Equal(t, -20, result.RegularBalance)
	require.Equal(t, `Потеря 20 Обычная валюта (из "Ржавый ящик")`, result.Prize)
}

func TestOpenVipRewardGoesToStash(t *testing.T) {
	env := newTestEnv(t)
	id := env.createAccount(t, 1000, 10)
	env.serv.randFloat = func() float64 { return 0.5 }

	result, err := env.serv.Open(context.Background(), id, "case_vip_chance")
	require.NoError(t, err)
	require.Equal(t, `Статус VIP (3 дн.) добавлен в запас. (из "VIP шанс")`, result.Prize)

	account, err := env.accountRepo.GetAccount(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, account.VipStash, 1)
	require.Equal(t, model.VIPBase, account.VipStash[0].Type)
	require.Equal(t, 3, account.VipStash[0].DurationDays)
	require.Equal(t, model.StashSourceCase, account.VipStash[0].Source)
	// Статус не активируется автоматически
	require.Equal(t, model.VIPNone, account.Status)
}
