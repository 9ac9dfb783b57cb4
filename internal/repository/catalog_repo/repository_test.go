package catalog_repo

import (
	"testing"

	"fortuna_backend/internal/config/env"
	"fortuna_backend/internal/model"

	"github.com/stretchr/testify/require"
)

const catalogYAML = `
catalog:
  vip_options:
    - id: VIP_3D
      name: VIP (3 дня)
      type: vip
      price_premium: 8
      duration_days: 3
    - id: PREMIUM_30D
      name: Premium (30 дней)
      type: premium
      price_premium: 300
      duration_days: 30
      case_luck_boost: 0.1
  cases:
    - id: case_rusty_box
      name: Ржавый Ящик
      price: 50
      currency: regular
      items:
        - { id: rusty_reg_10, name: 10 Монет, kind: regular, value: 10, probability: 0.35, rarity: common }
        - { id: rusty_prem_1, name: 1 Кристалл, kind: premium, value: 1, probability: 0.05, rarity: uncommon }
        - { id: rusty_vip, name: VIP (3 дня), kind: vip, vip_type: vip, duration_days: 3, probability: 0.05, rarity: epic }
`

func newTestCatalog(t *testing.T) *repo {
	t.Helper()

	cfg, err := env.ParseCatalogConfig([]byte(catalogYAML))
	require.NoError(t, err)

	r, err := NewCatalogRepository(cfg)
	require.NoError(t, err)
	return r.(*repo)
}

func TestCatalogFromYAML(t *testing.T) {
	r := newTestCatalog(t)

	gameCase, err := r.GetCase("case_rusty_box")
	require.NoError(t, err)
	require.Equal(t, "Ржавый Ящик", gameCase.Name)
	require.Equal(t, 50, gameCase.Price)
	require.Equal(t, model.CurrencyRegular, gameCase.Currency)
	require.Len(t, gameCase.Items, 3)
	require.Equal(t, model.ItemVIPGrant, gameCase.Items[2].Kind)
	require.Equal(t, model.VIPBase, gameCase.Items[2].VIPType)

	opt, err := r.GetVIPOption("PREMIUM_30D")
	require.NoError(t, err)
	require.Equal(t, 300, opt.PricePremium)

	require.Len(t, r.Cases(), 1)
	require.Len(t, r.VIPOptions(), 2)
}

func TestPremiumLuckBoostFromCanonicalOption(t *testing.T) {
	r := newTestCatalog(t)

	// Буст берется из 30-дневной Premium опции
	require.InDelta(t, 0.1, r.PremiumLuckBoost(), 1e-12)
}

func TestUnknownIDs(t *testing.T) {
	r := newTestCatalog(t)

	_, err := r.GetCase("case_missing")
	require.ErrorIs(t, err, model.ErrCaseNotFound)

	_, err = r.GetVIPOption("GOLD_99")
	require.ErrorIs(t, err, model.ErrVIPOptionNotFound)
}

type staticConfig struct {
	cases   []model.Case
	options []model.VIPOption
}

func (c staticConfig) Cases() []model.Case { return c.cases }

func (c staticConfig) VIPOptions() []model.VIPOption { return c.options }

func premiumOption() model.VIPOption {
	return model.VIPOption{ID: "PREMIUM_30D", BaseType: model.VIPPremium, PricePremium: 300, DurationDays: 30, CaseLuckBoost: 0.1}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  staticConfig
	}{
		{
			name: "без канонической Premium опции",
			cfg: staticConfig{
				options: []model.VIPOption{{ID: "VIP_3D", BaseType: model.VIPBase, PricePremium: 8, DurationDays: 3}},
			},
		},
		{
			name: "опция со статусом none",
			cfg: staticConfig{
				options: []model.VIPOption{premiumOption(), {ID: "NONE_1", BaseType: model.VIPNone, PricePremium: 1}},
			},
		},
		{
			name: "неположительная цена опции",
			cfg: staticConfig{
				options: []model.VIPOption{premiumOption(), {ID: "FREE", BaseType: model.VIPBase, PricePremium: 0}},
			},
		},
		{
			name: "дубль id опции",
			cfg: staticConfig{
				options: []model.VIPOption{premiumOption(), premiumOption()},
			},
		},
		{
			name: "кейс без предметов",
			cfg: staticConfig{
				options: []model.VIPOption{premiumOption()},
				cases:   []model.Case{{ID: "empty", Price: 10, Currency: model.CurrencyRegular}},
			},
		},
		{
			name: "неизвестная валюта кейса",
			cfg: staticConfig{
				options: []model.VIPOption{premiumOption()},
				cases: []model.Case{{ID: "c", Price: 10, Currency: "gold", Items: []model.CaseItem{
					{ID: "i", Kind: model.ItemRegularCurrency, Value: 1, Probability: 1, Rarity: model.RarityCommon},
				}}},
			},
		},
		{
			name: "vip предмет со статусом none",
			cfg: staticConfig{
				options: []model.VIPOption{premiumOption()},
				cases: []model.Case{{ID: "c", Price: 10, Currency: model.CurrencyRegular, Items: []model.CaseItem{
					{ID: "i", Kind: model.ItemVIPGrant, VIPType: model.VIPNone, Probability: 1, Rarity: model.RarityEpic},
				}}},
			},
		},
		{
			name: "отрицательный вес",
			cfg: staticConfig{
				options: []model.VIPOption{premiumOption()},
				cases: []model.Case{{ID: "c", Price: 10, Currency: model.CurrencyRegular, Items: []model.CaseItem{
					{ID: "i", Kind: model.ItemRegularCurrency, Value: 1, Probability: -0.1, Rarity: model.RarityCommon},
				}}},
			},
		},
		{
			name: "неизвестная редкость",
			cfg: staticConfig{
				options: []model.VIPOption{premiumOption()},
				cases: []model.Case{{ID: "c", Price: 10, Currency: model.CurrencyRegular, Items: []model.CaseItem{
					{ID: "i", Kind: model.ItemRegularCurrency, Value: 1, Probability: 1, Rarity: "legendary"},
				}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogRepository(tt.cfg)
			require.Error(t, err)
		})
	}
}
