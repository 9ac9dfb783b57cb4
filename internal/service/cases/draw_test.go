package cases

import (
	"math"
	"testing"

	"fortuna_backend/internal/model"

	"github.com/stretchr/testify/require"
)

const testBoost = 0.10

// Таблица предметов из "ржавого ящика": суммарный вес 1.0
func rustyBoxItems() []model.CaseItem {
	return []model.CaseItem{
		{ID: "coins_10", Kind: model.ItemRegularCurrency, Value: 10, Probability: 0.35, Rarity: model.RarityCommon},
		{ID: "coins_25", Kind: model.ItemRegularCurrency, Value: 25, Probability: 0.25, Rarity: model.RarityCommon},
		{ID: "coins_50", Kind: model.ItemRegularCurrency, Value: 50, Probability: 0.15, Rarity: model.RarityUncommon},
		{ID: "coins_75", Kind: model.ItemRegularCurrency, Value: 75, Probability: 0.10, Rarity: model.RarityRare},
		{ID: "coins_minus_20", Kind: model.ItemRegularCurrency, Value: -20, Probability: 0.10, Rarity: model.RarityUncommon},
		{ID: "gems_1", Kind: model.ItemPremiumCurrency, Value: 1, Probability: 0.05, Rarity: model.RarityEpic},
	}
}

func TestEffectiveWeight(t *testing.T) {
	rare := model.CaseItem{Probability: 0.10, Rarity: model.RarityRare}
	common := model.CaseItem{Probability: 0.35, Rarity: model.RarityCommon}

	// Буст действует только на Premium и только на rare/epic
	require.InDelta(t, 0.11, effectiveWeight(rare, model.VIPPremium, testBoost), 1e-12)
	require.InDelta(t, 0.10, effectiveWeight(rare, model.VIPPlus, testBoost), 1e-12)
	require.InDelta(t, 0.10, effectiveWeight(rare, model.VIPNone, testBoost), 1e-12)
	require.InDelta(t, 0.35, effectiveWeight(common, model.VIPPremium, testBoost), 1e-12)
}

func TestNormalizedWeightsSumToOne(t *testing.T) {
	// Сырые веса не обязаны суммироваться в единицу
	items := []model.CaseItem{
		{ID: "a", Probability: 3, Rarity: model.RarityCommon},
		{ID: "b", Probability: 5, Rarity: model.RarityRare},
		{ID: "c", Probability: 12, Rarity: model.RarityEpic},
	}

	for _, status := range []model.VIPStatus{model.VIPNone, model.VIPPremium} {
		total := 0.0
		for _, item := range items {
			total += effectiveWeight(item, status, testBoost)
		}

		sum := 0.0
		for _, item := range items {
			sum += effectiveWeight(item, status, testBoost) / total
		}
		require.InDelta(t, 1.0, sum, 1e-9, "status %s", status)
	}
}

func TestLuckBoostMonotonicity(t *testing.T) {
	items := rustyBoxItems()

	normalized := func(status model.VIPStatus, id string) float64 {
		total := 0.0
		for _, item := range items {
			total += effectiveWeight(item, status, testBoost)
		}
		for _, item := range items {
			if item.ID == id {
				return effectiveWeight(item, status, testBoost) / total
			}
		}
		t.Fatalf("item %q not found", id)
		return 0
	}

	// Вероятность rare/epic у Premium строго выше, чем у остальных
	require.Greater(t, normalized(model.VIPPremium, "coins_75"), normalized(model.VIPNone, "coins_75"))
	require.Greater(t, normalized(model.VIPPremium, "gems_1"), normalized(model.VIPNone, "gems_1"))
	// А у обычных предметов ниже: нормировка перераспределяет массу
	require.Less(t, normalized(model.VIPPremium, "coins_10"), normalized(model.VIPNone, "coins_10"))
}

func TestPickItemRustyBoxDraw(t *testing.T) {
	item := pickItem(rustyBoxItems(), model.VIPNone, testBoost, 0.05)
	require.Equal(t, "coins_10", item.ID)
	require.Equal(t, 10, item.Value)
}

func TestPickItemCatalogOrderWalk(t *testing.T) {
	items := rustyBoxItems()

	// Границы интервалов: 0.35, 0.60, 0.75, 0.85, 0.95, 1.0
	tests := []struct {
		r    float64
		want string
	}{
		{r: 0.0, want: "coins_10"},
		{r: 0.2, want: "coins_10"},
		{r: 0.4, want: "coins_25"},
		{r: 0.65, want: "coins_50"},
		{r: 0.8, want: "coins_75"},
		{r: 0.9, want: "coins_minus_20"},
		{r: 0.97, want: "gems_1"},
	}

	for _, tt := range tests {
		item := pickItem(items, model.VIPNone, testBoost, tt.r)
		require.Equal(t, tt.want, item.ID, "r=%v", tt.r)
	}
}

func TestPickItemAlwaysResolves(t *testing.T) {
	items := rustyBoxItems()

	for _, r := range []float64{0, 1e-12, 0.5, 0.9999999, math.Nextafter(1, 0), 1} {
		for _, status := range []model.VIPStatus{model.VIPNone, model.VIPBase, model.VIPPlus, model.VIPPremium} {
			item := pickItem(items, status, testBoost, r)
			require.NotEmpty(t, item.ID, "r=%v status=%s", r, status)
		}
	}

	single := []model.CaseItem{{ID: "only", Probability: 0.4, Rarity: model.RarityCommon}}
	require.Equal(t, "only", pickItem(single, model.VIPNone, testBoost, 0).ID)
	require.Equal(t, "only", pickItem(single, model.VIPNone, testBoost, math.Nextafter(1, 0)).ID)
}

func TestPickItemZeroTotalWeightUniform(t *testing.T) {
	items := []model.CaseItem{
		{ID: "a", Probability: 0, Rarity: model.RarityCommon},
		{ID: "b", Probability: 0, Rarity: model.RarityCommon},
		{ID: "c", Probability: 0, Rarity: model.RarityCommon},
	}

	require.Equal(t, "a", pickItem(items, model.VIPNone, testBoost, 0).ID)
	require.Equal(t, "b", pickItem(items, model.VIPNone, testBoost, 0.5).ID)
	require.Equal(t, "c", pickItem(items, model.VIPNone, testBoost, 0.99).ID)
}
