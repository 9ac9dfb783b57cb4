package cases

import (
	"fortuna_backend/internal/model"
)

// effectiveWeight - базовый вес предмета с учетом буста удачи:
// Premium статус умножает вес редких и эпических предметов на (1 + boost)
func effectiveWeight(item model.CaseItem, status model.VIPStatus, boost float64) float64 {
	if status == model.VIPPremium && item.Rarity.Boosted() {
		return item.Probability * (1 + boost)
	}
	return item.Probability
}

// pickItem разыгрывает один предмет кейса по r из [0, 1).
// Веса нормализуются заново на каждый розыгрыш, обход в порядке каталога
// с накоплением суммы. Если сумма весов нулевая - равномерный выбор.
// Если из-за округления сумма не дотянула до r - берется последний предмет
func pickItem(items []model.CaseItem, status model.VIPStatus, boost float64, r float64) model.CaseItem {
	total := 0.0
	for _, item := range items {
		total += effectiveWeight(item, status, boost)
	}

	if total <= 0 {
		idx := int(r * float64(len(items)))
		if idx >= len(items) {
			idx = len(items) - 1
		}
		return items[idx]
	}

	cumulative := 0.0
	for _, item := range items {
		cumulative += effectiveWeight(item, status, boost) / total
		if r <= cumulative {
			return item
		}
	}

	return items[len(items)-1]
}
