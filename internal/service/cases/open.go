package cases

import (
	"context"
	"fmt"
	"time"

	"fortuna_backend/internal/model"

	"github.com/google/uuid"
)

func (s *serv) Cases() []model.Case {
	return s.catalog.Cases()
}

func (s *serv) Open(ctx context.Context, accountID int, caseID string) (*model.CaseOpenResult, error) {
	// Проверка каталога до захвата блокировки
	c, err := s.catalog.GetCase(caseID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(accountID)
	defer unlock()

	var result *model.CaseOpenResult

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		if account.Balance(c.Currency) < c.Price {
			return model.ErrInsufficientFunds
		}

		// Списание цены и розыгрыш применяются одной транзакцией:
		// промежуточное состояние снаружи не наблюдаемо
		account.AddBalance(c.Currency, -c.Price)
		account.OpenedCases++

		item := pickItem(c.Items, account.Status, s.catalog.PremiumLuckBoost(), s.randFloat())
		prize := applyReward(account, c, item)

		if err = s.accountRepo.UpdateAccount(ctx, account); err != nil {
			return err
		}

		details := fmt.Sprintf("Кейс: %s. Результат: %s. Списано: %d %s.",
			c.Name, prize, c.Price, c.Currency.Label())
		if err = s.auditRepo.Append(ctx, accountID, "Открытие кейса", details); err != nil {
			return err
		}

		result = &model.CaseOpenResult{
			CaseID:         c.ID,
			CaseName:       c.Name,
			Item:           item,
			Prize:          prize,
			RegularBalance: account.RegularBalance,
			PremiumBalance: account.PremiumBalance,
			OpenedCases:    account.OpenedCases,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// applyReward применяет разыгранный предмет к аккаунту и возвращает
// текст выигрыша. После валидного розыгрыша применение не может упасть
func applyReward(account *model.Account, c *model.Case, item model.CaseItem) string {
	if item.Kind == model.ItemVIPGrant {
		account.PushVipStash(model.VipStashItem{
			ID:           uuid.NewString(),
			Type:         item.VIPType,
			DurationDays: item.VIPDurationDays,
			AcquiredAt:   time.Now(),
			Source:       model.StashSourceCase,
		})

		duration := "Навсегда"
		if item.VIPDurationDays > 0 {
			duration = fmt.Sprintf("%d дн.", item.VIPDurationDays)
		}
		return fmt.Sprintf("Статус %s (%s) добавлен в запас. (из %q)",
			item.VIPType.Label(), duration, c.Name)
	}

	currency := model.CurrencyRegular
	if item.Kind == model.ItemPremiumCurrency {
		currency = model.CurrencyPremium
	}
	// Отрицательные дельты применяются как есть, баланс не ограничен нулем
	account.AddBalance(currency, item.Value)

	switch {
	case item.Value > 0:
		return fmt.Sprintf("Выигрыш %d %s (из %q)", item.Value, currency.Label(), c.Name)
	case item.Value < 0:
		return fmt.Sprintf("Потеря %d %s (из %q)", -item.Value, currency.Label(), c.Name)
	default:
		return fmt.Sprintf("Ничего (0 %s) (из %q)", currency.Label(), c.Name)
	}
}
