package vip

import (
	"context"
	"fmt"
	"time"

	"fortuna_backend/internal/model"

	"github.com/google/uuid"
)

func (s *serv) Purchase(ctx context.Context, accountID int, optionID string) (*model.Account, error) {
	opt, err := s.catalog.GetVIPOption(optionID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(accountID)
	defer unlock()

	var result *model.Account

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		if account.PremiumBalance < opt.PricePremium {
			return model.ErrInsufficientFunds
		}

		// Покупка кладет статус в запас, без автоактивации
		account.AddBalance(model.CurrencyPremium, -opt.PricePremium)
		account.PushVipStash(model.VipStashItem{
			ID:           uuid.NewString(),
			Type:         opt.BaseType,
			DurationDays: opt.DurationDays,
			AcquiredAt:   time.Now(),
			Source:       model.StashSourceShop,
		})

		if err = s.accountRepo.UpdateAccount(ctx, account); err != nil {
			return err
		}

		details := fmt.Sprintf("Куплен %s (%s) за %d %s. Добавлен в запас.",
			opt.Name, durationLabel(opt.DurationDays), opt.PricePremium, model.CurrencyPremium.Label())
		if err = s.auditRepo.Append(ctx, accountID, "Покупка VIP", details); err != nil {
			return err
		}

		result = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
