package vip

import (
	"context"
	"fmt"

	"fortuna_backend/internal/model"
)

func (s *serv) ActivateFromStash(ctx context.Context, accountID int, stashItemID string) (*model.Account, error) {
	unlock := s.locks.Lock(accountID)
	defer unlock()

	var result *model.Account

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		idx := -1
		for i, item := range account.VipStash {
			if item.ID == stashItemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return model.ErrStashItemNotFound
		}

		item := account.VipStash[idx]
		account.VipStash = append(account.VipStash[:idx], account.VipStash[idx+1:]...)

		applyGrant(account, item.Type, item.DurationDays, model.ActivationSourceStash)

		if err = s.accountRepo.UpdateAccount(ctx, account); err != nil {
			return err
		}

		details := fmt.Sprintf("Активирован %s (%s) из запаса.",
			item.Type.Label(), durationLabel(item.DurationDays))
		if err = s.auditRepo.Append(ctx, accountID, "Активация VIP", details); err != nil {
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
