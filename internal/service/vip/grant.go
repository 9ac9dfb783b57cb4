package vip

import (
	"context"
	"fmt"
	"time"

	"fortuna_backend/internal/model"

	"github.com/google/uuid"
)

func (s *serv) Grant(ctx context.Context, accountID int, vipType model.VIPStatus, durationDays int, source model.ActivationSource) (*model.Account, error) {
	unlock := s.locks.Lock(accountID)
	defer unlock()

	var result *model.Account

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		applyGrant(account, vipType, durationDays, source)

		if err = s.accountRepo.UpdateAccount(ctx, account); err != nil {
			return err
		}

		if err = s.auditRepo.Append(ctx, accountID, "Смена VIP статуса",
			grantDetails(vipType, durationDays, source)); err != nil {
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

// applyGrant переписывает VIP состояние аккаунта и пишет запись в историю
// активаций со снимком предыдущего состояния. Предыдущий статус не
// суммируется с новым: действует последняя активация
func applyGrant(account *model.Account, vipType model.VIPStatus, durationDays int, source model.ActivationSource) {
	if vipType == model.VIPNone {
		durationDays = 0
	}

	account.PushVipActivation(model.VipActivationEntry{
		ID:             uuid.NewString(),
		Type:           vipType,
		DurationDays:   durationDays,
		ActivatedAt:    time.Now(),
		Source:         source,
		PreviousType:   account.Status,
		PreviousExpiry: account.VIPExpiry,
	})

	account.Status = vipType
	if vipType == model.VIPNone || durationDays == 0 {
		account.VIPExpiry = nil
		return
	}

	expiry := time.Now().AddDate(0, 0, durationDays)
	account.VIPExpiry = &expiry
}

func grantDetails(vipType model.VIPStatus, durationDays int, source model.ActivationSource) string {
	if vipType == model.VIPNone {
		return fmt.Sprintf("Статус сброшен. Источник: %s.", source)
	}
	return fmt.Sprintf("Статус %s (%s). Источник: %s.",
		vipType.Label(), durationLabel(durationDays), source)
}

func durationLabel(durationDays int) string {
	if durationDays == 0 {
		return "Навсегда"
	}
	return fmt.Sprintf("%d дн.", durationDays)
}
