package moderation

import (
	"context"
	"fmt"
	"time"

	"fortuna_backend/internal/model"
)

func (s *serv) Ban(ctx context.Context, accountID int, reason string, days int) error {
	if days < 0 {
		return model.ErrInvalidState
	}

	return s.mutate(ctx, accountID, func(account *model.Account) (action, details string) {
		account.IsBanned = true
		account.BanReason = reason
		account.BanExpiry = nil // 0 дней = навсегда
		if days > 0 {
			expiry := time.Now().AddDate(0, 0, days)
			account.BanExpiry = &expiry
		}

		term := "Навсегда"
		if days > 0 {
			term = fmt.Sprintf("%d дн.", days)
		}
		return "Блокировка", fmt.Sprintf("Срок: %s. Причина: %s.", term, reason)
	})
}

func (s *serv) Unban(ctx context.Context, accountID int) error {
	return s.mutate(ctx, accountID, func(account *model.Account) (action, details string) {
		account.IsBanned = false
		account.BanReason = ""
		account.BanExpiry = nil
		return "Разблокировка", "Блокировка снята."
	})
}

func (s *serv) Mute(ctx context.Context, accountID int, reason string, minutes int) error {
	if minutes < 0 {
		return model.ErrInvalidState
	}

	return s.mutate(ctx, accountID, func(account *model.Account) (action, details string) {
		account.IsMuted = true
		account.MuteReason = reason
		account.MuteExpiry = nil
		if minutes > 0 {
			expiry := time.Now().Add(time.Duration(minutes) * time.Minute)
			account.MuteExpiry = &expiry
		}

		term := "Навсегда"
		if minutes > 0 {
			term = fmt.Sprintf("%d мин.", minutes)
		}
		return "Блокировка чата", fmt.Sprintf("Срок: %s. Причина: %s.", term, reason)
	})
}

func (s *serv) Unmute(ctx context.Context, accountID int) error {
	return s.mutate(ctx, accountID, func(account *model.Account) (action, details string) {
		account.IsMuted = false
		account.MuteReason = ""
		account.MuteExpiry = nil
		return "Разблокировка чата", "Блокировка чата снята."
	})
}

// mutate - общий каркас операции модерации: блокировка аккаунта,
// транзакция, мутация, сохранение, запись аудита
func (s *serv) mutate(ctx context.Context, accountID int, fn func(account *model.Account) (action, details string)) error {
	unlock := s.locks.Lock(accountID)
	defer unlock()

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		action, details := fn(account)

		if err = s.accountRepo.UpdateAccount(ctx, account); err != nil {
			return err
		}

		return s.auditRepo.Append(ctx, accountID, action, details)
	})
}
