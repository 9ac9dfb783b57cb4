package sweeper

import (
	"context"

	"fortuna_backend/internal/model"
)

// SweepAll обходит все аккаунты. Ошибка одного аккаунта не прерывает
// проход, возвращается последняя из встреченных
func (s *serv) SweepAll(ctx context.Context) error {
	ids, err := s.accountRepo.ListAccountIDs(ctx)
	if err != nil {
		return err
	}

	var lastErr error
	for _, id := range ids {
		if err := s.SweepAccount(ctx, id); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

// SweepAccount сбрасывает истекшие состояния одного аккаунта.
// Три проверки независимы: VIP, блокировка и блокировка чата могут
// истечь в одном проходе. Бессрочные состояния (nil expiry) не трогаются.
// Повторный проход по уже сброшенному аккаунту ничего не меняет
func (s *serv) SweepAccount(ctx context.Context, accountID int) error {
	unlock := s.locks.Lock(accountID)
	defer unlock()

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		now := s.now()
		var audits []string

		if account.Status.Active() && account.VIPExpiry != nil && now.After(*account.VIPExpiry) {
			account.Status = model.VIPNone
			account.VIPExpiry = nil
			audits = append(audits, "Ваш VIP статус истек.")
		}

		if account.IsBanned && account.BanExpiry != nil && now.After(*account.BanExpiry) {
			account.IsBanned = false
			account.BanReason = ""
			account.BanExpiry = nil
			audits = append(audits, "Срок блокировки истек. Аккаунт разблокирован.")
		}

		if account.IsMuted && account.MuteExpiry != nil && now.After(*account.MuteExpiry) {
			account.IsMuted = false
			account.MuteReason = ""
			account.MuteExpiry = nil
			audits = append(audits, "Срок блокировки чата истек.")
		}

		if len(audits) == 0 {
			return nil
		}

		if err = s.accountRepo.UpdateAccount(ctx, account); err != nil {
			return err
		}

		for _, details := range audits {
			if err = s.auditRepo.Append(ctx, accountID, "Истечение срока", details); err != nil {
				return err
			}
		}

		return nil
	})
}
