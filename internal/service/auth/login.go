package auth

import (
	"context"
	"fmt"
	"time"

	"fortuna_backend/internal/model"
	"fortuna_backend/pkg/pass"
	"fortuna_backend/pkg/token"
)

func (s *serv) Login(ctx context.Context, username, password string) (*model.AuthData, error) {
	// Получение аккаунта по логину
	account, err := s.accountRepo.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	// Верификация пароля
	if !pass.VerifyPassword(account.PasswordHash, password) {
		return nil, model.ErrInvalidCredentials
	}

	// Заблокированный аккаунт не пускаем, пока срок не вышел
	if account.IsBanned {
		if account.BanExpiry == nil {
			return nil, fmt.Errorf("%w: причина: %s, навсегда", model.ErrAccountBanned, account.BanReason)
		}
		if time.Now().Before(*account.BanExpiry) {
			return nil, fmt.Errorf("%w: причина: %s, до %s",
				model.ErrAccountBanned, account.BanReason, account.BanExpiry.Format("02.01.2006 15:04"))
		}
	}

	account.LastLogin = time.Now()
	if err = s.accountRepo.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	// Генерация sessionID
	sessionID := generateSessionID()

	// Генерация refresh токена
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	// Создать сессию
	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			AccountID:    account.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		account,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
