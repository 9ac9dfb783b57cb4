package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"fortuna_backend/internal/model"
	"fortuna_backend/pkg/pass"
	"fortuna_backend/pkg/token"
)

func (s *serv) Register(ctx context.Context, username, password string) (*model.AuthData, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < minPasswordLength {
		return nil, model.ErrInvalidState
	}

	// Хэширование пароля
	passwordHash, err := pass.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// Переменные для хранения результатов
	var (
		sessionID    string
		refreshToken string
		accessToken  string
	)

	// Начало транзакциии
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Проверить, что логин свободен
		_, err := s.accountRepo.GetAccountByUsername(ctx, username)
		if err == nil {
			return model.ErrUsernameTaken
		}
		if !errors.Is(err, model.ErrAccountNotFound) {
			return err
		}

		// 2. Создать аккаунт со стартовыми балансами
		now := time.Now()
		account := &model.Account{
			Username:       username,
			PasswordHash:   passwordHash,
			RegularBalance: model.InitialRegularBalance,
			PremiumBalance: model.InitialPremiumBalance,
			Status:         model.VIPNone,
			CreatedAt:      now,
			LastLogin:      now,
		}
		account.ID, err = s.accountRepo.CreateAccount(ctx, account)
		if err != nil {
			return err
		}

		if err = s.auditRepo.Append(ctx, account.ID, "Регистрация", "Аккаунт создан."); err != nil {
			return err
		}

		// 3. Генерация sessionID
		sessionID = generateSessionID()
		// 4. Генерация refresh токена
		refreshToken, err = token.GenerateRefreshToken()
		if err != nil {
			return err
		}

		// 5. Создать сессию
		err = s.authRepo.CreateSession(ctx,
			&model.Session{
				ID:           sessionID,
				AccountID:    account.ID,
				RefreshToken: token.HashRefreshToken(refreshToken),
				ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
			})
		if err != nil {
			return err
		}

		// 6. Создать access токен
		accessToken, err = token.GenerateAccessToken(
			account,
			s.jwtConfig.AccessTokenSecretKey(),
			s.jwtConfig.AccessTokenDuration())
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
