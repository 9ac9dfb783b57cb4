package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"fortuna_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateAccessToken(account *model.Account, secretKey []byte, ttl time.Duration) (string, error) {
	claims := model.AccountClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        strconv.Itoa(account.ID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.AccountClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.AccountClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %v", err)
	}

	claims, ok := token.Claims.(*model.AccountClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
