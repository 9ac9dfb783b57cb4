package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

type AccountClaims struct {
	jwt.RegisteredClaims
}
