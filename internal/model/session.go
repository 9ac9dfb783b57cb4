package model

import "time"

type Session struct {
	ID           string
	AccountID    int
	RefreshToken string
	ExpiresAt    time.Time
}
