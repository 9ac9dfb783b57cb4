package model

import "errors"

// Ожидаемые бизнес-ошибки. Возвращаются сервисами и маппятся
// на HTTP статусы в слое api
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrCaseNotFound      = errors.New("case not found")
	ErrVIPOptionNotFound = errors.New("vip option not found")
	ErrStashItemNotFound = errors.New("stash item not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidState      = errors.New("invalid state")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrAccountBanned      = errors.New("account is banned")
)
