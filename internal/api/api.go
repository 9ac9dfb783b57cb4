package api

import (
	"errors"
	"log"
	"net/http"

	"fortuna_backend/internal/model"
	"fortuna_backend/pkg/resp"
)

// WriteBusinessError маппит бизнес-ошибки сервисов на HTTP статусы.
// Неизвестные ошибки не раскрываются клиенту
func WriteBusinessError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrAccountNotFound),
		errors.Is(err, model.ErrCaseNotFound),
		errors.Is(err, model.ErrVIPOptionNotFound),
		errors.Is(err, model.ErrStashItemNotFound):
		resp.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInsufficientFunds):
		resp.WriteError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, model.ErrInvalidState):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrUsernameTaken):
		resp.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		resp.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, model.ErrAccountBanned):
		resp.WriteError(w, http.StatusForbidden, err.Error())
	default:
		log.Printf("internal error: %v", err)
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
