package account

import (
	"net/http"
	"strconv"

	"fortuna_backend/internal/api"
	dto "fortuna_backend/internal/api/dto/account"
	"fortuna_backend/internal/converter"
	"fortuna_backend/internal/middleware"
	"fortuna_backend/internal/model"
	"fortuna_backend/internal/service"
	"fortuna_backend/pkg/req"
	"fortuna_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AccountService
}

type Handler struct {
	serv service.AccountService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Profile возвращает текущий аккаунт
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	account, err := h.serv.Get(r.Context(), accountID)
	if err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(account))
}

// Deposit зачисляет валюту на текущий аккаунт
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.serv.Deposit(r.Context(), accountID, model.CurrencyType(payload.Currency), payload.Amount)
	if err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(account))
}

// Logs возвращает журнал аудита текущего аккаунта, новые записи первыми
func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	log, err := h.serv.AuditLog(r.Context(), accountID, limit)
	if err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAuditEntries(log))
}
