package vip

import (
	"net/http"

	"fortuna_backend/internal/api"
	dto "fortuna_backend/internal/api/dto/vip"
	"fortuna_backend/internal/converter"
	"fortuna_backend/internal/middleware"
	"fortuna_backend/internal/service"
	"fortuna_backend/pkg/req"
	"fortuna_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.VipService
}

type Handler struct {
	serv service.VipService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Options возвращает позиции VIP магазина
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToVIPOptionResponses(h.serv.Options()))
}

// Purchase покупает VIP опцию в запас за донат-валюту
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.PurchaseRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.serv.Purchase(r.Context(), accountID, payload.OptionID)
	if err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(account))
}

// Activate активирует предмет из запаса
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.ActivateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.serv.ActivateFromStash(r.Context(), accountID, payload.StashItemID)
	if err != nil {
		api.WriteBusinessError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(account))
}
